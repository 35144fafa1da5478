// Command pdftext extracts text from PDF files and prints one JSON object
// per file, in argument order.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/artem13815/resumescan/pkg/pdftext"
)

type fileResult struct {
	File string `json:"file"`
	*pdftext.Result
	Error string `json:"error,omitempty"`
}

func main() {
	strategyName := flag.String("strategy", "positional", "extraction strategy: positional, plain or library")
	workers := flag.Int("workers", runtime.NumCPU(), "files processed in parallel")
	maxBytes := flag.Int64("max-bytes", pdftext.DefaultMaxBytes, "size ceiling per file")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: pdftext [-strategy name] [-workers n] file.pdf ...")
		os.Exit(2)
	}
	strategy, err := pdftext.ParseStrategy(*strategyName)
	if err != nil {
		log.Fatal(err)
	}

	results := run(context.Background(), pdftext.New(strategy, *maxBytes), flag.Args(), *workers)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	failed := false
	for _, r := range results {
		if r.Error != "" {
			failed = true
		}
		if err := enc.Encode(r); err != nil {
			log.Fatal(err)
		}
	}
	if failed {
		os.Exit(1)
	}
}

// run extracts every file with at most workers in flight. Per-file failures
// are reported in the result, they do not stop the batch.
func run(ctx context.Context, ex *pdftext.Extractor, files []string, workers int) []fileResult {
	results := make([]fileResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = extractFile(ex, path)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func extractFile(ex *pdftext.Extractor, path string) fileResult {
	out := fileResult{File: path}
	st, err := os.Stat(path)
	if err != nil {
		out.Error = err.Error()
		return out
	}
	if st.Size() > ex.MaxBytes() {
		out.Error = fmt.Sprintf("%v: %d bytes", pdftext.ErrTooLarge, st.Size())
		return out
	}
	data, err := os.ReadFile(path)
	if err != nil {
		out.Error = err.Error()
		return out
	}
	res, err := ex.Extract(data)
	if err != nil {
		out.Error = err.Error()
		return out
	}
	out.Result = &res
	return out
}
