// Command token issues bearer tokens for the history endpoints.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/artem13815/resumescan/pkg/config"
	"github.com/artem13815/resumescan/pkg/security/jwt"
)

func main() {
	subject := flag.String("sub", "", "token subject (history owner)")
	ttl := flag.Duration("ttl", 0, "token lifetime, defaults to JWT_TTL_MINUTES")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if !cfg.AuthEnabled() {
		log.Fatal("JWT_SECRET не задан")
	}
	if *ttl <= 0 {
		*ttl = time.Duration(cfg.JWTTTLMinutes) * time.Minute
	}
	token, err := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, *ttl).Generate(context.Background(), *subject)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	fmt.Fprintln(os.Stdout, token)
}
