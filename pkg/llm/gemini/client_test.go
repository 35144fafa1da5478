package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resumescan/pkg/llm"
)

func TestAsk(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-goog-api-key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "system", req.SystemInstruction.Parts[0].Text)
		assert.Equal(t, "user", req.Contents[0].Parts[0].Text)
		assert.InDelta(t, 0.3, req.GenerationConfig.Temperature, 1e-6)
		assert.Equal(t, 8192, req.GenerationConfig.MaxOutputTokens)

		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"score\":1}"}]}}]}`))
	}))
	defer srv.Close()

	got, err := New("secret", srv.URL+"/", "gemini-test").Ask(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.Equal(t, `{"score":1}`, got)
}

func TestAskErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		is     error
	}{
		{"upstream failure", http.StatusServiceUnavailable, `{"error":"overloaded"}`, nil},
		{"no candidates", http.StatusOK, `{"candidates":[]}`, llm.ErrNoContent},
		{"empty text", http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":""}]}}]}`, llm.ErrNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := New("secret", srv.URL, "m").Ask(context.Background(), "s", "u")
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			} else {
				assert.Contains(t, err.Error(), "gemini http 503")
			}
		})
	}
}

func TestAskWithoutKey(t *testing.T) {
	_, err := New("", "", "").Ask(context.Background(), "s", "u")
	require.ErrorIs(t, err, llm.ErrNoAPIKey)
}
