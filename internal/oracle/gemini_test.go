package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/tgpolish/internal/common"
)

func newTestServer(t *testing.T, answer string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Contents)

		w.WriteHeader(status)
		if status == http.StatusOK {
			fmt.Fprintf(w, `{"candidates":[{"content":{"parts":[{"text":%q}]}}]}`, answer)
		}
	}))
}

func TestCorrect_JSONAnswer(t *testing.T) {
	srv := newTestServer(t, `{"corrected_text": "Привет, как дела?"}`, http.StatusOK)
	defer srv.Close()

	o := NewGeminiOracle(srv.URL, "key", "model", srv.Client())

	got, err := o.Correct(context.Background(), "привет как дила")
	require.NoError(t, err)
	assert.Equal(t, "Привет, как дела?", got)
}

func TestCorrect_ServerError(t *testing.T) {
	srv := newTestServer(t, "", http.StatusInternalServerError)
	defer srv.Close()

	o := NewGeminiOracle(srv.URL, "key", "model", srv.Client())

	_, err := o.Correct(context.Background(), "text")
	assert.ErrorIs(t, err, common.ErrOracleFailure)
}

func TestCorrect_TransportErrorIsOracleFailure(t *testing.T) {
	srv := newTestServer(t, "", http.StatusOK)
	srv.Close() // refuse connections

	o := NewGeminiOracle(srv.URL, "key", "model", nil)

	_, err := o.Correct(context.Background(), "text")
	assert.ErrorIs(t, err, common.ErrOracleFailure)
}

func TestCorrect_EmptyCandidatesFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"candidates":[]}`)
	}))
	defer srv.Close()

	o := NewGeminiOracle(srv.URL, "key", "model", srv.Client())

	got, err := o.Correct(context.Background(), "original")
	require.NoError(t, err)
	assert.Equal(t, "original", got)
}

func TestCorrect_HonorsContextDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	o := NewGeminiOracle(srv.URL, "key", "model", srv.Client())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := o.Correct(ctx, "text")
	assert.Error(t, err)
}

func TestExtractCorrectedText(t *testing.T) {
	tests := []struct {
		name     string
		answer   string
		original string
		want     string
	}{
		{
			name:   "clean json",
			answer: `{"corrected_text": "исправлено"}`,
			want:   "исправлено",
		},
		{
			name:   "json embedded in prose",
			answer: `Вот результат: {"corrected_text": "исправлено"} — готово.`,
			want:   "исправлено",
		},
		{
			name:   "prefix fallback",
			answer: `corrected_text: исправлено`,
			want:   "исправлено",
		},
		{
			name:   "russian prefix fallback",
			answer: `Ответ: исправлено`,
			want:   "исправлено",
		},
		{
			name:   "quoted raw text",
			answer: `"исправлено"`,
			want:   "исправлено",
		},
		{
			name:     "empty answer falls back to original",
			answer:   "",
			original: "оригинал",
			want:     "оригинал",
		},
		{
			name:     "braces only falls back to original",
			answer:   "{}",
			original: "оригинал",
			want:     "оригинал",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractCorrectedText(tt.answer, tt.original)
			assert.Equal(t, tt.want, got)
		})
	}
}
