package oracle

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestHTTPGenerator_Generate(t *testing.T) {
	t.Run("sends instruction content and schema", func(t *testing.T) {
		// ARRANGE
		var gotPath, gotKey string
		var gotBody []byte
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotKey = r.Header.Get("x-goog-api-key")
			gotBody, _ = io.ReadAll(r.Body)
			_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  hello traveler  "}]}}]}`))
		}))
		defer srv.Close()

		gen := NewHTTPGenerator(HTTPConfig{BaseURL: srv.URL + "/", Model: "test-model", APIKey: "secret"})

		// ACT
		res, err := gen.Generate(context.Background(), Request{
			Instruction: "be brief",
			Content:     "hi",
			Schema:      Schema{"type": "object"},
		})

		// ASSERT
		require.NoError(t, err)
		assert.Equal(t, "hello traveler", res.Text)
		assert.Equal(t, "/models/test-model:generateContent", gotPath)
		assert.Equal(t, "secret", gotKey)
		assert.Equal(t, "be brief", gjson.GetBytes(gotBody, "systemInstruction.parts.0.text").String())
		assert.Equal(t, "hi", gjson.GetBytes(gotBody, "contents.0.parts.0.text").String())
		assert.Equal(t, "application/json", gjson.GetBytes(gotBody, "generationConfig.responseMimeType").String())
	})

	t.Run("omits generation config without schema", func(t *testing.T) {
		var gotBody []byte
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotBody, _ = io.ReadAll(r.Body)
			_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
		}))
		defer srv.Close()

		_, err := NewHTTPGenerator(HTTPConfig{BaseURL: srv.URL}).Generate(context.Background(), Request{Content: "x"})

		require.NoError(t, err)
		assert.False(t, gjson.GetBytes(gotBody, "generationConfig").Exists())
		assert.False(t, gjson.GetBytes(gotBody, "systemInstruction").Exists())
	})

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"error status uses provider message", http.StatusTooManyRequests, `{"error":{"message":"quota exceeded"}}`, "quota exceeded"},
		{"error status with plain body", http.StatusBadGateway, "upstream down", "upstream down"},
		{"blocked prompt", http.StatusOK, `{"promptFeedback":{"blockReason":"SAFETY"}}`, "SAFETY"},
		{"empty candidates", http.StatusOK, `{"candidates":[]}`, ErrMsgEmptyText},
		{"blank text", http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"   "}]}}]}`, ErrMsgEmptyText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			res, err := NewHTTPGenerator(HTTPConfig{BaseURL: srv.URL, APIKey: "secret"}).
				Generate(context.Background(), Request{Content: "x"})

			require.Error(t, err)
			assert.Nil(t, res)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.NotContains(t, err.Error(), "secret")
		})
	}

	t.Run("cancelled context fails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := NewHTTPGenerator(HTTPConfig{BaseURL: srv.URL}).Generate(ctx, Request{Content: "x"})

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestDisabledGenerator(t *testing.T) {
	res, err := NewDisabledGenerator().Generate(context.Background(), Request{Content: "x"})

	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrDisabled)
}
