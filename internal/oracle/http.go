package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// HTTPConfig configures the generateContent endpoint
type HTTPConfig struct {
	BaseURL    string
	Model      string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

type httpGenerator struct {
	cfg HTTPConfig
}

// NewHTTPGenerator builds a Generator for a Gemini-style generateContent API
func NewHTTPGenerator(cfg HTTPConfig) Generator {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = DefaultModel
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &httpGenerator{cfg: cfg}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
	ResponseSchema   Schema `json:"responseSchema,omitempty"`
}

type generateRequest struct {
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	Contents          []content         `json:"contents"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

func (g *httpGenerator) endpoint() string {
	return fmt.Sprintf("%s/models/%s:generateContent", g.cfg.BaseURL, url.PathEscape(g.cfg.Model))
}

func (g *httpGenerator) Generate(ctx context.Context, req Request) (*Response, error) {
	body := generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: req.Content}}}},
	}
	if req.Instruction != "" {
		body.SystemInstruction = &content{Parts: []part{{Text: req.Instruction}}}
	}
	if req.Schema != nil {
		body.GenerationConfig = &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   req.Schema,
		}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgMarshalFmt, err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBuildRequestFmt, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	// The key travels only in a header and is never echoed in errors
	httpReq.Header.Set("x-goog-api-key", g.cfg.APIKey)

	res, err := g.cfg.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgRequestFailedFmt, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(res.Body, MaxErrorBodyBytes))
		msg := gjson.GetBytes(raw, PathErrorMessage).String()
		if msg == "" {
			msg = strings.TrimSpace(string(raw))
		}
		return nil, fmt.Errorf(ErrMsgStatusFmt, res.StatusCode, msg)
	}

	raw, err := io.ReadAll(io.LimitReader(res.Body, MaxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadBodyFmt, err)
	}
	if reason := gjson.GetBytes(raw, PathBlockReason).String(); reason != "" {
		return nil, fmt.Errorf(ErrMsgBlockedFmt, reason)
	}
	text := strings.TrimSpace(gjson.GetBytes(raw, PathCandidateText).String())
	if text == "" {
		return nil, errors.New(ErrMsgEmptyText)
	}
	return &Response{Text: text}, nil
}
