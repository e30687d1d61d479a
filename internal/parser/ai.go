package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/teheiw192/kcjqr/internal/domain/entity"
)

// AIParser delegates free-text parsing to an external HTTP service that
// returns the same structured course document as the line grammar. It is an
// opaque collaborator: any non-2xx response or malformed body is an error.
type AIParser struct {
	url    string
	token  string
	client *http.Client
	log    *zap.Logger
}

func NewAIParser(url, token string, log *zap.Logger) *AIParser {
	return &AIParser{
		url:    url,
		token:  token,
		client: &http.Client{Timeout: 30 * time.Second},
		log:    log,
	}
}

type aiRequest struct {
	Text string `json:"text"`
}

type aiResponse struct {
	BasicInfo entity.BasicInfo `json:"basic_info"`
	Courses   []entity.Course  `json:"courses"`
}

func (p *AIParser) Parse(ctx context.Context, text string) (*entity.Schedule, error) {
	body, err := json.Marshal(aiRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to encode parse request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build parse request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call parsing service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("parsing service returned status %d", resp.StatusCode)
	}

	var parsed aiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode parsing service response: %w", err)
	}

	if len(parsed.Courses) == 0 {
		return nil, ErrUnrecognized
	}

	return &entity.Schedule{
		BasicInfo: parsed.BasicInfo,
		Courses:   parsed.Courses,
	}, nil
}
