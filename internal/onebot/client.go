// Package onebot implements the message-delivery collaborator against a
// OneBot v11 HTTP API endpoint (the host bot framework's API server).
package onebot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/teheiw192/kcjqr/internal/domain/contract"
)

type Client struct {
	baseURL     string
	accessToken string
	client      *http.Client
	log         *zap.Logger
}

func NewClient(baseURL, accessToken string, log *zap.Logger) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		client:      &http.Client{Timeout: 15 * time.Second},
		log:         log,
	}
}

type sendPrivateRequest struct {
	UserID  int64  `json:"user_id"`
	Message string `json:"message"`
}

type apiResponse struct {
	Status  string `json:"status"`
	Retcode int    `json:"retcode"`
}

// SendPrivate delivers text to the user through the send_private_msg action.
func (c *Client) SendPrivate(ctx context.Context, userID string, text string) error {
	numericID, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid user id %q: %w", userID, err)
	}

	body, err := json.Marshal(sendPrivateRequest{UserID: numericID, Message: text})
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/send_private_msg", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call send_private_msg: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("send_private_msg returned status %d", resp.StatusCode)
	}

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("failed to decode send_private_msg response: %w", err)
	}

	if apiResp.Retcode != 0 {
		return fmt.Errorf("send_private_msg failed with retcode %d", apiResp.Retcode)
	}

	c.log.Debug("private message sent", zap.String("user_id", userID))
	return nil
}

// compile-time interface check
var _ contract.Messenger = (*Client)(nil)
