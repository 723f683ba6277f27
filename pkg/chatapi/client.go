// Package chatapi delivers outbound messages to the chat platform through
// its HTTP delivery endpoint.
package chatapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/retailops/shiftbot/pkg/config"
	"github.com/retailops/shiftbot/pkg/logger"
)

var (
	errDeliveryURLRequired = errors.New("chat delivery url is required")
	errLoggerRequired      = errors.New("chat logger is required")
)

// Button is one labeled inline button; Data is the opaque callback payload
// echoed back when the button is pressed.
type Button struct {
	Text string `json:"text"`
	Data string `json:"data"`
}

// Keyboard is a grid of inline buttons, one slice per row.
type Keyboard [][]Button

// Message is a single outbound delivery unit.
type Message struct {
	ChatID   int64    `json:"chat_id"`
	Text     string   `json:"text"`
	Keyboard Keyboard `json:"keyboard,omitempty"`
}

// Client posts messages to the configured delivery endpoint.
type Client struct {
	http        *http.Client
	deliveryURL string
	logger      *logger.Logger
}

// NewClient validates the chat configuration and returns a delivery client.
func NewClient(ctx context.Context, cfg config.ChatConfig, logg *logger.Logger) (*Client, error) {
	if logg == nil {
		return nil, errLoggerRequired
	}
	deliveryURL := strings.TrimSpace(cfg.DeliveryURL)
	if deliveryURL == "" {
		return nil, errDeliveryURLRequired
	}

	c := &Client{
		http:        &http.Client{Timeout: 10 * time.Second},
		deliveryURL: deliveryURL,
		logger:      logg,
	}

	logg.Info(ctx, "chat delivery client initialized")
	return c, nil
}

// Send posts one message. The caller is responsible for keeping Text within
// the transport limit; Send does not split.
func (c *Client) Send(ctx context.Context, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.deliveryURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build delivery request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("deliver message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("delivery endpoint returned %d", resp.StatusCode)
	}
	return nil
}
