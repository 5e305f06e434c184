package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/amaumene/sheetsignup/internal/domain"
	log "github.com/sirupsen/logrus"
)

const (
	contentTypeJSON = "application/json"
	maxDrainBytes   = 64 << 10
)

type SheetClient struct {
	url        string
	httpClient *http.Client
}

func NewSheetClient(url string, timeout time.Duration) *SheetClient {
	return NewSheetClientWithHTTP(url, &http.Client{Timeout: timeout})
}

func NewSheetClientWithHTTP(url string, httpClient *http.Client) *SheetClient {
	return &SheetClient{
		url:        url,
		httpClient: httpClient,
	}
}

// Forward posts payload as JSON. Any completed exchange is treated as
// delivered; only transport failures return an error.
func (c *SheetClient) Forward(ctx context.Context, payload domain.ForwardPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshalling payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", contentTypeJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("posting to sheet: %w", err)
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.WithFields(log.Fields{
			"component": "sheet",
			"status":    resp.StatusCode,
		}).Warn("forward endpoint returned non-2xx status")
	}
	return nil
}
