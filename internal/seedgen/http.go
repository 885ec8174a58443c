package seedgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/okian/gelora/pkg/logger"
)

// HTTPClient wraps http.Client with a request timeout
type HTTPClient struct {
	client  *http.Client
	baseURL string
}

// newHTTPClient creates a new HTTP client with timeout
func newHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

type batchPayload struct {
	BatchID   string          `json:"batch_id"`
	Column    string          `json:"column"`
	ScrapedAt string          `json:"scraped_at"`
	Records   []recordPayload `json:"records"`
}

type recordPayload struct {
	PlayerName string `json:"player_name"`
	Team       string `json:"team"`
	Value      string `json:"value"`
}

// submitBatches posts one batch per column to the running service.
func submitBatches(ctx context.Context, client *HTTPClient, league *League, columns []string, stats *Stats) error {
	for _, column := range columns {
		records := league.Records[column]
		if len(records) == 0 {
			continue
		}

		payload := batchPayload{
			BatchID:   uuid.NewString(),
			Column:    column,
			ScrapedAt: time.Now().UTC().Format(time.RFC3339),
			Records:   make([]recordPayload, 0, len(records)),
		}
		for _, rec := range records {
			payload.Records = append(payload.Records, recordPayload{
				PlayerName: rec.PlayerName,
				Team:       rec.Team,
				Value:      rec.Value,
			})
		}

		body, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal batch: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, client.baseURL+"/batches", bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		stats.BatchesSubmitted++
		resp, err := client.client.Do(req)
		if err != nil {
			stats.BatchesFailed++
			logger.Get().Warn(ctx, "batch submission failed", logger.String("column", column), logger.Error(err))
			continue
		}

		var ack AckResponse
		_ = json.NewDecoder(resp.Body).Decode(&ack)
		_ = resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusAccepted:
			stats.BatchesSuccessful++
		case resp.StatusCode == http.StatusOK && ack.Duplicate:
			stats.BatchesDuplicate++
		default:
			stats.BatchesFailed++
			logger.Get().Warn(ctx, "batch rejected",
				logger.String("column", column),
				logger.Int("status", resp.StatusCode),
			)
		}
	}
	return nil
}
