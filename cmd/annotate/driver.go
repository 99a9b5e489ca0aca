package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"k8s.io/klog/v2"
	"photo-portfolio-backend/internal/models"
)

// driver calls the annotate-locations endpoint batch after batch until no
// untagged photos remain or a full pass makes no progress.
type driver struct {
	endpoint   string
	token      string
	batchSize  int
	interval   time.Duration
	maxBatches int
	httpClient *http.Client
}

type runSummary struct {
	Batches   int
	Updated   int
	Remaining int64
}

func (d *driver) run(ctx context.Context) (*runSummary, error) {
	summary := &runSummary{}
	offset := 0
	var total int64 = -1
	passUpdated := 0

	for {
		if d.maxBatches > 0 && summary.Batches >= d.maxBatches {
			klog.Infof("Stopping after %d batches", summary.Batches)
			return summary, nil
		}

		result, err := d.batch(ctx, offset)
		if err != nil {
			return summary, err
		}
		summary.Batches++
		summary.Updated += result.UpdatedThisBatch
		summary.Remaining = result.RemainingUntagged
		passUpdated += result.UpdatedThisBatch

		klog.Infof("Batch offset %d: updated %d, remaining %d", offset, result.UpdatedThisBatch, result.RemainingUntagged)

		if total < 0 {
			total = result.TotalUntagged
		}
		if result.RemainingUntagged == 0 {
			klog.Info("All photos have been annotated")
			return summary, nil
		}

		offset += d.batchSize
		if int64(offset) >= total {
			if passUpdated == 0 {
				klog.Infof("A full pass tagged nothing; %d photos stay untagged", result.RemainingUntagged)
				return summary, nil
			}
			// Start over to catch photos that were skipped or added meanwhile.
			offset = 0
			total = result.RemainingUntagged
			passUpdated = 0
		}

		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		case <-time.After(d.interval):
		}
	}
}

func (d *driver) batch(ctx context.Context, offset int) (*models.AnnotateResult, error) {
	u, err := url.Parse(d.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %w", err)
	}
	q := u.Query()
	q.Set("batch_size", strconv.Itoa(d.batchSize))
	q.Set("offset", strconv.Itoa(offset))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if d.token != "" {
		req.Header.Set("Authorization", "Bearer "+d.token)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("annotate request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("annotate request failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result models.AnnotateResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}
