// Command annotate drives the annotate-locations endpoint until every photo
// has a location tag.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"k8s.io/klog/v2"
)

func main() {
	_ = godotenv.Load()

	klog.InitFlags(nil)
	endpoint := flag.String("url", envOr("ANNOTATE_URL", "http://localhost:8080/api/annotate-locations"), "annotate-locations endpoint")
	token := flag.String("token", os.Getenv("ANNOTATE_TOKEN"), "bearer token for the API")
	batchSize := flag.Int("batch-size", 10, "photos per batch (1-100)")
	interval := flag.Duration("interval", time.Minute, "pause between batches")
	maxBatches := flag.Int("max-batches", 0, "stop after this many batches (0 means no limit)")
	flag.Parse()
	defer klog.Flush()

	if *batchSize < 1 || *batchSize > 100 {
		klog.Fatalf("batch-size must be between 1 and 100, got %d", *batchSize)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	d := &driver{
		endpoint:   *endpoint,
		token:      *token,
		batchSize:  *batchSize,
		interval:   *interval,
		maxBatches: *maxBatches,
		httpClient: &http.Client{Timeout: 10 * time.Minute},
	}
	summary, err := d.run(ctx)
	if err != nil {
		klog.Errorf("Annotation stopped after %d batches: %v", summary.Batches, err)
		klog.Flush()
		os.Exit(1)
	}
	klog.Infof("Done: %d batches, %d photos tagged, %d still untagged", summary.Batches, summary.Updated, summary.Remaining)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
