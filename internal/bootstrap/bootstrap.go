// Package bootstrap builds the clients shared by the server and worker
// commands from configuration.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"k8s.io/klog/v2"
	"photo-portfolio-backend/internal/config"
	"photo-portfolio-backend/internal/embedding"
	"photo-portfolio-backend/internal/geo"
	"photo-portfolio-backend/internal/objectstore"
	"photo-portfolio-backend/internal/services"
	"photo-portfolio-backend/internal/supabase"
	"photo-portfolio-backend/internal/vision"
)

// ObjectStore returns the configured storage backend. MinIO buckets are
// created when missing.
func ObjectStore(ctx context.Context, cfg *config.Config) (objectstore.Store, error) {
	switch cfg.StorageBackend {
	case config.BackendSupabase:
		client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey)
		if err != nil {
			return nil, err
		}
		return client.Bucket(cfg.StorageBucket), nil
	case config.BackendMinio:
		store, err := objectstore.NewMinioStore(objectstore.MinioOptions{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			UseSSL:    cfg.MinioUseSSL,
			Bucket:    cfg.StorageBucket,
			PublicURL: cfg.MinioPublicURL,
		})
		if err != nil {
			return nil, err
		}
		if err := store.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.StorageBackend)
	}
}

// Clients holds the optional enrichment and search clients. A nil field
// means the feature is not configured.
type Clients struct {
	Geocoder  services.Geocoder
	Landmarks services.LandmarkDetector
	Embedder  services.Embedder

	closers []func() error
}

// NewClients constructs every optional client whose settings are present.
// A client that fails to start is logged and left disabled.
func NewClients(ctx context.Context, cfg *config.Config) *Clients {
	c := &Clients{}

	if cfg.GeocoderURL != "" {
		c.Geocoder = geo.NewGeocoder(cfg.GeocoderURL, cfg.GeocoderUserAgent)
	}

	if cfg.GCPProjectID != "" {
		detector, err := vision.NewLandmarkDetector(ctx, cfg.GCPProjectID, cfg.GCPLocation, cfg.VisionModel)
		if err != nil {
			klog.Warningf("Landmark detection disabled: %v", err)
		} else {
			c.Landmarks = detector
			c.closers = append(c.closers, detector.Close)
		}
	}

	if cfg.EmbeddingAPIURL != "" {
		c.Embedder = embedding.NewClient(cfg.EmbeddingAPIURL, cfg.EmbeddingAPIKey, cfg.EmbeddingModel)
	}

	klog.Infof("Optional clients: geocoder=%t landmarks=%t embedding=%t",
		c.Geocoder != nil, c.Landmarks != nil, c.Embedder != nil)
	return c
}

func (c *Clients) Close() {
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			klog.Warningf("Failed to close client: %v", err)
		}
	}
}

// Redis connects to the task broker, or returns nil when REDIS_ADDR is unset.
func Redis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return rdb, nil
}
