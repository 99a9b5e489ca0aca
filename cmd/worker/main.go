package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"k8s.io/klog/v2"
	"photo-portfolio-backend/internal/bootstrap"
	"photo-portfolio-backend/internal/config"
	"photo-portfolio-backend/internal/database"
	"photo-portfolio-backend/internal/services"
	"photo-portfolio-backend/internal/tasks"
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	cfg, err := config.Load()
	if err != nil {
		klog.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.RedisAddr == "" {
		klog.Fatal("REDIS_ADDR is required for the worker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg)
	if err != nil {
		klog.Fatalf("Failed to open database: %v", err)
	}
	repo := database.NewClient(db)
	defer repo.Close()

	store, err := bootstrap.ObjectStore(ctx, cfg)
	if err != nil {
		klog.Fatalf("Failed to initialize object store: %v", err)
	}

	clients := bootstrap.NewClients(ctx, cfg)
	defer clients.Close()

	rdb, err := bootstrap.Redis(ctx, cfg)
	if err != nil {
		klog.Fatalf("Failed to connect to redis: %v", err)
	}
	defer rdb.Close()

	var annotator tasks.Annotator
	enrich := services.NewEnrichmentService(repo, store, clients.Geocoder, clients.Landmarks)
	if enrich.Available() {
		annotator = enrich
	} else {
		klog.Warning("No location source configured; annotate tasks will fail")
	}

	processor := tasks.NewProcessor(
		services.NewReconcileService(repo, store, cfg.StoragePrefix),
		annotator,
		tasks.NewRedisStateStore(rdb),
	)

	srv := asynq.NewServerFromRedisClient(rdb, asynq.Config{
		Concurrency: cfg.WorkerConcurrency,
		Queues:      map[string]int{cfg.TaskQueue: 1},
	})

	mux := asynq.NewServeMux()
	processor.Register(mux)

	if err := srv.Start(mux); err != nil {
		klog.Fatalf("Failed to start worker: %v", err)
	}
	klog.Infof("Worker started (queue=%s, concurrency=%d)", cfg.TaskQueue, cfg.WorkerConcurrency)

	<-ctx.Done()
	klog.Info("Shutting down worker")
	srv.Shutdown()
}
