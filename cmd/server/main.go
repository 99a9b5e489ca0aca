// @title           Photo Portfolio Backend API
// @version         1.0.0
// @description     Folders and photos backed by an object store and a SQL database, with reindexing, location enrichment and semantic search.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"net/url"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"k8s.io/klog/v2"
	"photo-portfolio-backend/docs"
	"photo-portfolio-backend/internal/bootstrap"
	"photo-portfolio-backend/internal/config"
	"photo-portfolio-backend/internal/database"
	"photo-portfolio-backend/internal/handlers"
	"photo-portfolio-backend/internal/middleware"
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

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
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

	var queue handlers.TaskQueue
	rdb, err := bootstrap.Redis(ctx, cfg)
	if err != nil {
		klog.Warningf("Background tasks disabled: %v", err)
	} else if rdb != nil {
		defer rdb.Close()
		queue = tasks.NewEnqueuer(asynq.NewClientFromRedisClient(rdb), tasks.NewRedisStateStore(rdb), cfg.TaskQueue)
	}

	reconcile := services.NewReconcileService(repo, store, cfg.StoragePrefix)
	enrich := services.NewEnrichmentService(repo, store, clients.Geocoder, clients.Landmarks)
	search := services.NewSearchService(repo, clients.Embedder)
	photos := services.NewPhotoService(repo, store, cfg.StoragePrefix)
	uploads := services.NewUploadService(repo, store, services.UploadOptions{
		Prefix:            cfg.StoragePrefix,
		MaxSize:           cfg.MaxUploadSize,
		AllowedExtensions: cfg.AllowedExtensions,
	})

	healthHandler := handlers.NewHealthHandler(repo, store, map[string]bool{
		"geocoder":  clients.Geocoder != nil,
		"landmarks": clients.Landmarks != nil,
		"embedding": clients.Embedder != nil,
		"tasks":     queue != nil,
	})
	foldersHandler := handlers.NewFoldersHandler(repo, photos)
	photosHandler := handlers.NewPhotosHandler(repo, photos, search)
	uploadHandler := handlers.NewUploadHandler(uploads, cfg.MaxUploadRequestSize)
	maintenanceHandler := handlers.NewMaintenanceHandler(reconcile, enrich, queue, cfg.ReindexCleanupOrphans)

	router := gin.Default()
	router.MaxMultipartMemory = 32 << 20
	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	auth := middleware.AuthMiddleware(cfg.JWTSecret)

	api.GET("/health", healthHandler.Health)

	api.GET("/folders", foldersHandler.ListFolders)
	api.GET("/folders/:name", foldersHandler.GetFolder)
	api.POST("/folders", auth, foldersHandler.CreateFolder)
	api.PUT("/folders/:name", auth, foldersHandler.UpdateFolder)
	api.DELETE("/folder/:name", auth, foldersHandler.DeleteFolder)
	api.GET("/folder/:name/:filename", foldersHandler.GetFolderPhoto)
	api.DELETE("/folder/:name/:filename", auth, foldersHandler.DeleteFolderPhoto)

	api.GET("/photos", photosHandler.ListPhotos)
	api.GET("/photos/search", photosHandler.SearchPhotos)
	api.GET("/photos/semantic-search", photosHandler.SemanticSearch)
	api.GET("/photos/:id", photosHandler.GetPhoto)
	api.POST("/photos", auth, photosHandler.CreatePhoto)
	api.PUT("/photos/:id", auth, photosHandler.UpdatePhoto)
	api.DELETE("/photos/:id", auth, photosHandler.DeletePhoto)

	api.POST("/upload", auth, uploadHandler.Upload)

	api.POST("/reindex-gcs", auth, maintenanceHandler.Reindex)
	api.POST("/reindex", auth, maintenanceHandler.Reindex)
	api.POST("/annotate-locations", auth, maintenanceHandler.AnnotateLocations)
	api.GET("/tasks/:task_id", maintenanceHandler.TaskStatus)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		klog.Infof("Server starting on port %s (storage=%s, database=%s)", cfg.Port, cfg.StorageBackend, cfg.DatabaseDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			klog.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	klog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		klog.Errorf("Server shutdown failed: %v", err)
	}
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, "Authorization")
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
