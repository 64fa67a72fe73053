package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"vidtube/internal/common"
	"vidtube/internal/config"
	"vidtube/internal/dbmongo"
	"vidtube/internal/di"
	"vidtube/internal/media"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info(".env file not found, using system env variables")
	}

	cfg := config.LoadConfig()
	setupLogging(cfg.Logging)
	logrus.Info("configuration loaded")

	mongoClient, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to the entity store")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := mongoClient.Close(ctx); err != nil {
			logrus.WithError(err).Warn("failed to close entity store connection")
		}
	}()
	logrus.Info("entity store connected")

	router := mux.NewRouter()
	router.Use(common.RequestLogger)

	delegate := buildDelegate(cfg, mongoClient, router)
	staging := media.NewStaging(cfg.Media.StagingDir)

	api := di.InitializeAPI(mongoClient, delegate, staging)
	logrus.Info("dependencies wired successfully")

	public := router.PathPrefix("/api/v1").Subrouter()
	protected := router.PathPrefix("/api/v1").Subrouter()
	protected.Use(common.AuthMiddleware)
	api.RegisterRoutes(public, protected)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logrus.WithField("addr", server.Addr).Info("vidtube listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logrus.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logrus.WithError(err).Warn("graceful shutdown failed")
	}
}

// buildDelegate picks the media backend. Hosted mode talks to the external
// media service; gridfs mode stores assets in the entity store and serves
// them from this process, so it also mounts the download route.
func buildDelegate(cfg *config.Config, mongoClient *dbmongo.MongoClient, router *mux.Router) media.Delegate {
	if cfg.Media.Mode == "hosted" {
		return media.NewHostedDelegate(cfg.Media)
	}

	baseURL := cfg.Media.BaseURL
	if baseURL == "" {
		baseURL = "http://" + cfg.Server.Host + ":" + cfg.Server.Port
	}
	media.NewHTTPServer(mongoClient).Register(router)
	return media.NewGridFSDelegate(mongoClient, baseURL)
}

func setupLogging(cfg config.LoggingConfig) {
	if level, err := logrus.ParseLevel(cfg.Level); err == nil {
		logrus.SetLevel(level)
	}
	if cfg.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
