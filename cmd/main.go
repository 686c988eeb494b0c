package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/auth"
	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/config"
	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/handlers"
	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/middleware"
	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/notify"
	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/storage"
	"github.com/Azevedo05/Vehicle-Maintenance-App-sub001/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	gw, err := openGateway(cfg)
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}
	defer gw.Close(context.Background())

	st := store.New(gw)
	if err := st.Load(context.Background()); err != nil {
		log.Fatalf("failed to load store: %v", err)
	}

	authService, err := auth.NewService(cfg.JWTSecret, cfg.JWTExpiry, cfg.APIUsername, cfg.APIPassword)
	if err != nil {
		log.Fatalf("failed to create auth service: %v", err)
	}

	engine := notify.NewEngine(st, buildPublisher(cfg))
	if err := engine.Start(cfg.ReminderTime); err != nil {
		log.Fatalf("failed to start reminder engine: %v", err)
	}
	defer engine.Stop()

	mux := http.NewServeMux()
	handlers.NewAPI(st, authService).Routes(mux)

	authMiddleware := middleware.NewAuthMiddleware(authService)
	rateLimiter := middleware.NewRateLimitMiddleware()
	handler := rateLimiter.RateLimit(300, 60)(authMiddleware.Authenticate(mux))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("shutdown error")
	}
}

func openGateway(cfg config.Config) (storage.Gateway, error) {
	switch cfg.StorageBackend {
	case "mongo":
		client, err := storage.ConnectMongo()
		if err != nil {
			return nil, err
		}
		log.Info("connected to MongoDB")
		return storage.NewMongoGateway(client, cfg.MongoDB), nil
	case "memory":
		log.Warn("using in-memory storage: data will not survive a restart")
		return storage.NewMemoryGateway(), nil
	default:
		return storage.NewFileGateway(cfg.DataDir)
	}
}

func buildPublisher(cfg config.Config) notify.Publisher {
	if cfg.MQTTBroker == "" {
		return notify.LogPublisher{}
	}
	pub, err := notify.NewMQTTPublisher(cfg.MQTTBroker, "garage-server", cfg.MQTTTopic)
	if err != nil {
		log.WithError(err).Warn("MQTT broker unreachable, falling back to log notices")
		return notify.LogPublisher{}
	}
	log.WithField("topic", cfg.MQTTTopic).Info("publishing reminders over MQTT")
	return pub
}
