package main

import (
	"context"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boardingpass-service/internal/domain/entity"
	"boardingpass-service/internal/domain/repository"
	"boardingpass-service/internal/infrastructure/config"
	"boardingpass-service/internal/infrastructure/oauth"
	"boardingpass-service/internal/infrastructure/persistence"
	"boardingpass-service/internal/infrastructure/router"
	"boardingpass-service/internal/interface/artifact"
	"boardingpass-service/internal/interface/gmail"
	httpHandler "boardingpass-service/internal/interface/http"
	passRepo "boardingpass-service/internal/interface/repository"
	"boardingpass-service/internal/usecase"
	"boardingpass-service/pkg/logger"
	"boardingpass-service/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/api/option"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("Failed to load config", "error", err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting Boarding Pass Service", "version", cfg.AppVersion)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// Catalog comes from PostgreSQL when configured, otherwise the built-in one
	catalog, err := loadCatalog(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to load catalog", "error", err)
	}

	generator, err := usecase.NewFlightGenerator(*catalog, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	if err != nil {
		log.Fatal("Invalid catalog", "error", err)
	}

	// Set up mail transport
	mailRepo, err := newMailRepository(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to set up mail transport", "error", err)
	}

	// Set up repositories and use cases
	boardingPassRepo := passRepo.NewMongoBoardingPassRepository(db)
	artifactGenerator := artifact.NewGenerator(cfg.QRBaseURL)
	notifier := usecase.NewNotifier(mailRepo, usecase.DefaultSenderName, cfg.EmailUser)
	appMetrics := metrics.NewMetrics("boarding_pass", prometheus.DefaultRegisterer)

	issuer := usecase.NewBoardingPassIssuer(boardingPassRepo, artifactGenerator, notifier, generator, appMetrics, log)

	// Set up HTTP server
	gin.SetMode(gin.ReleaseMode)
	handler := httpHandler.NewBoardingPassHandler(issuer, log)

	server := &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      router.NewRouter(handler, log),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Boarding Pass Service stopped")
}

func loadCatalog(ctx context.Context, cfg *config.Config, log logger.Logger) (*entity.Catalog, error) {
	var catalogRepo repository.CatalogRepository
	if cfg.PostgresURI == "" {
		catalogRepo = passRepo.NewStaticCatalogRepository()
	} else {
		log.Info("Loading catalog from PostgreSQL")
		gormDB, err := persistence.NewPostgres(cfg.PostgresURI)
		if err != nil {
			return nil, err
		}

		defaults := passRepo.DefaultCatalog()
		codes := make([]string, 0, len(defaults.Airports))
		for _, a := range defaults.Airports {
			codes = append(codes, a.Code)
		}
		catalogRepo = passRepo.NewGormCatalogRepository(gormDB, codes, defaults.Home.Code)
	}

	catalog, err := catalogRepo.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	log.Info("Catalog loaded", "airlines", len(catalog.Airlines), "airports", len(catalog.Airports), "home", catalog.Home.Code)
	return catalog, nil
}

func newMailRepository(ctx context.Context, cfg *config.Config, log logger.Logger) (repository.MailRepository, error) {
	switch cfg.MailTransport {
	case config.TransportGmail:
		gmailOAuth := oauth.NewGmailOAuth(cfg.GmailClientID, cfg.GmailClientSecret, cfg.GmailRefreshToken, log)
		return gmail.NewGmailSender(ctx, log, option.WithTokenSource(gmailOAuth.GetTokenSource(ctx)))
	default:
		return passRepo.NewSMTPMailRepository(cfg.EmailHost, cfg.EmailPort, cfg.EmailUser, cfg.EmailPassword, log), nil
	}
}
