package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flyright-service/internal/infrastructure/auth"
	"flyright-service/internal/infrastructure/config"
	"flyright-service/internal/infrastructure/oauth"
	"flyright-service/internal/infrastructure/persistence"
	"flyright-service/internal/infrastructure/ratelimit"
	"flyright-service/internal/interface/gmail"
	"flyright-service/internal/interface/httpapi"
	"flyright-service/internal/interface/provider"
	flyrightRepo "flyright-service/internal/interface/repository"
	"flyright-service/internal/usecase"
	"flyright-service/pkg/logger"
	"flyright-service/pkg/metrics"

	domainRepo "flyright-service/internal/domain/repository"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting FlyRight Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.NewMetrics("flyright")

	// Set up MongoDB connection for price histories
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// Carrier directory: PostgreSQL reference tables when configured,
	// in-code tables otherwise
	var directory domainRepo.CarrierDirectory
	if cfg.PostgresURI != "" {
		gormDB, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", "error", err)
		}

		gormDirectory := flyrightRepo.NewGormCarrierDirectory(gormDB)
		if err := gormDirectory.Load(ctx); err != nil {
			log.Fatal("Failed to load carrier directory", "error", err)
		}
		directory = gormDirectory
	} else {
		log.Info("No PostgreSQL DSN, using static carrier directory")
		directory = flyrightRepo.NewStaticCarrierDirectory()
	}

	// Set up repositories
	historyRepo := flyrightRepo.NewMongoPriceHistoryRepository(db)
	memberRepo := flyrightRepo.NewShopifyMemberRepository(cfg.ShopifyStore, cfg.ShopifyAccessToken, cfg.MemberTag, log)
	searchRepo := provider.NewSerpAPIClient(cfg.SerpAPIBaseURL, cfg.SerpAPIKey, cfg.SerpAPITimeout, m, log)

	// Core pipeline
	assembler := usecase.NewAssembler(directory, usecase.NewDurationProportionalAllocator(), log)
	classifier := usecase.NewComplianceClassifier(directory)
	ranker := usecase.NewRanker()
	tracker := usecase.NewPriceTracker(historyRepo, cfg.HistoryCapacity, cfg.AverageWindow)
	detector := usecase.NewDealDetector(cfg.DealThreshold)

	scanner := usecase.NewFareScanner(
		searchRepo, assembler, classifier, ranker, tracker, detector,
		nil, cfg.SearchDayOffset, cfg.ScanDelay, m, log,
	)

	searcher := usecase.NewLegSearcher(
		searchRepo, assembler, classifier, ranker,
		cfg.GatewayAirports, cfg.GatewayTopN, cfg.SearchDelay, log,
	)

	// Digest delivery through Gmail
	gmailOAuth := oauth.NewGmailOAuth(
		cfg.GmailClientID,
		cfg.GmailClientSecret,
		cfg.GmailRefreshToken,
		log,
	)
	tokenSource := gmailOAuth.GetTokenSource(ctx)

	sender, err := gmail.NewDigestSender(ctx, tokenSource, cfg.DealsFrom, cfg.DealsReplyTo, log)
	if err != nil {
		log.Fatal("Failed to create digest sender", "error", err)
	}
	orchestrator := usecase.NewDealDigestOrchestrator(memberRepo, sender, detector, m, log)

	// Start the scan cycle in a goroutine
	go func() {
		scanTicker := time.NewTicker(cfg.ScanInterval)
		defer scanTicker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info("Fare scanner stopped")
				return
			case <-scanTicker.C:
				report, err := scanner.Scan(ctx)
				if err != nil {
					log.Error("Scan cycle failed", "error", err)
					continue
				}
				if err := orchestrator.SendDeals(ctx, report.Deals); err != nil {
					log.Error("Failed to send deal digest", "error", err)
				}
			}
		}
	}()

	// Search rate limiter with background sweeper
	limiter := ratelimit.NewLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)
	go limiter.StartSweeper(ctx, 10*time.Minute)

	signer := auth.NewTokenSigner(cfg.SigningSecret, cfg.TokenTTL)

	// Set up HTTP server
	mux := http.NewServeMux()
	api := httpapi.NewHandler(memberRepo, signer, limiter, searcher, log)
	api.Register(mux)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
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

	cancel() // Cancel the context to stop all goroutines

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("FlyRight Service stopped")
}
