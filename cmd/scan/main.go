package main

import (
	"context"
	"flag"
	"time"

	"flyright-service/internal/infrastructure/config"
	"flyright-service/internal/infrastructure/oauth"
	"flyright-service/internal/infrastructure/persistence"
	"flyright-service/internal/interface/gmail"
	"flyright-service/internal/interface/provider"
	flyrightRepo "flyright-service/internal/interface/repository"
	"flyright-service/internal/usecase"
	"flyright-service/pkg/logger"
	"flyright-service/pkg/metrics"

	domainRepo "flyright-service/internal/domain/repository"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Runs a single scan cycle and sends the digest, then exits. Meant for cron
// and for manual runs while tuning routes or thresholds.
func main() {
	dryRun := flag.Bool("dry-run", false, "scan without emailing the digest")
	flag.Parse()

	log := logger.NewLogger()
	log.Info("Starting one-shot fare scan", "dryRun", *dryRun)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Hour)
	defer cancel()

	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	defer mongoClient.Disconnect(context.Background())

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
		directory = flyrightRepo.NewStaticCarrierDirectory()
	}

	m := metrics.NewMetrics("flyright_scan")
	historyRepo := flyrightRepo.NewMongoPriceHistoryRepository(db)
	searchRepo := provider.NewSerpAPIClient(cfg.SerpAPIBaseURL, cfg.SerpAPIKey, cfg.SerpAPITimeout, m, log)

	assembler := usecase.NewAssembler(directory, usecase.NewDurationProportionalAllocator(), log)
	classifier := usecase.NewComplianceClassifier(directory)
	ranker := usecase.NewRanker()
	tracker := usecase.NewPriceTracker(historyRepo, cfg.HistoryCapacity, cfg.AverageWindow)
	detector := usecase.NewDealDetector(cfg.DealThreshold)

	scanner := usecase.NewFareScanner(
		searchRepo, assembler, classifier, ranker, tracker, detector,
		nil, cfg.SearchDayOffset, cfg.ScanDelay, m, log,
	)

	report, err := scanner.Scan(ctx)
	if err != nil {
		log.Fatal("Scan cycle failed", "error", err)
	}
	log.Info("Scan finished",
		"deals", len(report.Deals),
		"scanned", report.RoutesScanned,
		"skipped", report.SkippedQueries)

	if *dryRun {
		log.Info("Dry run, skipping digest delivery")
		return
	}

	memberRepo := flyrightRepo.NewShopifyMemberRepository(cfg.ShopifyStore, cfg.ShopifyAccessToken, cfg.MemberTag, log)

	gmailOAuth := oauth.NewGmailOAuth(cfg.GmailClientID, cfg.GmailClientSecret, cfg.GmailRefreshToken, log)
	sender, err := gmail.NewDigestSender(ctx, gmailOAuth.GetTokenSource(ctx), cfg.DealsFrom, cfg.DealsReplyTo, log)
	if err != nil {
		log.Fatal("Failed to create digest sender", "error", err)
	}

	orchestrator := usecase.NewDealDigestOrchestrator(memberRepo, sender, detector, m, log)
	if err := orchestrator.SendDeals(ctx, report.Deals); err != nil {
		log.Fatal("Failed to send deal digest", "error", err)
	}
}
