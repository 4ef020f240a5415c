package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/KirkDiggler/tutortrack/internal/cli"
	"github.com/KirkDiggler/tutortrack/internal/common/clock"
	"github.com/KirkDiggler/tutortrack/internal/config"
	"github.com/KirkDiggler/tutortrack/internal/handlers/discord"
	"github.com/KirkDiggler/tutortrack/internal/repositories/rates"
	"github.com/KirkDiggler/tutortrack/internal/repositories/session"
	"github.com/KirkDiggler/tutortrack/internal/services/live"
	"github.com/KirkDiggler/tutortrack/internal/services/messaging"
	"github.com/KirkDiggler/tutortrack/internal/services/report"
	"github.com/KirkDiggler/tutortrack/internal/services/tracker"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load(os.Getenv("TUTORTRACK_CONFIG"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Failed to load timezone: %v", err)
	}
	clk := clock.New(loc)
	money := cfg.Money()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	sessionRepo, err := session.NewRedis(&session.Config{
		RedisClient: redisClient,
		Clock:       clk,
	})
	if err != nil {
		log.Fatalf("Failed to create session repository: %v", err)
	}

	defaultRates := cfg.Rates
	ratesRepo, err := rates.NewRedis(&rates.Config{
		RedisClient: redisClient,
		Defaults:    &defaultRates,
	})
	if err != nil {
		log.Fatalf("Failed to create rates repository: %v", err)
	}

	// Initialize services
	trackerSvc, err := tracker.New(&tracker.Config{
		SessionRepo: sessionRepo,
		RatesRepo:   ratesRepo,
		Clock:       clk,
	})
	if err != nil {
		log.Fatalf("Failed to create tracker service: %v", err)
	}

	reportSvc, err := report.New(&report.Config{
		Title:  cfg.Report.Title,
		Author: cfg.Report.Author,
		Money:  money,
	})
	if err != nil {
		log.Fatalf("Failed to create report service: %v", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		Money: money,
	})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	feed, err := live.New(&live.Config{
		RedisClient: redisClient,
		SessionRepo: sessionRepo,
		RatesRepo:   ratesRepo,
	})
	if err != nil {
		log.Fatalf("Failed to create live feed: %v", err)
	}

	app := &cli.App{
		Tracker:   trackerSvc,
		Report:    reportSvc,
		Messaging: messagingSvc,
		Feed:      feed,
		Clock:     clk,
		Money:     money,
		UserID:    cfg.UserID,
		NewBot: func() (cli.Runner, error) {
			bot, err := discord.New(&discord.Config{
				Token:            cfg.Discord.Token,
				ApplicationID:    cfg.Discord.ApplicationID,
				GuildID:          cfg.Discord.GuildID,
				TrackerService:   trackerSvc,
				ReportService:    reportSvc,
				MessagingService: messagingSvc,
				Money:            money,
			})
			if err != nil {
				return nil, err
			}
			return bot, nil
		},
	}

	if err := cli.NewRootCmd(app).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
