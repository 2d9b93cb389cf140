package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"waitwise/internal/shared/config"
	"waitwise/internal/shared/constants"
	"waitwise/internal/shared/database"
	"waitwise/pkg/cache"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// SeedConfig points the seeder at a running API
type SeedConfig struct {
	BaseURL       string        `envconfig:"SEED_BASE_URL" default:"http://localhost:8080/v1"`
	APIKey        string        `envconfig:"SEED_API_KEY" default:"demo-api-key"`
	GuestsPerList int           `envconfig:"SEED_GUESTS_PER_EVENT" default:"8"`
	Timeout       time.Duration `envconfig:"SEED_TIMEOUT" default:"10s"`
}

func main() {
	fmt.Println("🌱 Starting Waitwise demo seeder...")

	_ = godotenv.Load()

	var seedCfg SeedConfig
	if err := envconfig.Process("", &seedCfg); err != nil {
		log.Fatalf("Invalid seeder configuration: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	seeder := NewSeeder(&http.Client{Timeout: seedCfg.Timeout}, seedCfg.BaseURL, seedCfg.APIKey)

	fmt.Println("\n🌱 Seeding events and guests...")
	summary, err := seeder.SeedAll(ctx, seedCfg.GuestsPerList)
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}
	for _, ev := range summary.Events {
		fmt.Printf("  ✅ %s (%s): %d guests, %d notified\n", ev.Name, ev.ID, ev.Joined, ev.Promoted)
	}

	// Drop cached dashboards so staff see the new queues right away
	if cfg.Redis.Enabled {
		db, err := database.InitDB(cfg)
		if err != nil {
			log.Printf("Warning: Redis unavailable, dashboards refresh on TTL: %v", err)
		} else {
			defer db.Close()
			if err := cache.NewService(db.GetRedisClient()).DeletePattern(ctx, constants.PATTERN_INVALIDATE_DASHBOARD_ALL); err != nil {
				log.Printf("Warning: Failed to clear dashboard cache: %v", err)
			}
		}
	}

	fmt.Println("\n🎉 Seeding completed! Queues are ready for testing.")
}
