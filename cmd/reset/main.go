// Command reset wipes one player's save and cooldowns from the configured backends.
//
//	go run ./cmd/reset -player "Ada"
package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"github.com/osse101/PortalQuest_Go/internal/bootstrap"
	"github.com/osse101/PortalQuest_Go/internal/config"
	"github.com/osse101/PortalQuest_Go/internal/domain"
	"github.com/osse101/PortalQuest_Go/internal/economy"
	"github.com/osse101/PortalQuest_Go/internal/save"
)

func main() {
	player := flag.String("player", "", "player name to reset")
	flag.Parse()

	name := strings.TrimSpace(*player)
	if name == "" {
		log.Fatal("-player is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	storage, err := bootstrap.OpenStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer storage.Close()

	saves := save.NewService(storage.Saves, economy.NewCatalog(), cfg.SaveKeyPrefix)
	if err := saves.Delete(ctx, name); err != nil {
		log.Fatalf("Failed to delete save: %v", err)
	}
	log.Printf("Deleted save %s", saves.Key(name))

	cooldowns, err := bootstrap.NewCooldowns(ctx, cfg, storage)
	if err != nil {
		log.Printf("Warning: cooldowns not reset: %v", err)
		return
	}
	defer cooldowns.Close()

	for _, action := range []string{domain.ActionArena, domain.ActionOracle} {
		if err := cooldowns.Service.ResetCooldown(ctx, saves.Key(name), action); err != nil {
			log.Printf("Warning: failed to reset %s cooldown: %v", action, err)
		}
	}
	log.Printf("Player %s reset.", name)
}
