package app

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/casebook/internal/platform/logger"
	"github.com/yungbote/casebook/internal/services"
)

type Services struct {
	Case services.CaseService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Case: services.NewCaseService(db, log, reposet.Case, services.SubmissionPolicy{
			AttachmentRequired: cfg.AttachmentRequired,
		}),
	}
}

// seed applies cfg.SeedFile to an empty store.
func seed(ctx context.Context, log *logger.Logger, cfg Config, svc services.CaseService) error {
	if cfg.SeedFile == "" {
		return nil
	}
	created, err := services.SeedIfEmpty(ctx, svc, cfg.SeedFile)
	if err != nil {
		return fmt.Errorf("seed %s: %w", cfg.SeedFile, err)
	}
	if created == nil {
		log.Info("Seed skipped, store is not empty", "seed_file", cfg.SeedFile)
		return nil
	}
	log.Info("Seeded cases", "seed_file", cfg.SeedFile, "count", len(created))
	return nil
}
