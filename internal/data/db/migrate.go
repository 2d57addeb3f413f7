package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/casebook/internal/domain/cases"
)

func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(&cases.Case{}); err != nil {
		return fmt.Errorf("automigrate cases: %w", err)
	}
	return EnsureCaseIndexes(db)
}

// EnsureCaseIndexes adds the composite index behind the filtered,
// newest-first listing. Both postgres and sqlite accept this syntax.
func EnsureCaseIndexes(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_cases_difficulty_created
		ON cases (difficulty, created_at DESC);
	`).Error; err != nil {
		return fmt.Errorf("create idx_cases_difficulty_created: %w", err)
	}
	return nil
}

func (s *Service) AutoMigrateAll() error {
	if s.log != nil {
		s.log.Info("Running auto migrations")
	}
	return AutoMigrateAll(s.db)
}
