package testutil

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	types "github.com/yungbote/casebook/internal/domain/cases"
)

func SeedCase(tb testing.TB, ctx context.Context, tx *gorm.DB, difficulty string, createdAt time.Time) *types.Case {
	tb.Helper()
	c := &types.Case{
		Description: "describe the system",
		Difficulty:  difficulty,
		CreatedAt:   createdAt.UTC(),
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed case: %v", err)
	}
	return c
}

func PtrString(v string) *string { return &v }
