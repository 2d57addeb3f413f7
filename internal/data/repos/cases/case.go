package cases

import (
	"context"
	"math/rand/v2"
	"time"

	"gorm.io/gorm"

	types "github.com/yungbote/casebook/internal/domain/cases"
	"github.com/yungbote/casebook/internal/platform/logger"
)

type CaseRepo interface {
	Create(ctx context.Context, tx *gorm.DB, c *types.Case) (*types.Case, error)
	List(ctx context.Context, tx *gorm.DB, difficulty *string) ([]*types.Case, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.Case, error)
	Random(ctx context.Context, tx *gorm.DB, difficulty *string) (*types.Case, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
}

type caseRepo struct {
	db   *gorm.DB
	log  *logger.Logger
	intn func(n int) int
}

func NewCaseRepo(db *gorm.DB, baseLog *logger.Logger) CaseRepo {
	repoLog := baseLog.With("repo", "CaseRepo")
	return &caseRepo{db: db, log: repoLog, intn: rand.IntN}
}

func (r *caseRepo) Create(ctx context.Context, tx *gorm.DB, c *types.Case) (*types.Case, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	if err := transaction.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *caseRepo) List(ctx context.Context, tx *gorm.DB, difficulty *string) ([]*types.Case, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	results := []*types.Case{}
	if err := filtered(transaction.WithContext(ctx), difficulty).
		Order("created_at DESC").
		Order("id DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetByID returns gorm.ErrRecordNotFound when no case has the id.
func (r *caseRepo) GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.Case, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Case
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// Random returns one matching case with uniform probability, or nil when
// nothing matches.
func (r *caseRepo) Random(ctx context.Context, tx *gorm.DB, difficulty *string) (*types.Case, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	switch transaction.Dialector.Name() {
	case "postgres", "sqlite":
		return r.randomNative(ctx, transaction, difficulty)
	default:
		return r.randomByIndex(ctx, transaction, difficulty)
	}
}

func (r *caseRepo) randomNative(ctx context.Context, transaction *gorm.DB, difficulty *string) (*types.Case, error) {
	var results []*types.Case
	if err := filtered(transaction.WithContext(ctx), difficulty).
		Order("RANDOM()").
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

// randomByIndex is the portable path: load the matching ids, draw one index,
// fetch that row.
func (r *caseRepo) randomByIndex(ctx context.Context, transaction *gorm.DB, difficulty *string) (*types.Case, error) {
	var ids []int64
	if err := filtered(transaction.WithContext(ctx).Model(&types.Case{}), difficulty).
		Order("id").
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	picked := ids[r.intn(len(ids))]
	var results []*types.Case
	if err := transaction.WithContext(ctx).
		Where("id = ?", picked).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		r.log.Warn("Random: picked case vanished before fetch", "case_id", picked)
		return nil, nil
	}
	return results[0], nil
}

func (r *caseRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var n int64
	if err := transaction.WithContext(ctx).Model(&types.Case{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func filtered(q *gorm.DB, difficulty *string) *gorm.DB {
	if difficulty != nil {
		return q.Where("difficulty = ?", *difficulty)
	}
	return q
}
