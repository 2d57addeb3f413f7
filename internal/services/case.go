package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/casebook/internal/data/repos"
	types "github.com/yungbote/casebook/internal/domain/cases"
	"github.com/yungbote/casebook/internal/platform/apierr"
	"github.com/yungbote/casebook/internal/platform/logger"
)

var (
	ErrCaseNotFound       = errors.New("case not found")
	ErrAttachmentNotFound = errors.New("case has no diagram attached")
	ErrNoMatchingCase     = errors.New("no case matches the given criteria")
)

const (
	CodeCaseNotFound       = "case_not_found"
	CodeAttachmentNotFound = "attachment_not_found"
	CodeNoMatchingCase     = "no_matching_case"
)

const DiagramContentType = "application/json"

// Diagram is a stored attachment ready to be served as a file.
type Diagram struct {
	Case        *types.Case
	Filename    string
	ContentType string
	Content     string
}

type CaseService interface {
	Submit(ctx context.Context, sub CaseSubmission) (*types.Case, error)
	List(ctx context.Context, difficulty string) ([]*types.Case, error)
	Get(ctx context.Context, id int64) (*types.Case, error)
	// Random returns ErrNoMatchingCase only when a difficulty was given; an
	// unfiltered pick over an empty store is (nil, nil).
	Random(ctx context.Context, difficulty string) (*types.Case, error)
	Diagram(ctx context.Context, id int64) (*Diagram, error)
	Count(ctx context.Context) (int64, error)
	SubmitAll(ctx context.Context, subs []CaseSubmission) ([]*types.Case, error)
}

type caseService struct {
	db       *gorm.DB
	log      *logger.Logger
	caseRepo repos.CaseRepo
	policy   SubmissionPolicy
}

func NewCaseService(db *gorm.DB, baseLog *logger.Logger, caseRepo repos.CaseRepo, policy SubmissionPolicy) CaseService {
	return &caseService{
		db:       db,
		log:      baseLog.With("service", "CaseService"),
		caseRepo: caseRepo,
		policy:   policy,
	}
}

func (s *caseService) Submit(ctx context.Context, sub CaseSubmission) (*types.Case, error) {
	c, err := s.policy.Validate(sub)
	if err != nil {
		s.log.Debug("Submit: rejected", "code", apierr.As(err).Code)
		return nil, err
	}
	created, err := s.caseRepo.Create(ctx, nil, c)
	if err != nil {
		s.log.Error("Submit: create failed", "error", err)
		return nil, fmt.Errorf("create case: %w", err)
	}
	s.log.Info("Case created", "case_id", created.ID, "difficulty", created.Difficulty, "has_diagram", created.HasDiagram())
	return created, nil
}

// SubmitAll validates every submission before writing any, then creates
// them in one transaction.
func (s *caseService) SubmitAll(ctx context.Context, subs []CaseSubmission) ([]*types.Case, error) {
	valid := make([]*types.Case, 0, len(subs))
	for i, sub := range subs {
		c, err := s.policy.Validate(sub)
		if err != nil {
			return nil, fmt.Errorf("case #%d: %w", i+1, err)
		}
		valid = append(valid, c)
	}
	if len(valid) == 0 {
		return valid, nil
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range valid {
			if _, err := s.caseRepo.Create(ctx, tx, c); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.Error("SubmitAll: transaction failed", "error", err, "count", len(valid))
		return nil, fmt.Errorf("create cases: %w", err)
	}
	s.log.Info("Cases created", "count", len(valid))
	return valid, nil
}

func (s *caseService) List(ctx context.Context, difficulty string) ([]*types.Case, error) {
	rows, err := s.caseRepo.List(ctx, nil, filterOf(difficulty))
	if err != nil {
		s.log.Error("List: load cases failed", "error", err, "difficulty", difficulty)
		return nil, fmt.Errorf("list cases: %w", err)
	}
	return rows, nil
}

func (s *caseService) Get(ctx context.Context, id int64) (*types.Case, error) {
	c, err := s.caseRepo.GetByID(ctx, nil, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierr.NotFound(CodeCaseNotFound, ErrCaseNotFound)
	}
	if err != nil {
		s.log.Error("Get: load case failed", "error", err, "case_id", id)
		return nil, fmt.Errorf("get case %d: %w", id, err)
	}
	return c, nil
}

func (s *caseService) Random(ctx context.Context, difficulty string) (*types.Case, error) {
	filter := filterOf(difficulty)
	c, err := s.caseRepo.Random(ctx, nil, filter)
	if err != nil {
		s.log.Error("Random: pick failed", "error", err, "difficulty", difficulty)
		return nil, fmt.Errorf("random case: %w", err)
	}
	if c == nil && filter != nil {
		return nil, apierr.NotFound(CodeNoMatchingCase, ErrNoMatchingCase)
	}
	return c, nil
}

func (s *caseService) Diagram(ctx context.Context, id int64) (*Diagram, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.HasDiagram() {
		return nil, apierr.NotFound(CodeAttachmentNotFound, ErrAttachmentNotFound)
	}
	return &Diagram{
		Case:        c,
		Filename:    DownloadFilename(c),
		ContentType: DiagramContentType,
		Content:     *c.ExcalidrawContent,
	}, nil
}

func (s *caseService) Count(ctx context.Context) (int64, error) {
	return s.caseRepo.Count(ctx, nil)
}

// DownloadFilename suggests a name for a case's diagram: the title with
// spaces turned into underscores, or case_<id> for untitled cases.
func DownloadFilename(c *types.Case) string {
	if c.Title != nil && *c.Title != "" {
		return strings.ReplaceAll(*c.Title+types.DiagramExtension, " ", "_")
	}
	return fmt.Sprintf("case_%d%s", c.ID, types.DiagramExtension)
}

func filterOf(difficulty string) *string {
	if difficulty == "" {
		return nil
	}
	return &difficulty
}
