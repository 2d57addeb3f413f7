package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/casebook/internal/data/repos/cases"
	"github.com/yungbote/casebook/internal/platform/logger"
)

type CaseRepo = cases.CaseRepo

func NewCaseRepo(db *gorm.DB, baseLog *logger.Logger) CaseRepo {
	return cases.NewCaseRepo(db, baseLog)
}
