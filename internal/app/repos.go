package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/casebook/internal/data/repos"
	"github.com/yungbote/casebook/internal/platform/logger"
)

type Repos struct {
	Case repos.CaseRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Case: repos.NewCaseRepo(db, log),
	}
}
