package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/gabevillegas628/dsap-backend/internal/logger"
	"github.com/gabevillegas628/dsap-backend/internal/types"
)

type HelpTopicRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.HelpTopic) ([]*types.HelpTopic, error)
	ListAll(ctx context.Context, tx *gorm.DB) ([]*types.HelpTopic, error)
}

type helpTopicRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewHelpTopicRepo(db *gorm.DB, baseLog *logger.Logger) HelpTopicRepo {
	repoLog := baseLog.With("repo", "HelpTopicRepo")
	return &helpTopicRepo{db: db, log: repoLog}
}

func (r *helpTopicRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.HelpTopic) ([]*types.HelpTopic, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []*types.HelpTopic{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *helpTopicRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.HelpTopic, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.HelpTopic
	if err := transaction.WithContext(ctx).
		Order("created_at").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
