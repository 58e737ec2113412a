package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gabevillegas628/dsap-backend/internal/logger"
	"github.com/gabevillegas628/dsap-backend/internal/types"
)

type DiscussionMessageRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.DiscussionMessage) (*types.DiscussionMessage, error)
	ListByCloneID(ctx context.Context, tx *gorm.DB, cloneID uuid.UUID) ([]*types.DiscussionMessage, error)
}

type discussionMessageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDiscussionMessageRepo(db *gorm.DB, baseLog *logger.Logger) DiscussionMessageRepo {
	repoLog := baseLog.With("repo", "DiscussionMessageRepo")
	return &discussionMessageRepo{db: db, log: repoLog}
}

func (r *discussionMessageRepo) Create(ctx context.Context, tx *gorm.DB, row *types.DiscussionMessage) (*types.DiscussionMessage, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if row == nil {
		return nil, nil
	}

	if err := transaction.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *discussionMessageRepo) ListByCloneID(ctx context.Context, tx *gorm.DB, cloneID uuid.UUID) ([]*types.DiscussionMessage, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.DiscussionMessage
	if cloneID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Preload("Sender").
		Where("clone_id = ?", cloneID).
		Order("created_at").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
