package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gabevillegas628/dsap-backend/internal/logger"
	"github.com/gabevillegas628/dsap-backend/internal/types"
)

type ReviewCommentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.ReviewComment) ([]*types.ReviewComment, error)
	ListByProgressID(ctx context.Context, tx *gorm.DB, progressID uuid.UUID) ([]*types.ReviewComment, error)
	SetVisibility(ctx context.Context, tx *gorm.DB, ids []uuid.UUID, visible bool) error
}

type reviewCommentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReviewCommentRepo(db *gorm.DB, baseLog *logger.Logger) ReviewCommentRepo {
	repoLog := baseLog.With("repo", "ReviewCommentRepo")
	return &reviewCommentRepo{db: db, log: repoLog}
}

func (r *reviewCommentRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.ReviewComment) ([]*types.ReviewComment, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []*types.ReviewComment{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reviewCommentRepo) ListByProgressID(ctx context.Context, tx *gorm.DB, progressID uuid.UUID) ([]*types.ReviewComment, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ReviewComment
	if progressID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("clone_progress_id = ?", progressID).
		Order("created_at").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *reviewCommentRepo) SetVisibility(ctx context.Context, tx *gorm.DB, ids []uuid.UUID, visible bool) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(ids) == 0 {
		return nil
	}

	if err := transaction.WithContext(ctx).
		Model(&types.ReviewComment{}).
		Where("id IN ?", ids).
		Update("feedback_visible", visible).Error; err != nil {
		return err
	}
	return nil
}
