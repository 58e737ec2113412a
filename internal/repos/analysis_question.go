package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gabevillegas628/dsap-backend/internal/logger"
	"github.com/gabevillegas628/dsap-backend/internal/types"
)

type AnalysisQuestionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.AnalysisQuestion) ([]*types.AnalysisQuestion, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.AnalysisQuestion, error)
	ListAll(ctx context.Context, tx *gorm.DB) ([]*types.AnalysisQuestion, error)
	CountAll(ctx context.Context, tx *gorm.DB) (int64, error)
}

type analysisQuestionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAnalysisQuestionRepo(db *gorm.DB, baseLog *logger.Logger) AnalysisQuestionRepo {
	repoLog := baseLog.With("repo", "AnalysisQuestionRepo")
	return &analysisQuestionRepo{db: db, log: repoLog}
}

func (r *analysisQuestionRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.AnalysisQuestion) ([]*types.AnalysisQuestion, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []*types.AnalysisQuestion{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *analysisQuestionRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.AnalysisQuestion, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.AnalysisQuestion
	if len(ids) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *analysisQuestionRepo) ListAll(ctx context.Context, tx *gorm.DB) ([]*types.AnalysisQuestion, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	// Steps sort by workflow position, not alphabetically.
	var results []*types.AnalysisQuestion
	if err := transaction.WithContext(ctx).
		Order("CASE step WHEN 'clone_editing' THEN 0 WHEN 'blast' THEN 1 WHEN 'analysis_submission' THEN 2 ELSE 3 END").
		Order("group_order, question_order").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *analysisQuestionRepo) CountAll(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.AnalysisQuestion{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
