package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gabevillegas628/dsap-backend/internal/logger"
	"github.com/gabevillegas628/dsap-backend/internal/types"
)

type CloneRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Clone) ([]*types.Clone, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Clone, error)
	ListAssignedTo(ctx context.Context, tx *gorm.DB, studentID uuid.UUID) ([]*types.Clone, error)
	ListPractice(ctx context.Context, tx *gorm.DB) ([]*types.Clone, error)
	Assign(ctx context.Context, tx *gorm.DB, cloneID uuid.UUID, studentID *uuid.UUID) error
}

type cloneRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCloneRepo(db *gorm.DB, baseLog *logger.Logger) CloneRepo {
	repoLog := baseLog.With("repo", "CloneRepo")
	return &cloneRepo{db: db, log: repoLog}
}

func (r *cloneRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Clone) ([]*types.Clone, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []*types.Clone{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *cloneRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Clone, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var row types.Clone
	err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *cloneRepo) ListAssignedTo(ctx context.Context, tx *gorm.DB, studentID uuid.UUID) ([]*types.Clone, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Clone
	if studentID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("assigned_to_id = ?", studentID).
		Order("clone_name").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *cloneRepo) ListPractice(ctx context.Context, tx *gorm.DB) ([]*types.Clone, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Clone
	if err := transaction.WithContext(ctx).
		Where("is_practice = ?", true).
		Order("clone_name").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *cloneRepo) Assign(ctx context.Context, tx *gorm.DB, cloneID uuid.UUID, studentID *uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if cloneID == uuid.Nil {
		return nil
	}

	if err := transaction.WithContext(ctx).
		Model(&types.Clone{}).
		Where("id = ?", cloneID).
		Update("assigned_to_id", studentID).Error; err != nil {
		return err
	}
	return nil
}
