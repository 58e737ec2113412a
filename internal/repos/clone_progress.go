package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gabevillegas628/dsap-backend/internal/logger"
	"github.com/gabevillegas628/dsap-backend/internal/status"
	"github.com/gabevillegas628/dsap-backend/internal/types"
)

type CloneProgressRepo interface {
	GetByStudentAndClone(ctx context.Context, tx *gorm.DB, studentID, cloneID uuid.UUID, kind types.ProgressKind) (*types.CloneProgress, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.CloneProgress, error)
	ListByStatus(ctx context.Context, tx *gorm.DB, statuses []status.Status) ([]*types.CloneProgress, error)
	ListByStudent(ctx context.Context, tx *gorm.DB, studentID uuid.UUID) ([]*types.CloneProgress, error)
	Upsert(ctx context.Context, tx *gorm.DB, row *types.CloneProgress) error
	UpdateStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, next status.Status) error
}

type cloneProgressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCloneProgressRepo(db *gorm.DB, baseLog *logger.Logger) CloneProgressRepo {
	repoLog := baseLog.With("repo", "CloneProgressRepo")
	return &cloneProgressRepo{db: db, log: repoLog}
}

func (r *cloneProgressRepo) GetByStudentAndClone(ctx context.Context, tx *gorm.DB, studentID, cloneID uuid.UUID, kind types.ProgressKind) (*types.CloneProgress, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if studentID == uuid.Nil || cloneID == uuid.Nil {
		return nil, nil
	}

	var row types.CloneProgress
	err := transaction.WithContext(ctx).
		Preload("Comments").
		Where("student_id = ? AND clone_id = ? AND kind = ?", studentID, cloneID, kind).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *cloneProgressRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.CloneProgress, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var row types.CloneProgress
	err := transaction.WithContext(ctx).
		Preload("Comments").
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

func (r *cloneProgressRepo) ListByStatus(ctx context.Context, tx *gorm.DB, statuses []status.Status) ([]*types.CloneProgress, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.CloneProgress
	if len(statuses) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Preload("Clone").
		Preload("Student").
		Where("status IN ?", statuses).
		Order("submitted_at").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *cloneProgressRepo) ListByStudent(ctx context.Context, tx *gorm.DB, studentID uuid.UUID) ([]*types.CloneProgress, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.CloneProgress
	if studentID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Preload("Clone").
		Where("student_id = ?", studentID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *cloneProgressRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.CloneProgress) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if row == nil {
		return nil
	}

	// Upsert by unique student_id + clone_id
	if err := transaction.WithContext(ctx).
		Omit("Comments").
		Where("student_id = ? AND clone_id = ?", row.StudentID, row.CloneID).
		Assign(map[string]interface{}{
			"kind":         row.Kind,
			"status":       row.Status,
			"current_step": row.CurrentStep,
			"progress":     row.Progress,
			"answers":      row.Answers,
			"last_saved":   row.LastSaved,
			"submitted_at": row.SubmittedAt,
		}).
		FirstOrCreate(row).Error; err != nil {
		return err
	}
	return nil
}

func (r *cloneProgressRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, id uuid.UUID, next status.Status) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if id == uuid.Nil {
		return nil
	}

	if err := transaction.WithContext(ctx).
		Model(&types.CloneProgress{}).
		Where("id = ?", id).
		Update("status", next).Error; err != nil {
		return err
	}
	return nil
}
