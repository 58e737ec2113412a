package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gabevillegas628/dsap-backend/internal/logger"
	"github.com/gabevillegas628/dsap-backend/internal/repos"
	"github.com/gabevillegas628/dsap-backend/internal/types"
	"github.com/gabevillegas628/dsap-backend/internal/workflow"
)

// gormProgressStore backs workflow.ProgressStore with the clone_progress
// table. Assigned and practice clones share the table, separated by kind;
// NewAssignedProgressStore and NewPracticeProgressStore fix the kind so the
// two variants keep the identical contract the workflow expects.
type gormProgressStore struct {
	log          *logger.Logger
	progressRepo repos.CloneProgressRepo
	kind         types.ProgressKind
}

func NewAssignedProgressStore(log *logger.Logger, progressRepo repos.CloneProgressRepo) workflow.ProgressStore {
	return &gormProgressStore{
		log:          log.With("service", "AssignedProgressStore"),
		progressRepo: progressRepo,
		kind:         types.ProgressKindAssigned,
	}
}

func NewPracticeProgressStore(log *logger.Logger, progressRepo repos.CloneProgressRepo) workflow.ProgressStore {
	return &gormProgressStore{
		log:          log.With("service", "PracticeProgressStore"),
		progressRepo: progressRepo,
		kind:         types.ProgressKindPractice,
	}
}

func (s *gormProgressStore) FetchProgress(ctx context.Context, studentID, cloneID uuid.UUID) (*types.CloneProgress, error) {
	return s.progressRepo.GetByStudentAndClone(ctx, nil, studentID, cloneID, s.kind)
}

func (s *gormProgressStore) SaveProgress(ctx context.Context, studentID, cloneID uuid.UUID, update *workflow.ProgressUpdate) error {
	if update == nil {
		return nil
	}
	raw, err := json.Marshal(update.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}

	now := time.Now().UTC()
	row := &types.CloneProgress{
		StudentID:   studentID,
		CloneID:     cloneID,
		Kind:        s.kind,
		CurrentStep: update.CurrentStep,
		Progress:    update.Progress,
		Answers:     raw,
		LastSaved:   now,
	}
	if update.SubmittedAt != nil {
		row.SubmittedAt = update.SubmittedAt
	}

	// A plain save keeps whatever status the record already has; only the
	// submit path (and staff review writes) carries a status.
	if update.Status != nil {
		row.Status = *update.Status
		return s.progressRepo.Upsert(ctx, nil, row)
	}

	existing, err := s.progressRepo.GetByStudentAndClone(ctx, nil, studentID, cloneID, s.kind)
	if err != nil {
		return err
	}
	if existing != nil {
		row.Status = existing.Status
		if row.SubmittedAt == nil {
			row.SubmittedAt = existing.SubmittedAt
		}
	}
	return s.progressRepo.Upsert(ctx, nil, row)
}
