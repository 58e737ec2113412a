package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gabevillegas628/dsap-backend/internal/repos"
	"github.com/gabevillegas628/dsap-backend/internal/status"
	"github.com/gabevillegas628/dsap-backend/internal/types"
)

type memProgressRepo struct {
	rec *types.CloneProgress
}

func (m *memProgressRepo) GetByStudentAndClone(context.Context, *gorm.DB, uuid.UUID, uuid.UUID, types.ProgressKind) (*types.CloneProgress, error) {
	return m.rec, nil
}

func (m *memProgressRepo) GetByID(_ context.Context, _ *gorm.DB, id uuid.UUID) (*types.CloneProgress, error) {
	if m.rec != nil && m.rec.ID == id {
		return m.rec, nil
	}
	return nil, nil
}

func (m *memProgressRepo) ListByStatus(context.Context, *gorm.DB, []status.Status) ([]*types.CloneProgress, error) {
	return nil, nil
}

func (m *memProgressRepo) ListByStudent(context.Context, *gorm.DB, uuid.UUID) ([]*types.CloneProgress, error) {
	return nil, nil
}

func (m *memProgressRepo) Upsert(context.Context, *gorm.DB, *types.CloneProgress) error {
	return nil
}

func (m *memProgressRepo) UpdateStatus(_ context.Context, _ *gorm.DB, _ uuid.UUID, next status.Status) error {
	m.rec.Status = next
	return nil
}

var _ repos.CloneProgressRepo = (*memProgressRepo)(nil)

type memCommentRepo struct {
	created    []*types.ReviewComment
	visibility map[uuid.UUID]bool
}

func (m *memCommentRepo) Create(_ context.Context, _ *gorm.DB, rows []*types.ReviewComment) ([]*types.ReviewComment, error) {
	for _, row := range rows {
		if row.ID == uuid.Nil {
			row.ID = uuid.New()
		}
	}
	m.created = append(m.created, rows...)
	return rows, nil
}

func (m *memCommentRepo) ListByProgressID(context.Context, *gorm.DB, uuid.UUID) ([]*types.ReviewComment, error) {
	return m.created, nil
}

func (m *memCommentRepo) SetVisibility(_ context.Context, _ *gorm.DB, ids []uuid.UUID, visible bool) error {
	if m.visibility == nil {
		m.visibility = make(map[uuid.UUID]bool)
	}
	for _, id := range ids {
		m.visibility[id] = visible
	}
	return nil
}

var _ repos.ReviewCommentRepo = (*memCommentRepo)(nil)

func newTestReviewService(t *testing.T, progressRepo repos.CloneProgressRepo, commentRepo repos.ReviewCommentRepo) ReviewService {
	t.Helper()
	return NewReviewService(newSeedLogger(t), progressRepo, commentRepo, nil)
}

func TestSetCommentVisibilityReleasesFeedback(t *testing.T) {
	rec := &types.CloneProgress{
		ID:        uuid.New(),
		StudentID: uuid.New(),
		CloneID:   uuid.New(),
		Status:    status.CompletedWaitingReview,
	}
	progressRepo := &memProgressRepo{rec: rec}
	commentRepo := &memCommentRepo{}
	svc := newTestReviewService(t, progressRepo, commentRepo)
	ctx := context.Background()

	created, err := svc.AddComments(ctx, rec.ID, uuid.New(), []NewComment{
		{QuestionID: uuid.New(), Feedback: "draft note"},
		{QuestionID: uuid.New(), Feedback: "another draft"},
	})
	if err != nil {
		t.Fatalf("add comments: %v", err)
	}

	ids := []uuid.UUID{created[0].ID, created[1].ID}
	if err := svc.SetCommentVisibility(ctx, rec.ID, ids, true); err != nil {
		t.Fatalf("set visibility: %v", err)
	}
	for _, id := range ids {
		if !commentRepo.visibility[id] {
			t.Fatalf("comment %s not released", id)
		}
	}

	// Empty id list never reaches the repo.
	if err := svc.SetCommentVisibility(ctx, rec.ID, nil, true); err != nil {
		t.Fatalf("empty set: %v", err)
	}

	// Unknown submission is an error, not a silent write.
	if err := svc.SetCommentVisibility(ctx, uuid.New(), ids, true); err == nil {
		t.Fatal("visibility write accepted for a missing submission")
	}
}

func TestUpdateStatusEnforcesTransitions(t *testing.T) {
	rec := &types.CloneProgress{
		ID:     uuid.New(),
		Status: status.CompletedWaitingReview,
	}
	progressRepo := &memProgressRepo{rec: rec}
	svc := newTestReviewService(t, progressRepo, &memCommentRepo{})
	ctx := context.Background()

	err := svc.UpdateStatus(ctx, rec.ID, status.SubmittedToNCBI)
	var illegal *status.IllegalTransitionError
	if !errors.As(err, &illegal) {
		t.Fatalf("illegal jump error = %v, want IllegalTransitionError", err)
	}
	if rec.Status != status.CompletedWaitingReview {
		t.Fatalf("status mutated to %q despite rejected transition", rec.Status)
	}

	if err := svc.UpdateStatus(ctx, rec.ID, status.NeedsReanalysis); err != nil {
		t.Fatalf("legal transition rejected: %v", err)
	}
	if rec.Status != status.NeedsReanalysis {
		t.Fatalf("status = %q, want needs_reanalysis", rec.Status)
	}
}
