package services

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/gabevillegas628/dsap-backend/internal/status"
	"github.com/gabevillegas628/dsap-backend/internal/types"
	"github.com/gabevillegas628/dsap-backend/internal/workflow"
)

type stubBank struct{}

func (stubBank) FetchQuestions(context.Context) ([]*types.AnalysisQuestion, error) {
	return nil, nil
}

func (stubBank) FetchHelpTopics(context.Context) ([]*types.HelpTopic, error) {
	return nil, nil
}

type stubStore struct {
	mu  sync.Mutex
	rec *types.CloneProgress
}

func (s *stubStore) FetchProgress(context.Context, uuid.UUID, uuid.UUID) (*types.CloneProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec, nil
}

func (s *stubStore) SaveProgress(_ context.Context, _, _ uuid.UUID, update *workflow.ProgressUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := json.Marshal(update.Answers)
	if err != nil {
		return err
	}
	if s.rec == nil {
		s.rec = &types.CloneProgress{}
	}
	s.rec.Answers = raw
	if update.Status != nil {
		s.rec.Status = *update.Status
	}
	return nil
}

func (s *stubStore) setRecord(rec *types.CloneProgress) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec = rec
}

func newTestSessionService(t *testing.T, store workflow.ProgressStore) SessionService {
	t.Helper()
	log := newSeedLogger(t)
	return NewSessionService(log, status.NewPolicy(log), stubBank{}, store, store, workflow.NopSink{})
}

// Staff moving a clone back to the student (review service writes straight to
// the store) must be visible on the next session fetch, or the student stays
// locked out of their corrections.
func TestGetOrCreateRefreshesStaffStatusChange(t *testing.T) {
	store := &stubStore{rec: &types.CloneProgress{Status: status.CompletedWaitingReview}}
	svc := newTestSessionService(t, store)
	ctx := context.Background()
	studentID, cloneID := uuid.New(), uuid.New()

	sess, err := svc.GetOrCreate(ctx, studentID, cloneID, types.ProgressKindAssigned)
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	if sess.Status() != status.CompletedWaitingReview {
		t.Fatalf("initial status = %q", sess.Status())
	}

	correct := false
	store.setRecord(&types.CloneProgress{
		Status: status.NeedsReanalysis,
		Comments: []types.ReviewComment{
			{QuestionID: uuid.New(), Feedback: "wrong frame", FeedbackVisible: true, IsCorrect: &correct},
		},
	})

	sess, err = svc.GetOrCreate(ctx, studentID, cloneID, types.ProgressKindAssigned)
	if err != nil {
		t.Fatalf("refetch: %v", err)
	}
	if sess.Status() != status.NeedsReanalysis {
		t.Fatalf("session status after staff update = %q, want needs_reanalysis", sess.Status())
	}

	qid := uuid.NewString()
	sess.SetAnswer(qid, "corrected")
	if got := sess.Answers()[qid]; got != "corrected" {
		t.Fatal("student still blocked from recording corrections after refresh")
	}

	// And the resubmission path follows the reanalysis rule.
	if err := sess.SubmitForReview(ctx); err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if sess.Status() != status.CorrectedWaitingReview {
		t.Fatalf("resubmit status = %q, want corrected_waiting_review", sess.Status())
	}
}

func TestGetOrCreateRefreshKeepsLocalEdits(t *testing.T) {
	qid := uuid.NewString()
	store := &stubStore{rec: &types.CloneProgress{Status: status.BeingWorkedOn}}
	svc := newTestSessionService(t, store)
	ctx := context.Background()
	studentID, cloneID := uuid.New(), uuid.New()

	sess, err := svc.GetOrCreate(ctx, studentID, cloneID, types.ProgressKindAssigned)
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	sess.SetAnswer(qid, "unsaved local edit")

	staleRaw, _ := json.Marshal(map[string]any{qid: "server copy"})
	store.setRecord(&types.CloneProgress{Status: status.BeingWorkedOn, Answers: staleRaw})

	sess, err = svc.GetOrCreate(ctx, studentID, cloneID, types.ProgressKindAssigned)
	if err != nil {
		t.Fatalf("refetch: %v", err)
	}
	if got := sess.Answers()[qid]; got != "unsaved local edit" {
		t.Fatalf("refresh clobbered dirty session: %v", got)
	}
}

func TestDropEvictsSession(t *testing.T) {
	store := &stubStore{rec: &types.CloneProgress{Status: status.BeingWorkedOn}}
	svc := newTestSessionService(t, store)
	ctx := context.Background()
	studentID, cloneID := uuid.New(), uuid.New()

	first, err := svc.GetOrCreate(ctx, studentID, cloneID, types.ProgressKindAssigned)
	if err != nil {
		t.Fatalf("first fetch: %v", err)
	}
	svc.Drop(studentID, cloneID)

	second, err := svc.GetOrCreate(ctx, studentID, cloneID, types.ProgressKindAssigned)
	if err != nil {
		t.Fatalf("refetch: %v", err)
	}
	if first == second {
		t.Fatal("dropped session instance was reused")
	}
}
