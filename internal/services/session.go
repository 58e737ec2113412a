package services

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/gabevillegas628/dsap-backend/internal/logger"
	"github.com/gabevillegas628/dsap-backend/internal/status"
	"github.com/gabevillegas628/dsap-backend/internal/types"
	"github.com/gabevillegas628/dsap-backend/internal/workflow"
)

// SessionService hands out the one live workflow session per (student,
// clone) pair. A session created here is loaded with the question set and
// the student's saved progress before it is returned.
type SessionService interface {
	GetOrCreate(ctx context.Context, studentID, cloneID uuid.UUID, kind types.ProgressKind) (*workflow.Session, error)
	Drop(studentID, cloneID uuid.UUID)
}

type sessionService struct {
	log           *logger.Logger
	policy        *status.Policy
	bank          workflow.QuestionBank
	assignedStore workflow.ProgressStore
	practiceStore workflow.ProgressStore
	sink          workflow.NotificationSink

	mu       sync.Mutex
	sessions map[string]*workflow.Session
}

func NewSessionService(log *logger.Logger, policy *status.Policy, bank workflow.QuestionBank, assignedStore, practiceStore workflow.ProgressStore, sink workflow.NotificationSink) SessionService {
	return &sessionService{
		log:           log.With("service", "SessionService"),
		policy:        policy,
		bank:          bank,
		assignedStore: assignedStore,
		practiceStore: practiceStore,
		sink:          sink,
		sessions:      make(map[string]*workflow.Session),
	}
}

func sessionKey(studentID, cloneID uuid.UUID) string {
	return studentID.String() + "|" + cloneID.String()
}

func (s *sessionService) GetOrCreate(ctx context.Context, studentID, cloneID uuid.UUID, kind types.ProgressKind) (*workflow.Session, error) {
	key := sessionKey(studentID, cloneID)

	s.mu.Lock()
	sess, ok := s.sessions[key]
	if !ok {
		store := s.assignedStore
		if kind == types.ProgressKindPractice {
			store = s.practiceStore
		}
		sess = workflow.NewSession(s.log, s.policy, s.bank, store, s.sink, studentID, cloneID)
		s.sessions[key] = sess
	}
	s.mu.Unlock()

	if ok {
		// Re-read the store so staff status changes and new feedback reach a
		// live session; the dirty guard keeps unsaved local edits intact.
		if err := sess.LoadProgress(ctx); err != nil {
			return nil, err
		}
		return sess, nil
	}

	if err := sess.LoadQuestions(ctx); err != nil {
		// Non-fatal: the session starts with an empty question list and the
		// next load retries.
		s.log.Warn("Question load failed for new session", "error", err)
	}
	if err := sess.LoadProgress(ctx); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *sessionService) Drop(studentID, cloneID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionKey(studentID, cloneID))
}
