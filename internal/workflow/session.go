package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gabevillegas628/dsap-backend/internal/logger"
	"github.com/gabevillegas628/dsap-backend/internal/progress"
	"github.com/gabevillegas628/dsap-backend/internal/status"
	"github.com/gabevillegas628/dsap-backend/internal/types"
)

// Session is the working state for one student on one clone. All mutation
// goes through its methods; the embedded mutex makes single operations safe
// to call from concurrent request handlers, and a single-slot in-flight
// token keeps Save from overlapping itself.
type Session struct {
	log    *logger.Logger
	policy *status.Policy
	bank   QuestionBank
	store  ProgressStore
	sink   NotificationSink

	mu         sync.Mutex
	studentID  uuid.UUID
	cloneID    uuid.UUID
	generation int

	questions  []*types.AnalysisQuestion
	helpTopics []*types.HelpTopic

	answers     progress.AnswerMap
	currentStep types.AnalysisStep
	status      status.Status
	comments    []types.ReviewComment
	dirty       bool
	saving      bool
	lastSaved   time.Time
	submittedAt *time.Time
}

func NewSession(log *logger.Logger, policy *status.Policy, bank QuestionBank, store ProgressStore, sink NotificationSink, studentID, cloneID uuid.UUID) *Session {
	if sink == nil {
		sink = NopSink{}
	}
	return &Session{
		log:         log.With("component", "SubmissionWorkflow", "student_id", studentID, "clone_id", cloneID),
		policy:      policy,
		bank:        bank,
		store:       store,
		sink:        sink,
		studentID:   studentID,
		cloneID:     cloneID,
		answers:     progress.AnswerMap{},
		currentStep: types.StepCloneEditing,
	}
}

// LoadQuestions refreshes the question set and help topics. Safe to call
// repeatedly; a fetch error leaves the in-memory lists unchanged.
func (s *Session) LoadQuestions(ctx context.Context) error {
	questions, err := s.bank.FetchQuestions(ctx)
	if err != nil {
		s.log.Warn("Failed to load analysis questions, keeping current set", "error", err)
		return fmt.Errorf("load questions: %w", err)
	}
	topics, err := s.bank.FetchHelpTopics(ctx)
	if err != nil {
		s.log.Warn("Failed to load help topics, keeping current set", "error", err)
		topics = nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions = questions
	if topics != nil {
		s.helpTopics = topics
	}
	return nil
}

// LoadProgress pulls the persisted record into the session. It refuses to
// run while unsaved local edits exist, so a stale server read can never
// clobber the student's work, and it discards responses that resolve after
// the session has moved to a different clone.
func (s *Session) LoadProgress(ctx context.Context) error {
	s.mu.Lock()
	if s.dirty {
		s.mu.Unlock()
		s.log.Debug("Skipping progress load, unsaved local edits present")
		return nil
	}
	gen := s.generation
	studentID, cloneID := s.studentID, s.cloneID
	s.mu.Unlock()

	rec, err := s.store.FetchProgress(ctx, studentID, cloneID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generation != gen {
		s.log.Debug("Discarding stale progress load for abandoned clone", "clone_id", cloneID)
		return nil
	}
	if err != nil {
		s.log.Warn("Failed to load progress, starting from empty state", "error", err)
		return nil
	}
	if rec == nil {
		return nil
	}
	s.applyRecordLocked(rec)
	return nil
}

func (s *Session) applyRecordLocked(rec *types.CloneProgress) {
	answers := progress.AnswerMap{}
	if len(rec.Answers) > 0 {
		if err := json.Unmarshal(rec.Answers, &answers); err != nil {
			s.log.Warn("Unparseable saved answers, falling back to empty", "error", err)
			answers = progress.AnswerMap{}
		}
	}
	s.answers = answers
	s.status = rec.Status
	if rec.CurrentStep != "" {
		s.currentStep = rec.CurrentStep
	}
	s.comments = rec.Comments
	s.lastSaved = rec.LastSaved
	s.submittedAt = rec.SubmittedAt
}

// SwitchClone rebinds the session to a different clone, dropping all local
// state. Any in-flight load for the previous clone resolves into a
// generation mismatch and is discarded.
func (s *Session) SwitchClone(studentID, cloneID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.studentID = studentID
	s.cloneID = cloneID
	s.generation++
	s.answers = progress.AnswerMap{}
	s.currentStep = types.StepCloneEditing
	s.status = ""
	s.comments = nil
	s.dirty = false
	s.lastSaved = time.Time{}
	s.submittedAt = nil
	s.log = s.log.With("clone_id", cloneID)
}

// SetAnswer records a local answer edit. It is a silent no-op while the
// clone's status locks the form.
func (s *Session) SetAnswer(questionID string, value any) {
	s.mu.Lock()
	if s.policy.IsReadOnly(s.status) {
		st := s.status
		s.mu.Unlock()
		s.log.Debug("Ignoring answer edit in read-only status", "status", string(st), "question_id", questionID)
		return
	}
	s.answers[questionID] = value
	wasDirty := s.dirty
	s.dirty = true
	overall := progress.OverallProgress(s.questions, s.answers)
	studentID, cloneID := s.studentID, s.cloneID
	s.mu.Unlock()

	if !wasDirty {
		s.sink.OnDirtyChange(studentID, cloneID, true)
	}
	s.sink.OnProgressChange(studentID, cloneID, overall)
}

// SetCurrentStep moves the student's position between the four analysis
// phases. Navigation is allowed even in read-only statuses.
func (s *Session) SetCurrentStep(step types.AnalysisStep) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentStep = step
}

// Save persists the working state. On failure the dirty flag stays set and
// nothing in memory is lost; retrying is the caller's responsibility.
func (s *Session) Save(ctx context.Context) error {
	update, studentID, cloneID, err := s.beginSave()
	if err != nil {
		return err
	}

	saveErr := s.store.SaveProgress(ctx, studentID, cloneID, update)

	s.mu.Lock()
	s.saving = false
	if saveErr != nil {
		s.mu.Unlock()
		s.log.Error("Failed to save progress", "error", saveErr)
		return fmt.Errorf("save progress: %w", saveErr)
	}
	s.dirty = false
	s.lastSaved = time.Now().UTC()
	s.mu.Unlock()

	s.sink.OnDirtyChange(studentID, cloneID, false)
	return nil
}

func (s *Session) beginSave() (*ProgressUpdate, uuid.UUID, uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saving {
		return nil, uuid.Nil, uuid.Nil, ErrSaveInFlight
	}
	s.saving = true
	return s.updateLocked(), s.studentID, s.cloneID, nil
}

func (s *Session) updateLocked() *ProgressUpdate {
	answers := make(progress.AnswerMap, len(s.answers))
	for k, v := range s.answers {
		answers[k] = v
	}
	return &ProgressUpdate{
		Progress:    progress.OverallProgress(s.questions, s.answers),
		Answers:     answers,
		CurrentStep: s.currentStep,
	}
}

// SubmitForReview saves any outstanding edits and moves the clone into the
// waiting-for-review stage: CorrectedWaitingReview when resubmitting after a
// reanalysis request, CompletedWaitingReview otherwise. A non-editable
// status makes the call a no-op. The submit write shares the single-slot
// in-flight token with Save, so it cannot interleave with a running save.
//
// The two-way next-status rule is deliberate and does not consult the
// transition table; staff-side status writes go through CheckTransition.
func (s *Session) SubmitForReview(ctx context.Context) error {
	s.mu.Lock()
	current := s.status
	dirty := s.dirty
	s.mu.Unlock()

	if !s.policy.CanEdit(current) {
		s.log.Debug("Ignoring submit in non-editable status", "status", string(current))
		return nil
	}
	if dirty {
		if err := s.Save(ctx); err != nil {
			return fmt.Errorf("save before submit: %w", err)
		}
	}

	next := status.CompletedWaitingReview
	if current == status.NeedsReanalysis {
		next = status.CorrectedWaitingReview
	}
	now := time.Now().UTC()

	s.mu.Lock()
	if s.saving {
		s.mu.Unlock()
		return ErrSaveInFlight
	}
	s.saving = true
	update := s.updateLocked()
	update.Status = &next
	update.SubmittedAt = &now
	studentID, cloneID := s.studentID, s.cloneID
	s.mu.Unlock()

	saveErr := s.store.SaveProgress(ctx, studentID, cloneID, update)

	s.mu.Lock()
	s.saving = false
	if saveErr != nil {
		s.mu.Unlock()
		s.log.Error("Failed to submit for review", "error", saveErr)
		return fmt.Errorf("submit for review: %w", saveErr)
	}
	s.status = next
	s.submittedAt = &now
	s.dirty = false
	s.lastSaved = now
	s.mu.Unlock()

	s.sink.OnDirtyChange(studentID, cloneID, false)
	s.log.Info("Analysis submitted for review", "status", string(next))
	return nil
}

// OverallProgress returns the quarter-weighted completion across all steps.
func (s *Session) OverallProgress() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return progress.OverallProgress(s.questions, s.answers)
}

func (s *Session) StepProgress(step types.AnalysisStep) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return progress.StepProgress(step, s.questions, s.answers)
}

func (s *Session) GroupProgress(step types.AnalysisStep, group string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return progress.GroupProgress(step, group, s.questions, s.answers)
}

// QuestionComments returns the student-visible feedback for one question,
// in the order the reviewers left it.
func (s *Session) QuestionComments(questionID uuid.UUID) []types.ReviewComment {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []types.ReviewComment
	for _, c := range s.comments {
		if c.QuestionID == questionID && c.FeedbackVisible {
			out = append(out, c)
		}
	}
	return out
}

// IsQuestionCorrect reports whether any review comment marked the question
// correct.
func (s *Session) IsQuestionCorrect(questionID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.comments {
		if c.QuestionID == questionID && c.IsCorrect != nil && *c.IsCorrect {
			return true
		}
	}
	return false
}

func (s *Session) Status() status.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// StatusMetadata returns the display record for the session's status.
func (s *Session) StatusMetadata() status.Metadata {
	return status.MetadataFor(s.Status())
}

func (s *Session) CurrentStep() types.AnalysisStep {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentStep
}

func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

func (s *Session) LastSaved() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSaved
}

func (s *Session) SubmittedAt() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submittedAt
}

// Answers returns a copy of the in-memory answer map.
func (s *Session) Answers() progress.AnswerMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(progress.AnswerMap, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

func (s *Session) Questions() []*types.AnalysisQuestion {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.questions
}

func (s *Session) HelpTopics() []*types.HelpTopic {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.helpTopics
}
