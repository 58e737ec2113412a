// Package workflow drives one student's analysis session on one clone: it
// loads the question set and saved progress, gates answer edits on the
// clone's review status, tracks unsaved changes, and runs the save and
// submit-for-review operations.
package workflow

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/gabevillegas628/dsap-backend/internal/progress"
	"github.com/gabevillegas628/dsap-backend/internal/status"
	"github.com/gabevillegas628/dsap-backend/internal/types"
)

// ErrSaveInFlight is returned when Save is called while a previous Save has
// not completed. The caller retries after the first save resolves.
var ErrSaveInFlight = errors.New("save already in progress")

// QuestionBank serves the program's question definitions and their help
// topics. Definitions are staff-managed out of band and read-only here.
type QuestionBank interface {
	FetchQuestions(ctx context.Context) ([]*types.AnalysisQuestion, error)
	FetchHelpTopics(ctx context.Context) ([]*types.HelpTopic, error)
}

// ProgressUpdate is the partial record written on save and submit.
type ProgressUpdate struct {
	Progress    int
	Answers     progress.AnswerMap
	CurrentStep types.AnalysisStep
	Status      *status.Status
	SubmittedAt *time.Time
}

// ProgressStore persists per-(student, clone) working records. FetchProgress
// returns (nil, nil) when no record exists yet. Assigned and practice clones
// are served by distinct stores with this same contract.
type ProgressStore interface {
	FetchProgress(ctx context.Context, studentID, cloneID uuid.UUID) (*types.CloneProgress, error)
	SaveProgress(ctx context.Context, studentID, cloneID uuid.UUID, update *ProgressUpdate) error
}

// NotificationSink receives fire-and-forget UI notifications.
type NotificationSink interface {
	OnDirtyChange(studentID, cloneID uuid.UUID, dirty bool)
	OnProgressChange(studentID, cloneID uuid.UUID, percent int)
}

// NopSink discards all notifications.
type NopSink struct{}

func (NopSink) OnDirtyChange(uuid.UUID, uuid.UUID, bool) {}
func (NopSink) OnProgressChange(uuid.UUID, uuid.UUID, int) {}
