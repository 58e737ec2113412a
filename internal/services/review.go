package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gabevillegas628/dsap-backend/internal/logger"
	"github.com/gabevillegas628/dsap-backend/internal/repos"
	"github.com/gabevillegas628/dsap-backend/internal/status"
	"github.com/gabevillegas628/dsap-backend/internal/types"
)

// NewComment is one piece of reviewer feedback on one question.
type NewComment struct {
	QuestionID      uuid.UUID `json:"question_id"`
	IsCorrect       *bool     `json:"is_correct,omitempty"`
	Feedback        string    `json:"feedback"`
	FeedbackVisible bool      `json:"feedback_visible"`
}

// ReviewService is the staff side of the pipeline: listing submissions that
// wait for review, attaching feedback, and moving a clone's status. Status
// writes here go through the transition table and are rejected with a typed
// error before anything is persisted.
type ReviewService interface {
	ListWaiting(ctx context.Context) ([]*types.CloneProgress, error)
	GetSubmission(ctx context.Context, progressID uuid.UUID) (*types.CloneProgress, error)
	AddComments(ctx context.Context, progressID, reviewerID uuid.UUID, comments []NewComment) ([]*types.ReviewComment, error)
	SetCommentVisibility(ctx context.Context, progressID uuid.UUID, commentIDs []uuid.UUID, visible bool) error
	UpdateStatus(ctx context.Context, progressID uuid.UUID, next status.Status) error
}

type reviewService struct {
	log          *logger.Logger
	progressRepo repos.CloneProgressRepo
	commentRepo  repos.ReviewCommentRepo
	notifier     *SSENotifier
}

func NewReviewService(log *logger.Logger, progressRepo repos.CloneProgressRepo, commentRepo repos.ReviewCommentRepo, notifier *SSENotifier) ReviewService {
	return &reviewService{
		log:          log.With("service", "ReviewService"),
		progressRepo: progressRepo,
		commentRepo:  commentRepo,
		notifier:     notifier,
	}
}

func (s *reviewService) ListWaiting(ctx context.Context) ([]*types.CloneProgress, error) {
	return s.progressRepo.ListByStatus(ctx, nil, []status.Status{
		status.CompletedWaitingReview,
		status.CorrectedWaitingReview,
	})
}

func (s *reviewService) GetSubmission(ctx context.Context, progressID uuid.UUID) (*types.CloneProgress, error) {
	rec, err := s.progressRepo.GetByID(ctx, nil, progressID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("submission %s not found", progressID)
	}
	return rec, nil
}

func (s *reviewService) AddComments(ctx context.Context, progressID, reviewerID uuid.UUID, comments []NewComment) ([]*types.ReviewComment, error) {
	rec, err := s.GetSubmission(ctx, progressID)
	if err != nil {
		return nil, err
	}

	rows := make([]*types.ReviewComment, 0, len(comments))
	for _, c := range comments {
		rows = append(rows, &types.ReviewComment{
			CloneProgressID: rec.ID,
			QuestionID:      c.QuestionID,
			ReviewerID:      reviewerID,
			IsCorrect:       c.IsCorrect,
			Feedback:        c.Feedback,
			FeedbackVisible: c.FeedbackVisible,
		})
	}
	created, err := s.commentRepo.Create(ctx, nil, rows)
	if err != nil {
		return nil, fmt.Errorf("create review comments: %w", err)
	}

	if s.notifier != nil {
		s.notifier.FeedbackPosted(rec.StudentID, rec.CloneID, len(created))
	}
	s.log.Info("Review comments added", "progress_id", progressID, "count", len(created))
	return created, nil
}

// SetCommentVisibility releases feedback to (or withdraws it from) the
// student. Reviewers draft comments hidden and flip them visible once the
// review is complete.
func (s *reviewService) SetCommentVisibility(ctx context.Context, progressID uuid.UUID, commentIDs []uuid.UUID, visible bool) error {
	if len(commentIDs) == 0 {
		return nil
	}
	rec, err := s.GetSubmission(ctx, progressID)
	if err != nil {
		return err
	}
	if err := s.commentRepo.SetVisibility(ctx, nil, commentIDs, visible); err != nil {
		return fmt.Errorf("set comment visibility: %w", err)
	}

	if visible && s.notifier != nil {
		s.notifier.FeedbackPosted(rec.StudentID, rec.CloneID, len(commentIDs))
	}
	s.log.Info("Review comment visibility updated", "progress_id", progressID, "count", len(commentIDs), "visible", visible)
	return nil
}

func (s *reviewService) UpdateStatus(ctx context.Context, progressID uuid.UUID, next status.Status) error {
	rec, err := s.GetSubmission(ctx, progressID)
	if err != nil {
		return err
	}

	if err := status.CheckTransition(rec.Status, next); err != nil {
		return err
	}
	if err := s.progressRepo.UpdateStatus(ctx, nil, rec.ID, next); err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	if s.notifier != nil {
		s.notifier.StatusChanged(rec.StudentID, rec.CloneID, string(next))
	}
	s.log.Info("Clone status updated", "progress_id", progressID, "from", string(rec.Status), "to", string(next))
	return nil
}
