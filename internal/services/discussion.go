package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/gabevillegas628/dsap-backend/internal/logger"
	"github.com/gabevillegas628/dsap-backend/internal/repos"
	"github.com/gabevillegas628/dsap-backend/internal/types"
)

// DiscussionService runs the per-clone message thread between the student
// and the reviewing staff.
type DiscussionService interface {
	PostMessage(ctx context.Context, cloneID, senderID uuid.UUID, body string) (*types.DiscussionMessage, error)
	ListMessages(ctx context.Context, cloneID uuid.UUID) ([]*types.DiscussionMessage, error)
}

type discussionService struct {
	log      *logger.Logger
	msgRepo  repos.DiscussionMessageRepo
	notifier *SSENotifier
}

func NewDiscussionService(log *logger.Logger, msgRepo repos.DiscussionMessageRepo, notifier *SSENotifier) DiscussionService {
	return &discussionService{
		log:      log.With("service", "DiscussionService"),
		msgRepo:  msgRepo,
		notifier: notifier,
	}
}

func (s *discussionService) PostMessage(ctx context.Context, cloneID, senderID uuid.UUID, body string) (*types.DiscussionMessage, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("message body is empty")
	}

	msg, err := s.msgRepo.Create(ctx, nil, &types.DiscussionMessage{
		CloneID:  cloneID,
		SenderID: senderID,
		Body:     body,
	})
	if err != nil {
		return nil, fmt.Errorf("post message: %w", err)
	}

	if s.notifier != nil {
		s.notifier.DiscussionPosted(cloneID, msg)
	}
	return msg, nil
}

func (s *discussionService) ListMessages(ctx context.Context, cloneID uuid.UUID) ([]*types.DiscussionMessage, error) {
	return s.msgRepo.ListByCloneID(ctx, nil, cloneID)
}
