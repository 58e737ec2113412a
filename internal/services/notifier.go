package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gabevillegas628/dsap-backend/internal/logger"
	"github.com/gabevillegas628/dsap-backend/internal/realtime"
	"github.com/gabevillegas628/dsap-backend/internal/sse"
)

// SSENotifier implements workflow.NotificationSink by broadcasting to the
// local SSE hub and, when a bus is configured, publishing to it so other
// instances deliver too. Notifications are fire-and-forget: failures are
// logged and never surface to the workflow.
type SSENotifier struct {
	log *logger.Logger
	hub *sse.SSEHub
	bus realtime.Bus
}

func NewSSENotifier(log *logger.Logger, hub *sse.SSEHub, bus realtime.Bus) *SSENotifier {
	return &SSENotifier{
		log: log.With("service", "SSENotifier"),
		hub: hub,
		bus: bus,
	}
}

func (n *SSENotifier) OnDirtyChange(studentID, cloneID uuid.UUID, dirty bool) {
	n.emit(sse.SSEMessage{
		Channel: sse.StudentChannel(studentID),
		Event:   sse.SSEEventDirtyChanged,
		Data:    map[string]any{"clone_id": cloneID, "dirty": dirty},
	})
}

func (n *SSENotifier) OnProgressChange(studentID, cloneID uuid.UUID, percent int) {
	n.emit(sse.SSEMessage{
		Channel: sse.StudentChannel(studentID),
		Event:   sse.SSEEventProgressChanged,
		Data:    map[string]any{"clone_id": cloneID, "progress": percent},
	})
}

// StatusChanged notifies the student that staff moved their clone to a new
// status; used by the review service.
func (n *SSENotifier) StatusChanged(studentID, cloneID uuid.UUID, newStatus string) {
	n.emit(sse.SSEMessage{
		Channel: sse.StudentChannel(studentID),
		Event:   sse.SSEEventStatusChanged,
		Data:    map[string]any{"clone_id": cloneID, "status": newStatus},
	})
}

// FeedbackPosted tells the student new review comments landed on their clone.
func (n *SSENotifier) FeedbackPosted(studentID, cloneID uuid.UUID, count int) {
	n.emit(sse.SSEMessage{
		Channel: sse.StudentChannel(studentID),
		Event:   sse.SSEEventFeedbackPosted,
		Data:    map[string]any{"clone_id": cloneID, "count": count},
	})
}

// DiscussionPosted fans a new discussion message out to the clone's channel.
func (n *SSENotifier) DiscussionPosted(cloneID uuid.UUID, data any) {
	n.emit(sse.SSEMessage{
		Channel: sse.CloneChannel(cloneID),
		Event:   sse.SSEEventDiscussionMessage,
		Data:    data,
	})
}

func (n *SSENotifier) emit(msg sse.SSEMessage) {
	n.hub.Broadcast(msg)
	if n.bus == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := n.bus.Publish(ctx, msg); err != nil {
		n.log.Warn("Failed to publish SSE message to bus", "error", err, "event", string(msg.Event))
	}
}
