// Package notify is the boundary to the notification service. Request
// creation emits an Event here and moves on; delivery failures never roll
// back or block the originating write.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/keshavagr273/ClassMate/src/models"
)

// Event is the message handed to the notification service.
type Event struct {
	RecipientID     uint
	Type            models.NotificationType
	Title           string
	Message         string
	SourceRequestID uint
}

// Dispatcher delivers an event to the recipient's inbox.
type Dispatcher interface {
	Notify(ctx context.Context, event Event) error
}

const (
	publishRetries = 3
	publishBackoff = 100 * time.Millisecond
)

// Service writes events to the Mongo inbox and publishes them on a
// per-recipient Redis channel for connected clients.
type Service struct {
	inbox *mongo.Collection
	rdb   *redis.Client
}

func NewService(db *mongo.Database, rdb *redis.Client) *Service {
	return &Service{
		inbox: db.Collection("notifications"),
		rdb:   rdb,
	}
}

// Notify appends the event to the recipient's inbox. The inbox write is the
// durable record; the Redis publish is best-effort live delivery and its
// failure is only logged.
func (s *Service) Notify(ctx context.Context, event Event) error {
	now := time.Now()
	notification := models.Notification{
		EventID:         uuid.NewString(),
		RecipientID:     event.RecipientID,
		Type:            event.Type,
		Title:           event.Title,
		Message:         event.Message,
		SourceRequestID: event.SourceRequestID,
		Read:            false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := s.inbox.InsertOne(ctx, notification); err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}

	s.publish(ctx, notification)
	return nil
}

func (s *Service) publish(ctx context.Context, notification models.Notification) {
	if s.rdb == nil {
		return
	}

	payload, err := json.Marshal(notification)
	if err != nil {
		slog.Error("marshal notification payload", "error", err)
		return
	}

	channel := fmt.Sprintf("notify:%d", notification.RecipientID)
	for attempt := 1; attempt <= publishRetries; attempt++ {
		if err = s.rdb.Publish(ctx, channel, payload).Err(); err == nil {
			return
		}
		if attempt < publishRetries {
			time.Sleep(publishBackoff)
		}
	}
	slog.Warn("notification publish failed", "channel", channel, "error", err)
}
