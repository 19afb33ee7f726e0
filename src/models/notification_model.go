package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification lives in the notification service's Mongo inbox, not in the
// relational store. The engine only ever appends to it.
type Notification struct {
	Id              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	EventID         string             `json:"event_id" bson:"event_id"`
	RecipientID     uint               `json:"recipient" bson:"recipient"`
	Type            NotificationType   `json:"type" bson:"type"`
	Title           string             `json:"title" bson:"title"`
	Message         string             `json:"message" bson:"message"`
	SourceRequestID uint               `json:"source_request_id,omitempty" bson:"source_request_id,omitempty"`
	Read            bool               `json:"read" bson:"read"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type NotificationType string

const (
	NotificationTypeGeneral       NotificationType = "general"
	NotificationTypeSkillExchange NotificationType = "skill_exchange"
)
