package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/keshavagr273/ClassMate/src/apperrors"
	"github.com/keshavagr273/ClassMate/src/models"
	"github.com/keshavagr273/ClassMate/src/notify"
)

// RequestCreatedWarning is attached to an otherwise successful response when
// the notification could not be delivered.
const RequestCreatedWarning = "Request created, but the recipient could not be notified"

// SkillRequestService creates and lists connection requests between a
// learner and a teacher.
type SkillRequestService interface {
	CreateRequest(ctx context.Context, requesterID, recipientID, skillID uint, message string) (*models.SkillRequest, string, error)
	ListIncoming(userID uint) ([]models.SkillRequestDto, error)
}

type DBSkillRequestService struct {
	db         *gorm.DB
	dispatcher notify.Dispatcher
}

func NewSkillRequestService(db *gorm.DB, dispatcher notify.Dispatcher) *DBSkillRequestService {
	return &DBSkillRequestService{db: db, dispatcher: dispatcher}
}

// CreateRequest persists a pending request and emits a notification event to
// the recipient. The returned warning is non-empty when the event could not
// be dispatched; the request itself is committed either way.
//
// Repeat requests for the same (requester, recipient, skill) are allowed.
func (s *DBSkillRequestService) CreateRequest(ctx context.Context, requesterID, recipientID, skillID uint, message string) (*models.SkillRequest, string, error) {
	if requesterID == recipientID {
		return nil, "", apperrors.Validation("Cannot send request to yourself")
	}

	var requester models.User
	if err := s.db.First(&requester, requesterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.NotFound("Requester")
		}
		return nil, "", err
	}

	var recipient models.User
	if err := s.db.First(&recipient, recipientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.NotFound("Recipient")
		}
		return nil, "", err
	}

	var skill models.Skill
	if err := s.db.First(&skill, skillID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.NotFound("Skill")
		}
		return nil, "", err
	}

	request := models.SkillRequest{
		RequesterID: requesterID,
		RecipientID: recipientID,
		SkillID:     skillID,
		Message:     message,
		Status:      models.RequestStatusPending,
	}
	if err := s.db.Create(&request).Error; err != nil {
		return nil, "", err
	}
	request.Requester = requester
	request.Skill = skill

	warning := ""
	event := notify.Event{
		RecipientID:     recipientID,
		Type:            models.NotificationTypeSkillExchange,
		Title:           "New Skill Exchange Request",
		Message:         fmt.Sprintf("%s (%s) wants to learn %s from you.", requester.Name, requester.Email, skill.Name),
		SourceRequestID: request.ID,
	}
	if err := s.dispatcher.Notify(ctx, event); err != nil {
		slog.Error("notification dispatch failed", "request_id", request.ID, "recipient", recipientID, "error", err)
		warning = RequestCreatedWarning
	}

	return &request, warning, nil
}

// ListIncoming returns the requests addressed to the user, newest first,
// joined with requester identity and skill name.
func (s *DBSkillRequestService) ListIncoming(userID uint) ([]models.SkillRequestDto, error) {
	var requests []models.SkillRequest
	err := s.db.Preload("Requester").Preload("Skill").
		Where("recipient_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}

	result := make([]models.SkillRequestDto, 0, len(requests))
	for i := range requests {
		result = append(result, requests[i].ToDto())
	}
	return result, nil
}
