package models

import (
	"time"

	"gorm.io/gorm"
)

type SkillRequest struct {
	gorm.Model
	RequesterID uint          `json:"requester_id" gorm:"index"`
	RecipientID uint          `json:"recipient_id" gorm:"index"`
	SkillID     uint          `json:"skill_id" gorm:"index"`
	Message     string        `json:"message"`
	Status      RequestStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	Requester   User          `json:"-" gorm:"foreignKey:RequesterID"`
	Recipient   User          `json:"-" gorm:"foreignKey:RecipientID"`
	Skill       Skill         `json:"-" gorm:"foreignKey:SkillID"`
}

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusRejected RequestStatus = "rejected"
)

type SkillRequestDto struct {
	ID        uint          `json:"id"`
	Requester UserDto       `json:"requester"`
	Recipient uint          `json:"recipient"`
	SkillID   uint          `json:"skill_id"`
	SkillName string        `json:"skill_name"`
	Message   string        `json:"message"`
	Status    RequestStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

func (r *SkillRequest) ToDto() SkillRequestDto {
	return SkillRequestDto{
		ID:        r.ID,
		Requester: r.Requester.ToDto(),
		Recipient: r.RecipientID,
		SkillID:   r.SkillID,
		SkillName: r.Skill.Name,
		Message:   r.Message,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
}
