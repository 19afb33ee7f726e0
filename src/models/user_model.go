package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"uniqueIndex"`
	Password string `json:"-"`
	Branch   string `json:"branch"`
	Semester int    `json:"semester"`
}

// UserDto is the projection embedded in matches and requests.
type UserDto struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Branch   string `json:"branch,omitempty"`
	Semester int    `json:"semester,omitempty"`
}

func (u *User) ToDto() UserDto {
	return UserDto{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Branch:   u.Branch,
		Semester: u.Semester,
	}
}
