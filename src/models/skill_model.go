package models

import (
	"gorm.io/gorm"
)

type Skill struct {
	gorm.Model
	Name string `json:"name" gorm:"uniqueIndex"`
}

type SkillRole string

const (
	SkillRoleTeach SkillRole = "teach"
	SkillRoleLearn SkillRole = "learn"
)

// ValidSkillRole reports whether s is one of the two declarable roles.
func ValidSkillRole(s SkillRole) bool {
	return s == SkillRoleTeach || s == SkillRoleLearn
}

// SkillDeclaration links a user to a skill for one role. The triple
// (user_id, skill_id, role) carries a unique index; duplicate declares fail
// at the store, not in application code.
type SkillDeclaration struct {
	gorm.Model
	UserID  uint      `json:"user_id" gorm:"index:idx_decl_user_role;uniqueIndex:idx_user_skill_role"`
	SkillID uint      `json:"skill_id" gorm:"index:idx_decl_skill_role;uniqueIndex:idx_user_skill_role"`
	Role    SkillRole `json:"role" gorm:"type:varchar(10);index:idx_decl_user_role;index:idx_decl_skill_role;uniqueIndex:idx_user_skill_role"`
	User    User      `json:"-" gorm:"foreignKey:UserID"`
	Skill   Skill     `json:"-" gorm:"foreignKey:SkillID"`
}

type SkillDeclarationDto struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	SkillID   uint      `json:"skill_id"`
	SkillName string    `json:"skill_name"`
	Role      SkillRole `json:"role"`
}

func (d *SkillDeclaration) ToDto() SkillDeclarationDto {
	return SkillDeclarationDto{
		ID:        d.ID,
		UserID:    d.UserID,
		SkillID:   d.SkillID,
		SkillName: d.Skill.Name,
		Role:      d.Role,
	}
}

// UserSkills is a user's declarations partitioned by role.
type UserSkills struct {
	Teach []SkillDeclarationDto `json:"teach"`
	Learn []SkillDeclarationDto `json:"learn"`
}

// SkillWithCount is the ListSkills projection: one row per skill plus how
// many declarations reference it.
type SkillWithCount struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	DeclarationCount int64  `json:"declaration_count"`
}

// Match pairs one teacher with one skill the caller wants to learn. A teacher
// covering several of the caller's skills appears once per skill.
type Match struct {
	Teacher   UserDto `json:"teacher"`
	SkillID   uint    `json:"skill_id"`
	SkillName string  `json:"skill_name"`
}
