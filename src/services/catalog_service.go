package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/keshavagr273/ClassMate/src/apperrors"
	"github.com/keshavagr273/ClassMate/src/models"
)

// SkillCatalogService owns the universe of skill names.
type SkillCatalogService interface {
	ResolveOrCreate(name string) (*models.Skill, error)
	ListAll() ([]models.SkillWithCount, error)
}

type DBSkillCatalogService struct {
	db *gorm.DB
}

func NewSkillCatalogService(db *gorm.DB) *DBSkillCatalogService {
	return &DBSkillCatalogService{db: db}
}

// ValidateSkillName rejects empty or oversized names. Names are stored
// exactly as given: no trimming or case folding happens before lookup, so
// "Python" and "python " are distinct skills.
func ValidateSkillName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return apperrors.Validation("Skill name must be a non-empty string")
	}
	if len(trimmed) > 100 {
		return apperrors.Validation("Skill name must be less than 100 characters")
	}
	return nil
}

// ResolveOrCreate returns the skill with the given name, creating it on
// first reference. Two concurrent callers racing on a new name are settled
// by the unique index: the loser's create fails with a duplicate key and it
// fetches the winner's row.
func (s *DBSkillCatalogService) ResolveOrCreate(name string) (*models.Skill, error) {
	if err := ValidateSkillName(name); err != nil {
		return nil, err
	}

	var skill models.Skill
	err := s.db.Where("name = ?", name).First(&skill).Error
	if err == nil {
		return &skill, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	skill = models.Skill{Name: name}
	if err := s.db.Create(&skill).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := s.db.Where("name = ?", name).First(&skill).Error; err != nil {
				return nil, err
			}
			return &skill, nil
		}
		return nil, err
	}

	return &skill, nil
}

// ListAll returns every skill with the number of declarations referencing it,
// ordered by name.
func (s *DBSkillCatalogService) ListAll() ([]models.SkillWithCount, error) {
	skills := make([]models.SkillWithCount, 0)
	err := s.db.Model(&models.Skill{}).
		Select("skills.id, skills.name, COUNT(skill_declarations.id) AS declaration_count").
		Joins("LEFT JOIN skill_declarations ON skill_declarations.skill_id = skills.id").
		Group("skills.id").
		Order("skills.name ASC").
		Scan(&skills).Error
	if err != nil {
		return nil, err
	}
	return skills, nil
}
