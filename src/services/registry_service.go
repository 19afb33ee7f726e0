package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/keshavagr273/ClassMate/src/apperrors"
	"github.com/keshavagr273/ClassMate/src/models"
)

// SkillRegistryService owns each user's teach/learn declarations.
type SkillRegistryService interface {
	Declare(userID uint, skillName string, role models.SkillRole) (*models.SkillDeclaration, error)
	ListForUser(userID uint) (*models.UserSkills, error)
	Remove(declarationID, requestingUserID uint) error
}

type DBSkillRegistryService struct {
	db      *gorm.DB
	catalog SkillCatalogService
}

func NewSkillRegistryService(db *gorm.DB, catalog SkillCatalogService) *DBSkillRegistryService {
	return &DBSkillRegistryService{db: db, catalog: catalog}
}

// Declare records that the user teaches or learns the named skill. The
// (user, skill, role) triple is unique at the store; a duplicate declare
// surfaces as a ConflictError naming the exact duplicate.
func (s *DBSkillRegistryService) Declare(userID uint, skillName string, role models.SkillRole) (*models.SkillDeclaration, error) {
	if !models.ValidSkillRole(role) {
		return nil, apperrors.Validation("Role must be either 'teach' or 'learn'")
	}

	skill, err := s.catalog.ResolveOrCreate(skillName)
	if err != nil {
		return nil, err
	}

	declaration := models.SkillDeclaration{
		UserID:  userID,
		SkillID: skill.ID,
		Role:    role,
	}
	if err := s.db.Create(&declaration).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict(fmt.Sprintf("You have already added %q as a %s skill", skill.Name, role))
		}
		return nil, err
	}

	declaration.Skill = *skill
	return &declaration, nil
}

// ListForUser returns the user's declarations partitioned by role, each
// joined with the skill name.
func (s *DBSkillRegistryService) ListForUser(userID uint) (*models.UserSkills, error) {
	result := &models.UserSkills{
		Teach: make([]models.SkillDeclarationDto, 0),
		Learn: make([]models.SkillDeclarationDto, 0),
	}

	var declarations []models.SkillDeclaration
	err := s.db.Preload("Skill").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&declarations).Error
	if err != nil {
		return nil, err
	}

	for i := range declarations {
		dto := declarations[i].ToDto()
		if declarations[i].Role == models.SkillRoleTeach {
			result.Teach = append(result.Teach, dto)
		} else {
			result.Learn = append(result.Learn, dto)
		}
	}
	return result, nil
}

// Remove deletes a declaration, but only for its owner. Related skill
// requests are left untouched: withdrawing a skill does not retract
// conversations already started over it.
func (s *DBSkillRegistryService) Remove(declarationID, requestingUserID uint) error {
	var declaration models.SkillDeclaration
	err := s.db.First(&declaration, declarationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Skill declaration")
		}
		return err
	}

	if declaration.UserID != requestingUserID {
		return apperrors.Forbidden("You can only remove your own skills")
	}

	// Hard delete: a soft-deleted row would keep occupying the unique
	// triple and block re-declaring the same skill and role later.
	return s.db.Unscoped().Delete(&declaration).Error
}
