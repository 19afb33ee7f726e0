package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/keshavagr273/ClassMate/src/apperrors"
	"github.com/keshavagr273/ClassMate/src/models"
)

// SkillMatchingService computes learner/teacher pairings. Read-only.
type SkillMatchingService interface {
	ComputeMatches(userID uint) ([]models.Match, error)
}

type DBSkillMatchingService struct {
	db *gorm.DB
}

func NewSkillMatchingService(db *gorm.DB) *DBSkillMatchingService {
	return &DBSkillMatchingService{db: db}
}

// ComputeMatches returns one Match per (teacher, skill) pair where the skill
// is in the caller's learn set and the teacher is someone else. Ordering is
// ascending by (skill_id, teacher user_id) so pagination and tests are
// stable. An empty learn set yields an empty result, not an error.
func (s *DBSkillMatchingService) ComputeMatches(userID uint) ([]models.Match, error) {
	var user models.User
	if err := s.db.Select("id").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User")
		}
		return nil, err
	}

	var learnSkillIDs []uint
	err := s.db.Model(&models.SkillDeclaration{}).
		Where("user_id = ? AND role = ?", userID, models.SkillRoleLearn).
		Pluck("skill_id", &learnSkillIDs).Error
	if err != nil {
		return nil, err
	}

	matches := make([]models.Match, 0)
	if len(learnSkillIDs) == 0 {
		return matches, nil
	}

	var declarations []models.SkillDeclaration
	err = s.db.Preload("User").Preload("Skill").
		Where("skill_id IN ? AND role = ? AND user_id <> ?", learnSkillIDs, models.SkillRoleTeach, userID).
		Order("skill_id ASC, user_id ASC").
		Find(&declarations).Error
	if err != nil {
		return nil, err
	}

	for i := range declarations {
		matches = append(matches, models.Match{
			Teacher:   declarations[i].User.ToDto(),
			SkillID:   declarations[i].SkillID,
			SkillName: declarations[i].Skill.Name,
		})
	}
	return matches, nil
}
