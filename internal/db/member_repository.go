package db

import (
	"errors"

	"github.com/kinwise-app/kinwise/internal/models"
	"gorm.io/gorm"
)

type MemberRepository struct {
	database *gorm.DB
}

func NewMemberRepository(database *gorm.DB) *MemberRepository {
	return &MemberRepository{database: database}
}

// FindByID loads a member with its subscription type joined. The boolean is
// false when no such member exists; infra errors are returned as-is.
func (repo *MemberRepository) FindByID(memberID uint) (models.Member, bool, error) {
	var member models.Member
	err := repo.database.Preload("MemberType").First(&member, memberID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Member{}, false, nil
	}
	if err != nil {
		return models.Member{}, false, err
	}
	return member, true, nil
}

// ListNotifiable enumerates the coarse candidate set for a driver run: active
// members that carry a subscription type. Fine-grained eligibility is decided
// per member afterwards.
func (repo *MemberRepository) ListNotifiable() ([]models.Member, error) {
	members := make([]models.Member, 0)
	if err := repo.database.
		Preload("MemberType").
		Where("is_active = ? AND member_type_id IS NOT NULL", true).
		Order("id ASC").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}
