package decisions

import (
	"context"
	"errors"

	"foreclosure-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("找不到該最終判定")
	ErrInvalidValue = errors.New("無效的最終判定")
)

type Service struct {
	DB *gorm.DB
}

func validDecision(v string) bool {
	if v == "" {
		return true // model default applies
	}
	for _, allowed := range models.FinalDecisionValues {
		if v == allowed {
			return true
		}
	}
	return false
}

func (s *Service) ListByCase(ctx context.Context, caseID uuid.UUID) ([]models.FinalDecision, error) {
	var fs []models.FinalDecision
	if err := s.DB.WithContext(ctx).Where("case_id = ?", caseID).Find(&fs).Error; err != nil {
		return nil, err
	}
	return fs, nil
}

func (s *Service) Create(ctx context.Context, f *models.FinalDecision) error {
	if !validDecision(f.FinalDecision) {
		return ErrInvalidValue
	}
	return s.DB.WithContext(ctx).Create(f).Error
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, in *models.FinalDecision) (*models.FinalDecision, error) {
	var existing models.FinalDecision
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !validDecision(in.FinalDecision) {
		return nil, ErrInvalidValue
	}
	in.ID = existing.ID
	in.CaseID = existing.CaseID
	if err := s.DB.WithContext(ctx).Save(in).Error; err != nil {
		return nil, err
	}
	return in, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.FinalDecision{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
