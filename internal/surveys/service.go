package surveys

import (
	"context"
	"errors"

	"foreclosure-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("找不到該調查資料")

type Service struct {
	DB *gorm.DB
}

func (s *Service) ListByCase(ctx context.Context, caseID uuid.UUID) ([]models.Survey, error) {
	var ss []models.Survey
	if err := s.DB.WithContext(ctx).Where("case_id = ?", caseID).Find(&ss).Error; err != nil {
		return nil, err
	}
	return ss, nil
}

func (s *Service) Create(ctx context.Context, sv *models.Survey) error {
	return s.DB.WithContext(ctx).Create(sv).Error
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, in *models.Survey) (*models.Survey, error) {
	var existing models.Survey
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	in.ID = existing.ID
	in.CaseID = existing.CaseID
	if err := s.DB.WithContext(ctx).Save(in).Error; err != nil {
		return nil, err
	}
	return in, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Survey{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
