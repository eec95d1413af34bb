package actionresults

import (
	"context"
	"errors"

	"foreclosure-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("找不到該執行結果")
	ErrInvalidValue = errors.New("無效的執行結果")
)

type Service struct {
	DB *gorm.DB
}

func validResult(v string) bool {
	if v == "" {
		return true
	}
	for _, allowed := range models.ActionResultValues {
		if v == allowed {
			return true
		}
	}
	return false
}

func (s *Service) ListByCase(ctx context.Context, caseID uuid.UUID) ([]models.ActionResult, error) {
	var rs []models.ActionResult
	if err := s.DB.WithContext(ctx).Where("case_id = ?", caseID).Find(&rs).Error; err != nil {
		return nil, err
	}
	return rs, nil
}

func (s *Service) Create(ctx context.Context, r *models.ActionResult) error {
	if !validResult(r.ActionResult) {
		return ErrInvalidValue
	}
	return s.DB.WithContext(ctx).Create(r).Error
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, in *models.ActionResult) (*models.ActionResult, error) {
	var existing models.ActionResult
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !validResult(in.ActionResult) {
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
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.ActionResult{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
