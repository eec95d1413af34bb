package builds

import (
	"context"
	"errors"
	"time"

	"foreclosure-backend/internal/models"
	"foreclosure-backend/internal/valuation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("找不到該建物資料")

type Service struct {
	DB *gorm.DB
}

// recalculate derives the owned area from the current record, halving it for
// the 增建-持分後坪數打對折 type-use. Same path for create and update.
func recalculate(b *models.Build) {
	b.BuildUpdated = time.Now()
	b.CalculatedArea = valuation.AdjustedArea(
		b.BuildArea, b.BuildHoldingPointPersonal, b.BuildHoldingPointAll,
		valuation.BuildCoefficient(b.BuildTypeUse))
}

func (s *Service) ListByCase(ctx context.Context, caseID uuid.UUID) ([]models.Build, error) {
	var bs []models.Build
	if err := s.DB.WithContext(ctx).Where("case_id = ?", caseID).Find(&bs).Error; err != nil {
		return nil, err
	}
	return bs, nil
}

// Summary is the read-time area projection for the build list view.
func (s *Service) Summary(ctx context.Context, caseID uuid.UUID) (m2, ping float64, err error) {
	bs, err := s.ListByCase(ctx, caseID)
	if err != nil {
		return 0, 0, err
	}
	areas := make([]float64, len(bs))
	for i, b := range bs {
		areas[i] = b.CalculatedArea
	}
	m2, ping = valuation.SummarizeAreas(areas)
	return m2, ping, nil
}

func (s *Service) Create(ctx context.Context, b *models.Build) error {
	recalculate(b)
	return s.DB.WithContext(ctx).Create(b).Error
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, in *models.Build) (*models.Build, error) {
	var existing models.Build
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	in.ID = existing.ID
	in.CaseID = existing.CaseID
	recalculate(in)
	if err := s.DB.WithContext(ctx).Save(in).Error; err != nil {
		return nil, err
	}
	return in, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Build{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
