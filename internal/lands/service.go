package lands

import (
	"context"
	"errors"
	"time"

	"foreclosure-backend/internal/models"
	"foreclosure-backend/internal/valuation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("找不到該土地資料")

type Service struct {
	DB *gorm.DB
}

// recalculate derives the owned area from the current record. One code path
// for create and update, so a partial edit can never carry a stale value.
func recalculate(l *models.Land) {
	l.LandUpdated = time.Now()
	l.CalculatedArea = valuation.AdjustedArea(
		l.LandArea, l.LandHoldingPointPersonal, l.LandHoldingPointAll, 1)
}

func (s *Service) ListByCase(ctx context.Context, caseID uuid.UUID) ([]models.Land, error) {
	var ls []models.Land
	if err := s.DB.WithContext(ctx).Where("case_id = ?", caseID).Find(&ls).Error; err != nil {
		return nil, err
	}
	return ls, nil
}

// Summary is the read-time area projection for the land list view.
func (s *Service) Summary(ctx context.Context, caseID uuid.UUID) (m2, ping float64, err error) {
	ls, err := s.ListByCase(ctx, caseID)
	if err != nil {
		return 0, 0, err
	}
	areas := make([]float64, len(ls))
	for i, l := range ls {
		areas[i] = l.CalculatedArea
	}
	m2, ping = valuation.SummarizeAreas(areas)
	return m2, ping, nil
}

func (s *Service) Create(ctx context.Context, l *models.Land) error {
	recalculate(l)
	return s.DB.WithContext(ctx).Create(l).Error
}

// Update replaces the stored land with the submitted document and re-derives
// the calculated area.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in *models.Land) (*models.Land, error) {
	var existing models.Land
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
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Land{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
