package refobjects

import (
	"context"
	"errors"

	"foreclosure-backend/internal/models"
	"foreclosure-backend/internal/pkg/validation"
	"foreclosure-backend/internal/valuation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound         = errors.New("找不到該參考物件")
	ErrScoreNotFound    = errors.New("找不到該評分")
	ErrInvalidBuildArea = errors.New("建物面積必須大於 0")
	ErrInvalidPrice     = errors.New("總價不得為負數")
	ErrInvalidRate      = errors.New("評分必須介於 -1 與 1 之間")
)

type Service struct {
	DB *gorm.DB
}

func (s *Service) ListByCase(ctx context.Context, caseID uuid.UUID) ([]models.ReferenceObject, error) {
	var ros []models.ReferenceObject
	err := s.DB.WithContext(ctx).Preload("Scores").
		Where("case_id = ?", caseID).Order("created_at ASC").Find(&ros).Error
	if err != nil {
		return nil, err
	}
	return ros, nil
}

func (s *Service) get(ctx context.Context, id uuid.UUID) (*models.ReferenceObject, error) {
	var ro models.ReferenceObject
	err := s.DB.WithContext(ctx).Preload("Scores").Where("id = ?", id).First(&ro).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ro, nil
}

func validateInputs(ro *models.ReferenceObject) error {
	if ro.ObjectBuildTotalPrice < 0 {
		return ErrInvalidPrice
	}
	// Zero build area would divide the unit price by zero; reject the write
	// before the pricing formula runs.
	if ro.ObjectBuildBuildArea <= 0 {
		return ErrInvalidBuildArea
	}
	return nil
}

// reprice recomputes AdjustedPrice from the object's own fields and its
// current scores. Runs on every object or score mutation.
func reprice(ro *models.ReferenceObject) {
	rates := make([]float64, len(ro.Scores))
	for i, sc := range ro.Scores {
		rates[i] = sc.ObjectBuildScorRate
	}
	ro.AdjustedPrice = valuation.AdjustedPrice(
		ro.ObjectBuildTotalPrice, ro.ObjectBuildBuildArea, rates)
}

func (s *Service) Create(ctx context.Context, ro *models.ReferenceObject) error {
	if err := validateInputs(ro); err != nil {
		return err
	}
	ro.Scores = nil
	reprice(ro)
	return s.DB.WithContext(ctx).Create(ro).Error
}

// Update replaces the object fields (scores are managed through their own
// routes) and reprices against the existing scores.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in *models.ReferenceObject) (*models.ReferenceObject, error) {
	existing, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateInputs(in); err != nil {
		return nil, err
	}
	in.ID = existing.ID
	in.CaseID = existing.CaseID
	in.CreatedAt = existing.CreatedAt
	in.Scores = existing.Scores
	reprice(in)
	if err := s.DB.WithContext(ctx).Omit("Scores").Save(in).Error; err != nil {
		return nil, err
	}
	return in, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&models.ReferenceObject{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("reference_object_id = ?", id).Delete(&models.ReferenceScore{}).Error
	})
}

// validateScore bounds the rate and normalizes it to 2-decimal precision.
func validateScore(sc *models.ReferenceScore) error {
	if !validation.IsValidScoreRate(sc.ObjectBuildScorRate) {
		return ErrInvalidRate
	}
	sc.ObjectBuildScorRate = valuation.Round2(sc.ObjectBuildScorRate)
	return nil
}

// repriceStored reloads the object with its current scores and persists the
// recomputed adjusted price.
func (s *Service) repriceStored(ctx context.Context, tx *gorm.DB, objectID uuid.UUID) (*models.ReferenceObject, error) {
	var ro models.ReferenceObject
	err := tx.WithContext(ctx).Preload("Scores").Where("id = ?", objectID).First(&ro).Error
	if err != nil {
		return nil, err
	}
	reprice(&ro)
	if err := tx.WithContext(ctx).Model(&ro).Update("adjusted_price", ro.AdjustedPrice).Error; err != nil {
		return nil, err
	}
	return &ro, nil
}

func (s *Service) AddScore(ctx context.Context, objectID uuid.UUID, sc *models.ReferenceScore) (*models.ReferenceObject, error) {
	if _, err := s.get(ctx, objectID); err != nil {
		return nil, err
	}
	if err := validateScore(sc); err != nil {
		return nil, err
	}
	sc.ReferenceObjectID = objectID
	var out *models.ReferenceObject
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sc).Error; err != nil {
			return err
		}
		ro, err := s.repriceStored(ctx, tx, objectID)
		if err != nil {
			return err
		}
		out = ro
		return nil
	})
	return out, err
}

func (s *Service) UpdateScore(ctx context.Context, objectID, scoreID uuid.UUID, in *models.ReferenceScore) (*models.ReferenceObject, error) {
	if err := validateScore(in); err != nil {
		return nil, err
	}
	var out *models.ReferenceObject
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sc models.ReferenceScore
		err := tx.Where("id = ? AND reference_object_id = ?", scoreID, objectID).First(&sc).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrScoreNotFound
			}
			return err
		}
		updates := map[string]interface{}{
			"object_build_scorer":      in.ObjectBuildScorer,
			"object_build_scor_rate":   in.ObjectBuildScorRate,
			"object_build_scor_reason": in.ObjectBuildScorReason,
		}
		if err := tx.Model(&sc).Updates(updates).Error; err != nil {
			return err
		}
		ro, err := s.repriceStored(ctx, tx, objectID)
		if err != nil {
			return err
		}
		out = ro
		return nil
	})
	return out, err
}

func (s *Service) DeleteScore(ctx context.Context, objectID, scoreID uuid.UUID) (*models.ReferenceObject, error) {
	var out *models.ReferenceObject
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND reference_object_id = ?", scoreID, objectID).
			Delete(&models.ReferenceScore{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrScoreNotFound
		}
		ro, err := s.repriceStored(ctx, tx, objectID)
		if err != nil {
			return err
		}
		out = ro
		return nil
	})
	return out, err
}
