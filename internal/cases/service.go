package cases

import (
	"context"
	"errors"

	"foreclosure-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("找不到該案件")

type Service struct {
	DB *gorm.DB
}

func (s *Service) GetAll(ctx context.Context) ([]models.Case, error) {
	var cs []models.Case
	if err := s.DB.WithContext(ctx).Order("created_at DESC").Find(&cs).Error; err != nil {
		return nil, err
	}
	return cs, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Case, error) {
	var c models.Case
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (s *Service) Create(ctx context.Context, c *models.Case) error {
	return s.DB.WithContext(ctx).Create(c).Error
}

// Update replaces the stored case with the submitted document (the client
// PUTs the whole form), keeping id, creator and creation time.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in *models.Case) (*models.Case, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	in.ID = existing.ID
	in.CreatedBy = existing.CreatedBy
	in.CreatedAt = existing.CreatedAt
	if err := s.DB.WithContext(ctx).Save(in).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Case{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
