package parties

import (
	"context"
	"errors"

	"foreclosure-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPersonNotFound = errors.New("找不到該債權人")
	ErrDebtorNotFound = errors.New("找不到該債務人")
	ErrNameRequired   = errors.New("請輸入姓名")
)

// Service covers both party kinds on a case: creditor contacts (persons)
// and debtors.
type Service struct {
	DB *gorm.DB
}

func (s *Service) ListPersons(ctx context.Context, caseID uuid.UUID) ([]models.Person, error) {
	var ps []models.Person
	if err := s.DB.WithContext(ctx).Where("case_id = ?", caseID).Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}

func (s *Service) CreatePerson(ctx context.Context, p *models.Person) error {
	if p.Name == "" {
		return ErrNameRequired
	}
	return s.DB.WithContext(ctx).Create(p).Error
}

func (s *Service) UpdatePerson(ctx context.Context, id uuid.UUID, in *models.Person) (*models.Person, error) {
	var existing models.Person
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrPersonNotFound
		}
		return nil, err
	}
	if in.Name == "" {
		return nil, ErrNameRequired
	}
	in.ID = existing.ID
	in.CaseID = existing.CaseID
	in.CreatedAt = existing.CreatedAt
	if err := s.DB.WithContext(ctx).Save(in).Error; err != nil {
		return nil, err
	}
	return in, nil
}

func (s *Service) DeletePerson(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Person{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPersonNotFound
	}
	return nil
}

func (s *Service) ListDebtors(ctx context.Context, caseID uuid.UUID) ([]models.Debtor, error) {
	var ds []models.Debtor
	if err := s.DB.WithContext(ctx).Where("case_id = ?", caseID).Find(&ds).Error; err != nil {
		return nil, err
	}
	return ds, nil
}

func (s *Service) CreateDebtor(ctx context.Context, d *models.Debtor) error {
	if d.Name == "" {
		return ErrNameRequired
	}
	return s.DB.WithContext(ctx).Create(d).Error
}

func (s *Service) UpdateDebtor(ctx context.Context, id uuid.UUID, in *models.Debtor) (*models.Debtor, error) {
	var existing models.Debtor
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrDebtorNotFound
		}
		return nil, err
	}
	if in.Name == "" {
		return nil, ErrNameRequired
	}
	in.ID = existing.ID
	in.CaseID = existing.CaseID
	in.CreatedAt = existing.CreatedAt
	if err := s.DB.WithContext(ctx).Save(in).Error; err != nil {
		return nil, err
	}
	return in, nil
}

func (s *Service) DeleteDebtor(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Debtor{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrDebtorNotFound
	}
	return nil
}
