package auctions

import (
	"context"
	"errors"

	"foreclosure-backend/internal/models"
	"foreclosure-backend/internal/valuation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound    = errors.New("找不到該拍賣資訊")
	ErrInvalidType = errors.New("拍別必須為一拍、二拍、三拍或四拍")
)

var validTypes = map[string]bool{
	valuation.FirstRound:  true,
	valuation.SecondRound: true,
	valuation.ThirdRound:  true,
	valuation.FourthRound: true,
}

type Service struct {
	DB *gorm.DB
}

// refresh re-derives the four CP figures from a fresh read of the case's
// builds and reference objects. Runs on every auction write — never
// incrementally maintained.
func (s *Service) refresh(ctx context.Context, a *models.Auction) error {
	var builds []models.Build
	if err := s.DB.WithContext(ctx).Where("case_id = ?", a.CaseID).Find(&builds).Error; err != nil {
		return err
	}
	areas := make([]float64, len(builds))
	for i, b := range builds {
		areas[i] = b.CalculatedArea
	}

	var refs []models.ReferenceObject
	if err := s.DB.WithContext(ctx).Where("case_id = ?", a.CaseID).Find(&refs).Error; err != nil {
		return err
	}
	prices := make([]float64, len(refs))
	for i, r := range refs {
		prices[i] = r.AdjustedPrice
	}

	f := valuation.AuctionFigures(float64(a.AuctionFloorPrice), areas, prices)
	a.PingValueTotal = f.PingValueTotal
	a.PingPriceTotal = f.PingPriceTotal
	a.NowPriceTotal = f.NowPriceTotal
	a.PingCP = f.PingCP
	return nil
}

func validate(a *models.Auction) error {
	if !validTypes[a.AuctionType] {
		return ErrInvalidType
	}
	if a.AuctionFloorPrice < 0 || a.AuctionClick < 0 || a.AuctionMonitor < 0 ||
		a.AuctionCaseCount < 0 || a.AuctionMargin < 0 {
		return errors.New("數值欄位不得為負數")
	}
	return nil
}

func (s *Service) ListByCase(ctx context.Context, caseID uuid.UUID) ([]models.Auction, error) {
	var as []models.Auction
	err := s.DB.WithContext(ctx).Where("case_id = ?", caseID).
		Order("auction_date ASC").Find(&as).Error
	if err != nil {
		return nil, err
	}
	return as, nil
}

func (s *Service) Create(ctx context.Context, a *models.Auction) error {
	if err := validate(a); err != nil {
		return err
	}
	if err := s.refresh(ctx, a); err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Create(a).Error
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, in *models.Auction) (*models.Auction, error) {
	var existing models.Auction
	if err := s.DB.WithContext(ctx).Where("id = ?", id).First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := validate(in); err != nil {
		return nil, err
	}
	in.ID = existing.ID
	in.CaseID = existing.CaseID
	in.CreatedAt = existing.CreatedAt
	if err := s.refresh(ctx, in); err != nil {
		return nil, err
	}
	if err := s.DB.WithContext(ctx).Save(in).Error; err != nil {
		return nil, err
	}
	return in, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Auction{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
