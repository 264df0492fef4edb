package service

import (
	"fmt"

	"afftrack/internal/attribution"
	"afftrack/internal/domain"
	"afftrack/internal/metrics"
	"afftrack/internal/models"
	"afftrack/internal/repository"

	"github.com/shopspring/decimal"
)

// PayoutService creates payouts against accrued commission and drives their
// status workflow.
type PayoutService struct {
	brandRepo     *repository.BrandRepository
	affiliateRepo *repository.AffiliateRepository
	payoutRepo    *repository.PayoutRepository
}

func NewPayoutService(
	brandRepo *repository.BrandRepository,
	affiliateRepo *repository.AffiliateRepository,
	payoutRepo *repository.PayoutRepository,
) *PayoutService {
	return &PayoutService{
		brandRepo:     brandRepo,
		affiliateRepo: affiliateRepo,
		payoutRepo:    payoutRepo,
	}
}

// Create opens a pending payout. With no explicit amount the affiliate's full
// accrued balance is paid out. Amounts above the accrued balance are refused
// so a brand cannot overdraw commission that was never earned.
func (s *PayoutService) Create(brandID, affiliateID uint, amount *decimal.Decimal, notes string) (*models.Payout, error) {
	brand, err := s.brandRepo.GetByID(brandID)
	if err != nil {
		return nil, notFoundAs(err, "brand_id", "brand not found")
	}
	affiliate, err := s.affiliateRepo.GetByID(affiliateID)
	if err != nil {
		return nil, notFoundAs(err, "affiliate_id", "affiliate not found")
	}
	if affiliate.BrandID != brand.ID {
		return nil, &attribution.Error{
			Code:    attribution.CodeValidation,
			Field:   "affiliate_id",
			Message: "affiliate belongs to another brand",
		}
	}

	balance, err := s.payoutRepo.AccruedBalance(brand.ID, affiliate.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute accrued balance: %w", err)
	}
	if amount == nil {
		amount = &balance
	}
	if !amount.IsPositive() {
		return nil, &attribution.Error{
			Code:    attribution.CodeValidation,
			Field:   "amount",
			Message: "payout amount must be positive",
		}
	}
	if amount.GreaterThan(balance) {
		return nil, &attribution.Error{
			Code:    attribution.CodeValidation,
			Field:   "amount",
			Message: fmt.Sprintf("amount %s exceeds accrued balance %s", amount, balance),
		}
	}

	payout := &models.Payout{
		BrandID:     brand.ID,
		AffiliateID: affiliate.ID,
		Amount:      amount.Round(2),
		Status:      domain.PayoutPending,
		Notes:       notes,
	}
	if err := s.payoutRepo.Create(payout); err != nil {
		return nil, fmt.Errorf("failed to create payout: %w", err)
	}
	return payout, nil
}

// Transition moves a payout to its next status. The state machine validates
// the step in memory; the repository's conditional update settles races so
// exactly one concurrent transition wins.
func (s *PayoutService) Transition(payoutID uint, next string, ctx attribution.TransitionContext) (*models.Payout, error) {
	payout, err := s.payoutRepo.GetByID(payoutID)
	if err != nil {
		return nil, notFoundAs(err, "payout_id", "payout not found")
	}

	from := payout.Status
	if err := attribution.TransitionPayout(payout, next, ctx); err != nil {
		return nil, err
	}
	if err := s.payoutRepo.SaveTransition(payout, from); err != nil {
		return nil, err
	}
	metrics.RecordPayoutTransition(next)
	return payout, nil
}

// Balance exposes the affiliate's remaining payable commission.
func (s *PayoutService) Balance(brandID, affiliateID uint) (decimal.Decimal, error) {
	return s.payoutRepo.AccruedBalance(brandID, affiliateID)
}
