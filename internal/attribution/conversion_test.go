package attribution

import (
	"testing"

	"afftrack/internal/domain"
	"afftrack/internal/models"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestNewConversionDefaults(t *testing.T) {
	click := &models.Click{ID: 5, LinkID: 3}
	brand := testBrand(1)
	sale := dec("100.00")

	conv, err := NewConversion(click, brand, &sale, nil, nil)
	if err != nil {
		t.Fatalf("NewConversion: %v", err)
	}
	if conv.ClickID != 5 || conv.BrandID != 1 {
		t.Errorf("conversion = %+v", conv)
	}
	if conv.Status != domain.ConversionPending {
		t.Errorf("status = %q, want pending", conv.Status)
	}
	if !conv.CommissionAmount.IsZero() {
		t.Errorf("commission = %s, want 0", conv.CommissionAmount)
	}
	if conv.SaleAmount == nil || !conv.SaleAmount.Equal(sale) {
		t.Errorf("sale amount = %v", conv.SaleAmount)
	}
}

func TestNewConversionExplicitCommission(t *testing.T) {
	commission := dec("12.50")
	conv, err := NewConversion(&models.Click{ID: 5}, testBrand(1), nil, &commission, map[string]interface{}{"order": "A-9"})
	if err != nil {
		t.Fatalf("NewConversion: %v", err)
	}
	if !conv.CommissionAmount.Equal(commission) {
		t.Errorf("commission = %s, want %s", conv.CommissionAmount, commission)
	}
	if conv.Metadata["order"] != "A-9" {
		t.Errorf("metadata = %v", conv.Metadata)
	}
}

func TestNewConversionRejections(t *testing.T) {
	negative := dec("-1.00")
	tests := []struct {
		name       string
		click      *models.Click
		brand      *models.Brand
		sale       *decimal.Decimal
		commission *decimal.Decimal
		wantCode   Code
	}{
		{"missing click", nil, testBrand(1), nil, nil, CodeMissingField},
		{"unpersisted click", &models.Click{}, testBrand(1), nil, nil, CodeMissingField},
		{"missing brand", &models.Click{ID: 5}, nil, nil, nil, CodeMissingField},
		{"negative sale", &models.Click{ID: 5}, testBrand(1), &negative, nil, CodeValidation},
		{"negative commission", &models.Click{ID: 5}, testBrand(1), nil, &negative, CodeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConversion(tt.click, tt.brand, tt.sale, tt.commission, nil)
			if err == nil {
				t.Fatal("NewConversion succeeded, want error")
			}
			if !IsCode(err, tt.wantCode) {
				t.Errorf("err = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestNewClick(t *testing.T) {
	link := &models.Link{ID: 3, BrandID: 1}
	click, err := NewClick(link, "1.2.3.4", "UA", "vid-1", map[string]interface{}{"sub1": "email"})
	if err != nil {
		t.Fatalf("NewClick: %v", err)
	}
	if click.LinkID != 3 || click.IPAddress != "1.2.3.4" || click.UserAgent != "UA" {
		t.Errorf("click = %+v", click)
	}
	if click.SubIDs["sub1"] != "email" {
		t.Errorf("sub ids = %v", click.SubIDs)
	}

	if _, err := NewClick(nil, "", "", "", nil); !IsCode(err, CodeMissingField) {
		t.Errorf("nil link err = %v, want missing field", err)
	}
}

func TestComputeCommission(t *testing.T) {
	sale := dec("100.00")
	tests := []struct {
		name string
		rate *models.CommissionRate
		sale *decimal.Decimal
		want string
	}{
		{"nil rate", nil, &sale, "0"},
		{"fixed", &models.CommissionRate{Kind: domain.RateKindFixed, Value: dec("7.50")}, &sale, "7.5"},
		{"fixed ignores sale", &models.CommissionRate{Kind: domain.RateKindFixed, Value: dec("7.50")}, nil, "7.5"},
		{"percent", &models.CommissionRate{Kind: domain.RateKindPercent, Value: dec("15")}, &sale, "15"},
		{"percent rounds", &models.CommissionRate{Kind: domain.RateKindPercent, Value: dec("12.5")}, decPtr("33.33"), "4.17"},
		{"percent without sale", &models.CommissionRate{Kind: domain.RateKindPercent, Value: dec("15")}, nil, "0"},
		{"unknown kind", &models.CommissionRate{Kind: "tiered", Value: dec("15")}, &sale, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeCommission(tt.rate, tt.sale)
			if got.String() != tt.want {
				t.Errorf("ComputeCommission = %s, want %s", got, tt.want)
			}
		})
	}
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}
