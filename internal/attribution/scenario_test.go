package attribution

import (
	"regexp"
	"testing"
	"time"

	"afftrack/internal/domain"
	"afftrack/internal/models"
	"afftrack/pkg/base62"
)

// Walks the whole pipeline with in-memory collaborators: mint a brand code,
// create an affiliate link, record a click, convert it once, and reject the
// second conversion for the same click.
func TestClickToConversionScenario(t *testing.T) {
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	code, err := base62.Generate(1, t0)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(code) > 8 || !regexp.MustCompile(`^[0-9A-Za-z]+$`).MatchString(code) {
		t.Fatalf("brand code %q is not a short base62 string", code)
	}
	brand := &models.Brand{ID: 1, Code: code, Name: "Acme", Email: "acme@example.com", CreatedAt: t0}

	aff := &models.Affiliate{ID: 2, BrandID: brand.ID, Email: "partner@example.com"}
	link, err := NewLink(brand, domain.LinkKindAffiliate, aff, nil, nil)
	if err != nil {
		t.Fatalf("NewLink: %v", err)
	}
	link.ID = 3

	click, err := NewClick(link, "1.2.3.4", "UA", "vid-1", map[string]interface{}{})
	if err != nil {
		t.Fatalf("NewClick: %v", err)
	}
	if click.LinkID != link.ID {
		t.Fatalf("click.LinkID = %d, want %d", click.LinkID, link.ID)
	}
	click.ID = 4

	// Stand-in for the unique click_id constraint the repository layer provides.
	converted := map[uint]bool{}
	record := func() error {
		if converted[click.ID] {
			return ErrDuplicateConversion
		}
		converted[click.ID] = true
		return nil
	}

	sale := dec("100.00")
	conv, err := NewConversion(click, brand, &sale, nil, nil)
	if err != nil {
		t.Fatalf("NewConversion: %v", err)
	}
	if err := record(); err != nil {
		t.Fatalf("first conversion rejected: %v", err)
	}
	if conv.Status != domain.ConversionPending {
		t.Errorf("status = %q, want pending", conv.Status)
	}
	if !conv.CommissionAmount.IsZero() {
		t.Errorf("commission = %s, want 0.00", conv.CommissionAmount)
	}

	if _, err := NewConversion(click, brand, &sale, nil, nil); err != nil {
		t.Fatalf("NewConversion (second build): %v", err)
	}
	if err := record(); !IsCode(err, CodeDuplicateConversion) {
		t.Errorf("second conversion err = %v, want duplicate_conversion", err)
	}
}
