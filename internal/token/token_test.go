package token

import (
	"testing"
	"time"

	"afftrack/config"
)

func testCfg(ttl time.Duration) *config.TrackingConfig {
	return &config.TrackingConfig{TokenSecret: "test-secret", TokenTTL: ttl}
}

func TestSignAndParseClick(t *testing.T) {
	cfg := testCfg(time.Hour)
	signed, err := SignClick(cfg, 5, 3, 1, time.Now())
	if err != nil {
		t.Fatalf("SignClick: %v", err)
	}
	claims, err := ParseClick(cfg, signed)
	if err != nil {
		t.Fatalf("ParseClick: %v", err)
	}
	if claims.ClickID != 5 || claims.LinkID != 3 || claims.BrandID != 1 {
		t.Errorf("claims = %+v", claims)
	}
}

func TestParseClickRejectsTampering(t *testing.T) {
	cfg := testCfg(time.Hour)
	signed, err := SignClick(cfg, 5, 3, 1, time.Now())
	if err != nil {
		t.Fatalf("SignClick: %v", err)
	}

	other := &config.TrackingConfig{TokenSecret: "other-secret", TokenTTL: time.Hour}
	if _, err := ParseClick(other, signed); err != ErrInvalidToken {
		t.Errorf("wrong secret err = %v, want ErrInvalidToken", err)
	}
	if _, err := ParseClick(cfg, signed+"x"); err != ErrInvalidToken {
		t.Errorf("tampered token err = %v, want ErrInvalidToken", err)
	}
	if _, err := ParseClick(cfg, "not-a-token"); err != ErrInvalidToken {
		t.Errorf("garbage token err = %v, want ErrInvalidToken", err)
	}
}

func TestParseClickRejectsExpired(t *testing.T) {
	cfg := testCfg(time.Minute)
	signed, err := SignClick(cfg, 5, 3, 1, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("SignClick: %v", err)
	}
	if _, err := ParseClick(cfg, signed); err != ErrInvalidToken {
		t.Errorf("expired token err = %v, want ErrInvalidToken", err)
	}
}
