// Package token signs and parses click tokens. A click token is minted on
// every tracking redirect and carried to the brand's site in the query
// string; the brand echoes it back on the conversion postback so conversions
// match their click without trusting caller-supplied ids.
package token

import (
	"errors"
	"time"

	"afftrack/config"

	"github.com/golang-jwt/jwt/v5"
)

type ClickClaims struct {
	ClickID uint `json:"click_id"`
	LinkID  uint `json:"link_id"`
	BrandID uint `json:"brand_id"`
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid click token")

// SignClick issues a token for a recorded click, valid for the configured
// attribution window.
func SignClick(cfg *config.TrackingConfig, clickID, linkID, brandID uint, now time.Time) (string, error) {
	claims := ClickClaims{
		ClickID: clickID,
		LinkID:  linkID,
		BrandID: brandID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "afftrack",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.TokenSecret))
}

// ParseClick validates a click token and returns its claims.
func ParseClick(cfg *config.TrackingConfig, tokenString string) (*ClickClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ClickClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.TokenSecret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*ClickClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
