// Package base62 mints the short public codes that stand in for internal
// numeric ids on brands, affiliates, referrers, campaigns, links and payouts.
package base62

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// resaltPrime perturbs the combined value on collision retries. Large and odd
// so consecutive attempts land far apart in the code space.
const resaltPrime = 2654435761

var (
	ErrInvalidID        = errors.New("base62: id must be a positive integer")
	ErrInvalidTimestamp = errors.New("base62: createdAt must be a valid time")
	ErrGenerationFailed = errors.New("base62: code generation failed")
)

// Generate derives a deterministic, URL-safe code from an entity id and its
// creation time. The same (id, createdAt) pair always yields the same code.
// Codes are only probably unique; callers must back them with a unique
// constraint and retry via GenerateSalted on conflict.
func Generate(id int64, createdAt time.Time) (string, error) {
	return GenerateSalted(id, createdAt, 0)
}

// GenerateSalted is Generate with a collision-retry salt. Attempt 0 is the
// plain deterministic encoding; each further attempt shifts the combined
// value by attempt*resaltPrime before encoding.
func GenerateSalted(id int64, createdAt time.Time, attempt int) (string, error) {
	if id <= 0 {
		return "", ErrInvalidID
	}
	if createdAt.IsZero() {
		return "", ErrInvalidTimestamp
	}
	if attempt < 0 {
		return "", fmt.Errorf("%w: negative attempt %d", ErrGenerationFailed, attempt)
	}

	combined := createdAt.UnixMilli() + id + int64(attempt)*resaltPrime
	if combined < 0 {
		combined = -combined
	}
	return encode(combined), nil
}

func encode(n int64) string {
	if n == 0 {
		return string(alphabet[0])
	}
	var b strings.Builder
	buf := make([]byte, 0, 11)
	for n > 0 {
		buf = append(buf, alphabet[n%62])
		n /= 62
	}
	for i := len(buf) - 1; i >= 0; i-- {
		b.WriteByte(buf[i])
	}
	return b.String()
}

// Decode reverses encode. Used by tests to check round trips; the service
// never decodes codes back to ids.
func Decode(code string) (int64, error) {
	if code == "" {
		return 0, fmt.Errorf("%w: empty code", ErrGenerationFailed)
	}
	var n int64
	for _, c := range code {
		idx := strings.IndexRune(alphabet, c)
		if idx < 0 {
			return 0, fmt.Errorf("%w: invalid character %q", ErrGenerationFailed, c)
		}
		n = n*62 + int64(idx)
	}
	return n, nil
}
