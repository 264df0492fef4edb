package base62

import (
	"regexp"
	"testing"
	"time"
)

var codePattern = regexp.MustCompile(`^[0-9A-Za-z]+$`)

func TestGenerateDeterministic(t *testing.T) {
	createdAt := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	a, err := Generate(42, createdAt)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(42, createdAt)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if a != b {
		t.Errorf("same inputs produced different codes: %q vs %q", a, b)
	}
}

func TestGenerateAlphabet(t *testing.T) {
	createdAt := time.Now()
	for _, id := range []int64{1, 7, 1000, 1 << 40} {
		code, err := Generate(id, createdAt)
		if err != nil {
			t.Fatalf("Generate(%d): %v", id, err)
		}
		if code == "" {
			t.Fatalf("Generate(%d) returned empty code", id)
		}
		if !codePattern.MatchString(code) {
			t.Errorf("Generate(%d) = %q, contains characters outside [0-9A-Za-z]", id, code)
		}
	}
}

func TestGenerateRejectsBadInputs(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name      string
		id        int64
		createdAt time.Time
		want      error
	}{
		{"zero id", 0, now, ErrInvalidID},
		{"negative id", -5, now, ErrInvalidID},
		{"zero time", 42, time.Time{}, ErrInvalidTimestamp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Generate(tt.id, tt.createdAt); err != tt.want {
				t.Errorf("Generate(%d, %v) err = %v, want %v", tt.id, tt.createdAt, err, tt.want)
			}
		})
	}
}

func TestGenerateEncodesTimestampPlusID(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	code, err := Generate(1, createdAt)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	n, err := Decode(code)
	if err != nil {
		t.Fatalf("Decode(%q): %v", code, err)
	}
	if want := createdAt.UnixMilli() + 1; n != want {
		t.Errorf("Decode(%q) = %d, want %d", code, n, want)
	}
	// A millisecond timestamp stays within 8 base62 digits for centuries.
	if len(code) > 8 {
		t.Errorf("code %q longer than 8 characters", code)
	}
}

func TestGenerateSaltedPerturbsCode(t *testing.T) {
	createdAt := time.Now()
	plain, err := GenerateSalted(9, createdAt, 0)
	if err != nil {
		t.Fatalf("GenerateSalted attempt 0: %v", err)
	}
	base, err := Generate(9, createdAt)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if plain != base {
		t.Errorf("attempt 0 should match Generate: %q vs %q", plain, base)
	}
	seen := map[string]bool{plain: true}
	for attempt := 1; attempt <= 5; attempt++ {
		code, err := GenerateSalted(9, createdAt, attempt)
		if err != nil {
			t.Fatalf("GenerateSalted attempt %d: %v", attempt, err)
		}
		if seen[code] {
			t.Errorf("attempt %d produced a code already seen: %q", attempt, code)
		}
		seen[code] = true
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, 61, 62, 3843, 238327, 1747214813042} {
		got, err := Decode(encode(n))
		if err != nil {
			t.Fatalf("Decode(encode(%d)): %v", n, err)
		}
		if got != n {
			t.Errorf("round trip of %d = %d", n, got)
		}
	}
}

func TestDecodeRejectsInvalid(t *testing.T) {
	for _, code := range []string{"", "ab-cd", "co_de", "✗"} {
		if _, err := Decode(code); err == nil {
			t.Errorf("Decode(%q) succeeded, want error", code)
		}
	}
}
