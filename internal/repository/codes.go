package repository

import (
	"errors"
	"fmt"
	"time"

	"afftrack/pkg/base62"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxCodeAttempts = 5

// provisionalCode fills the not-null unique code column between insert and
// mint. The real code derives from the row id, which only exists after the
// insert, so creation is: insert with placeholder, then mint.
func provisionalCode() string {
	return "p-" + uuid.NewString()
}

// mintCode assigns the entity's short code from its id and creation time,
// retrying with a salted encoding when the unique constraint trips. The
// unique index is what actually guarantees uniqueness; the generator only
// proposes candidates.
func mintCode(tx *gorm.DB, model interface{}, id uint, createdAt time.Time) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := base62.GenerateSalted(int64(id), createdAt, attempt)
		if err != nil {
			return "", err
		}
		res := tx.Model(model).Where("id = ?", id).Update("code", code)
		if res.Error == nil {
			return code, nil
		}
		if !errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return "", res.Error
		}
	}
	return "", fmt.Errorf("failed to mint a unique code for id %d after %d attempts", id, maxCodeAttempts)
}
