package str

import (
	"fmt"

	"github.com/google/uuid"
)

// UUIDv4 returns a random (version 4, RFC 4122 variant) UUID in its
// canonical 36-character form.
func UUIDv4() (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("str: uuid: %w", err)
	}
	return u.String(), nil
}

// UUIDv4Bytes is like [UUIDv4] but returns the 16 raw bytes.
func UUIDv4Bytes() ([16]byte, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return [16]byte{}, fmt.Errorf("str: uuid: %w", err)
	}
	return u, nil
}
