package hashing

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptEncoding is the base64 alphabet bcrypt uses for salts and digests.
var bcryptEncoding = base64.NewEncoding("./ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789").
	WithPadding(base64.NoPadding)

// BcryptSalt returns a random bcrypt salt prefix ("$2y$NN$" followed by 22
// salt characters) for the given cost. Returns [ErrInvalidOption] if rounds
// is outside [bcrypt.MinCost, bcrypt.MaxCost].
func BcryptSalt(rounds int) (string, error) {
	if rounds < bcrypt.MinCost || rounds > bcrypt.MaxCost {
		return "", fmt.Errorf("%w: bcrypt cost %d must be in [%d, %d]",
			ErrInvalidOption, rounds, bcrypt.MinCost, bcrypt.MaxCost)
	}
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("hashing: bcrypt: failed to read salt: %w", err)
	}
	return fmt.Sprintf("$2y$%02d$%s", rounds, bcryptEncoding.EncodeToString(raw)), nil
}
