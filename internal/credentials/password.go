package credentials

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordService hashes and verifies passwords with bcrypt. The cost is
// injectable so tests can run at bcrypt.MinCost.
type PasswordService struct {
	cost int
}

// NewPasswordService constructs a PasswordService. A cost outside bcrypt's
// valid range falls back to bcrypt.DefaultCost.
func NewPasswordService(cost int) *PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordService{cost: cost}
}

// Hash returns a salted bcrypt digest of the password. The digest embeds its
// own salt, so hashing the same password twice yields different digests.
func (p *PasswordService) Hash(password string) (string, error) {
	if len(password) > 72 {
		// bcrypt silently truncates beyond 72 bytes; reject instead.
		return "", errors.New("password must be 72 bytes or fewer")
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether password matches the digest. The comparison inside
// bcrypt is constant-time.
func (p *PasswordService) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
