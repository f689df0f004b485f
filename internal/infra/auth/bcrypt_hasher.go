package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/Abros3006/business-tracker/config"
	"github.com/Abros3006/business-tracker/internal/domain/service"
)

// bcryptHasher implements service.SecretHasher using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher is the constructor for bcryptHasher. The cost comes from invite.bcryptCost.
func NewBcryptHasher(cfg *config.Config) service.SecretHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Invite != nil && cfg.Invite.BcryptCost >= bcrypt.MinCost && cfg.Invite.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Invite.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted bcrypt hash.
func (h *bcryptHasher) Hash(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)

	return string(hash), err
}

// Check reports whether secret matches hash.
func (h *bcryptHasher) Check(secret, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
