package auth

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"dialpool/internal/shared/config"
	"dialpool/internal/shared/errors"
)

const (
	defaultMinPasswordLength = 8
	// bcrypt ignores everything past 72 bytes, so longer passwords would
	// silently verify against their prefix.
	maxPasswordBytes = 72
)

// AgentPasswordPolicy decides which agent passwords are acceptable and
// stores the accepted ones as bcrypt hashes.
type AgentPasswordPolicy struct {
	cost      int
	minLength int
}

// NewAgentPasswordPolicy falls back to bcrypt.DefaultCost for an out of
// range cost and to 8 characters for a non-positive minimum length.
func NewAgentPasswordPolicy(cfg config.PasswordConfig) *AgentPasswordPolicy {
	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	minLength := cfg.MinLength
	if minLength <= 0 {
		minLength = defaultMinPasswordLength
	}
	return &AgentPasswordPolicy{cost: cost, minLength: minLength}
}

// Check reports why password is rejected, as a validation error.
func (p *AgentPasswordPolicy) Check(password string) error {
	if utf8.RuneCountInString(password) < p.minLength {
		return errors.NewValidationError(fmt.Sprintf("password must be at least %d characters", p.minLength))
	}
	if len(password) > maxPasswordBytes {
		return errors.NewValidationError(fmt.Sprintf("password must be at most %d bytes", maxPasswordBytes))
	}
	return nil
}

// Hash rejects passwords that fail Check before hashing.
func (p *AgentPasswordPolicy) Hash(password string) (string, error) {
	if err := p.Check(password); err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash agent password: %w", err)
	}
	return string(hash), nil
}

// Verify returns the same error for a wrong password and a malformed hash.
func (p *AgentPasswordPolicy) Verify(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return fmt.Errorf("password verification failed")
	}
	return nil
}
