package agent

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	DefaultDailyQuota = 200
	MaxDailyQuota     = 10000
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9._-]{3,50}$`)

// Agent is an outbound caller who receives records.
type Agent struct {
	id           uint
	username     string
	displayName  string
	active       bool
	dailyQuota   int
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewAgent(username, displayName, passwordHash string, dailyQuota int, now time.Time) (*Agent, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if !usernamePattern.MatchString(username) {
		return nil, fmt.Errorf("username must be 3-50 characters of a-z, 0-9, dot, dash or underscore")
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, fmt.Errorf("display name is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if dailyQuota == 0 {
		dailyQuota = DefaultDailyQuota
	}
	if err := validateQuota(dailyQuota); err != nil {
		return nil, err
	}

	return &Agent{
		username:     username,
		displayName:  displayName,
		active:       true,
		dailyQuota:   dailyQuota,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructAgent(
	id uint,
	username, displayName string,
	active bool,
	dailyQuota int,
	passwordHash string,
	createdAt, updatedAt time.Time,
) (*Agent, error) {
	if id == 0 {
		return nil, fmt.Errorf("agent ID cannot be zero")
	}
	return &Agent{
		id:           id,
		username:     username,
		displayName:  displayName,
		active:       active,
		dailyQuota:   dailyQuota,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func validateQuota(q int) error {
	if q < 1 || q > MaxDailyQuota {
		return fmt.Errorf("daily quota must be between 1 and %d", MaxDailyQuota)
	}
	return nil
}

func (a *Agent) ID() uint             { return a.id }
func (a *Agent) Username() string     { return a.username }
func (a *Agent) DisplayName() string  { return a.displayName }
func (a *Agent) IsActive() bool       { return a.active }
func (a *Agent) DailyQuota() int      { return a.dailyQuota }
func (a *Agent) PasswordHash() string { return a.passwordHash }
func (a *Agent) CreatedAt() time.Time { return a.createdAt }
func (a *Agent) UpdatedAt() time.Time { return a.updatedAt }

func (a *Agent) SetID(id uint) {
	a.id = id
}

// Deactivate blocks login and new distributions. Existing assignments stay.
func (a *Agent) Deactivate(now time.Time) {
	a.active = false
	a.updatedAt = now
}

func (a *Agent) Activate(now time.Time) {
	a.active = true
	a.updatedAt = now
}

func (a *Agent) ChangeDailyQuota(q int, now time.Time) error {
	if err := validateQuota(q); err != nil {
		return err
	}
	a.dailyQuota = q
	a.updatedAt = now
	return nil
}
