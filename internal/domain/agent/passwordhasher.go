package agent

// PasswordHasher hashes and checks agent passwords.
type PasswordHasher interface {
	// Hash returns a validation error for a password the policy rejects.
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
