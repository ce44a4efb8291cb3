package user

// PasswordHasher is implemented by the credential store. Verify returns a
// generic error on any mismatch so callers cannot distinguish a wrong
// password from a malformed hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
