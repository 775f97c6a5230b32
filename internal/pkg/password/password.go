package password

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrUnknownUser      = errors.New("unknown user")
)

const DefaultCost = bcrypt.DefaultCost

func HashPassword(password string) (string, error) {
	return HashPasswordWithCost(password, DefaultCost)
}

func HashPasswordWithCost(password string, cost int) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func ComparePassword(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}

// Verifier checks a username/password pair against one configured account.
type Verifier struct {
	username     string
	passwordHash string
}

func NewVerifier(username, passwordHash string) *Verifier {
	return &Verifier{username: username, passwordHash: passwordHash}
}

func (v *Verifier) Verify(username, password string) error {
	// The hash is compared even on a username mismatch so both paths cost the same.
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	err := ComparePassword(v.passwordHash, password)
	if !userOK {
		return ErrUnknownUser
	}
	return err
}
