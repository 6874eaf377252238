package person

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// MaxNameLength bounds a person's display name.
	MaxNameLength = 200
	// MaxAge bounds the accepted age range.
	MaxAge = 150
	// adultAge is the first age that is no longer a minor.
	adultAge = 18
)

var (
	ErrNotFound = errors.New("person not found")

	ErrInvalidInput = errors.New("invalid person")

	ErrEmptyName   = fmt.Errorf("%w: empty name", ErrInvalidInput)
	ErrNameTooLong = fmt.Errorf("%w: name longer than %d characters", ErrInvalidInput, MaxNameLength)
	ErrInvalidAge  = fmt.Errorf("%w: age must be between 0 and %d", ErrInvalidInput, MaxAge)
)

// Person owns transactions in the ledger.
type Person struct {
	ID        uuid.UUID
	Name      string
	Age       int
	CreatedAt time.Time
}

// Minor reports whether the person is under 18. A person aged exactly 18
// is not a minor.
func (p *Person) Minor() bool {
	return p.Age < adultAge
}

type CreateParams struct {
	Name string
	Age  int
}

func (p CreateParams) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}

	if len(p.Name) > MaxNameLength {
		return ErrNameTooLong
	}

	if p.Age < 0 || p.Age > MaxAge {
		return ErrInvalidAge
	}

	return nil
}
