package category

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Purpose restricts which transaction kinds a category accepts.
type Purpose string

const (
	PurposeExpense Purpose = "expense"
	PurposeIncome  Purpose = "income"
	PurposeBoth    Purpose = "both"
)

// MaxDescriptionLength bounds a category description.
const MaxDescriptionLength = 100

var (
	ErrNotFound = errors.New("category not found")

	ErrInvalidInput = errors.New("invalid category")

	ErrEmptyDescription   = fmt.Errorf("%w: empty description", ErrInvalidInput)
	ErrDescriptionTooLong = fmt.Errorf("%w: description longer than %d characters", ErrInvalidInput, MaxDescriptionLength)
	ErrInvalidPurpose     = fmt.Errorf("%w: purpose must be expense, income or both", ErrInvalidInput)
)

// Category classifies transactions. It is never deleted by an explicit
// request; it only disappears when a person deletion leaves it without any
// referencing transaction.
type Category struct {
	ID          uuid.UUID
	Description string
	Purpose     Purpose
	CreatedAt   time.Time
}

func (p Purpose) Valid() bool {
	switch p {
	case PurposeExpense, PurposeIncome, PurposeBoth:
		return true
	}

	return false
}

type CreateParams struct {
	Description string
	Purpose     Purpose
}

func (p CreateParams) Validate() error {
	if strings.TrimSpace(p.Description) == "" {
		return ErrEmptyDescription
	}

	if len(p.Description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}

	if !p.Purpose.Valid() {
		return ErrInvalidPurpose
	}

	return nil
}
