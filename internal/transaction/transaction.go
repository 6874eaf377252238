package transaction

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind says whether a transaction is money coming in or going out.
type Kind string

const (
	KindExpense Kind = "expense"
	KindIncome  Kind = "income"
)

// MaxDescriptionLength bounds a transaction description.
const MaxDescriptionLength = 200

var (
	ErrNotFound = errors.New("transaction not found")

	// ErrInvalidInput groups malformed-field rejections and ErrForbidden
	// groups business-rule rejections, so handlers can map the class while
	// callers still see the specific reason.
	ErrInvalidInput = errors.New("invalid transaction")
	ErrForbidden    = errors.New("transaction not allowed")

	ErrEmptyDescription   = fmt.Errorf("%w: empty description", ErrInvalidInput)
	ErrDescriptionTooLong = fmt.Errorf("%w: description longer than %d characters", ErrInvalidInput, MaxDescriptionLength)
	ErrInvalidAmount      = fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	ErrInvalidKind        = fmt.Errorf("%w: kind must be expense or income", ErrInvalidInput)

	ErrMinorIncome      = fmt.Errorf("%w: a minor can only record expenses", ErrForbidden)
	ErrCategoryMismatch = fmt.Errorf("%w: category purpose does not admit this kind", ErrForbidden)
)

// Transaction is an immutable ledger entry. Amount is in cents; it is never
// updated after creation and is only removed when its owning person is.
type Transaction struct {
	ID          uuid.UUID
	Description string
	Amount      int64 // cents
	Kind        Kind
	PersonID    uuid.UUID
	CategoryID  uuid.UUID
	CreatedAt   time.Time
}
