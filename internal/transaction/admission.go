package transaction

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mfreitas/contas/internal/category"
	"github.com/mfreitas/contas/internal/person"
)

type CreateParams struct {
	Description string
	Amount      int64 // cents
	Kind        Kind
	PersonID    uuid.UUID
	CategoryID  uuid.UUID
}

func (p CreateParams) validate() error {
	if strings.TrimSpace(p.Description) == "" {
		return ErrEmptyDescription
	}

	if len(p.Description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}

	if p.Amount <= 0 {
		return ErrInvalidAmount
	}

	if p.Kind != KindExpense && p.Kind != KindIncome {
		return ErrInvalidKind
	}

	return nil
}

// Admit decides whether a proposed transaction may be persisted. A nil
// person or category stands for a reference that did not resolve. The checks
// run in a fixed order and the first failure wins:
//
//  1. field validation (description, amount, kind)
//  2. person exists
//  3. a minor (age under 18) may only record expenses
//  4. category exists
//  5. the category's purpose admits the kind; "both" admits everything
//
// Admit never mutates its inputs; an admitted transaction is stored exactly
// as proposed.
func Admit(params CreateParams, p *person.Person, c *category.Category) error {
	if err := params.validate(); err != nil {
		return err
	}

	if p == nil {
		return person.ErrNotFound
	}

	if p.Minor() && params.Kind == KindIncome {
		return ErrMinorIncome
	}

	if c == nil {
		return category.ErrNotFound
	}

	switch params.Kind {
	case KindExpense:
		if c.Purpose == category.PurposeIncome {
			return ErrCategoryMismatch
		}
	case KindIncome:
		if c.Purpose == category.PurposeExpense {
			return ErrCategoryMismatch
		}
	}

	return nil
}
