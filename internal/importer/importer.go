package importer

import (
	"fmt"
	"io"

	"github.com/mfreitas/contas/internal/transaction"
)

type Format string

const (
	FormatLedger Format = "ledger"
)

// Row is one parsed ledger line. Person and category arrive as display
// names and are resolved against the store when the batch is admitted.
type Row struct {
	Description  string
	Amount       int64 // cents, positive
	Kind         transaction.Kind
	PersonName   string
	CategoryName string
}

type Importer interface {
	Parse(r io.Reader) ([]Row, error)
}

type Service struct {
	ledger Importer
}

func NewService(ledger Importer) *Service {
	return &Service{ledger: ledger}
}

func (s *Service) Import(format Format, r io.Reader) ([]Row, error) {
	switch format {
	case FormatLedger:
		return s.ledger.Parse(r)
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}
