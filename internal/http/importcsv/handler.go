package importcsv

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mfreitas/contas/internal/category"
	"github.com/mfreitas/contas/internal/importer"
	"github.com/mfreitas/contas/internal/person"
	"github.com/mfreitas/contas/internal/transaction"
)

type Handler struct {
	importSvc   *importer.Service
	personSvc   *person.Service
	categorySvc *category.Service
	txSvc       *transaction.Service
}

func NewHandler(importSvc *importer.Service, personSvc *person.Service, categorySvc *category.Service, txSvc *transaction.Service) *Handler {
	return &Handler{
		importSvc:   importSvc,
		personSvc:   personSvc,
		categorySvc: categorySvc,
		txSvc:       txSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type transactionResponse struct {
	ID          uuid.UUID        `json:"id"`
	Description string           `json:"description"`
	Amount      int64            `json:"amount"`
	Kind        transaction.Kind `json:"kind"`
	PersonID    uuid.UUID        `json:"person_id"`
	CategoryID  uuid.UUID        `json:"category_id"`
}

type importSuccessResponse struct {
	Imported     int                   `json:"imported"`
	Transactions []transactionResponse `json:"transactions"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	format := importer.Format(r.FormValue("format"))
	if format == "" {
		format = importer.FormatLedger
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := h.importSvc.Import(format, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params, err := h.resolve(r, rows)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	txs, err := h.txSvc.CreateBatch(r.Context(), params)
	if err != nil {
		if errors.Is(err, transaction.ErrInvalidInput) || errors.Is(err, transaction.ErrForbidden) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toSuccessResponse(txs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// resolve turns parsed rows into create params by looking up person and
// category references by their display names.
func (h *Handler) resolve(r *http.Request, rows []importer.Row) ([]transaction.CreateParams, error) {
	params := make([]transaction.CreateParams, 0, len(rows))

	for i, row := range rows {
		p, err := h.personSvc.GetByName(r.Context(), row.PersonName)
		if err != nil {
			return nil, fmt.Errorf("row %d: person %q: %w", i+1, row.PersonName, err)
		}

		c, err := h.categorySvc.GetByDescription(r.Context(), row.CategoryName)
		if err != nil {
			return nil, fmt.Errorf("row %d: category %q: %w", i+1, row.CategoryName, err)
		}

		params = append(params, transaction.CreateParams{
			Description: row.Description,
			Amount:      row.Amount,
			Kind:        row.Kind,
			PersonID:    p.ID,
			CategoryID:  c.ID,
		})
	}

	return params, nil
}

func toSuccessResponse(txs []*transaction.Transaction) importSuccessResponse {
	responses := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		responses = append(responses, transactionResponse{
			ID:          tx.ID,
			Description: tx.Description,
			Amount:      tx.Amount,
			Kind:        tx.Kind,
			PersonID:    tx.PersonID,
			CategoryID:  tx.CategoryID,
		})
	}

	return importSuccessResponse{
		Imported:     len(txs),
		Transactions: responses,
	}
}
