package category

import (
	"time"

	"github.com/google/uuid"

	"github.com/mfreitas/contas/internal/category"
)

type categoryResponse struct {
	ID          uuid.UUID        `json:"id"`
	Description string           `json:"description"`
	Purpose     category.Purpose `json:"purpose"`
	CreatedAt   time.Time        `json:"created_at"`
}

func toResponse(c *category.Category) categoryResponse {
	return categoryResponse{
		ID:          c.ID,
		Description: c.Description,
		Purpose:     c.Purpose,
		CreatedAt:   c.CreatedAt,
	}
}

func toResponseList(categories []*category.Category) []categoryResponse {
	resp := make([]categoryResponse, len(categories))
	for i, c := range categories {
		resp[i] = toResponse(c)
	}

	return resp
}
