package person

import (
	"time"

	"github.com/google/uuid"

	"github.com/mfreitas/contas/internal/person"
)

type personResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Minor     bool      `json:"minor"`
	CreatedAt time.Time `json:"created_at"`
}

func toResponse(p *person.Person) personResponse {
	return personResponse{
		ID:        p.ID,
		Name:      p.Name,
		Age:       p.Age,
		Minor:     p.Minor(),
		CreatedAt: p.CreatedAt,
	}
}

func toResponseList(people []*person.Person) []personResponse {
	resp := make([]personResponse, len(people))
	for i, p := range people {
		resp[i] = toResponse(p)
	}

	return resp
}
