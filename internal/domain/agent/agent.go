package agent

import (
	"time"

	"github.com/google/uuid"
)

// Agent is a human reviewer on the dashboard roster. Workload capacity is a
// shared engine configuration value, not a per-agent field.
type Agent struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func New(name, email string) Agent {
	return Agent{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
}
