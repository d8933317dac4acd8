package event

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeProductCreated       Type = "product_created"
	TypeAgentCreated         Type = "agent_created"
	TypeAssignmentCreated    Type = "assignment_created"
	TypeAssignmentCompleted  Type = "assignment_completed"
	TypeAssignmentUnassigned Type = "assignment_unassigned"
)

// Channel is a domain-scoped Postgres NOTIFY channel.
// All event types within a domain share one LISTEN connection.
type Channel string

const (
	ChannelProduct    Channel = "product"
	ChannelAgent      Channel = "agent"
	ChannelAssignment Channel = "assignment"
)

var typeToChannel = map[Type]Channel{
	TypeProductCreated:       ChannelProduct,
	TypeAgentCreated:         ChannelAgent,
	TypeAssignmentCreated:    ChannelAssignment,
	TypeAssignmentCompleted:  ChannelAssignment,
	TypeAssignmentUnassigned: ChannelAssignment,
}

// ChannelFor returns the domain channel for a given event type.
func ChannelFor(t Type) Channel { return typeToChannel[t] }

// Event carries identifiers only, not full state.
// Subscribers fetch fresh state from the appropriate repository.
type Event struct {
	Type      Type      `json:"type"`
	EntityID  uuid.UUID `json:"entity_id"`
	Timestamp time.Time `json:"timestamp"`
}

func New(eventType Type, entityID uuid.UUID) Event {
	return Event{
		Type:      eventType,
		EntityID:  entityID,
		Timestamp: time.Now().UTC(),
	}
}
