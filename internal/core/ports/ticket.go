package ports

import (
	"context"

	"github.com/spyweb/portal-api/internal/core/domain"
)

// TicketRepository defines persistence for support tickets.
type TicketRepository interface {
	Create(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error)
	FindByID(ctx context.Context, id string) (*domain.Ticket, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Ticket, error)
	ListAll(ctx context.Context) ([]*domain.Ticket, error)
	Update(ctx context.Context, t *domain.Ticket) (*domain.Ticket, error)
}

// TicketInput is the client-facing new-ticket form.
type TicketInput struct {
	Subject string
	Content string
}

// TicketReplyInput is the admin reply form.
type TicketReplyInput struct {
	Reply  string
	Status string
}

// TicketService handles support tickets: client intake scoped to the caller,
// admin triage across all clients.
type TicketService interface {
	Open(ctx context.Context, caller Identity, input TicketInput) (*domain.Ticket, error)
	// MyTickets lists tickets opened by the calling client.
	MyTickets(ctx context.Context, caller Identity) ([]*domain.Ticket, error)
	// AllTickets lists every ticket with the owning client joined in.
	AllTickets(ctx context.Context) ([]*domain.TicketWithClient, error)
	Reply(ctx context.Context, id string, input TicketReplyInput) (*domain.Ticket, error)
}
