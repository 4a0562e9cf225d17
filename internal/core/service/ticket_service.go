package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/spyweb/portal-api/internal/core/domain"
	"github.com/spyweb/portal-api/internal/core/ports"
)

// TicketService handles support tickets. Client operations are scoped to the
// caller; admin operations see every ticket with the owning client joined in.
type TicketService struct {
	tickets  ports.TicketRepository
	accounts ports.AccountRepository
	logger   zerolog.Logger
}

func NewTicketService(tickets ports.TicketRepository, accounts ports.AccountRepository, logger zerolog.Logger) *TicketService {
	return &TicketService{tickets: tickets, accounts: accounts, logger: logger}
}

func (s *TicketService) Open(ctx context.Context, caller ports.Identity, input ports.TicketInput) (*domain.Ticket, error) {
	if caller.Anonymous() {
		return nil, domain.ErrUnauthenticated
	}

	ticket, err := s.tickets.Create(ctx, &domain.Ticket{
		Reference: uuid.NewString(),
		ClientID:  caller.AccountID,
		Subject:   input.Subject,
		Content:   input.Content,
		Status:    domain.TicketNew,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("ticket_id", ticket.ID).
		Str("reference", ticket.Reference).
		Str("client_id", caller.AccountID).
		Msg("support ticket opened")
	return ticket, nil
}

func (s *TicketService) MyTickets(ctx context.Context, caller ports.Identity) ([]*domain.Ticket, error) {
	if caller.Anonymous() {
		return nil, domain.ErrUnauthenticated
	}
	return s.tickets.ListByClient(ctx, caller.AccountID)
}

// AllTickets joins each ticket with a summary of its owning client. A ticket
// whose client has since been deleted is still listed, with an empty summary.
func (s *TicketService) AllTickets(ctx context.Context) ([]*domain.TicketWithClient, error) {
	tickets, err := s.tickets.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	clients := make(map[string]domain.TicketClient)
	out := make([]*domain.TicketWithClient, 0, len(tickets))
	for _, t := range tickets {
		summary, seen := clients[t.ClientID]
		if !seen {
			if account, err := s.accounts.FindByID(ctx, t.ClientID); err == nil {
				summary = domain.TicketClient{
					ID:      account.ID,
					Name:    account.Name,
					Email:   account.Email,
					Company: account.Company,
				}
			}
			clients[t.ClientID] = summary
		}
		out = append(out, &domain.TicketWithClient{Ticket: *t, Client: summary})
	}
	return out, nil
}

func (s *TicketService) Reply(ctx context.Context, id string, input ports.TicketReplyInput) (*domain.Ticket, error) {
	status := domain.TicketStatus(input.Status)
	if input.Status == "" {
		status = domain.TicketResolved
	}
	if !domain.ValidTicketStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	ticket, err := s.tickets.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ticket.AdminReply = input.Reply
	ticket.ReplyDate = time.Now().UTC()
	ticket.Status = status

	updated, err := s.tickets.Update(ctx, ticket)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("ticket_id", id).Str("status", string(status)).Msg("ticket reply recorded")
	return updated, nil
}
