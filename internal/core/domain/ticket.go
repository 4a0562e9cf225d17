package domain

import "time"

// TicketStatus is the lifecycle state of a support ticket.
type TicketStatus string

const (
	TicketNew        TicketStatus = "New"
	TicketInProgress TicketStatus = "In Progress"
	TicketResolved   TicketStatus = "Resolved"
)

// ValidTicketStatus reports whether s is one of the known statuses.
func ValidTicketStatus(s TicketStatus) bool {
	switch s {
	case TicketNew, TicketInProgress, TicketResolved:
		return true
	}
	return false
}

// Ticket is a support request opened by a client through the portal.
type Ticket struct {
	ID         string       `json:"_id"`
	Reference  string       `json:"reference"`
	ClientID   string       `json:"clientId"`
	Subject    string       `json:"subject"`
	Content    string       `json:"content"`
	Status     TicketStatus `json:"status"`
	AdminReply string       `json:"adminReply,omitempty"`
	ReplyDate  time.Time    `json:"replyDate,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
}

// TicketClient is the client summary joined into admin ticket views.
type TicketClient struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
}

// TicketWithClient pairs a ticket with its owning client for the back office.
type TicketWithClient struct {
	Ticket
	Client TicketClient `json:"client"`
}
