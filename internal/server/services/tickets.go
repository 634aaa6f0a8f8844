package services

import "github.com/google/uuid"

// TicketService issues service-ticket identifiers and accepts ratings.
// Tickets are opaque correlation keys: nothing is persisted in this scope.
type TicketService struct{}

func NewTicketService() *TicketService {
	return &TicketService{}
}

// Create returns a fresh ticket identifier.
func (s *TicketService) Create() string {
	return uuid.NewString()
}

// Rate records a rating for a ticket. Mock: the rating is accepted and
// discarded.
func (s *TicketService) Rate(ticketID string, score int) {
}
