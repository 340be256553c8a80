package triage

import (
	"time"

	"github.com/spec-kit/happy-paws/internal/domain"
)

// Board is the attendant dashboard's ticket collection. Tickets are handed out
// by reference, so changes made through a selected ticket show up in List.
type Board struct {
	tickets []*domain.Ticket
	byID    map[string]*domain.Ticket
}

// NewBoard takes ownership of tickets in their input order.
func NewBoard(tickets []*domain.Ticket) *Board {
	b := &Board{byID: make(map[string]*domain.Ticket, len(tickets))}
	for _, t := range tickets {
		if t == nil {
			continue
		}
		if _, dup := b.byID[t.ID]; dup {
			continue
		}
		b.tickets = append(b.tickets, t)
		b.byID[t.ID] = t
	}
	return b
}

// List returns the triaged view for f.
func (b *Board) List(f Filter) []*domain.Ticket {
	return Triage(b.tickets, f)
}

// Get returns the owned ticket with id.
func (b *Board) Get(id string) (*domain.Ticket, bool) {
	t, ok := b.byID[id]
	return t, ok
}

// Len is the number of owned tickets.
func (b *Board) Len() int {
	return len(b.tickets)
}

// Respond replies to the owned ticket with id.
func (b *Board) Respond(id, message string, now time.Time) (*domain.Ticket, Response, error) {
	t, ok := b.byID[id]
	if !ok {
		return nil, Response{}, ErrUnknownTicket
	}
	resp, err := Respond(t, message, now)
	if err != nil {
		return t, Response{}, err
	}
	return t, resp, nil
}
