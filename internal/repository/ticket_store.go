package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/happy-paws/internal/domain"
)

// TicketStore assembles full tickets from the ticket, interaction and attachment tables.
type TicketStore struct {
	pool *pgxpool.Pool
}

// NewTicketStore wraps pool. A nil pool yields a nil store.
func NewTicketStore(pool *pgxpool.Pool) *TicketStore {
	if pool == nil {
		return nil
	}
	return &TicketStore{pool: pool}
}

// Seed inserts tickets that are not stored yet, along with their logs and attachments.
func (s *TicketStore) Seed(ctx context.Context, tickets []*domain.Ticket) (int, error) {
	inserted := 0
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		ticketRepo := NewTicketRepository(tx)
		interactionRepo := NewInteractionRepository(tx)
		attachmentRepo := NewAttachmentRepository(tx)
		for _, t := range tickets {
			created, err := ticketRepo.Insert(ctx, t)
			if err != nil {
				return fmt.Errorf("insert ticket %s: %w", t.ID, err)
			}
			if !created {
				continue
			}
			inserted++
			for _, in := range t.Interactions {
				if err := interactionRepo.Create(ctx, t.ID, in); err != nil {
					return fmt.Errorf("insert interaction for %s: %w", t.ID, err)
				}
			}
			for _, a := range t.Attachments {
				if err := attachmentRepo.Create(ctx, t.ID, a); err != nil {
					return fmt.Errorf("insert attachment for %s: %w", t.ID, err)
				}
			}
		}
		return nil
	})
	return inserted, err
}

// Load returns every stored ticket with its log and attachments.
func (s *TicketStore) Load(ctx context.Context) ([]*domain.Ticket, error) {
	tickets, err := NewTicketRepository(s.pool).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	interactionRepo := NewInteractionRepository(s.pool)
	attachmentRepo := NewAttachmentRepository(s.pool)
	for _, t := range tickets {
		if t.Interactions, err = interactionRepo.ListByTicket(ctx, t.ID); err != nil {
			return nil, fmt.Errorf("list interactions for %s: %w", t.ID, err)
		}
		if t.Attachments, err = attachmentRepo.ListByTicket(ctx, t.ID); err != nil {
			return nil, fmt.Errorf("list attachments for %s: %w", t.ID, err)
		}
	}
	return tickets, nil
}

// RecordResponse appends an interaction and stores the ticket's current status atomically.
func (s *TicketStore) RecordResponse(ctx context.Context, ticketID string, interaction domain.Interaction, status domain.TicketStatus) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if err := NewInteractionRepository(tx).Create(ctx, ticketID, interaction); err != nil {
			return err
		}
		return NewTicketRepository(tx).UpdateStatus(ctx, ticketID, status)
	})
}
