package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/happy-paws/internal/domain"
)

// TicketRepository encapsulates attendant ticket persistence.
type TicketRepository interface {
	// Insert stores the ticket header and reports false if the id already exists.
	Insert(ctx context.Context, ticket *domain.Ticket) (bool, error)
	UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	List(ctx context.Context) ([]*domain.Ticket, error)
}

type ticketRepository struct {
	db DBTX
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(db DBTX) TicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) Insert(ctx context.Context, ticket *domain.Ticket) (bool, error) {
	const query = `
        INSERT INTO tickets (id, protocol, type, subject, description, status, wait_time, user_name, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        ON CONFLICT (id) DO NOTHING`
	cmd, err := r.db.Exec(ctx, query,
		ticket.ID,
		ticket.Protocol,
		ticket.Type,
		ticket.Subject,
		ticket.Description,
		ticket.Status,
		ticket.WaitTime,
		ticket.UserName,
		ticket.CreatedAt,
	)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() == 1, nil
}

func (r *ticketRepository) UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) error {
	const query = `UPDATE tickets SET status=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	const query = `
        SELECT id, protocol, type, subject, description, status, wait_time, user_name, created_at
        FROM tickets WHERE id=$1`
	var ticket domain.Ticket
	if err := scanTicket(r.db.QueryRow(ctx, query, id), &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) List(ctx context.Context) ([]*domain.Ticket, error) {
	const query = `
        SELECT id, protocol, type, subject, description, status, wait_time, user_name, created_at
        FROM tickets ORDER BY seq ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := scanTicket(rows, &ticket); err != nil {
			return nil, err
		}
		result = append(result, &ticket)
	}
	return result, rows.Err()
}

func scanTicket(row pgx.Row, ticket *domain.Ticket) error {
	return row.Scan(
		&ticket.ID,
		&ticket.Protocol,
		&ticket.Type,
		&ticket.Subject,
		&ticket.Description,
		&ticket.Status,
		&ticket.WaitTime,
		&ticket.UserName,
		&ticket.CreatedAt,
	)
}
