package repository

import (
	"context"

	"github.com/spec-kit/happy-paws/internal/domain"
)

// InteractionRepository manages a ticket's conversation log.
type InteractionRepository interface {
	Create(ctx context.Context, ticketID string, interaction domain.Interaction) error
	ListByTicket(ctx context.Context, ticketID string) ([]domain.Interaction, error)
}

type interactionRepository struct {
	db DBTX
}

// NewInteractionRepository builds repository.
func NewInteractionRepository(db DBTX) InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) Create(ctx context.Context, ticketID string, interaction domain.Interaction) error {
	const query = `
        INSERT INTO ticket_interactions (ticket_id, author, message, stamp)
        VALUES ($1,$2,$3,$4)`
	_, err := r.db.Exec(ctx, query,
		ticketID,
		interaction.Author,
		interaction.Message,
		interaction.Timestamp,
	)
	return err
}

func (r *interactionRepository) ListByTicket(ctx context.Context, ticketID string) ([]domain.Interaction, error) {
	const query = `
        SELECT author, message, stamp
        FROM ticket_interactions WHERE ticket_id=$1 ORDER BY id ASC`
	rows, err := r.db.Query(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Interaction
	for rows.Next() {
		var in domain.Interaction
		if err := rows.Scan(&in.Author, &in.Message, &in.Timestamp); err != nil {
			return nil, err
		}
		result = append(result, in)
	}
	return result, rows.Err()
}
