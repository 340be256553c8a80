package repository

import (
	"context"

	"github.com/spec-kit/happy-paws/internal/domain"
)

// AttachmentRepository persists attachment metadata.
type AttachmentRepository interface {
	Create(ctx context.Context, ticketID string, attachment domain.Attachment) error
	ListByTicket(ctx context.Context, ticketID string) ([]domain.Attachment, error)
}

type attachmentRepository struct {
	db DBTX
}

// NewAttachmentRepository constructs repository.
func NewAttachmentRepository(db DBTX) AttachmentRepository {
	return &attachmentRepository{db: db}
}

func (r *attachmentRepository) Create(ctx context.Context, ticketID string, attachment domain.Attachment) error {
	const query = `
        INSERT INTO ticket_attachments (ticket_id, file_name, url)
        VALUES ($1,$2,$3)`
	_, err := r.db.Exec(ctx, query, ticketID, attachment.Name, attachment.URL)
	return err
}

func (r *attachmentRepository) ListByTicket(ctx context.Context, ticketID string) ([]domain.Attachment, error) {
	const query = `
        SELECT file_name, url
        FROM ticket_attachments WHERE ticket_id=$1 ORDER BY id ASC`
	rows, err := r.db.Query(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Attachment
	for rows.Next() {
		var a domain.Attachment
		if err := rows.Scan(&a.Name, &a.URL); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}
