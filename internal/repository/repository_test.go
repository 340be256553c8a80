package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/happy-paws/internal/domain"
	apperrors "github.com/spec-kit/happy-paws/pkg/util/errorutil"
)

type execCall struct {
	sql  string
	args []any
}

// fakeDB answers Exec with a fixed command tag and records every call.
type fakeDB struct {
	tag   string
	err   error
	calls []execCall
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, execCall{sql: sql, args: args})
	return pgconn.NewCommandTag(f.tag), f.err
}

func (f *fakeDB) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not supported")
}

func (f *fakeDB) QueryRow(context.Context, string, ...any) pgx.Row {
	return errRow{}
}

type errRow struct{}

func (errRow) Scan(...any) error { return pgx.ErrNoRows }

func TestTicketRepository_Insert(t *testing.T) {
	db := &fakeDB{tag: "INSERT 0 1"}
	repo := NewTicketRepository(db)
	ticket := &domain.Ticket{ID: "7", Protocol: "#2024-007", Type: domain.TicketTypeEmergency, Status: domain.TicketStatusUnderReview, WaitTime: 12}

	inserted, err := repo.Insert(context.Background(), ticket)
	require.NoError(t, err)
	assert.True(t, inserted)
	require.Len(t, db.calls, 1)
	assert.Contains(t, db.calls[0].sql, "ON CONFLICT (id) DO NOTHING")
	assert.Equal(t, "7", db.calls[0].args[0])
	assert.Equal(t, 12, db.calls[0].args[6])

	db.tag = "INSERT 0 0"
	inserted, err = repo.Insert(context.Background(), ticket)
	require.NoError(t, err)
	assert.False(t, inserted, "existing rows are left alone")
}

func TestTicketRepository_UpdateStatusMissingRow(t *testing.T) {
	repo := NewTicketRepository(&fakeDB{tag: "UPDATE 0"})

	err := repo.UpdateStatus(context.Background(), "nope", domain.TicketStatusInService)
	require.ErrorIs(t, err, pgx.ErrNoRows)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestTicketRepository_GetByIDMissing(t *testing.T) {
	_, err := NewTicketRepository(&fakeDB{}).GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestInteractionRepository_Create(t *testing.T) {
	db := &fakeDB{tag: "INSERT 0 1"}
	err := NewInteractionRepository(db).Create(context.Background(), "1", domain.Interaction{
		Author: domain.AttendantAuthor, Message: "Oi", Timestamp: "14:05:00",
	})
	require.NoError(t, err)
	require.Len(t, db.calls, 1)
	assert.Equal(t, []any{"1", domain.AttendantAuthor, "Oi", "14:05:00"}, db.calls[0].args)
}

func TestNewTicketStore_NilPool(t *testing.T) {
	assert.Nil(t, NewTicketStore(nil))
}
