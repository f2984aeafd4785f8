package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const deleteOutboxEventQuery = "DELETE FROM outbox_events WHERE id = $1"

func TestUnitOfWork_Execute(t *testing.T) {
	eventID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	deleteEvent := func(uow domain.UnitOfWork) error {
		return uow.Outbox().DeleteEvent(context.Background(), eventID)
	}

	tests := map[string]struct {
		setupMock func(sqlmock.Sqlmock)
		fn        func(uow domain.UnitOfWork) error
		expectErr string
	}{
		"commits": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec(deleteOutboxEventQuery).WithArgs(eventID).WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectCommit()
			},
			fn: deleteEvent,
		},
		"rolls-back-on-error": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec(deleteOutboxEventQuery).WithArgs(eventID).WillReturnError(errors.New("delete error"))
				m.ExpectRollback()
			},
			fn:        deleteEvent,
			expectErr: "delete error",
		},
		"begin-error": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin().WillReturnError(errors.New("begin error"))
			},
			fn:        func(domain.UnitOfWork) error { return nil },
			expectErr: "failed to begin transaction: begin error",
		},
		"commit-error": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec(deleteOutboxEventQuery).WithArgs(eventID).WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectCommit().WillReturnError(errors.New("commit error"))
			},
			fn:        deleteEvent,
			expectErr: "commit error",
		},
		"rollback-error-keeps-original": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec(deleteOutboxEventQuery).WithArgs(eventID).WillReturnError(errors.New("delete error"))
				m.ExpectRollback().WillReturnError(errors.New("rollback error"))
			},
			fn:        deleteEvent,
			expectErr: "transaction rollback error: rollback error, original error: delete error",
		},
		"nested-execute-joins-transaction": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec(deleteOutboxEventQuery).WithArgs(eventID).WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectCommit()
			},
			fn: func(uow domain.UnitOfWork) error {
				return uow.Execute(context.Background(), deleteEvent)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			require.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.setupMock(mock)

			err = NewUnitOfWork(db).Execute(context.Background(), tt.fn)
			if tt.expectErr != "" {
				assert.EqualError(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUnitOfWork_Execute_PanicRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close() //nolint:errcheck

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "boom", func() {
		_ = NewUnitOfWork(db).Execute(context.Background(), func(domain.UnitOfWork) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_runner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close() //nolint:errcheck

	t.Run("db-outside-transaction", func(t *testing.T) {
		assert.Equal(t, db, NewUnitOfWork(db).runner())
	})

	t.Run("tx-inside-transaction", func(t *testing.T) {
		mock.ExpectBegin()
		tx, err := db.Begin()
		require.NoError(t, err)

		uow := &UnitOfWork{db: db, tx: tx}
		assert.Equal(t, tx, uow.runner())
		assert.IsType(t, OutboxRepository{}, uow.Outbox())

		mock.ExpectRollback()
		_ = tx.Rollback()
	})
}

func TestUnitOfWork_FetchAndDeleteShareTransaction(t *testing.T) {
	eventID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	recordID := uuid.MustParse("00000000-0000-0000-0000-000000000001")

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close() //nolint:errcheck

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, entity_type, entity_id, topic, event_type, payload, retry_count, max_retries, last_error, created_at FROM outbox_events WHERE status = $1 ORDER BY created_at ASC LIMIT 10 FOR UPDATE SKIP LOCKED").
		WithArgs("PENDING").
		WillReturnRows(sqlmock.NewRows(outboxEventFields).
			AddRow(eventID, "tool", recordID, "EmbeddingRefresh", "EMBEDDING.REFRESH_REQUESTED", []byte(`{}`), 0, 5, nil, time.Date(2026, 1, 24, 15, 0, 0, 0, time.UTC)))
	mock.ExpectExec(deleteOutboxEventQuery).
		WithArgs(eventID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = NewUnitOfWork(db).Execute(context.Background(), func(uow domain.UnitOfWork) error {
		events, err := uow.Outbox().FetchPendingEvents(context.Background(), 10)
		if err != nil {
			return err
		}
		for _, e := range events {
			if err := uow.Outbox().DeleteEvent(context.Background(), e.ID); err != nil {
				return err
			}
		}
		return nil
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitUnitOfWork_Initialize(t *testing.T) {
	i := &InitUnitOfWork{DB: &sql.DB{}}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	_, err = depend.Resolve[domain.UnitOfWork]()
	assert.NoError(t, err)
}
