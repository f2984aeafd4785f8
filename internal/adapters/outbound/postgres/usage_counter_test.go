package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageCounterRepository_Get(t *testing.T) {
	query := "SELECT count FROM llm_usage_counters WHERE key = $1"

	tests := map[string]struct {
		expect   func(m sqlmock.Sqlmock)
		expected int
		wantErr  bool
	}{
		"existing-counter": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(query).
					WithArgs("llm_requests:day:2026-10-16").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))
			},
			expected: 42,
		},
		"missing-counter-is-zero": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(query).
					WithArgs("llm_requests:day:2026-10-16").
					WillReturnRows(sqlmock.NewRows([]string{"count"}))
			},
		},
		"db-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(query).
					WithArgs("llm_requests:day:2026-10-16").
					WillReturnError(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			require.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.expect(mock)

			got, err := NewUsageCounterRepository(db).Get(context.Background(), "llm_requests:day:2026-10-16")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUsageCounterRepository_Increment(t *testing.T) {
	query := "INSERT INTO llm_usage_counters (key,count,updated_at) VALUES ($1,$2,NOW()) ON CONFLICT (key) DO UPDATE SET count = llm_usage_counters.count + 1, updated_at = NOW()"

	tests := map[string]struct {
		expect  func(m sqlmock.Sqlmock)
		wantErr bool
	}{
		"success": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(query).
					WithArgs("llm_requests:day:2026-10-16", 1).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		"db-error": {
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(query).
					WithArgs("llm_requests:day:2026-10-16", 1).
					WillReturnError(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			require.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.expect(mock)

			err = NewUsageCounterRepository(db).Increment(context.Background(), "llm_requests:day:2026-10-16")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
