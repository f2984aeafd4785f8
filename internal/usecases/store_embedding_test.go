package usecases

import (
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	domain_mocks "github.com/cleitonmarx/symbiont-ai-directory/internal/domain/mocks"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func toolRecord(id string, name, category string, embedding []float64) domain.ContentRecord {
	return domain.ContentRecord{
		ID:       uuid.MustParse(id),
		Kind:     domain.ContentKind_Tool,
		Category: category,
		Localized: map[string]domain.LocalizedContent{
			domain.Language_EN: {Name: name},
		},
		Embedding: embedding,
	}
}

func TestStoreEmbeddingImpl_GenerateAndStore(t *testing.T) {
	record := toolRecord("00000000-0000-0000-0000-000000000001", "Pixel Studio", "design", nil)
	vector := []float64{0.1, 0.2, 0.3}

	tests := map[string]struct {
		record          domain.ContentRecord
		embed           func(context.Context, string) ([]float64, error)
		setExpectations func(repo *domain_mocks.MockContentRepository)
		expectedStored  bool
		expectedErr     error
		expectedInputs  []string
	}{
		"success": {
			record: record,
			embed:  fixedEmbedding(vector),
			setExpectations: func(repo *domain_mocks.MockContentRepository) {
				repo.EXPECT().UpdateEmbedding(mock.Anything, domain.ContentKind_Tool, record.ID, vector).
					Return(nil).
					Once()
			},
			expectedStored: true,
			expectedInputs: []string{"Pixel Studio design"},
		},
		"missing-id": {
			record:      domain.ContentRecord{Category: "design"},
			expectedErr: domain.NewValidationErr("record id is required to store an embedding"),
		},
		"no-text": {
			record: domain.ContentRecord{ID: record.ID},
		},
		"provider-error": {
			record:         record,
			embed:          failingEmbedding(domain.NewProviderErr(domain.ProviderErrorKind_RateLimited, "slow down", nil)),
			expectedInputs: []string{"Pixel Studio design"},
		},
		"update-error": {
			record: record,
			embed:  fixedEmbedding(vector),
			setExpectations: func(repo *domain_mocks.MockContentRepository) {
				repo.EXPECT().UpdateEmbedding(mock.Anything, domain.ContentKind_Tool, record.ID, vector).
					Return(assert.AnError).
					Once()
			},
			expectedInputs: []string{"Pixel Studio design"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain_mocks.NewMockContentRepository(t)
			gateway := &gatewayStub{embed: tt.embed}
			if tt.setExpectations != nil {
				tt.setExpectations(repo)
			}

			s := NewStoreEmbeddingImpl(repo, gateway, discardLogger())

			stored, err := s.GenerateAndStore(context.Background(), tt.record, domain.ContentKind_Tool)
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expectedStored, stored)
			assert.Equal(t, tt.expectedInputs, gateway.embedCalls())
		})
	}
}

func TestStoreEmbeddingImpl_GenerateAndStoreWithCause(t *testing.T) {
	record := toolRecord("00000000-0000-0000-0000-000000000001", "Pixel Studio", "design", nil)
	vector := []float64{0.1, 0.2, 0.3}

	tests := map[string]struct {
		record          domain.ContentRecord
		embed           func(context.Context, string) ([]float64, error)
		setExpectations func(repo *domain_mocks.MockContentRepository)
		expectedStored  bool
		expectedErrIs   error
		expectErr       bool
	}{
		"success": {
			record: record,
			embed:  fixedEmbedding(vector),
			setExpectations: func(repo *domain_mocks.MockContentRepository) {
				repo.EXPECT().UpdateEmbedding(mock.Anything, domain.ContentKind_Tool, record.ID, vector).Return(nil).Once()
			},
			expectedStored: true,
		},
		"no-text-is-not-a-failure": {
			record: domain.ContentRecord{ID: record.ID},
		},
		"provider-error-is-returned": {
			record:        record,
			embed:         failingEmbedding(domain.NewProviderErr(domain.ProviderErrorKind_RateLimited, "slow down", nil)),
			expectedErrIs: domain.ErrRateLimited,
		},
		"update-error-is-returned": {
			record: record,
			embed:  fixedEmbedding(vector),
			setExpectations: func(repo *domain_mocks.MockContentRepository) {
				repo.EXPECT().UpdateEmbedding(mock.Anything, domain.ContentKind_Tool, record.ID, vector).Return(assert.AnError).Once()
			},
			expectedErrIs: assert.AnError,
		},
		"missing-id": {
			record:    domain.ContentRecord{Category: "design"},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain_mocks.NewMockContentRepository(t)
			if tt.setExpectations != nil {
				tt.setExpectations(repo)
			}

			s := NewStoreEmbeddingImpl(repo, &gatewayStub{embed: tt.embed}, discardLogger())
			stored, err := s.GenerateAndStoreWithCause(context.Background(), tt.record, domain.ContentKind_Tool)

			switch {
			case tt.expectedErrIs != nil:
				assert.ErrorIs(t, err, tt.expectedErrIs)
			case tt.expectErr:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedStored, stored)
		})
	}
}

func TestInitStoreEmbedding_Initialize(t *testing.T) {
	i := InitStoreEmbedding{}

	ctx, err := i.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[StoreEmbedding]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
