package domain

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeRecord(t *testing.T) {
	id := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := map[string]struct {
		raw  RawContentRecord
		want ContentRecord
	}{
		"tool-with-vector-literal": {
			raw: RawContentRecord{
				ID:       id.String(),
				Kind:     ContentKind_Tool,
				Category: " AI ",
				Localized: map[string]RawLocalizedContent{
					"EN": {Name: "Chat", Description: "Talk", Tag: "bot"},
				},
				Embedding: "[0.1,0.2]",
				CreatedAt: fixedTime,
				UpdatedAt: fixedTime,
			},
			want: ContentRecord{
				ID:       id,
				Kind:     ContentKind_Tool,
				Category: "AI",
				Localized: map[string]LocalizedContent{
					Language_EN: {Name: "Chat", Description: "Talk", Tag: "bot"},
				},
				Embedding: []float64{0.1, 0.2},
				CreatedAt: fixedTime,
				UpdatedAt: fixedTime,
			},
		},
		"prompt-title-and-text-aliases": {
			raw: RawContentRecord{
				ID:   id.String(),
				Kind: ContentKind_Prompt,
				Localized: map[string]RawLocalizedContent{
					Language_AR: {Title: "عنوان", Text: "نص"},
					Language_EN: {},
				},
			},
			want: ContentRecord{
				ID:   id,
				Kind: ContentKind_Prompt,
				Localized: map[string]LocalizedContent{
					Language_AR: {Name: "عنوان", Description: "نص"},
				},
			},
		},
		"legacy-fields-and-bad-embedding": {
			raw: RawContentRecord{
				ID:          id.String(),
				Name:        "Old",
				Description: "legacy",
				TagLine:     "tag",
				Embedding:   "not a vector",
			},
			want: ContentRecord{
				ID:     id,
				Legacy: LegacyFields{Name: "Old", Description: "legacy", TagLine: "tag"},
			},
		},
		"invalid-id": {
			raw:  RawContentRecord{ID: "abc"},
			want: ContentRecord{ID: uuid.Nil},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeRecord(tt.raw))
		})
	}
}

func TestParseEmbedding(t *testing.T) {
	tests := map[string]struct {
		input  any
		want   []float64
		wantOK bool
	}{
		"float64-slice":      {input: []float64{1, 2}, want: []float64{1, 2}, wantOK: true},
		"float32-slice":      {input: []float32{0.5, 1}, want: []float64{0.5, 1}, wantOK: true},
		"any-slice":          {input: []any{1.5, 2, json.Number("3")}, want: []float64{1.5, 2, 3}, wantOK: true},
		"vector-literal":     {input: "[0.25, -1]", want: []float64{0.25, -1}, wantOK: true},
		"json-bytes":         {input: []byte("[1,2,3]"), want: []float64{1, 2, 3}, wantOK: true},
		"raw-message":        {input: json.RawMessage("[4]"), want: []float64{4}, wantOK: true},
		"nil":                {input: nil},
		"empty-slice":        {input: []float64{}},
		"empty-string":       {input: "  "},
		"malformed-string":   {input: "[1,2"},
		"non-numeric-member": {input: []any{1.0, "x"}},
		"nan-member":         {input: []float64{1, math.NaN()}},
		"inf-member":         {input: []float32{float32(math.Inf(1))}},
		"unsupported-type":   {input: 42},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := ParseEmbedding(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}
