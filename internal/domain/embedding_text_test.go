package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildEmbeddingText(t *testing.T) {
	tests := map[string]struct {
		record ContentRecord
		kind   ContentKind
		want   string
	}{
		"tool-english-name-and-category": {
			record: ContentRecord{
				Category:  "AI",
				Localized: map[string]LocalizedContent{Language_EN: {Name: "Chat"}},
			},
			kind: ContentKind_Tool,
			want: "Chat AI",
		},
		"tool-field-order": {
			record: ContentRecord{
				Category: "Writing",
				Localized: map[string]LocalizedContent{
					Language_AR: {Name: "كاتب", Tag: "نص", Description: "يكتب"},
					Language_EN: {Name: "Writer", Tag: "text", Description: "writes things"},
				},
			},
			kind: ContentKind_Tool,
			want: "Writer text writes things كاتب نص يكتب Writing",
		},
		"prompt-field-order": {
			record: ContentRecord{
				Category: "Marketing",
				Localized: map[string]LocalizedContent{
					Language_EN: {Name: "Slogan", Description: "Write a slogan", Tag: "ads"},
					Language_AR: {Name: "شعار", Description: "اكتب شعارا", Tag: "إعلان"},
				},
			},
			kind: ContentKind_Prompt,
			want: "Slogan Write a slogan ads شعار اكتب شعارا إعلان Marketing",
		},
		"blank-values-skipped": {
			record: ContentRecord{
				Category: "  ",
				Localized: map[string]LocalizedContent{
					Language_EN: {Name: "  Chat ", Tag: " ", Description: ""},
				},
			},
			kind: ContentKind_Tool,
			want: "Chat",
		},
		"legacy-fallback": {
			record: ContentRecord{
				Category: "Dev",
				Legacy:   LegacyFields{Name: "Coder", Description: "codes", TagLine: "fast"},
			},
			kind: ContentKind_Tool,
			want: "Coder codes fast Dev",
		},
		"legacy-ignored-when-localized-present": {
			record: ContentRecord{
				Localized: map[string]LocalizedContent{Language_AR: {Name: "مساعد"}},
				Legacy:    LegacyFields{Name: "Old"},
			},
			kind: ContentKind_Tool,
			want: "مساعد",
		},
		"empty-record": {
			record: ContentRecord{},
			kind:   ContentKind_Prompt,
			want:   "",
		},
		"category-only": {
			record: ContentRecord{Category: "Video"},
			kind:   ContentKind_Tool,
			want:   "Video",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildEmbeddingText(tt.record, tt.kind))
		})
	}
}

func TestBuildLocalizedEmbeddingText(t *testing.T) {
	record := ContentRecord{
		Category: "AI",
		Localized: map[string]LocalizedContent{
			Language_EN: {Name: "Chat"},
			Language_AR: {Name: "دردشة"},
		},
	}

	tests := map[string]struct {
		lang string
		want string
	}{
		"arabic-first": {
			lang: "ar",
			want: "دردشة Chat AI",
		},
		"english-first": {
			lang: "en",
			want: "Chat دردشة AI",
		},
		"unknown-language-defaults-to-english": {
			lang: "fr",
			want: "Chat دردشة AI",
		},
		"blank-language": {
			lang: "",
			want: "Chat دردشة AI",
		},
		"case-insensitive": {
			lang: " AR ",
			want: "دردشة Chat AI",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildLocalizedEmbeddingText(record, ContentKind_Tool, tt.lang))
		})
	}
}
