package domain

import (
	"slices"
	"strings"
)

// BuildEmbeddingText composes the text sent to the embedding provider for a record.
//
// Tools contribute name, tag and description; prompts contribute title, text
// and tag. English comes before Arabic and the category is appended last.
// Records without localized content fall back to the legacy name,
// description and tag line. Blank values are skipped and the remaining
// values are joined with single spaces.
func BuildEmbeddingText(record ContentRecord, kind ContentKind) string {
	return buildEmbeddingText(record, kind, []string{Language_EN, Language_AR})
}

// BuildLocalizedEmbeddingText is like BuildEmbeddingText but places the
// preferred language first, followed by English and then Arabic.
func BuildLocalizedEmbeddingText(record ContentRecord, kind ContentKind, lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))

	order := make([]string, 0, 3)
	for _, l := range []string{lang, Language_EN, Language_AR} {
		if l == "" || slices.Contains(order, l) {
			continue
		}
		order = append(order, l)
	}

	return buildEmbeddingText(record, kind, order)
}

func buildEmbeddingText(record ContentRecord, kind ContentKind, languages []string) string {
	var parts []string

	for _, lang := range languages {
		lc, ok := record.Localized[lang]
		if !ok {
			continue
		}
		parts = appendNonBlank(parts, localizedFields(lc, kind)...)
	}

	if len(parts) == 0 {
		parts = appendNonBlank(parts,
			record.Legacy.Name,
			record.Legacy.Description,
			record.Legacy.TagLine,
		)
	}

	parts = appendNonBlank(parts, record.Category)

	return strings.Join(parts, " ")
}

func localizedFields(lc LocalizedContent, kind ContentKind) []string {
	if kind == ContentKind_Prompt {
		return []string{lc.Name, lc.Description, lc.Tag}
	}
	return []string{lc.Name, lc.Tag, lc.Description}
}

func appendNonBlank(parts []string, values ...string) []string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}
	return parts
}
