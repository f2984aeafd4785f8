package usecases

import (
	"context"
	"embed"
	"fmt"
	"slices"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/common"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/toon-format/toon-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.yaml.in/yaml/v3"
)

var languageNames = map[string]string{
	domain.Language_EN: "English",
	domain.Language_AR: "Arabic",
}

// DraftDescription asks the provider for a new description of a directory entry.
// The draft is returned to the admin and never stored.
type DraftDescription interface {
	Execute(ctx context.Context, kind domain.ContentKind, id uuid.UUID, lang string) (string, error)
}

// DraftDescriptionImpl is the implementation of the DraftDescription use case.
type DraftDescriptionImpl struct {
	repo    domain.ContentRepository
	gateway ProviderGateway
	model   string
}

// NewDraftDescriptionImpl creates a new instance of DraftDescriptionImpl.
// An empty model uses the gateway default.
func NewDraftDescriptionImpl(r domain.ContentRepository, g ProviderGateway, model string) DraftDescriptionImpl {
	return DraftDescriptionImpl{
		repo:    r,
		gateway: g,
		model:   model,
	}
}

// Execute drafts a description of the record in lang. Provider failures are
// returned unchanged so callers can show guidance for their kind.
func (d DraftDescriptionImpl) Execute(ctx context.Context, kind domain.ContentKind, id uuid.UUID, lang string) (string, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("kind", string(kind)),
		attribute.String("record_id", id.String()),
	))
	defer span.End()

	draft, err := d.draft(spanCtx, kind, id, lang)
	if telemetry.RecordErrorAndStatus(span, err) {
		return "", err
	}
	return draft, nil
}

func (d DraftDescriptionImpl) draft(ctx context.Context, kind domain.ContentKind, id uuid.UUID, lang string) (string, error) {
	if err := kind.Validate(); err != nil {
		return "", err
	}

	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		lang = domain.Language_EN
	}
	languageName, ok := languageNames[lang]
	if !ok {
		return "", domain.NewValidationErr("unsupported language: " + lang)
	}

	record, found, err := d.repo.GetByID(ctx, kind, id)
	if err != nil {
		return "", fmt.Errorf("failed to load %s %s: %w", kind, id, err)
	}
	if !found {
		return "", domain.NewNotFoundErr(fmt.Sprintf("%s %s not found", kind, id))
	}

	messages, err := buildDraftMessages(record, kind, languageName)
	if err != nil {
		return "", fmt.Errorf("failed to build prompt: %w", err)
	}

	draft, err := d.gateway.GenerateContent(ctx, messages.user, GenerateContentOptions{
		Model:        d.model,
		SystemPrompt: messages.system,
		Temperature:  common.Ptr(0.4),
		MaxTokens:    common.Ptr(400),
	})
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(draft), nil
}

// draftEntry is the TOON view of a record sent to the provider.
type draftEntry struct {
	Kind         string             `toon:"kind"`
	Category     string             `toon:"category"`
	Translations []draftTranslation `toon:"translations"`
}

type draftTranslation struct {
	Language    string `toon:"language"`
	Name        string `toon:"name"`
	Tag         string `toon:"tag"`
	Description string `toon:"description"`
}

func newDraftEntry(record domain.ContentRecord, kind domain.ContentKind) draftEntry {
	entry := draftEntry{
		Kind:         string(kind),
		Category:     record.Category,
		Translations: []draftTranslation{},
	}

	langs := make([]string, 0, len(record.Localized))
	for lang := range record.Localized {
		langs = append(langs, lang)
	}
	slices.Sort(langs)

	for _, lang := range langs {
		lc := record.Localized[lang]
		if lc.IsZero() {
			continue
		}
		entry.Translations = append(entry.Translations, draftTranslation{
			Language:    lang,
			Name:        lc.Name,
			Tag:         lc.Tag,
			Description: lc.Description,
		})
	}

	if len(entry.Translations) == 0 {
		entry.Translations = append(entry.Translations, draftTranslation{
			Language:    "unknown",
			Name:        record.Legacy.Name,
			Tag:         record.Legacy.TagLine,
			Description: record.Legacy.Description,
		})
	}

	return entry
}

//go:embed prompts/draft_description.yml
var draftDescriptionPrompt embed.FS

type draftMessages struct {
	system string
	user   string
}

func buildDraftMessages(record domain.ContentRecord, kind domain.ContentKind, languageName string) (draftMessages, error) {
	entryTOON, err := toon.MarshalString(newDraftEntry(record, kind), toon.WithLengthMarkers(true))
	if err != nil {
		return draftMessages{}, fmt.Errorf("failed to marshal entry: %w", err)
	}

	file, err := draftDescriptionPrompt.Open("prompts/draft_description.yml")
	if err != nil {
		return draftMessages{}, fmt.Errorf("failed to open draft prompt: %w", err)
	}
	defer file.Close() //nolint:errcheck

	messages := []domain.LLMMessage{}
	if err := yaml.NewDecoder(file).Decode(&messages); err != nil {
		return draftMessages{}, fmt.Errorf("failed to decode draft prompt: %w", err)
	}

	var out draftMessages
	for _, msg := range messages {
		content := fmt.Sprintf(msg.Content, languageName, entryTOON)
		switch msg.Role {
		case domain.LLMRole_System:
			out.system = content
		case domain.LLMRole_User:
			out.user = content
		}
	}
	return out, nil
}

// InitDraftDescription initializes the DraftDescription use case.
type InitDraftDescription struct {
	Repo    domain.ContentRepository `resolve:""`
	Gateway ProviderGateway          `resolve:""`
}

// Initialize registers the DraftDescription use case in the dependency container.
func (i InitDraftDescription) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[DraftDescription](NewDraftDescriptionImpl(i.Repo, i.Gateway, ""))
	return ctx, nil
}
