package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-directory/internal/usecases"
)

// backfillRunner runs the batch embedding writer once per configured kind.
type backfillRunner struct {
	Logger             *log.Logger                 `resolve:""`
	BackfillEmbeddings usecases.BackfillEmbeddings `resolve:""`
	Kinds              string                      `config:"BACKFILL_KINDS" default:"tool,prompt"`
	failed             int
}

// Run processes every kind in order and stops at the first kind that cannot be listed.
func (r *backfillRunner) Run(ctx context.Context) error {
	kinds, err := parseKinds(r.Kinds)
	if err != nil {
		return err
	}

	for _, kind := range kinds {
		result, err := r.BackfillEmbeddings.Execute(ctx, kind, func(current, total int) {
			r.Logger.Printf("backfill: %s %d/%d", kind, current, total)
		})
		if err != nil {
			return fmt.Errorf("%s backfill: %w", kind, err)
		}
		r.failed += result.Failed
		r.Logger.Printf("backfill: %s done success=%d failed=%d", kind, result.Success, result.Failed)
	}
	return nil
}

func parseKinds(raw string) ([]domain.ContentKind, error) {
	var kinds []domain.ContentKind
	for _, k := range strings.Split(raw, ",") {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		kind := domain.ContentKind(k)
		if err := kind.Validate(); err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	if len(kinds) == 0 {
		return nil, domain.NewValidationErr("BACKFILL_KINDS is empty")
	}
	return kinds, nil
}
