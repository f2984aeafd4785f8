// backfill embeds every directory record of the configured kinds and exits.
// It runs against the same configuration as the directory service.
package main

import (
	"os"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/app"
)

func main() {
	runner := &backfillRunner{}
	if err := app.NewBackfillApp(runner).Run(); err != nil {
		panic(err)
	}
	if runner.failed > 0 {
		os.Exit(1)
	}
}
