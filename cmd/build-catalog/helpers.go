// Shared helpers for build-catalog subcommands.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/studyforge/catalog/internal/paths"
	"github.com/studyforge/catalog/internal/pipeline"
)

// runPipeline resolves the effective options from flags and config and
// runs the build pipeline. A content load failure is a user error; it is
// printed directly and exits with the user-error code.
func runPipeline(ctx context.Context) (*pipeline.Result, error) {
	contentDir, err := paths.ResolveContentDir(flagContentDir, cfg.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("resolve content dir: %w", err)
	}

	result, err := pipeline.Run(ctx, pipeline.Options{
		Fs:              afero.NewOsFs(),
		ContentDir:      contentDir,
		ExtraLanguages:  cfg.ExtraLanguages,
		CheckLinks:      flagCheckLinks || cfg.LinkEnabled,
		LinkConcurrency: cfg.LinkConcurrency,
		LinkTimeout:     cfg.LinkTimeout,
		Log:             log,
	})
	if err != nil {
		if errors.Is(err, pipeline.ErrContentLoad) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitUserError)
		}
		return nil, err
	}
	return result, nil
}

// effectiveStrict merges the --strict flag with the config default.
func effectiveStrict() bool {
	return flagStrict || cfg.Strict
}
