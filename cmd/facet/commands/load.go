package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/openfacet/openfacet/pkg/config"
)

// newLoader builds a document loader honoring the global --format flag.
func newLoader() (*config.Loader, error) {
	opts := config.Options{DefaultFormat: config.Format(formatName)}
	loader, err := config.NewLoader(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create loader: %w", err)
	}
	return loader, nil
}

// loadDocument loads one document, forcing the format when --format is set.
func loadDocument(ctx context.Context, loader *config.Loader, path string) (*config.Document, error) {
	if formatName != "" {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read document %s: %w", path, err)
		}
		return loader.LoadSource(ctx, path, src, config.Format(formatName))
	}
	return loader.Load(ctx, path)
}
