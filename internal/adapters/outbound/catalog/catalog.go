package catalog

import (
	"context"
	"embed"
	"fmt"
	"log"

	"github.com/cleitonmarx/moodasana/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"go.yaml.in/yaml/v3"
)

//go:embed asanas.yml
var catalogFile embed.FS

// catalogDocument is the on-disk shape of the embedded catalog.
type catalogDocument struct {
	Asanas []domain.Asana `yaml:"asanas"`
}

// Load decodes and validates the embedded asana catalog.
func Load() (domain.Catalog, error) {
	file, err := catalogFile.Open("asanas.yml")
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer file.Close() //nolint:errcheck

	doc := catalogDocument{}
	if err := yaml.NewDecoder(file).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog file: %w", err)
	}

	cat := domain.Catalog(doc.Asanas)
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	return cat, nil
}

// InitCatalog loads the embedded catalog and registers it in the dependency container.
type InitCatalog struct {
	Logger *log.Logger `resolve:""`
}

// Initialize decodes, validates and registers the catalog.
func (ic InitCatalog) Initialize(ctx context.Context) (context.Context, error) {
	cat, err := Load()
	if err != nil {
		return ctx, err
	}

	ic.Logger.Printf("Loaded asana catalog: %d asanas, %d utterances", len(cat), cat.TotalUtterances())

	depend.Register(cat)
	return ctx, nil
}
