package log

import (
	"context"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger is the initializer for the shared application logger.
type InitLogger struct {
	Prefix string `config:"LOG_PREFIX" default:"moodasana "`
}

// Initialize registers the logger in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(log.New(os.Stdout, il.Prefix, log.LstdFlags|log.Lmsgprefix))
	return ctx, nil
}
