package app

import (
	"github.com/cleitonmarx/moodasana/internal/adapters/inbound/http"
	"github.com/cleitonmarx/moodasana/internal/adapters/inbound/mcp"
	"github.com/cleitonmarx/moodasana/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/moodasana/internal/adapters/outbound/catalog"
	"github.com/cleitonmarx/moodasana/internal/adapters/outbound/config"
	"github.com/cleitonmarx/moodasana/internal/adapters/outbound/csvaudit"
	"github.com/cleitonmarx/moodasana/internal/adapters/outbound/log"
	"github.com/cleitonmarx/moodasana/internal/adapters/outbound/memory"
	"github.com/cleitonmarx/moodasana/internal/adapters/outbound/ollama"
	"github.com/cleitonmarx/moodasana/internal/adapters/outbound/pdf"
	"github.com/cleitonmarx/moodasana/internal/telemetry"
	"github.com/cleitonmarx/moodasana/internal/usecases"
	"github.com/cleitonmarx/symbiont"
)

// NewMoodAsanaApp creates and returns a new instance of the MoodAsana application.
// InitWarmUpCache runs last among the initializers so every host starts against
// a sealed embedding cache.
func NewMoodAsanaApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&catalog.InitCatalog{},
			&memory.InitEmbeddingCache{},
			&ollama.InitOllamaClient{},
			&csvaudit.InitAuditRecorder{},
			&pdf.InitReportRenderer{},
			&workers.InitAuditChannel{},

			&usecases.InitMatchMood{},
			&usecases.InitProcessPrompt{},
			&usecases.InitWarmUpCache{},
		).
		Host(
			&http.MoodAsanaServer{},
			&mcp.RecommendServer{},
			&workers.AuditWriter{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
