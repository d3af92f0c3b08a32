package log

import (
	"context"
	"log"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	init := InitLogger{Prefix: "moodasana "}
	ctx, err := init.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	logger, err := depend.Resolve[*log.Logger]()
	assert.NoError(t, err)
	assert.Equal(t, "moodasana ", logger.Prefix())
	assert.Equal(t, log.LstdFlags|log.Lmsgprefix, logger.Flags())
}
