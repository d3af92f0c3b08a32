package telemetry

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/stretchr/testify/assert"
)

func TestInitOpenTelemetry_Initialize_Close(t *testing.T) {
	init := &InitOpenTelemetry{
		Logger:          log.New(&strings.Builder{}, "", 0),
		TracesEndpoint:  "-",
		MetricsEndpoint: "-",
	}
	ctx := context.Background()
	ctx, err := init.Initialize(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, ctx)
	init.Close()
}

func TestInitHttpClient_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	init := InitHttpClient{
		Logger:  log.New(&strings.Builder{}, "", 0),
		Timeout: 30 * time.Second,
	}
	ctx := context.Background()
	ctx, err := init.Initialize(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	client, err := depend.Resolve[*http.Client]()
	assert.NoError(t, err)
	assert.Equal(t, 30*time.Second, client.Timeout)
}

func TestDontRetry500StatusPolicy(t *testing.T) {
	policy := dontRetry500StatusPolicy(retryablehttp.ErrorPropagatedRetryPolicy)

	tests := map[string]struct {
		ctx           context.Context
		resp          *http.Response
		err           error
		expectedRetry bool
	}{
		"transport-failure-has-nil-response": {
			ctx:           context.Background(),
			resp:          nil,
			err:           errors.New("dial tcp 127.0.0.1:1: connect: connection refused"),
			expectedRetry: true,
		},
		"internal-server-error-is-not-retried": {
			ctx:           context.Background(),
			resp:          &http.Response{StatusCode: http.StatusInternalServerError},
			expectedRetry: false,
		},
		"success-response-is-not-retried": {
			ctx:           context.Background(),
			resp:          &http.Response{StatusCode: http.StatusOK},
			expectedRetry: false,
		},
		"bad-gateway-is-retried": {
			ctx:           context.Background(),
			resp:          &http.Response{StatusCode: http.StatusBadGateway},
			expectedRetry: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var retry bool
			assert.NotPanics(t, func() {
				retry, _ = policy(tt.ctx, tt.resp, tt.err)
			})
			assert.Equal(t, tt.expectedRetry, retry)
		})
	}
}

func TestDontRetry500StatusPolicy_CanceledContext(t *testing.T) {
	policy := dontRetry500StatusPolicy(retryablehttp.ErrorPropagatedRetryPolicy)

	cancelCtx, cancel := context.WithCancel(context.Background())
	cancel()

	retry, err := policy(cancelCtx, nil, errors.New("connection reset"))
	assert.False(t, retry)
	assert.ErrorIs(t, err, context.Canceled)
}
