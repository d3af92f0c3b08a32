package integration

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	embedModel = "mxbai-embed-large"
	chatModel  = "qwen2.5:0.5b-instruct"
)

// initEnvVars sets environment variables before the config layer reads them.
type initEnvVars struct {
	envVars map[string]string
}

func (i initEnvVars) Initialize(ctx context.Context) (context.Context, error) {
	for key, value := range i.envVars {
		if err := os.Setenv(key, value); err != nil {
			return ctx, err
		}
	}
	return ctx, nil
}

// InitOllamaContainer starts an Ollama container, pulls the models the app
// needs, and points OLLAMA_HOST at the mapped endpoint.
type InitOllamaContainer struct {
	container testcontainers.Container
}

func (i *InitOllamaContainer) Initialize(ctx context.Context) (context.Context, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "ollama/ollama:0.12.3",
			ExposedPorts: []string{"11434/tcp"},
			WaitingFor:   wait.ForListeningPort("11434/tcp"),
		},
		Started: true,
	})
	if err != nil {
		return ctx, err
	}
	i.container = container

	for _, model := range []string{embedModel, chatModel} {
		code, _, err := container.Exec(ctx, []string{"ollama", "pull", model})
		if err != nil {
			return ctx, err
		}
		if code != 0 {
			return ctx, fmt.Errorf("ollama pull %s exited with code %d", model, code)
		}
	}

	endpoint, err := container.PortEndpoint(ctx, "11434/tcp", "http")
	if err != nil {
		return ctx, err
	}

	return ctx, os.Setenv("OLLAMA_HOST", endpoint)
}

func (i InitOllamaContainer) Close() {
	if i.container != nil {
		cancelCtx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()

		if err := i.container.Terminate(cancelCtx); err != nil {
			log.Printf("failed to terminate ollama container: %v", err)
		}
	}
}
