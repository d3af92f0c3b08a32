package mcp

import (
	"context"
	"encoding/json"
	"log"
	"strconv"

	"github.com/cleitonmarx/moodasana/internal/usecases"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// serverVersion is reported to MCP clients during the initialize handshake.
const serverVersion = "1.0.0"

// RecommendServer exposes the mood matcher as an MCP tool over stdio so
// agent clients can query recommendations without the REST API.
type RecommendServer struct {
	Logger           *log.Logger        `resolve:""`
	MatchMoodUseCase usecases.MatchMood `resolve:""`
	StdioEnabled     string             `config:"MCP_STDIO_ENABLED" default:"false"`
}

// RecommendInput defines the input for the recommend_asana tool.
type RecommendInput struct {
	Mood string `json:"mood" jsonschema:"A free-text description of the user's current mood or emotional state (e.g., 'I feel anxious and cannot sleep')."`
}

// Run starts the MCP stdio server when enabled; otherwise it idles until
// shutdown so the host list stays static.
func (s RecommendServer) Run(ctx context.Context) error {
	enabled, err := strconv.ParseBool(s.StdioEnabled)
	if err != nil {
		return err
	}
	if !enabled {
		s.Logger.Println("RecommendServer: MCP stdio transport disabled")
		<-ctx.Done()
		return nil
	}

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "moodasana",
			Version: serverVersion,
		},
		nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "recommend_asana",
		Description: "Recommend a yoga asana for a described mood using semantic similarity against a curated catalog. Returns the matched asana with instructions, or a no-match outcome when no asana fits the mood well enough.",
	}, s.handleRecommend)

	s.Logger.Println("RecommendServer: serving MCP over stdio")
	return server.Run(ctx, &mcp.StdioTransport{})
}

func (s RecommendServer) handleRecommend(ctx context.Context, req *mcp.CallToolRequest, input RecommendInput) (*mcp.CallToolResult, any, error) {
	match, err := s.MatchMoodUseCase.Execute(ctx, input.Mood)
	if err != nil {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{
				&mcp.TextContent{Text: err.Error()},
			},
		}, nil, nil
	}

	var result map[string]any
	if match.Matched {
		result = map[string]any{
			"status":                    "success",
			"recommended_asana":         match.Asana.Name,
			"similarity_score":          match.Score,
			"how_to_do":                 match.Asana.Content.HowToDo,
			"frequency_of_yoga_asana":   match.Asana.Content.Frequency,
			"timing_of_yoga_asana":      match.Asana.Content.Timing,
			"dietary_recommendations":   match.Asana.Content.Dietary,
			"lifestyle_recommendations": match.Asana.Content.Lifestyle,
			"benefits_of_yoga_asana":    match.Asana.Content.Benefits,
		}
	} else {
		result = map[string]any{
			"status":           "no_match",
			"message":          "No suitable Yoga Asana found for your current mood.",
			"similarity_score": match.Score,
		}
	}

	resultJSON, _ := json.Marshal(result)

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(resultJSON)},
		},
	}, nil, nil
}
