package http

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"

	"github.com/google/uuid"
)

// noMatchMessage mirrors the wording clients already key on.
const noMatchMessage = "No suitable Yoga Asana found for your current mood."

func (api MoodAsanaServer) ProcessPromptHandler(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	w.Header().Set("X-Request-Id", requestID)

	var req PromptReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, newError(errCodeBadRequest, fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	result, err := api.ProcessPromptUseCase.Execute(r.Context(), req.Prompt)
	if err != nil {
		api.Logger.Printf("Error processing prompt [%s]: %v", requestID, err)
		respondError(w, toError(err))
		return
	}

	if !result.Match.Matched {
		respondJSON(w, http.StatusOK, NoMatchResp{
			Status:  "no_match",
			Message: noMatchMessage,
		})
		return
	}

	asana := result.Match.Asana
	respondJSON(w, http.StatusOK, RecommendationResp{
		Status:                   "success",
		RecommendedAsana:         asana.Name,
		SimilarityScore:          roundScore(result.Match.Score),
		HowToDo:                  asana.Content.HowToDo,
		Frequency:                asana.Content.Frequency,
		Timing:                   asana.Content.Timing,
		DietaryRecommendations:   asana.Content.Dietary,
		LifestyleRecommendations: asana.Content.Lifestyle,
		Benefits:                 asana.Content.Benefits,
		FinalComment:             result.Comment,
		DownloadReportURL:        "/download_report/" + result.Report.Filename,
		TotalResponseTimeSec:     roundScore(result.TotalDuration.Seconds()),
	})
}

func (api MoodAsanaServer) DownloadReportHandler(w http.ResponseWriter, r *http.Request) {
	filename := r.PathValue("filename")

	path, err := api.ReportStore.ResolveReport(filename)
	if err != nil {
		api.Logger.Printf("Error resolving report %q: %v", filename, err)
		respondError(w, toError(err))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	http.ServeFile(w, r, path)
}

func (api MoodAsanaServer) ReadinessHandler(w http.ResponseWriter, r *http.Request) {
	if !api.Cache.Ready() {
		respondError(w, newError(errCodeNotReady, "embedding cache is not ready"))
		return
	}

	respondJSON(w, http.StatusOK, ReadinessResp{
		Status:           "ready",
		CachedUtterances: api.Cache.Len(),
		Dimension:        api.Cache.Dimension(),
	})
}

// roundScore rounds to four decimal places for the wire format.
func roundScore(v float64) float64 {
	return math.Round(v*10000) / 10000
}
