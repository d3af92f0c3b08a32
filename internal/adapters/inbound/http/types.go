package http

// PromptReq is the request body for the process_prompt endpoint.
type PromptReq struct {
	Prompt string `json:"prompt"`
}

// RecommendationResp is the success payload for a matched mood.
type RecommendationResp struct {
	Status                   string  `json:"status"`
	RecommendedAsana         string  `json:"recommended_asana"`
	SimilarityScore          float64 `json:"similarity_score"`
	HowToDo                  string  `json:"how_to_do"`
	Frequency                string  `json:"frequency_of_yoga_asana"`
	Timing                   string  `json:"timing_of_yoga_asana"`
	DietaryRecommendations   string  `json:"dietary_recommendations"`
	LifestyleRecommendations string  `json:"lifestyle_recommendations"`
	Benefits                 string  `json:"benefits_of_yoga_asana"`
	FinalComment             string  `json:"final_comment"`
	DownloadReportURL        string  `json:"download_report_url"`
	TotalResponseTimeSec     float64 `json:"total_response_time_sec"`
}

// NoMatchResp is the payload when no asana clears the similarity threshold.
type NoMatchResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ReadinessResp is the payload of the readiness endpoint.
type ReadinessResp struct {
	Status           string `json:"status"`
	CachedUtterances int    `json:"cached_utterances"`
	Dimension        int    `json:"dimension"`
}

// ErrorResp is the error payload shared by all endpoints.
type ErrorResp struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
