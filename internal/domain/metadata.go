package domain

// PipelineStep describes one stage of the exported pipeline for the sidecar.
type PipelineStep struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Metadata is the write-once JSON sidecar stored next to a model artifact.
type Metadata struct {
	ModelName     string         `json:"model_name"`
	ModelType     string         `json:"model_type"`
	Description   string         `json:"description"`
	FeaturesUsed  string         `json:"features_used"`
	SavedOn       string         `json:"saved_on"`
	SavedBy       string         `json:"saved_by"`
	PipelineSteps []PipelineStep `json:"pipeline_steps"`
	NEstimators   int            `json:"n_estimators"`
	MaxDepth      any            `json:"max_depth"`
	RandomState   any            `json:"random_state"`
	Performance   *Report        `json:"performance,omitempty"`
}
