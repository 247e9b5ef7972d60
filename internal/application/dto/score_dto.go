package dto

// ScoreFactorDTO un sub-factor del score con su peso.
type ScoreFactorDTO struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Value  float64 `json:"value"`
}

// ScoreResponse trust score, completitud y desglose por factor.
type ScoreResponse struct {
	TrustScore    int              `json:"trust_score"`
	Completion    int              `json:"completion"`
	MissingFields []string         `json:"missing_fields,omitempty"`
	Factors       []ScoreFactorDTO `json:"factors"`
}

// TaskDTO tarea de gamificación.
type TaskDTO struct {
	Field     string `json:"field"`
	Label     string `json:"label"`
	Points    int    `json:"points"`
	Completed bool   `json:"completed"`
}

// TaskListResponse tareas en orden fijo con los puntos conseguidos.
type TaskListResponse struct {
	Tasks        []TaskDTO `json:"tasks"`
	EarnedPoints int       `json:"earned_points"`
	TotalPoints  int       `json:"total_points"`
}

// RecalculateSummary resultado del recálculo masivo (CLI).
type RecalculateSummary struct {
	Users     int `json:"users"`
	Companies int `json:"companies"`
	Failed    int `json:"failed"`
}
