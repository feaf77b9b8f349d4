package models

// LoadOutcome - итог загрузки ленты
type LoadOutcome string

const (
	LoadLoaded LoadOutcome = "loaded"
	LoadEmpty  LoadOutcome = "empty"
	// LoadStale - ответ пришел после начала более новой загрузки и отброшен
	LoadStale LoadOutcome = "stale"
)

// LoadResult - результат загрузки слоя фокусов
type LoadResult struct {
	Outcome LoadOutcome   `json:"outcome"`
	Period  PeriodMode    `json:"period"`
	File    string        `json:"file,omitempty"`
	Parsed  int           `json:"parsed"`
	Skipped int           `json:"skipped"`
	Layer   *HotspotLayer `json:"-"`
}

// AnalysisOutcome - результат анализа гари
type AnalysisOutcome struct {
	AnalysisID string       `json:"analysis_id"`
	Result     *ScarResult  `json:"result"`
	Overlay    *ScarOverlay `json:"overlay,omitempty"`
	Message    string       `json:"message"`
	// Superseded - область перерисовали или удалили, пока шел запрос
	Superseded bool `json:"superseded"`
}
