package models

// LatLng - точка центра карты
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MapView - начальный вид карты и базовый слой
type MapView struct {
	Center      LatLng `json:"center"`
	Zoom        int    `json:"zoom"`
	BaseTileURL string `json:"base_tile_url"`
	Attribution string `json:"attribution"`
}

// TriggerState - состояние кнопки
type TriggerState struct {
	Enabled bool   `json:"enabled"`
	Label   string `json:"label"`
}

// LayerSummary - краткое описание текущего слоя фокусов
type LayerSummary struct {
	ID          string     `json:"id"`
	Period      PeriodMode `json:"period"`
	File        string     `json:"file,omitempty"`
	MarkerCount int        `json:"marker_count"`
}

// MapState - снимок состояния карты для страницы
type MapState struct {
	View            MapView         `json:"view"`
	Busy            bool            `json:"busy"`
	Cursor          string          `json:"cursor"`
	Layer           *LayerSummary   `json:"layer,omitempty"`
	RegionState     RegionState     `json:"region_state"`
	Region          *DrawnRegion    `json:"region,omitempty"`
	Overlay         *ScarOverlay    `json:"overlay,omitempty"`
	Result          *ScarResult     `json:"result,omitempty"`
	AnalyzeTrigger  TriggerState    `json:"analyze_trigger"`
	AnalysisEnabled bool            `json:"analysis_enabled"`
	Selection       Selection       `json:"selection"`
	Visibility      map[string]bool `json:"selector_visibility"`
}
