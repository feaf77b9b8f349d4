package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ScarResult - ответ анализа гари, живет до следующего рисования или анализа
type ScarResult struct {
	AreaHectares  float64         `json:"area_ha"`
	TileURL       string          `json:"tile_url"`
	VectorGeoJSON json.RawMessage `json:"cicatriz_geojson,omitempty"`
}

// Found сообщает, найдена ли гарь
func (r *ScarResult) Found() bool {
	return r != nil && r.AreaHectares > 0
}

// VectorStyle - стиль векторного слоя гари
type VectorStyle struct {
	Color       string  `json:"color"`
	Weight      int     `json:"weight"`
	FillOpacity float64 `json:"fillOpacity"`
}

// TileOverlay - растровый слой поверх карты
type TileOverlay struct {
	URL     string  `json:"url"`
	Opacity float64 `json:"opacity"`
}

// VectorOverlay - векторный контур гари
type VectorOverlay struct {
	GeoJSON json.RawMessage `json:"geojson"`
	Style   VectorStyle     `json:"style"`
}

// ScarOverlay - набор слоев результата анализа
type ScarOverlay struct {
	Raster *TileOverlay   `json:"raster,omitempty"`
	Vector *VectorOverlay `json:"vector,omitempty"`
	Popup  string         `json:"popup,omitempty"`
}

// AnalysisStatus - итог запроса анализа для журнала
type AnalysisStatus string

const (
	AnalysisComplete AnalysisStatus = "complete"
	AnalysisNoScar   AnalysisStatus = "no_scar"
	AnalysisFailed   AnalysisStatus = "failed"
)

// AnalysisRecord - запись журнала анализов
type AnalysisRecord struct {
	ID           uuid.UUID      `json:"id"`
	RegionID     uuid.UUID      `json:"region_id"`
	File         string         `json:"file"`
	Geometry     Geometry       `json:"geometry"`
	Status       AnalysisStatus `json:"status"`
	AreaHectares float64        `json:"area_ha"`
	TileURL      string         `json:"tile_url,omitempty"`
	Message      string         `json:"message,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}
