package v1

import (
	"time"

	"github.com/shenikar/wildfire_dashboard/internal/models"
)

// SelectionRequest DTO для смены периода и файла
// @Description DTO для смены периода и файла
type SelectionRequest struct {
	Period string `json:"period" validate:"required,oneof=10min mensal anual"`
	File   string `json:"file,omitempty" validate:"omitempty,max=255"`
}

// SelectionResponse DTO для ответа с текущим выбором
// @Description DTO для ответа с текущим выбором
type SelectionResponse struct {
	Period       string          `json:"period"`
	MonthlyFile  string          `json:"mensal_file"`
	AnnualFile   string          `json:"anual_file"`
	MonthlyFiles []string        `json:"mensal_files"`
	AnnualFiles  []string        `json:"anual_files"`
	Visibility   map[string]bool `json:"visibility"`
}

// FilesResponse DTO со списком файлов селектора
// @Description DTO со списком файлов селектора
type FilesResponse struct {
	Period   string   `json:"period"`
	Files    []string `json:"files"`
	Selected string   `json:"selected"`
}

// RegionRequest DTO для нарисованной области
// @Description DTO для нарисованной области (GeoJSON Polygon)
type RegionRequest struct {
	Geometry GeometryRequest `json:"geometry" validate:"required"`
}

// GeometryRequest - геометрия GeoJSON, кольца из пар [lon, lat]
type GeometryRequest struct {
	Type        string        `json:"type" validate:"required,eq=Polygon"`
	Coordinates [][][]float64 `json:"coordinates" validate:"required,min=1,dive,min=4"`
}

// RegionResponse DTO для ответа с нарисованной областью
// @Description DTO для ответа с нарисованной областью
type RegionResponse struct {
	ID           string          `json:"id"`
	Geometry     models.Geometry `json:"geometry"`
	AreaHectares float64         `json:"area_ha"`
	HotspotCount int             `json:"hotspot_count"`
	DrawnAt      time.Time       `json:"drawn_at"`
}

// LoadResponse DTO для итога загрузки фокусов
// @Description DTO для итога загрузки фокусов
type LoadResponse struct {
	Outcome     string `json:"outcome"`
	Period      string `json:"period"`
	File        string `json:"file,omitempty"`
	Parsed      int    `json:"parsed"`
	Skipped     int    `json:"skipped"`
	MarkerCount int    `json:"marker_count"`
}

// FeatureCollection - слой фокусов в формате GeoJSON
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string         `json:"type"`
	Geometry   PointGeometry  `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

type PointGeometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"` // [Lon, Lat]
}

// AnalysisResponse DTO для результата анализа гари
// @Description DTO для результата анализа гари
type AnalysisResponse struct {
	AnalysisID   string              `json:"analysis_id"`
	AreaHectares float64             `json:"area_ha"`
	TileURL      string              `json:"tile_url,omitempty"`
	Message      string              `json:"message"`
	Overlay      *models.ScarOverlay `json:"overlay,omitempty"`
	Superseded   bool                `json:"superseded"`
}

// AnalysisRecordResponse DTO для записи журнала анализов
// @Description DTO для записи журнала анализов
type AnalysisRecordResponse struct {
	ID           string          `json:"id"`
	RegionID     string          `json:"region_id"`
	File         string          `json:"file"`
	Geometry     models.Geometry `json:"geometry"`
	Status       string          `json:"status"`
	AreaHectares float64         `json:"area_ha"`
	TileURL      string          `json:"tile_url,omitempty"`
	Message      string          `json:"message,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}
