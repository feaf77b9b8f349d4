package models

import (
	"time"

	"github.com/google/uuid"
)

// RegionState - состояние жизненного цикла нарисованной области
type RegionState string

const (
	RegionNone             RegionState = "no_region"
	RegionDrawn            RegionState = "region_drawn"
	RegionAnalysisInFlight RegionState = "analysis_in_flight"
	RegionAnalysisComplete RegionState = "analysis_complete"
	RegionAnalysisFailed   RegionState = "analysis_failed"
)

// Geometry - геометрия GeoJSON типа Polygon: кольца из пар [lon, lat]
type Geometry struct {
	Type        string        `json:"type"`
	Coordinates [][][]float64 `json:"coordinates"`
}

// DrawnRegion - единственная нарисованная пользователем область
type DrawnRegion struct {
	ID           uuid.UUID `json:"id"`
	Geometry     Geometry  `json:"geometry"`
	AreaHectares float64   `json:"area_ha"`
	// HotspotCount - фокусы текущего слоя внутри области на момент рисования
	HotspotCount int       `json:"hotspot_count"`
	DrawnAt      time.Time `json:"drawn_at"`
}
