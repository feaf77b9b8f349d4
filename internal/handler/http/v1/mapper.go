package v1

import "github.com/shenikar/wildfire_dashboard/internal/models"

// ModelToSelectionResponse преобразует выбор селекторов в DTO для ответа
func ModelToSelectionResponse(sel models.Selection) *SelectionResponse {
	return &SelectionResponse{
		Period:       string(sel.Period),
		MonthlyFile:  sel.MonthlyFile,
		AnnualFile:   sel.AnnualFile,
		MonthlyFiles: nonNil(sel.MonthlyFiles),
		AnnualFiles:  nonNil(sel.AnnualFiles),
		Visibility: map[string]bool{
			string(models.PeriodMensal): sel.Period == models.PeriodMensal,
			string(models.PeriodAnual):  sel.Period == models.PeriodAnual,
		},
	}
}

func DTOToGeometry(dto GeometryRequest) models.Geometry {
	return models.Geometry{
		Type:        dto.Type,
		Coordinates: dto.Coordinates,
	}
}

func ModelToRegionResponse(region *models.DrawnRegion) *RegionResponse {
	return &RegionResponse{
		ID:           region.ID.String(),
		Geometry:     region.Geometry,
		AreaHectares: region.AreaHectares,
		HotspotCount: region.HotspotCount,
		DrawnAt:      region.DrawnAt,
	}
}

func ModelToLoadResponse(result *models.LoadResult) *LoadResponse {
	resp := &LoadResponse{
		Outcome: string(result.Outcome),
		Period:  string(result.Period),
		File:    result.File,
		Parsed:  result.Parsed,
		Skipped: result.Skipped,
	}
	if result.Layer != nil {
		resp.MarkerCount = len(result.Layer.Markers)
	}
	return resp
}

// LayerToFeatureCollection преобразует слой фокусов в GeoJSON.
// Отсутствие слоя дает пустую коллекцию.
func LayerToFeatureCollection(layer *models.HotspotLayer) *FeatureCollection {
	fc := &FeatureCollection{Type: "FeatureCollection", Features: []Feature{}}
	if layer == nil {
		return fc
	}

	fc.Features = make([]Feature, len(layer.Markers))
	for i, m := range layer.Markers {
		fc.Features[i] = Feature{
			Type: "Feature",
			Geometry: PointGeometry{
				Type:        "Point",
				Coordinates: []float64{m.Longitude, m.Latitude},
			},
			Properties: map[string]any{
				"layer_id":  layer.ID.String(),
				"period":    string(layer.Period),
				"timestamp": m.Timestamp,
				"satellite": m.Satellite,
				"popup":     m.Popup,
			},
		}
	}
	return fc
}

func ModelToAnalysisResponse(outcome *models.AnalysisOutcome) *AnalysisResponse {
	resp := &AnalysisResponse{
		AnalysisID: outcome.AnalysisID,
		Message:    outcome.Message,
		Overlay:    outcome.Overlay,
		Superseded: outcome.Superseded,
	}
	if outcome.Result != nil {
		resp.AreaHectares = outcome.Result.AreaHectares
		resp.TileURL = outcome.Result.TileURL
	}
	return resp
}

// ModelsToAnalysisRecordResponses преобразует слайс записей журнала в слайс DTO
func ModelsToAnalysisRecordResponses(records []*models.AnalysisRecord) []*AnalysisRecordResponse {
	responses := make([]*AnalysisRecordResponse, len(records))
	for i, r := range records {
		responses[i] = &AnalysisRecordResponse{
			ID:           r.ID.String(),
			RegionID:     r.RegionID.String(),
			File:         r.File,
			Geometry:     r.Geometry,
			Status:       string(r.Status),
			AreaHectares: r.AreaHectares,
			TileURL:      r.TileURL,
			Message:      r.Message,
			CreatedAt:    r.CreatedAt,
		}
	}
	return responses
}

func nonNil(files []string) []string {
	if files == nil {
		return []string{}
	}
	return files
}
