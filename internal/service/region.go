package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/wildfire_dashboard/internal/backend"
	"github.com/shenikar/wildfire_dashboard/internal/geo"
	"github.com/shenikar/wildfire_dashboard/internal/models"
	"github.com/shenikar/wildfire_dashboard/internal/render"
	"github.com/shenikar/wildfire_dashboard/internal/webhook"
	"github.com/sirupsen/logrus"
)

// DrawRegion заменяет нарисованную область целиком и убирает прежние слои анализа
func (s *dashboardService) DrawRegion(geometry models.Geometry) (*models.DrawnRegion, error) {
	if !s.cfg.AnalysisEnabled {
		return nil, ErrAnalysisDisabled
	}

	r, err := geo.NewRegion(geometry)
	if err != nil {
		return nil, fmt.Errorf("service: %w: %w", ErrInvalidRegion, err)
	}

	region := &models.DrawnRegion{
		ID:           uuid.New(),
		Geometry:     geometry,
		AreaHectares: r.AreaHectares,
		HotspotCount: countInside(r, s.layers.Current()),
		DrawnAt:      time.Now().UTC(),
	}

	s.mu.Lock()
	s.region = region
	s.regionState = models.RegionDrawn
	s.lastResult = nil
	s.layers.ClearOverlay()
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"service":   "dashboard",
		"method":    "DrawRegion",
		"region_id": region.ID,
		"area_ha":   region.AreaHectares,
		"hotspots":  region.HotspotCount,
	}).Info("Region drawn")

	out := *region
	return &out, nil
}

// DeleteRegion возвращает карту в состояние без области
func (s *dashboardService) DeleteRegion() {
	s.mu.Lock()
	s.region = nil
	s.regionState = models.RegionNone
	s.lastResult = nil
	s.layers.ClearOverlay()
	s.mu.Unlock()

	s.logger.WithField("method", "DeleteRegion").Info("Region deleted")
}

// AnalyzeRegion запрашивает анализ гари для нарисованной области.
// Все локальные проверки выполняются до сетевого запроса.
func (s *dashboardService) AnalyzeRegion(ctx context.Context) (*models.AnalysisOutcome, error) {
	s.mu.Lock()
	region, file, err := s.beginAnalysisLocked()
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	s.layers.ClearOverlay()

	defer func() {
		s.mu.Lock()
		s.analysisInFlight = false
		s.mu.Unlock()
	}()

	log := s.logger.WithFields(logrus.Fields{
		"service":   "dashboard",
		"method":    "AnalyzeRegion",
		"region_id": region.ID,
		"file":      file,
	})
	log.Info("Requesting scar analysis")

	record := &models.AnalysisRecord{
		ID:       uuid.New(),
		RegionID: region.ID,
		File:     file,
		Geometry: region.Geometry,
	}
	outcome := &models.AnalysisOutcome{AnalysisID: record.ID.String()}

	timer := s.metrics.FetchDuration.WithLabelValues("analyze_scar")
	result, err := observe(timer, func() (*models.ScarResult, error) {
		return s.client.AnalyzeScar(ctx, region.Geometry, file)
	})
	if err != nil {
		message := render.AnalysisFailedText
		if msg, ok := backend.AnalysisMessage(err); ok {
			message = msg
		}
		log.WithError(err).Error("Scar analysis failed")

		record.Status = models.AnalysisFailed
		record.Message = message
		s.journal(ctx, record)
		s.metrics.Analyses.WithLabelValues(string(models.AnalysisFailed)).Inc()

		if !s.finishAnalysis(region.ID, models.RegionAnalysisFailed, nil, nil) {
			log.Info("Region changed during analysis, failure discarded")
			outcome.Message = message
			outcome.Superseded = true
			return outcome, nil
		}
		s.notices.Publish(models.NoticeError, models.NoticeAlert, "", message)
		return nil, &AnalysisFailedError{Message: message, Err: err}
	}

	outcome.Result = result
	if !result.Found() {
		record.Status = models.AnalysisNoScar
		record.Message = render.NoScarMessage
		outcome.Message = render.NoScarMessage
		s.journal(ctx, record)
		s.metrics.Analyses.WithLabelValues(string(models.AnalysisNoScar)).Inc()

		outcome.Superseded = !s.finishAnalysis(region.ID, models.RegionAnalysisComplete, result, nil)
		if !outcome.Superseded {
			s.notices.Publish(models.NoticeInfo, models.NoticeAlert, "", render.NoScarMessage)
		}
		log.Info("Scar analysis found no scar")
		return outcome, nil
	}

	overlay := s.formatter.ScarOverlay(result)
	outcome.Overlay = overlay
	outcome.Message = s.formatter.ScarModal(result.AreaHectares)

	record.Status = models.AnalysisComplete
	record.AreaHectares = result.AreaHectares
	record.TileURL = result.TileURL
	record.Message = outcome.Message
	s.journal(ctx, record)
	s.metrics.Analyses.WithLabelValues(string(models.AnalysisComplete)).Inc()
	s.publishScar(ctx, record)

	outcome.Superseded = !s.finishAnalysis(region.ID, models.RegionAnalysisComplete, result, overlay)
	if !outcome.Superseded {
		s.notices.Publish(models.NoticeInfo, models.NoticeModal, render.ScarModalTitle, outcome.Message)
	}
	log.WithField("area_ha", result.AreaHectares).Info("Scar analysis completed")
	return outcome, nil
}

func (s *dashboardService) beginAnalysisLocked() (models.DrawnRegion, string, error) {
	if !s.cfg.AnalysisEnabled {
		return models.DrawnRegion{}, "", ErrAnalysisDisabled
	}
	if s.region == nil {
		return models.DrawnRegion{}, "", ErrNoRegion
	}
	if s.selection.Period == models.Period10Min {
		return models.DrawnRegion{}, "", ErrLiveFeedAnalysis
	}
	file := s.selection.FileFor(s.selection.Period)
	if file == "" {
		return models.DrawnRegion{}, "", ErrNoFileSelected
	}
	if s.analysisInFlight {
		return models.DrawnRegion{}, "", ErrAnalysisInFlight
	}

	s.analysisInFlight = true
	s.regionState = models.RegionAnalysisInFlight
	s.lastResult = nil
	return *s.region, file, nil
}

// finishAnalysis применяет результат, только если область не сменилась за время запроса
func (s *dashboardService) finishAnalysis(regionID uuid.UUID, state models.RegionState, result *models.ScarResult, overlay *models.ScarOverlay) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.region == nil || s.region.ID != regionID {
		return false
	}
	s.regionState = state
	s.lastResult = result
	if overlay != nil {
		s.layers.SetOverlay(overlay)
	}
	return true
}

// analyzeTriggerLocked - кнопка анализа активна только при области, архивном режиме
// и отсутствии запроса в полете
func (s *dashboardService) analyzeTriggerLocked() models.TriggerState {
	if s.analysisInFlight {
		return models.TriggerState{Enabled: false, Label: render.AnalyzeInFlightLabel}
	}
	enabled := s.cfg.AnalysisEnabled &&
		s.region != nil &&
		s.selection.Period != models.Period10Min &&
		s.selection.FileFor(s.selection.Period) != ""
	return models.TriggerState{Enabled: enabled, Label: render.AnalyzeLabel}
}

// journal пишет запись в журнал; ошибка журнала не влияет на пользователя
func (s *dashboardService) journal(ctx context.Context, record *models.AnalysisRecord) {
	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.WithError(err).WithField("analysis_id", record.ID).Error("Failed to save analysis to journal")
	}
}

func (s *dashboardService) publishScar(ctx context.Context, record *models.AnalysisRecord) {
	geometry, err := json.Marshal(record.Geometry)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to marshal scar geometry for webhook")
		geometry = nil
	}

	event := webhook.ScarEvent{
		AnalysisID:   record.ID,
		RegionID:     record.RegionID,
		File:         record.File,
		AreaHectares: record.AreaHectares,
		TileURL:      record.TileURL,
		Geometry:     geometry,
		Timestamp:    time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithField("analysis_id", record.ID).Error("Failed to publish scar event")
	}
}

func countInside(r *geo.Region, layer *models.HotspotLayer) int {
	if layer == nil {
		return 0
	}
	n := 0
	for _, m := range layer.Markers {
		if r.ContainsPoint(m.Latitude, m.Longitude) {
			n++
		}
	}
	return n
}

// IsLocalRejection сообщает, что анализ отклонен без сетевого запроса
func IsLocalRejection(err error) bool {
	for _, target := range []error{ErrAnalysisDisabled, ErrNoRegion, ErrLiveFeedAnalysis, ErrNoFileSelected, ErrAnalysisInFlight} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
