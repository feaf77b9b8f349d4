package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/shenikar/wildfire_dashboard/internal/config"
	"github.com/shenikar/wildfire_dashboard/internal/mapview"
	"github.com/shenikar/wildfire_dashboard/internal/metrics"
	"github.com/shenikar/wildfire_dashboard/internal/models"
	"github.com/shenikar/wildfire_dashboard/internal/render"
	"github.com/shenikar/wildfire_dashboard/internal/webhook"
	"github.com/sirupsen/logrus"
)

var defaultView = models.MapView{
	Center:      models.LatLng{Lat: -15.78, Lng: -47.93},
	Zoom:        4,
	BaseTileURL: "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
	Attribution: "&copy; OpenStreetMap contributors",
}

// dashboardService - единственный владелец состояния карты:
// текущего слоя фокусов, нарисованной области и выбора в селекторах
type dashboardService struct {
	client    BackendClient
	cache     FeedCache
	repo      AnalysisRepository
	publisher webhook.ScarPublisher
	notices   Notifier
	metrics   *metrics.Metrics
	logger    *logrus.Logger
	cfg       *config.Config

	layers    *mapview.LayerManager
	formatter *render.Formatter

	mu               sync.Mutex
	selection        models.Selection
	region           *models.DrawnRegion
	regionState      models.RegionState
	analysisInFlight bool
	lastResult       *models.ScarResult
}

func NewDashboardService(
	client BackendClient,
	cache FeedCache,
	repo AnalysisRepository,
	publisher webhook.ScarPublisher,
	notices Notifier,
	m *metrics.Metrics,
	logger *logrus.Logger,
	cfg *config.Config,
) DashboardService {
	return &dashboardService{
		client:      client,
		cache:       cache,
		repo:        repo,
		publisher:   publisher,
		notices:     notices,
		metrics:     m,
		logger:      logger,
		cfg:         cfg,
		layers:      mapview.NewLayerManager(),
		formatter:   render.NewFormatter(cfg.Locale),
		selection:   models.Selection{Period: models.DefaultPeriod},
		regionState: models.RegionNone,
	}
}

// Bootstrap повторяет открытие страницы: заполняет селекторы и грузит живую ленту
func (s *dashboardService) Bootstrap(ctx context.Context) {
	s.logger.WithField("service", "dashboard").Info("Bootstrapping dashboard state")
	s.PopulateSelectors(ctx)
	if _, err := s.load(ctx, models.DefaultPeriod, "", true); err != nil {
		s.logger.WithError(err).Warn("Initial live feed load failed")
	}
}

// MapState возвращает снимок состояния карты
func (s *dashboardService) MapState() models.MapState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := models.MapState{
		View:            defaultView,
		Busy:            s.layers.Busy(),
		Cursor:          s.layers.Cursor(),
		RegionState:     s.regionState,
		Overlay:         s.layers.Overlay(),
		Result:          s.lastResult,
		AnalyzeTrigger:  s.analyzeTriggerLocked(),
		AnalysisEnabled: s.cfg.AnalysisEnabled,
		Selection:       copySelection(s.selection),
		Visibility: map[string]bool{
			string(models.PeriodMensal): s.selection.Period == models.PeriodMensal,
			string(models.PeriodAnual):  s.selection.Period == models.PeriodAnual,
		},
	}
	if layer := s.layers.Current(); layer != nil {
		state.Layer = &models.LayerSummary{
			ID:          layer.ID.String(),
			Period:      layer.Period,
			File:        layer.File,
			MarkerCount: len(layer.Markers),
		}
	}
	if s.region != nil {
		region := *s.region
		state.Region = &region
	}
	return state
}

// ListAnalyses возвращает журнал анализов с пагинацией
func (s *dashboardService) ListAnalyses(ctx context.Context, page, pageSize int) ([]*models.AnalysisRecord, error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "dashboard",
		"method":    "ListAnalyses",
		"page":      page,
		"page_size": pageSize,
	})

	records, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list analyses from repository")
		return nil, fmt.Errorf("service: could not list analyses: %w", err)
	}

	log.WithField("count", len(records)).Debug("Analyses listed successfully")
	return records, nil
}

func copySelection(sel models.Selection) models.Selection {
	sel.MonthlyFiles = append([]string(nil), sel.MonthlyFiles...)
	sel.AnnualFiles = append([]string(nil), sel.AnnualFiles...)
	return sel
}
