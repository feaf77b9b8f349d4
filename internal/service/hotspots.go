package service

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shenikar/wildfire_dashboard/internal/backend"
	"github.com/shenikar/wildfire_dashboard/internal/feed"
	"github.com/shenikar/wildfire_dashboard/internal/models"
	"github.com/shenikar/wildfire_dashboard/internal/render"
	"github.com/sirupsen/logrus"
)

// LoadHotspots загружает ленту для текущего выбора и заменяет слой фокусов
func (s *dashboardService) LoadHotspots(ctx context.Context) (*models.LoadResult, error) {
	sel := s.Selection()
	return s.load(ctx, sel.Period, sel.FileFor(sel.Period), true)
}

// RefreshLive перезагружает живую ленту, если выбран режим 10min
func (s *dashboardService) RefreshLive(ctx context.Context) {
	if s.Selection().Period != models.Period10Min {
		s.logger.WithField("method", "RefreshLive").Debug("Live feed not selected, skipping refresh")
		return
	}
	if _, err := s.load(ctx, models.Period10Min, "", false); err != nil {
		s.logger.WithError(err).Warn("Live feed refresh failed")
	}
}

func (s *dashboardService) CurrentLayer() *models.HotspotLayer {
	return s.layers.Current()
}

// load - общий путь загрузки. Карта занята на все время запроса,
// отметка снимается на любом пути. notify=false глушит alert об ошибке
// для фоновых обновлений.
func (s *dashboardService) load(ctx context.Context, mode models.PeriodMode, file string, notify bool) (*models.LoadResult, error) {
	token := s.layers.BeginFetch()
	defer s.layers.EndFetch()

	log := s.logger.WithFields(logrus.Fields{
		"service":    "dashboard",
		"method":     "LoadHotspots",
		"period":     mode,
		"file":       file,
		"generation": token.Generation(),
	})
	log.Info("Fetching hotspot feed")

	result := &models.LoadResult{Period: mode, File: file}

	payload, err := s.fetchPayload(ctx, mode, file)
	if err != nil {
		if !s.layers.IsLatest(token) {
			log.WithError(err).Warn("Stale hotspot request failed, ignoring")
			s.metrics.StaleResponses.Inc()
			result.Outcome = models.LoadStale
			return result, nil
		}
		log.WithError(err).WithField("transport", backend.IsTransport(err)).Error("Failed to load hotspots")
		s.metrics.HotspotLoads.WithLabelValues(string(mode), "failed").Inc()
		if notify {
			s.notices.Publish(models.NoticeError, models.NoticeAlert, "", render.LoadFailedMessage)
		}
		return nil, fmt.Errorf("service: could not load hotspots: %w", err)
	}

	parsed := feed.Parse(mode, payload, log)
	result.Parsed = parsed.Parsed
	result.Skipped = parsed.Skipped
	s.metrics.RowsParsed.WithLabelValues(string(mode)).Add(float64(parsed.Parsed))
	s.metrics.RowsSkipped.WithLabelValues(string(mode)).Add(float64(parsed.Skipped))

	var layer *models.HotspotLayer
	if !parsed.Empty() {
		layer = render.HotspotLayer(parsed.Records, mode, file)
	}

	// Пустой результат тоже снимает прежний слой: старые фокусы другого периода не показываются
	if !s.layers.Swap(token, layer) {
		log.Warn("Newer hotspot load started, discarding stale response")
		s.metrics.StaleResponses.Inc()
		result.Outcome = models.LoadStale
		return result, nil
	}

	log = log.WithFields(logrus.Fields{"parsed": parsed.Parsed, "skipped": parsed.Skipped})
	if layer == nil {
		result.Outcome = models.LoadEmpty
		s.metrics.HotspotLoads.WithLabelValues(string(mode), "empty").Inc()
		s.metrics.LayerMarkers.Set(0)
		log.Info("Feed processed, no hotspots found")
		// Пустая живая лента - обычное дело, сообщение не показывается
		if mode != models.Period10Min {
			s.notices.Publish(models.NoticeInfo, models.NoticeAlert, "", render.NoHotspotsMessage)
		}
		return result, nil
	}

	result.Outcome = models.LoadLoaded
	result.Layer = layer
	s.metrics.HotspotLoads.WithLabelValues(string(mode), "loaded").Inc()
	s.metrics.LayerMarkers.Set(float64(len(layer.Markers)))
	log.WithField("layer_id", layer.ID).Info("Hotspot layer replaced")
	return result, nil
}

// fetchPayload берет архивные CSV из кеша; живая лента всегда идет в бэкенд
func (s *dashboardService) fetchPayload(ctx context.Context, mode models.PeriodMode, file string) (string, error) {
	cacheable := mode.HasFileSelector() && file != ""
	log := s.logger.WithFields(logrus.Fields{"period": mode, "file": file})

	if cacheable {
		payload, found, err := s.cache.GetPayload(ctx, mode, file)
		if err != nil {
			log.WithError(err).Warn("Failed to read payload from cache")
		}
		if found {
			log.Debug("Hotspot payload served from cache")
			return payload, nil
		}
	}

	timer := s.metrics.FetchDuration.WithLabelValues("fetch_hotspots")
	payload, err := observe(timer, func() (string, error) {
		return s.client.FetchHotspots(ctx, mode, file)
	})
	if err != nil {
		return "", err
	}

	if cacheable {
		if err := s.cache.SetPayload(ctx, mode, file, payload); err != nil {
			log.WithError(err).Warn("Failed to write payload to cache")
		}
	}
	return payload, nil
}

func observe[T any](o prometheus.Observer, fn func() (T, error)) (T, error) {
	timer := prometheus.NewTimer(o)
	defer timer.ObserveDuration()
	return fn()
}
