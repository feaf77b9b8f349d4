package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/shenikar/wildfire_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

func (s *dashboardService) Selection() models.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	return copySelection(s.selection)
}

// SelectPeriod меняет режим; селекторы файлов показываются по режиму
func (s *dashboardService) SelectPeriod(mode models.PeriodMode) error {
	if !mode.Valid() {
		return fmt.Errorf("service: %w: %q", ErrInvalidPeriod, mode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection.Period = mode
	return nil
}

// SelectFile выбирает файл в селекторе режима
func (s *dashboardService) SelectFile(mode models.PeriodMode, file string) error {
	if !mode.HasFileSelector() {
		return fmt.Errorf("service: %w: %q", ErrNoFileSelector, mode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if options := s.selection.OptionsFor(mode); len(options) > 0 && !slices.Contains(options, file) {
		return fmt.Errorf("service: %w: %q", ErrUnknownFile, file)
	}

	switch mode {
	case models.PeriodMensal:
		s.selection.MonthlyFile = file
	case models.PeriodAnual:
		s.selection.AnnualFile = file
	}
	return nil
}

// PopulateSelectors заполняет селекторы mensal и anual.
// Ошибки только логируются: селектор остается прежним, обычно пустым.
func (s *dashboardService) PopulateSelectors(ctx context.Context) {
	for _, mode := range []models.PeriodMode{models.PeriodMensal, models.PeriodAnual} {
		log := s.logger.WithFields(logrus.Fields{
			"service": "dashboard",
			"method":  "PopulateSelectors",
			"period":  mode,
		})

		files, err := s.listFiles(ctx, mode)
		if err != nil {
			log.WithError(err).Error("Failed to populate file selector")
			continue
		}

		s.mu.Lock()
		s.setOptionsLocked(mode, files)
		s.mu.Unlock()

		log.WithField("count", len(files)).Info("File selector populated")
	}
}

func (s *dashboardService) listFiles(ctx context.Context, mode models.PeriodMode) ([]string, error) {
	log := s.logger.WithField("period", mode)

	cached, err := s.cache.GetListing(ctx, mode)
	if err != nil {
		log.WithError(err).Warn("Failed to read listing from cache")
	}
	if cached != nil {
		return cached, nil
	}

	timer := s.metrics.FetchDuration.WithLabelValues("list_files")
	files, err := observe(timer, func() ([]string, error) {
		return s.client.ListFiles(ctx, mode)
	})
	if err != nil {
		return nil, fmt.Errorf("service: could not list files: %w", err)
	}
	if files == nil {
		files = []string{}
	}

	if err := s.cache.SetListing(ctx, mode, files); err != nil {
		log.WithError(err).Warn("Failed to write listing to cache")
	}
	return files, nil
}

// setOptionsLocked заменяет список файлов; как у HTML select,
// при отсутствии выбранного файла выбирается первый
func (s *dashboardService) setOptionsLocked(mode models.PeriodMode, files []string) {
	files = append([]string(nil), files...)
	pick := func(current string) string {
		if slices.Contains(files, current) {
			return current
		}
		if len(files) > 0 {
			return files[0]
		}
		return ""
	}

	switch mode {
	case models.PeriodMensal:
		s.selection.MonthlyFiles = files
		s.selection.MonthlyFile = pick(s.selection.MonthlyFile)
	case models.PeriodAnual:
		s.selection.AnnualFiles = files
		s.selection.AnnualFile = pick(s.selection.AnnualFile)
	}
}
