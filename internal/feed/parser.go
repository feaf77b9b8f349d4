// Package feed разбирает CSV-ленту фокусов пожаров в записи HotspotRecord.
package feed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shenikar/wildfire_dashboard/internal/models"
	"github.com/sirupsen/logrus"
)

// Layout - расположение колонок для режима
type Layout struct {
	MinColumns int
	Lat        int
	Lon        int
	Satellite  int
	Timestamp  int
}

var layouts = map[models.PeriodMode]Layout{
	models.PeriodMensal: {MinColumns: 5, Lat: 1, Lon: 2, Satellite: 4, Timestamp: 3},
	models.PeriodAnual:  {MinColumns: 5, Lat: 1, Lon: 2, Satellite: 4, Timestamp: 3},
	models.Period10Min:  {MinColumns: 4, Lat: 0, Lon: 1, Satellite: 2, Timestamp: 3},
}

// LayoutFor возвращает раскладку колонок режима
func LayoutFor(mode models.PeriodMode) (Layout, bool) {
	l, ok := layouts[mode]
	return l, ok
}

// Result - итог разбора ленты
type Result struct {
	Records []models.HotspotRecord
	Parsed  int
	Skipped int
	// Invalid - строки с нечисловыми координатами, подмножество Skipped
	Invalid int
}

// Empty сообщает, что ни одной записи не получено
func (r Result) Empty() bool {
	return r.Parsed == 0
}

// Parse разбирает текст ленты. Первая строка - заголовок.
// Битая строка никогда не прерывает разбор всей ленты.
func Parse(mode models.PeriodMode, payload string, log logrus.FieldLogger) Result {
	var res Result

	layout, ok := LayoutFor(mode)
	if !ok {
		return res
	}

	lines := strings.Split(strings.TrimSpace(payload), "\n")
	if len(lines) < 2 {
		return res
	}

	for i, line := range lines[1:] {
		lineNo := i + 2
		columns, err := splitRow(line)
		if err != nil {
			res.Skipped++
			log.WithError(err).WithField("line", lineNo).Warn("Failed to tokenize CSV row")
			continue
		}
		if len(columns) < layout.MinColumns {
			res.Skipped++
			continue
		}

		record, err := layout.record(columns)
		if err != nil {
			res.Skipped++
			if !errors.Is(err, errEmptyCoordinate) {
				res.Invalid++
				log.WithError(err).WithFields(logrus.Fields{
					"line": lineNo,
					"row":  line,
				}).Warn("Could not process CSV row")
			}
			continue
		}

		res.Records = append(res.Records, record)
		res.Parsed++
	}

	return res
}

var errEmptyCoordinate = errors.New("empty coordinate")

func (l Layout) record(columns []string) (models.HotspotRecord, error) {
	latStr := strings.TrimSpace(columns[l.Lat])
	lonStr := strings.TrimSpace(columns[l.Lon])
	if latStr == "" || lonStr == "" {
		return models.HotspotRecord{}, errEmptyCoordinate
	}

	lat, err := ParseCoordinate(latStr)
	if err != nil {
		return models.HotspotRecord{}, fmt.Errorf("latitude: %w", err)
	}
	lon, err := ParseCoordinate(lonStr)
	if err != nil {
		return models.HotspotRecord{}, fmt.Errorf("longitude: %w", err)
	}

	return models.HotspotRecord{
		Latitude:  lat,
		Longitude: lon,
		Timestamp: strings.TrimSpace(columns[l.Timestamp]),
		Satellite: strings.TrimSpace(columns[l.Satellite]),
	}, nil
}

// ParseCoordinate разбирает десятичное число с запятой или точкой
func ParseCoordinate(s string) (float64, error) {
	normalized := strings.Replace(s, ",", ".", 1)
	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("non-finite number %q", s)
	}
	return v, nil
}

// splitRow разбивает одну строку как запись CSV, кавычки учитываются
func splitRow(line string) ([]string, error) {
	line = strings.TrimRight(line, "\r")
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}

	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	columns, err := r.Read()
	if err != nil {
		return nil, err
	}
	return columns, nil
}
