// Package render строит слои карты и тексты для пользователя.
package render

import (
	"fmt"
	"html"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/wildfire_dashboard/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	ScarColor       = "#ff4500"
	ScarWeight      = 2
	ScarFillOpacity = 0.1
	RasterOpacity   = 0.7

	NoScarMessage        = "Nenhuma cicatriz encontrada na área selecionada."
	AnalysisFailedText   = "Não foi possível analisar a cicatriz. Tente novamente."
	NoHotspotsMessage    = "Nenhum foco de queimada encontrado para o período selecionado."
	LoadFailedMessage    = "Não foi possível carregar os dados. Verifique o console para mais detalhes."
	ScarModalTitle       = "Resultado da análise"
	AnalyzeLabel         = "Analisar Cicatriz"
	AnalyzeInFlightLabel = "Analisando..."
)

// Formatter форматирует числа по локали пользователя
type Formatter struct {
	printer *message.Printer
}

// NewFormatter создает форматтер; некорректная локаль заменяется на pt-BR
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.BrazilianPortuguese
	}
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Hectares возвращает площадь с двумя знаками после запятой
func (f *Formatter) Hectares(area float64) string {
	return f.printer.Sprintf("%.2f", area)
}

// ScarPopup - подпись к слою гари
func (f *Formatter) ScarPopup(area float64) string {
	return fmt.Sprintf("<b>Área da cicatriz:</b> %s ha", f.Hectares(area))
}

// ScarModal - текст модального окна с площадью
func (f *Formatter) ScarModal(area float64) string {
	return fmt.Sprintf("Área da cicatriz: %s ha", f.Hectares(area))
}

// HotspotPopup - подпись маркера фокуса
func HotspotPopup(rec models.HotspotRecord) string {
	return fmt.Sprintf("<b>Foco de Queimada 🔥</b><br><b>Data/Hora:</b> %s<br><b>Satélite:</b> %s",
		html.EscapeString(rec.Timestamp), html.EscapeString(rec.Satellite))
}

// HotspotLayer собирает кластерный слой, по маркеру на запись
func HotspotLayer(records []models.HotspotRecord, mode models.PeriodMode, file string) *models.HotspotLayer {
	markers := make([]models.Marker, len(records))
	for i, rec := range records {
		markers[i] = models.Marker{
			Latitude:  rec.Latitude,
			Longitude: rec.Longitude,
			Timestamp: rec.Timestamp,
			Satellite: rec.Satellite,
			Popup:     HotspotPopup(rec),
		}
	}
	return &models.HotspotLayer{
		ID:        uuid.New(),
		Period:    mode,
		File:      file,
		Markers:   markers,
		CreatedAt: time.Now().UTC(),
	}
}

// ScarOverlay строит растровый и векторный слои для найденной гари.
// Для результата без площади возвращает nil.
func (f *Formatter) ScarOverlay(res *models.ScarResult) *models.ScarOverlay {
	if !res.Found() {
		return nil
	}

	overlay := &models.ScarOverlay{
		Popup: f.ScarPopup(res.AreaHectares),
	}
	if res.TileURL != "" {
		overlay.Raster = &models.TileOverlay{URL: res.TileURL, Opacity: RasterOpacity}
	}
	if len(res.VectorGeoJSON) > 0 && string(res.VectorGeoJSON) != "null" {
		overlay.Vector = &models.VectorOverlay{
			GeoJSON: res.VectorGeoJSON,
			Style: models.VectorStyle{
				Color:       ScarColor,
				Weight:      ScarWeight,
				FillOpacity: ScarFillOpacity,
			},
		}
	}
	return overlay
}
