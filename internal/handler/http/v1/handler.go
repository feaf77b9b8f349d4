package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/wildfire_dashboard/internal/config"
	"github.com/shenikar/wildfire_dashboard/internal/models"
	"github.com/shenikar/wildfire_dashboard/internal/render"
	"github.com/shenikar/wildfire_dashboard/internal/service"
	"github.com/sirupsen/logrus"
)

// NoticeBoard - сообщения пользователю, которые читает и закрывает клиент
type NoticeBoard interface {
	List() []models.Notice
	Dismiss(id uuid.UUID) bool
}

type Handler struct {
	dashboardService service.DashboardService
	notices          NoticeBoard
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(dashboardService service.DashboardService, notices NoticeBoard, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		dashboardService: dashboardService,
		notices:          notices,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// @Summary Get current selection
// @Description Get selected period, selected files and selector options
// @Tags Selection
// @Produce json
// @Success 200 {object} SelectionResponse
// @Router /selection [get]
func (h *Handler) getSelection(c *gin.Context) {
	c.JSON(http.StatusOK, ModelToSelectionResponse(h.dashboardService.Selection()))
}

// @Summary Change period and file
// @Description Select the period mode and, for mensal/anual, the file
// @Tags Selection
// @Accept json
// @Produce json
// @Param selection body SelectionRequest true "Selection request"
// @Success 200 {object} SelectionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /selection [put]
func (h *Handler) updateSelection(c *gin.Context) {
	var input SelectionRequest
	log := h.logger.WithField("method", "updateSelection")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mode := models.PeriodMode(input.Period)
	if input.File != "" && mode.HasFileSelector() {
		if err := h.dashboardService.SelectFile(mode, input.File); err != nil {
			log.WithError(err).Warn("Failed to select file")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if err := h.dashboardService.SelectPeriod(mode); err != nil {
		log.WithError(err).Warn("Failed to select period")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ModelToSelectionResponse(h.dashboardService.Selection()))
}

// @Summary List files of a selector
// @Description List file options for the mensal or anual selector
// @Tags Selection
// @Produce json
// @Param period path string true "Period mode (mensal or anual)"
// @Success 200 {object} FilesResponse
// @Failure 400 {object} map[string]string "Period has no file selector"
// @Router /files/{period} [get]
func (h *Handler) listFiles(c *gin.Context) {
	mode := models.PeriodMode(c.Param("period"))
	if !mode.HasFileSelector() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "period has no file selector"})
		return
	}

	sel := h.dashboardService.Selection()
	c.JSON(http.StatusOK, FilesResponse{
		Period:   string(mode),
		Files:    nonNil(sel.OptionsFor(mode)),
		Selected: sel.FileFor(mode),
	})
}

// @Summary Refresh file selectors
// @Description Re-fetch mensal and anual file lists from the backend
// @Tags Selection
// @Produce json
// @Success 200 {object} SelectionResponse
// @Router /files/refresh [post]
func (h *Handler) refreshFiles(c *gin.Context) {
	h.dashboardService.PopulateSelectors(c.Request.Context())
	c.JSON(http.StatusOK, ModelToSelectionResponse(h.dashboardService.Selection()))
}

// @Summary Load hotspots
// @Description Fetch the feed for the current selection and replace the hotspot layer
// @Tags Hotspots
// @Produce json
// @Success 200 {object} LoadResponse
// @Failure 502 {object} map[string]string "Backend failure"
// @Router /hotspots/load [post]
func (h *Handler) loadHotspots(c *gin.Context) {
	log := h.logger.WithField("method", "loadHotspots")

	result, err := h.dashboardService.LoadHotspots(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to load hotspots in service")
		c.JSON(http.StatusBadGateway, gin.H{"error": render.LoadFailedMessage})
		return
	}

	c.JSON(http.StatusOK, ModelToLoadResponse(result))
}

// @Summary Get hotspot layer
// @Description Get the current hotspot layer as a GeoJSON FeatureCollection
// @Tags Hotspots
// @Produce json
// @Success 200 {object} FeatureCollection
// @Router /hotspots [get]
func (h *Handler) getHotspots(c *gin.Context) {
	c.JSON(http.StatusOK, LayerToFeatureCollection(h.dashboardService.CurrentLayer()))
}

// @Summary Draw region
// @Description Replace the drawn region with a new polygon
// @Tags Region
// @Accept json
// @Produce json
// @Param region body RegionRequest true "Region request"
// @Success 200 {object} RegionResponse
// @Failure 400 {object} map[string]string "Invalid geometry"
// @Failure 403 {object} map[string]string "Scar analysis disabled"
// @Router /region [put]
func (h *Handler) drawRegion(c *gin.Context) {
	var input RegionRequest
	log := h.logger.WithField("method", "drawRegion")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	region, err := h.dashboardService.DrawRegion(DTOToGeometry(input.Geometry))
	if err != nil {
		log.WithError(err).Warn("Failed to draw region in service")
		if errors.Is(err, service.ErrAnalysisDisabled) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ModelToRegionResponse(region))
}

// @Summary Delete region
// @Description Delete the drawn region and its analysis layers
// @Tags Region
// @Success 204 "No Content"
// @Router /region [delete]
func (h *Handler) deleteRegion(c *gin.Context) {
	h.dashboardService.DeleteRegion()
	c.Status(http.StatusNoContent)
}

// @Summary Analyze scar
// @Description Request burn scar analysis for the drawn region and the selected file
// @Tags Region
// @Produce json
// @Success 200 {object} AnalysisResponse
// @Failure 403 {object} map[string]string "Scar analysis disabled"
// @Failure 409 {object} map[string]string "Analysis not possible in the current state"
// @Failure 502 {object} map[string]string "Analysis failed"
// @Router /region/analyze [post]
func (h *Handler) analyzeRegion(c *gin.Context) {
	log := h.logger.WithField("method", "analyzeRegion")

	outcome, err := h.dashboardService.AnalyzeRegion(c.Request.Context())
	if err != nil {
		var failed *service.AnalysisFailedError
		switch {
		case errors.Is(err, service.ErrAnalysisDisabled):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case service.IsLocalRejection(err):
			log.WithError(err).Warn("Scar analysis rejected")
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.As(err, &failed):
			log.WithError(err).Error("Scar analysis failed in service")
			c.JSON(http.StatusBadGateway, gin.H{"error": failed.Message})
		default:
			log.WithError(err).Error("Unexpected scar analysis error")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, ModelToAnalysisResponse(outcome))
}

// @Summary Get map state
// @Description Get busy indicator, layer summary, region state, overlays and triggers
// @Tags Map
// @Produce json
// @Success 200 {object} models.MapState
// @Router /map [get]
func (h *Handler) getMapState(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboardService.MapState())
}

// @Summary List notices
// @Description List recent alerts and modal messages, oldest first
// @Tags Notices
// @Produce json
// @Success 200 {array} models.Notice
// @Router /notices [get]
func (h *Handler) listNotices(c *gin.Context) {
	c.JSON(http.StatusOK, h.notices.List())
}

// @Summary Dismiss notice
// @Description Dismiss a notice by its ID
// @Tags Notices
// @Param id path string true "Notice ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid notice ID"
// @Failure 404 {object} map[string]string "Notice not found"
// @Router /notices/{id} [delete]
func (h *Handler) dismissNotice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notice ID"})
		return
	}

	if !h.notices.Dismiss(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "notice not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get analysis journal
// @Description Get a paginated list of scar analyses. Requires API key.
// @Tags Analyses
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} AnalysisRecordResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /analyses [get]
func (h *Handler) listAnalyses(c *gin.Context) {
	log := h.logger.WithField("method", "listAnalyses")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	records, err := h.dashboardService.ListAnalyses(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list analyses from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToAnalysisRecordResponses(records))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
