package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/wildfire_dashboard/internal/backend"
	"github.com/shenikar/wildfire_dashboard/internal/config"
	"github.com/shenikar/wildfire_dashboard/internal/models"
	"github.com/shenikar/wildfire_dashboard/internal/notice"
	"github.com/shenikar/wildfire_dashboard/internal/render"
	"github.com/shenikar/wildfire_dashboard/internal/service"
	"github.com/shenikar/wildfire_dashboard/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*notice.Board, *mocks.MockDashboardService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockDashboardService(ctrl)
	board := notice.NewBoard(10)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(mockService, board, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return board, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func testPolygon() [][][]float64 {
	return [][][]float64{{{-47.0, -10.0}, {-46.99, -10.0}, {-46.99, -9.99}, {-47.0, -9.99}, {-47.0, -10.0}}}
}

func TestUpdateSelection_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	selected := models.Selection{
		Period:       models.PeriodMensal,
		MonthlyFile:  "focos_mensal_br_202408.csv",
		MonthlyFiles: []string{"focos_mensal_br_202408.csv"},
	}

	gomock.InOrder(
		mockService.EXPECT().SelectFile(models.PeriodMensal, "focos_mensal_br_202408.csv").Return(nil),
		mockService.EXPECT().SelectPeriod(models.PeriodMensal).Return(nil),
		mockService.EXPECT().Selection().Return(selected),
	)

	body := bytes.NewBufferString(`{"period":"mensal","file":"focos_mensal_br_202408.csv"}`)
	w := makeRequest(router, "PUT", "/api/v1/selection", body)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp SelectionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "mensal", resp.Period)
	assert.True(t, resp.Visibility["mensal"])
	assert.False(t, resp.Visibility["anual"])
	assert.Empty(t, resp.AnnualFiles)
}

func TestUpdateSelection_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SelectPeriod(gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "PUT", "/api/v1/selection", bytes.NewBufferString(`{"period":"semanal"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Period' failed on the 'oneof' tag")
}

func TestUpdateSelection_InvalidJSON(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "PUT", "/api/v1/selection", bytes.NewBufferString(`{"period":`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestUpdateSelection_UnknownFile(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		SelectFile(models.PeriodAnual, "focos_br_1999.csv").
		Return(fmt.Errorf("service: %w", service.ErrUnknownFile))
	mockService.EXPECT().SelectPeriod(gomock.Any()).Times(0)

	w := makeRequest(router, "PUT", "/api/v1/selection", bytes.NewBufferString(`{"period":"anual","file":"focos_br_1999.csv"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not in the selector list")
}

func TestListFiles(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Selection().Return(models.Selection{
		Period:      models.Period10Min,
		AnnualFile:  "focos_br_2023.csv",
		AnnualFiles: []string{"focos_br_2023.csv", "focos_br_2022.csv"},
	})

	w := makeRequest(router, "GET", "/api/v1/files/anual", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp FilesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Files, 2)
	assert.Equal(t, "focos_br_2023.csv", resp.Selected)
}

func TestListFiles_NoSelector(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/files/10min", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefreshFiles(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().PopulateSelectors(gomock.Any()).Times(1)
	mockService.EXPECT().Selection().Return(models.Selection{Period: models.Period10Min})

	w := makeRequest(router, "POST", "/api/v1/files/refresh", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"mensal_files":[]`)
}

func TestLoadHotspots_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	layer := &models.HotspotLayer{ID: uuid.New(), Period: models.Period10Min, Markers: make([]models.Marker, 3)}

	mockService.EXPECT().LoadHotspots(gomock.Any()).Return(&models.LoadResult{
		Outcome: models.LoadLoaded,
		Period:  models.Period10Min,
		Parsed:  3,
		Skipped: 1,
		Layer:   layer,
	}, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/hotspots/load", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp LoadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "loaded", resp.Outcome)
	assert.Equal(t, 3, resp.MarkerCount)
	assert.Equal(t, 1, resp.Skipped)
}

func TestLoadHotspots_Empty(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().LoadHotspots(gomock.Any()).Return(&models.LoadResult{
		Outcome: models.LoadEmpty,
		Period:  models.PeriodAnual,
		File:    "focos_br_2023.csv",
	}, nil)

	w := makeRequest(router, "POST", "/api/v1/hotspots/load", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"outcome":"empty"`)
}

func TestLoadHotspots_BackendError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		LoadHotspots(gomock.Any()).
		Return(nil, &backend.StatusError{Op: "fetch hotspots", StatusCode: 500})

	w := makeRequest(router, "POST", "/api/v1/hotspots/load", nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), render.LoadFailedMessage)
}

func TestGetHotspots_GeoJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	layer := &models.HotspotLayer{
		ID:     uuid.New(),
		Period: models.Period10Min,
		Markers: []models.Marker{
			{Latitude: -9.5, Longitude: -47.3, Satellite: "AQUA_M-T", Timestamp: "2024-08-01 12:00:00"},
		},
	}

	mockService.EXPECT().CurrentLayer().Return(layer)

	w := makeRequest(router, "GET", "/api/v1/hotspots", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var fc FeatureCollection
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, []float64{-47.3, -9.5}, fc.Features[0].Geometry.Coordinates)
	assert.Equal(t, "AQUA_M-T", fc.Features[0].Properties["satellite"])
}

func TestGetHotspots_NoLayer(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CurrentLayer().Return(nil)

	w := makeRequest(router, "GET", "/api/v1/hotspots", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, w.Body.String())
}

func TestDrawRegion_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	regionID := uuid.New()

	mockService.EXPECT().
		DrawRegion(models.Geometry{Type: "Polygon", Coordinates: testPolygon()}).
		Return(&models.DrawnRegion{
			ID:           regionID,
			Geometry:     models.Geometry{Type: "Polygon", Coordinates: testPolygon()},
			AreaHectares: 121.7,
			DrawnAt:      time.Now(),
		}, nil).
		Times(1)

	reqBody := RegionRequest{Geometry: GeometryRequest{Type: "Polygon", Coordinates: testPolygon()}}
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/region", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp RegionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, regionID.String(), resp.ID)
	assert.InDelta(t, 121.7, resp.AreaHectares, 1e-9)
}

func TestDrawRegion_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().DrawRegion(gomock.Any()).Times(0)

	w := makeRequest(router, "PUT", "/api/v1/region",
		bytes.NewBufferString(`{"geometry":{"type":"Point","coordinates":[[[1,2]]]}}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'Type' failed on the 'eq' tag")
}

func TestDrawRegion_InvalidGeometry(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		DrawRegion(gomock.Any()).
		Return(nil, fmt.Errorf("service: %w: self-intersecting ring", service.ErrInvalidRegion))

	reqBody := RegionRequest{Geometry: GeometryRequest{Type: "Polygon", Coordinates: testPolygon()}}
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/region", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid region geometry")
}

func TestDrawRegion_Disabled(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().DrawRegion(gomock.Any()).Return(nil, service.ErrAnalysisDisabled)

	reqBody := RegionRequest{Geometry: GeometryRequest{Type: "Polygon", Coordinates: testPolygon()}}
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/region", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteRegion(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().DeleteRegion().Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/region", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAnalyzeRegion_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	overlay := &models.ScarOverlay{
		Raster: &models.TileOverlay{URL: "https://tiles.example.org/t.png", Opacity: render.RasterOpacity},
		Popup:  "<b>Área da cicatriz:</b> 12.345,60 ha",
	}

	mockService.EXPECT().AnalyzeRegion(gomock.Any()).Return(&models.AnalysisOutcome{
		AnalysisID: uuid.NewString(),
		Result:     &models.ScarResult{AreaHectares: 12345.6, TileURL: "https://tiles.example.org/t.png"},
		Overlay:    overlay,
		Message:    "Área da cicatriz: 12.345,60 ha",
	}, nil)

	w := makeRequest(router, "POST", "/api/v1/region/analyze", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp AnalysisResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 12345.6, resp.AreaHectares)
	assert.Equal(t, "Área da cicatriz: 12.345,60 ha", resp.Message)
	require.NotNil(t, resp.Overlay)
	assert.Equal(t, overlay.Raster.URL, resp.Overlay.Raster.URL)
}

func TestAnalyzeRegion_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "no region",
			err:      service.ErrNoRegion,
			wantCode: http.StatusConflict,
			wantBody: "no region drawn",
		},
		{
			name:     "live feed",
			err:      service.ErrLiveFeedAnalysis,
			wantCode: http.StatusConflict,
			wantBody: "monthly or annual",
		},
		{
			name:     "disabled",
			err:      service.ErrAnalysisDisabled,
			wantCode: http.StatusForbidden,
			wantBody: "disabled",
		},
		{
			name: "backend message",
			err: &service.AnalysisFailedError{
				Message: "Nenhuma imagem disponível para o período.",
				Err:     &backend.AnalysisError{StatusCode: 404, Message: "Nenhuma imagem disponível para o período."},
			},
			wantCode: http.StatusBadGateway,
			wantBody: "Nenhuma imagem disponível para o período.",
		},
		{
			name:     "unexpected",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantBody: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)

			mockService.EXPECT().AnalyzeRegion(gomock.Any()).Return(nil, tt.err)

			w := makeRequest(router, "POST", "/api/v1/region/analyze", nil)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestGetMapState(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().MapState().Return(models.MapState{
		Busy:           true,
		Cursor:         "wait",
		RegionState:    models.RegionDrawn,
		AnalyzeTrigger: models.TriggerState{Enabled: true, Label: render.AnalyzeLabel},
	})

	w := makeRequest(router, "GET", "/api/v1/map", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"cursor":"wait"`)
	assert.Contains(t, w.Body.String(), `"region_drawn"`)
}

func TestNotices_ListAndDismiss(t *testing.T) {
	board, _, router := newTestHandler(t)
	n := board.Publish(models.NoticeInfo, models.NoticeAlert, "", render.NoHotspotsMessage)

	w := makeRequest(router, "GET", "/api/v1/notices", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var notices []models.Notice
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notices))
	require.Len(t, notices, 1)
	assert.Equal(t, n.ID, notices[0].ID)

	w = makeRequest(router, "DELETE", "/api/v1/notices/"+n.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, board.List())

	w = makeRequest(router, "DELETE", "/api/v1/notices/"+n.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = makeRequest(router, "DELETE", "/api/v1/notices/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAnalyses_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	records := []*models.AnalysisRecord{{
		ID:           uuid.New(),
		RegionID:     uuid.New(),
		File:         "focos_mensal_br_202408.csv",
		Status:       models.AnalysisComplete,
		AreaHectares: 10,
	}}

	mockService.EXPECT().ListAnalyses(gomock.Any(), 2, 5).Return(records, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/analyses?page=2&pageSize=5", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []AnalysisRecordResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "complete", resp[0].Status)
}

func TestListAnalyses_Unauthorized(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListAnalyses(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/analyses", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListAnalyses_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ListAnalyses(gomock.Any(), 1, 20).Return(nil, errors.New("db down"))

	w := makeRequest(router, "GET", "/api/v1/analyses", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	// Создаем Gin-роутер и добавляем middleware
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_Rejections(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil) // Нет API ключа
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")

	w = makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}
