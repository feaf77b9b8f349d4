package service

import (
	"context"

	"github.com/shenikar/wildfire_dashboard/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

// BackendClient определяет контракт внешнего бэкенда данных о пожарах
type BackendClient interface {
	FetchHotspots(ctx context.Context, mode models.PeriodMode, file string) (string, error)
	ListFiles(ctx context.Context, mode models.PeriodMode) ([]string, error)
	AnalyzeScar(ctx context.Context, geometry models.Geometry, file string) (*models.ScarResult, error)
}

// FeedCache определяет контракт кеша списков файлов и архивных CSV
type FeedCache interface {
	GetListing(ctx context.Context, mode models.PeriodMode) ([]string, error)
	SetListing(ctx context.Context, mode models.PeriodMode, files []string) error
	GetPayload(ctx context.Context, mode models.PeriodMode, file string) (string, bool, error)
	SetPayload(ctx context.Context, mode models.PeriodMode, file, payload string) error
}

// AnalysisRepository определяет контракт журнала анализов
type AnalysisRepository interface {
	Save(ctx context.Context, record *models.AnalysisRecord) error
	List(ctx context.Context, page, pageSize int) ([]*models.AnalysisRecord, error)
}

// Notifier показывает сообщения пользователю
type Notifier interface {
	Publish(level models.NoticeLevel, kind models.NoticeKind, title, message string) models.Notice
}

// DashboardService определяет контракт контроллера карты
type DashboardService interface {
	Bootstrap(ctx context.Context)
	Selection() models.Selection
	SelectPeriod(mode models.PeriodMode) error
	SelectFile(mode models.PeriodMode, file string) error
	PopulateSelectors(ctx context.Context)
	LoadHotspots(ctx context.Context) (*models.LoadResult, error)
	RefreshLive(ctx context.Context)
	CurrentLayer() *models.HotspotLayer
	DrawRegion(geometry models.Geometry) (*models.DrawnRegion, error)
	DeleteRegion()
	AnalyzeRegion(ctx context.Context) (*models.AnalysisOutcome, error)
	MapState() models.MapState
	ListAnalyses(ctx context.Context, page, pageSize int) ([]*models.AnalysisRecord, error)
}
