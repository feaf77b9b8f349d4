package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/wildfire_dashboard/internal/models"
	"github.com/shenikar/wildfire_dashboard/internal/service"
)

type AnalysisRepository struct {
	db *pgxpool.Pool
}

func NewAnalysisRepository(db *pgxpool.Pool) service.AnalysisRepository {
	return &AnalysisRepository{
		db: db,
	}
}

// Save сохраняет запись об анализе в журнал
func (r *AnalysisRepository) Save(ctx context.Context, record *models.AnalysisRecord) error {
	geometry, err := json.Marshal(record.Geometry)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis geometry: %w", err)
	}

	query := `
		INSERT INTO scar_analyses (id, region_id, file, geometry, status, area_ha, tile_url, message)
		VALUES ($1, $2, $3, ST_SetSRID(ST_GeomFromGeoJSON($4), 4326), $5, $6, $7, $8)
		RETURNING created_at;
	`
	err = r.db.QueryRow(ctx, query,
		record.ID,
		record.RegionID,
		record.File,
		string(geometry),
		record.Status,
		record.AreaHectares,
		record.TileURL,
		record.Message,
	).Scan(&record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save scar analysis: %w", err)
	}
	return nil
}

// List возвращает журнал анализов с пагинацией, новые первыми
func (r *AnalysisRepository) List(ctx context.Context, page, pageSize int) ([]*models.AnalysisRecord, error) {
	// рассчитываем смещение
	offset := (page - 1) * pageSize

	query := `
		SELECT
			id,
			region_id,
			file,
			ST_AsGeoJSON(geometry) as geometry,
			status,
			area_ha,
			tile_url,
			message,
			created_at
		FROM scar_analyses
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list scar analyses: %w", err)
	}
	defer rows.Close()

	records := make([]*models.AnalysisRecord, 0)
	for rows.Next() {
		record := &models.AnalysisRecord{}
		var geometry string
		err := rows.Scan(
			&record.ID,
			&record.RegionID,
			&record.File,
			&geometry,
			&record.Status,
			&record.AreaHectares,
			&record.TileURL,
			&record.Message,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scar analysis row: %w", err)
		}
		if err := json.Unmarshal([]byte(geometry), &record.Geometry); err != nil {
			return nil, fmt.Errorf("failed to decode scar analysis geometry: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return records, nil
}
