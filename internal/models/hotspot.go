package models

import (
	"time"

	"github.com/google/uuid"
)

// HotspotRecord - один фокус пожара, полученный из строки CSV
type HotspotRecord struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp string  `json:"timestamp"`
	Satellite string  `json:"satellite"`
}

// Marker - точка кластерного слоя с подписью
type Marker struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp string  `json:"timestamp"`
	Satellite string  `json:"satellite"`
	Popup     string  `json:"popup"`
}

// HotspotLayer - кластерный слой маркеров, на карте всегда не более одного
type HotspotLayer struct {
	ID        uuid.UUID  `json:"id"`
	Period    PeriodMode `json:"period"`
	File      string     `json:"file,omitempty"`
	Markers   []Marker   `json:"markers"`
	CreatedAt time.Time  `json:"created_at"`
}
