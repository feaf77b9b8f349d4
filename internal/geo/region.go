// Package geo проверяет нарисованные области и считает их площадь на сфере.
package geo

import (
	"errors"
	"fmt"

	"github.com/golang/geo/s2"
	"github.com/shenikar/wildfire_dashboard/internal/models"
)

const (
	earthRadiusMeters   = 6371008.8
	squareMetersPerHect = 10000.0
)

var (
	ErrUnsupportedGeometry = errors.New("only Polygon geometries can be drawn")
	ErrTooFewVertices      = errors.New("polygon needs at least 3 distinct vertices")
	ErrSelfIntersecting    = errors.New("polygon edges must not cross")
	ErrZeroArea            = errors.New("polygon has no area")
)

// Region - проверенный полигон с его площадью
type Region struct {
	Loop         *s2.Loop
	AreaHectares float64
}

// NewRegion проверяет геометрию GeoJSON и строит петлю S2.
// Используется только внешнее кольцо; дыры не поддерживаются инструментом рисования.
func NewRegion(g models.Geometry) (*Region, error) {
	if g.Type != "Polygon" {
		return nil, ErrUnsupportedGeometry
	}
	if len(g.Coordinates) == 0 {
		return nil, ErrTooFewVertices
	}

	points, err := ringPoints(g.Coordinates[0])
	if err != nil {
		return nil, err
	}

	// Validate не ищет пересечения ребер, проверяем сами
	if selfIntersects(points) {
		return nil, ErrSelfIntersecting
	}

	loop := s2.LoopFromPoints(points)
	if err := loop.Validate(); err != nil {
		return nil, fmt.Errorf("invalid polygon: %w", err)
	}
	// Кольцо может прийти по часовой стрелке
	loop.Normalize()
	if loop.Area() <= 0 {
		return nil, ErrZeroArea
	}

	return &Region{
		Loop:         loop,
		AreaHectares: loop.Area() * earthRadiusMeters * earthRadiusMeters / squareMetersPerHect,
	}, nil
}

// ContainsPoint сообщает, попадает ли точка внутрь области
func (r *Region) ContainsPoint(lat, lon float64) bool {
	return r.Loop.ContainsPoint(s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lon)))
}

// selfIntersects проверяет все пары несмежных ребер кольца
func selfIntersects(points []s2.Point) bool {
	n := len(points)
	for i := 0; i < n; i++ {
		a, b := points[i], points[(i+1)%n]
		for j := i + 2; j < n; j++ {
			// Последнее ребро примыкает к первому
			if i == 0 && j == n-1 {
				continue
			}
			if s2.CrossingSign(a, b, points[j], points[(j+1)%n]) == s2.Cross {
				return true
			}
		}
	}
	return false
}

func ringPoints(ring [][]float64) ([]s2.Point, error) {
	points := make([]s2.Point, 0, len(ring))
	var prev []float64
	for i, pos := range ring {
		if len(pos) < 2 {
			return nil, fmt.Errorf("position %d: expected [lon, lat]", i)
		}
		lon, lat := pos[0], pos[1]
		if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
			return nil, fmt.Errorf("position %d: coordinates out of range: [%v, %v]", i, lon, lat)
		}
		if prev != nil && prev[0] == lon && prev[1] == lat {
			continue
		}
		prev = pos
		points = append(points, s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lon)))
	}

	// Замыкающая вершина GeoJSON повторяет первую
	if len(points) > 1 && points[0].ApproxEqual(points[len(points)-1]) {
		points = points[:len(points)-1]
	}
	if len(points) < 3 {
		return nil, ErrTooFewVertices
	}
	return points, nil
}
