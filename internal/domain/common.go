package domain

import "fmt"

// Ресурсы каталога (listing endpoints)
const (
	ResourceRoutes    = "routes"
	ResourceWaypoints = "waypoints"
)

// GeoPoint - точка в плоской проекции EPSG:3857, метры
type GeoPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// BoundingBox - прямоугольник в EPSG:3857 (minx, miny, maxx, maxy)
type BoundingBox struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// ToQuery - сериализация bbox в формат API: "minx,miny,maxx,maxy"
func (b BoundingBox) ToQuery() string {
	return fmt.Sprintf("%.0f,%.0f,%.0f,%.0f", b.MinX, b.MinY, b.MaxX, b.MaxY)
}

// Center - центр bbox
func (b BoundingBox) Center() GeoPoint {
	return GeoPoint{
		X: (b.MinX + b.MaxX) / 2.0,
		Y: (b.MinY + b.MaxY) / 2.0,
	}
}

// Page - одна страница ответа каталога
type Page struct {
	Total     int        `json:"total"`
	Documents []Document `json:"documents"`
}
