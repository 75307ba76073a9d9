package dto

import "github.com/c2ccombos/internal/domain"

// Feature - GeoJSON-подобная точка для отображения на карте
type Feature struct {
	Type       string                 `json:"type"`
	Geometry   PointGeometry          `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

// PointGeometry - геометрия Feature: точка в градусах EPSG:4326
type PointGeometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// NearResponse - ответ на поиск маршрутов рядом с вейпоинтами
type NearResponse struct {
	Takeoffs []Feature  `json:"takeoffs"`
	Routes   []Feature  `json:"routes"`
	Counts   NearCounts `json:"counts"`
}

// NearCounts - количества найденных объектов
type NearCounts struct {
	Takeoffs int `json:"takeoffs"`
	Routes   int `json:"routes"`
	Matches  int `json:"matches"`
}

// ListResponse - страница документов каталога
type ListResponse struct {
	Documents []domain.Document `json:"documents"`
	Total     int               `json:"total"`
}
