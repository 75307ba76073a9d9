package domain

import "encoding/json"

// Глубина спуска по вложенным массивам координат ограничена: структура
// приходит извне и не обязана быть корректной GeoJSON
const maxCoordDepth = 8

// ExtractPoint - репрезентативная точка из GeoJSON-подобной геометрии.
// Для Point берутся coordinates[0..1], для LineString/Polygon/Multi* -
// первая вершина (не центроид). Каталог часто отдаёт обёртку
// {"geom": "<json-строка>"} - она разбирается один раз и обрабатывается
// рекурсивно. Любая некорректная структура - это "нет точки", не ошибка.
func ExtractPoint(geometry map[string]interface{}) (GeoPoint, bool) {
	if geometry == nil {
		return GeoPoint{}, false
	}

	if geomStr, ok := geometry["geom"].(string); ok {
		var parsed map[string]interface{}
		if err := json.Unmarshal([]byte(geomStr), &parsed); err != nil {
			return GeoPoint{}, false
		}
		return ExtractPoint(parsed)
	}

	coords, ok := geometry["coordinates"].([]interface{})
	if !ok || len(coords) == 0 {
		return GeoPoint{}, false
	}

	if geometry["type"] == "Point" {
		return pairFrom(coords)
	}

	return drill(coords, maxCoordDepth)
}

// drill - спуск к первой паре чисел во вложенных массивах координат
func drill(coords []interface{}, depth int) (GeoPoint, bool) {
	if depth <= 0 || len(coords) == 0 {
		return GeoPoint{}, false
	}
	switch first := coords[0].(type) {
	case float64:
		return pairFrom(coords)
	case []interface{}:
		return drill(first, depth-1)
	}
	return GeoPoint{}, false
}

func pairFrom(coords []interface{}) (GeoPoint, bool) {
	if len(coords) < 2 {
		return GeoPoint{}, false
	}
	x, okX := coords[0].(float64)
	y, okY := coords[1].(float64)
	if !okX || !okY {
		return GeoPoint{}, false
	}
	return GeoPoint{X: x, Y: y}, true
}
