package utils

import (
	"math"

	"github.com/c2ccombos/internal/domain"
)

const (
	// Радиус сфероида WGS84, метры
	earthRadiusM = 6378137.0

	// Предел широты проекции Меркатора: дальше формула вырождается
	maxMercatorLat = 85.05112878
)

// Project - перевод градусов EPSG:4326 в метры EPSG:3857.
// Широта зажимается в допустимые пределы проекции.
func Project(lon, lat float64) domain.GeoPoint {
	lat = math.Max(math.Min(lat, maxMercatorLat), -maxMercatorLat)
	x := lon * math.Pi / 180.0 * earthRadiusM
	y := math.Log(math.Tan(math.Pi/4.0+lat*math.Pi/180.0/2.0)) * earthRadiusM
	return domain.GeoPoint{X: x, Y: y}
}

// Unproject - обратный перевод метров EPSG:3857 в градусы EPSG:4326
func Unproject(p domain.GeoPoint) (lon, lat float64) {
	lon = p.X / earthRadiusM * 180.0 / math.Pi
	lat = (2.0*math.Atan(math.Exp(p.Y/earthRadiusM)) - math.Pi/2.0) * 180.0 / math.Pi
	return lon, lat
}

// Distance - евклидово расстояние в метрах EPSG:3857.
// Приближение корректно для расстояний, малых относительно радиуса Земли.
func Distance(p1, p2 domain.GeoPoint) float64 {
	return math.Hypot(p1.X-p2.X, p1.Y-p2.Y)
}

// ExpandBBox - симметричное расширение bbox на pad метров во все стороны
func ExpandBBox(b domain.BoundingBox, pad float64) domain.BoundingBox {
	return domain.BoundingBox{
		MinX: b.MinX - pad,
		MinY: b.MinY - pad,
		MaxX: b.MaxX + pad,
		MaxY: b.MaxY + pad,
	}
}

// BBoxContains - попадание точки в bbox, границы включительно
func BBoxContains(b domain.BoundingBox, x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// BBoxAround - квадратный bbox заданного размера вокруг точки
func BBoxAround(center domain.GeoPoint, sizeM float64) domain.BoundingBox {
	half := sizeM / 2.0
	return domain.BoundingBox{
		MinX: center.X - half,
		MinY: center.Y - half,
		MaxX: center.X + half,
		MaxY: center.Y + half,
	}
}

// DocumentLonLat - репрезентативная точка документа в градусах.
// false, если у документа нет ни геометрии, ни bbox.
func DocumentLonLat(doc domain.Document) (lon, lat float64, ok bool) {
	pt, ok := doc.Point()
	if !ok {
		return 0, 0, false
	}
	lon, lat = Unproject(pt)
	return lon, lat, true
}
