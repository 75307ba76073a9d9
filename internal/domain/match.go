package domain

// Match - пара маршрут-вейпоинт с расстоянием между ними в метрах
type Match struct {
	Route    Document `json:"route"`
	Waypoint Document `json:"waypoint"`
	Distance float64  `json:"distance_m"`
}
