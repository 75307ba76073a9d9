package dto

// NearRequest - запрос на поиск маршрутов рядом с вейпоинтами вокруг точки
type NearRequest struct {
	Lon          float64  `json:"lon" validate:"min=-180,max=180"`
	Lat          float64  `json:"lat" validate:"min=-90,max=90"`
	BoxSizeM     float64  `json:"box" validate:"omitempty,min=100,max=1000000"`
	MaxDistanceM float64  `json:"max_distance" validate:"omitempty,min=1,max=100000"`
	Activity     string   `json:"act,omitempty"`
	WaypointType string   `json:"wtyp,omitempty"`
	Orientations []string `json:"wfac,omitempty"`
	FreeRatingLo string   `json:"fratmin,omitempty"`
	FreeRatingHi string   `json:"fratmax,omitempty"`
	Lang         string   `json:"lang,omitempty"`
}

// ListRequest - запрос на постраничный список документов каталога
type ListRequest struct {
	BBox     string `json:"bbox,omitempty"`
	Activity string `json:"act,omitempty"`
	Lang     string `json:"lang,omitempty"`
	Query    string `json:"q,omitempty"`
	Limit    int    `json:"limit" validate:"omitempty,min=1,max=100"`
	Offset   int    `json:"offset" validate:"omitempty,min=0"`
}
