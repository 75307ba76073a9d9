package domain

import (
	"fmt"
	"strconv"
)

// Document - документ каталога (маршрут, вейпоинт и т.д.).
// Схема на стороне API открытая, поэтому документ хранится как карта полей,
// а известные поля читаются через защищённые аксессоры: отсутствие поля или
// неожиданный тип - это "нет данных", а не ошибка.
type Document map[string]interface{}

// Соответствие короткого кода типа документа пути на сайте
var entityPaths = map[string]string{
	"r": "routes",
	"w": "waypoints",
	"o": "outings",
	"a": "areas",
	"i": "images",
	"b": "books",
	"c": "articles",
	"x": "xreports",
	"u": "users",
}

// GetString - строковое поле документа, "" если нет
func (d Document) GetString(key string) string {
	if v, ok := d[key].(string); ok {
		return v
	}
	return ""
}

// GetFloat - числовое поле документа (JSON числа декодируются во float64)
func (d Document) GetFloat(key string) (float64, bool) {
	switch v := d[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

// GetSlice - поле-массив документа, nil если нет
func (d Document) GetSlice(key string) []interface{} {
	if v, ok := d[key].([]interface{}); ok {
		return v
	}
	return nil
}

// GetMap - вложенный объект документа, nil если нет
func (d Document) GetMap(key string) map[string]interface{} {
	if v, ok := d[key].(map[string]interface{}); ok {
		return v
	}
	return nil
}

// ID - идентификатор документа: document_id, затем id
func (d Document) ID() (int64, bool) {
	if v, ok := d.GetFloat("document_id"); ok {
		return int64(v), true
	}
	if v, ok := d.GetFloat("id"); ok {
		return int64(v), true
	}
	return 0, false
}

// Title - локализованный заголовок документа.
// Порядок: locales с совпадающим lang, первый locale, поле name, иначе id.
func (d Document) Title(lang string) string {
	locales := d.GetSlice("locales")
	var first string
	for _, l := range locales {
		loc, ok := l.(map[string]interface{})
		if !ok {
			continue
		}
		title, _ := loc["title"].(string)
		if title == "" {
			continue
		}
		if first == "" {
			first = title
		}
		if lang != "" && loc["lang"] == lang {
			return title
		}
	}
	if first != "" {
		return first
	}
	if name := d.GetString("name"); name != "" {
		return name
	}
	if id, ok := d.ID(); ok {
		return strconv.FormatInt(id, 10)
	}
	return ""
}

// BBox - поле bbox документа как [minx, miny, maxx, maxy]
func (d Document) BBox() (BoundingBox, bool) {
	raw := d.GetSlice("bbox")
	if len(raw) != 4 {
		return BoundingBox{}, false
	}
	vals := make([]float64, 4)
	for i, v := range raw {
		f, ok := v.(float64)
		if !ok {
			return BoundingBox{}, false
		}
		vals[i] = f
	}
	return BoundingBox{MinX: vals[0], MinY: vals[1], MaxX: vals[2], MaxY: vals[3]}, true
}

// Point - репрезентативная точка документа.
// Сначала геометрия, затем центр bbox; false - точки нет.
func (d Document) Point() (GeoPoint, bool) {
	if geom := d.GetMap("geometry"); geom != nil {
		if pt, ok := ExtractPoint(geom); ok {
			return pt, true
		}
	}
	if bbox, ok := d.BBox(); ok {
		return bbox.Center(), true
	}
	return GeoPoint{}, false
}

// EntityPath - путь сущности на сайте: по коду type, иначе по эвристике полей
func (d Document) EntityPath() (string, bool) {
	if t := d.GetString("type"); t != "" {
		path, ok := entityPaths[t]
		return path, ok
	}
	if _, ok := d["waypoint_type"]; ok {
		return "waypoints", true
	}
	if _, ok := d["activities"]; ok {
		return "routes", true
	}
	return "", false
}

// URL - публичный адрес документа вида {base}/{entity}/{id}
func (d Document) URL(base string) (string, bool) {
	entity, ok := d.EntityPath()
	if !ok {
		return "", false
	}
	id, ok := d.ID()
	if !ok {
		return "", false
	}
	for len(base) > 0 && base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}
	return fmt.Sprintf("%s/%s/%d", base, entity, id), true
}
