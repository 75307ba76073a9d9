package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// SearchFilter - сериализуемый набор критериев поиска для одного вида документов
type SearchFilter interface {
	ToQuery() map[string]string
}

// Range - значение-диапазон параметра API в формате "min,max".
// Либо уже готовая строка (RawRange), либо пара границ, каждая из которых
// может быть открытой (пустая сторона).
type Range struct {
	raw   string
	lo    string
	hi    string
	isRaw bool
}

// RawRange - диапазон, переданный готовой строкой; уходит в API как есть
func RawRange(s string) *Range {
	return &Range{raw: s, isRaw: true}
}

// Between - диапазон с обеими границами
func Between(lo, hi string) *Range {
	return &Range{lo: lo, hi: hi}
}

// AtLeast - диапазон, открытый сверху: "lo,"
func AtLeast(lo string) *Range {
	return &Range{lo: lo}
}

// AtMost - диапазон, открытый снизу: ",hi"
func AtMost(hi string) *Range {
	return &Range{hi: hi}
}

// IntRange - числовой диапазон с обеими границами
func IntRange(lo, hi int) *Range {
	return Between(strconv.Itoa(lo), strconv.Itoa(hi))
}

// Wire - сериализация диапазона в формат API
func (r *Range) Wire() string {
	if r.isRaw {
		return r.raw
	}
	return r.lo + "," + r.hi
}

// BaseFilter - критерии поиска, общие для всех видов документов
type BaseFilter struct {
	Query   string
	Lang    string
	BBox    *BoundingBox
	Fields  []string
	OrderBy string
	Order   string // asc|desc
	Limit   *int
	Offset  *int

	// Extras - произвольные параметры API, не смоделированные полями.
	// Применяются последними и перекрывают одноимённые ключи.
	Extras map[string]interface{}
}

// withExtra - копия фильтра с добавленным extra-параметром.
// Карта extras копируется, чтобы уже выполненные сериализации не менялись.
func (f BaseFilter) withExtra(key string, value interface{}) BaseFilter {
	extras := make(map[string]interface{}, len(f.Extras)+1)
	for k, v := range f.Extras {
		extras[k] = v
	}
	extras[key] = value
	f.Extras = extras
	return f
}

func (f *BaseFilter) wireBase(params map[string]string) {
	putString(params, "q", f.Query)
	putString(params, "lang", f.Lang)
	if f.BBox != nil {
		params["bbox"] = f.BBox.ToQuery()
	}
	putList(params, "fields", f.Fields)
	putString(params, "orderby", f.OrderBy)
	putString(params, "order", f.Order)
	putInt(params, "limit", f.Limit)
	putInt(params, "offset", f.Offset)
}

func (f *BaseFilter) applyExtras(params map[string]string) {
	for k, v := range f.Extras {
		if v == nil {
			continue
		}
		switch val := v.(type) {
		case []string:
			params[k] = strings.Join(val, ",")
		case []interface{}:
			parts := make([]string, len(val))
			for i, p := range val {
				parts[i] = fmt.Sprint(p)
			}
			params[k] = strings.Join(parts, ",")
		default:
			params[k] = fmt.Sprint(val)
		}
	}
}

// RouteFilter - критерии поиска маршрутов.
// Каждое непустое поле даёт ровно один параметр API (см. короткие ключи).
type RouteFilter struct {
	BaseFilter

	Activities []string // -> act

	// Связанные документы
	Waypoints []string // -> w
	Users     []string // -> u

	// Высоты и длины
	Elevation              *Range // -> ele
	ElevationMin           *int   // -> rmina
	ElevationMax           *int   // -> rmaxa
	HeightDiffUp           *Range // -> hdif
	HeightDiffDown         *Range // -> ddif
	RouteLength            *Range // -> rlen
	DifficultiesHeight     *Range // -> ralt
	HeightDiffAccess       *Range // -> rappr
	HeightDiffDifficulties *Range // -> dhei

	// Типы и конфигурация
	RouteTypes    []string // -> rtyp
	Orientations  []string // -> fac
	Durations     *Range   // -> time
	GlacierGear   string   // -> glac
	Configuration []string // -> conf

	// Рейтинги (enum-диапазоны)
	SkiRating            *Range // -> trat
	SkiExposition        *Range // -> sexpo
	LabandeSkiRating     *Range // -> srat
	LabandeGlobalRating  *Range // -> lrat
	GlobalRating         *Range // -> grat
	EngagementRating     *Range // -> erat
	RiskRating           *Range // -> orrat
	EquipmentRating      *Range // -> prat
	IceRating            *Range // -> irat
	MixedRating          *Range // -> mrat
	ExpositionRockRating *Range // -> rexpo
	RockFreeRating       *Range // -> frat
	RockRequiredRating   *Range // -> rrat
	AidRating            *Range // -> arat
	ViaFerrataRating     *Range // -> krat
	HikingRating         *Range // -> hrat
	HikingMtbExposition  *Range // -> hexpo
	SnowshoeRating       *Range // -> wrat
	MtbUpRating          *Range // -> mbur
	MtbDownRating        *Range // -> mbdr

	// MTB числовые поля
	MtbLengthAsphalt      *Range // -> mbroad
	MtbLengthTrail        *Range // -> mbtrack
	MtbHeightDiffPortages *Range // -> mbpush

	// Скалы и стили
	RockTypes           []string // -> rock
	ClimbingOutdoorType []string // -> crtyp
	SlacklineType       string   // -> sltyp
}

// Set - добавить произвольный параметр API; возвращает копию фильтра
func (f RouteFilter) Set(key string, value interface{}) RouteFilter {
	f.BaseFilter = f.BaseFilter.withExtra(key, value)
	return f
}

// ToQuery - сериализация фильтра в параметры API.
// Именованные поля сериализуются первыми, extras применяются последними.
func (f RouteFilter) ToQuery() map[string]string {
	params := make(map[string]string)
	f.wireBase(params)

	putList(params, "act", f.Activities)
	putList(params, "w", f.Waypoints)
	putList(params, "u", f.Users)

	putRange(params, "ele", f.Elevation)
	putInt(params, "rmina", f.ElevationMin)
	putInt(params, "rmaxa", f.ElevationMax)
	putRange(params, "hdif", f.HeightDiffUp)
	putRange(params, "ddif", f.HeightDiffDown)
	putRange(params, "rlen", f.RouteLength)
	putRange(params, "ralt", f.DifficultiesHeight)
	putRange(params, "rappr", f.HeightDiffAccess)
	putRange(params, "dhei", f.HeightDiffDifficulties)

	putList(params, "rtyp", f.RouteTypes)
	putList(params, "fac", f.Orientations)
	putRange(params, "time", f.Durations)
	putString(params, "glac", f.GlacierGear)
	putList(params, "conf", f.Configuration)

	for _, rr := range []struct {
		key string
		val *Range
	}{
		{"trat", f.SkiRating},
		{"sexpo", f.SkiExposition},
		{"srat", f.LabandeSkiRating},
		{"lrat", f.LabandeGlobalRating},
		{"grat", f.GlobalRating},
		{"erat", f.EngagementRating},
		{"orrat", f.RiskRating},
		{"prat", f.EquipmentRating},
		{"irat", f.IceRating},
		{"mrat", f.MixedRating},
		{"rexpo", f.ExpositionRockRating},
		{"frat", f.RockFreeRating},
		{"rrat", f.RockRequiredRating},
		{"arat", f.AidRating},
		{"krat", f.ViaFerrataRating},
		{"hrat", f.HikingRating},
		{"hexpo", f.HikingMtbExposition},
		{"wrat", f.SnowshoeRating},
		{"mbur", f.MtbUpRating},
		{"mbdr", f.MtbDownRating},
	} {
		putRange(params, rr.key, rr.val)
	}

	putRange(params, "mbroad", f.MtbLengthAsphalt)
	putRange(params, "mbtrack", f.MtbLengthTrail)
	putRange(params, "mbpush", f.MtbHeightDiffPortages)

	putList(params, "rock", f.RockTypes)
	putList(params, "crtyp", f.ClimbingOutdoorType)
	putString(params, "sltyp", f.SlacklineType)

	f.applyExtras(params)
	return params
}

// WaypointFilter - критерии поиска вейпоинтов
type WaypointFilter struct {
	BaseFilter

	Activities    []string // -> act
	WaypointTypes []string // -> wtyp

	// Числовые диапазоны
	Elevation       *Range // -> walt
	Prominence      *Range // -> prom
	HeightMin       *Range // -> tminh
	HeightMax       *Range // -> tmaxh
	HeightMedian    *Range // -> tmedh
	RoutesQuantity  *Range // -> rqua
	Length          *Range // -> len
	Capacity        *Range // -> hucap
	CapacityStaffed *Range // -> hscap

	// Перечисления и массивы
	RockTypes                  []string // -> wrock
	Orientations               []string // -> wfac
	BestPeriods                []string // -> period
	LiftAccess                 *bool    // -> plift
	Custodianship              string   // -> hsta
	ClimbingStyles             []string // -> tcsty
	AccessTime                 *Range   // -> tappt
	ClimbingRatingMax          *Range   // -> tmaxr
	ClimbingRatingMin          *Range   // -> tminr
	ClimbingRatingMedian       *Range   // -> tmedr
	ChildrenProof              string   // -> chil
	RainProof                  string   // -> rain
	ClimbingOutdoorTypes       []string // -> ctout
	ClimbingIndoorTypes        []string // -> ctin
	ParaglidingRating          *Range   // -> pgrat
	ExpositionRating           *Range   // -> pglexp
	WeatherStationTypes        []string // -> whtyp
	EquipmentRatings           *Range   // -> anchq
	PublicTransportationTypes  []string // -> tpty
	PublicTransportationRating string   // -> tp
	SnowClearanceRating        string   // -> psnow
	ProductTypes               []string // -> ftyp
}

// Set - добавить произвольный параметр API; возвращает копию фильтра
func (f WaypointFilter) Set(key string, value interface{}) WaypointFilter {
	f.BaseFilter = f.BaseFilter.withExtra(key, value)
	return f
}

// ToQuery - сериализация фильтра в параметры API
func (f WaypointFilter) ToQuery() map[string]string {
	params := make(map[string]string)
	f.wireBase(params)

	putList(params, "act", f.Activities)
	putList(params, "wtyp", f.WaypointTypes)

	for _, rr := range []struct {
		key string
		val *Range
	}{
		{"walt", f.Elevation},
		{"prom", f.Prominence},
		{"tminh", f.HeightMin},
		{"tmaxh", f.HeightMax},
		{"tmedh", f.HeightMedian},
		{"rqua", f.RoutesQuantity},
		{"len", f.Length},
		{"hucap", f.Capacity},
		{"hscap", f.CapacityStaffed},
	} {
		putRange(params, rr.key, rr.val)
	}

	putList(params, "wrock", f.RockTypes)
	putList(params, "wfac", f.Orientations)
	putList(params, "period", f.BestPeriods)
	putBool(params, "plift", f.LiftAccess)
	putString(params, "hsta", f.Custodianship)
	putList(params, "tcsty", f.ClimbingStyles)

	for _, rr := range []struct {
		key string
		val *Range
	}{
		{"tappt", f.AccessTime},
		{"tmaxr", f.ClimbingRatingMax},
		{"tminr", f.ClimbingRatingMin},
		{"tmedr", f.ClimbingRatingMedian},
		{"pgrat", f.ParaglidingRating},
		{"pglexp", f.ExpositionRating},
		{"anchq", f.EquipmentRatings},
	} {
		putRange(params, rr.key, rr.val)
	}

	putString(params, "chil", f.ChildrenProof)
	putString(params, "rain", f.RainProof)
	putList(params, "ctout", f.ClimbingOutdoorTypes)
	putList(params, "ctin", f.ClimbingIndoorTypes)
	putList(params, "whtyp", f.WeatherStationTypes)
	putList(params, "tpty", f.PublicTransportationTypes)
	putString(params, "tp", f.PublicTransportationRating)
	putString(params, "psnow", f.SnowClearanceRating)
	putList(params, "ftyp", f.ProductTypes)

	f.applyExtras(params)
	return params
}

// Int - указатель на int для опциональных полей фильтра
func Int(v int) *int {
	return &v
}

// Bool - указатель на bool для опциональных полей фильтра
func Bool(v bool) *bool {
	return &v
}

func putString(params map[string]string, key, value string) {
	if value != "" {
		params[key] = value
	}
}

func putList(params map[string]string, key string, values []string) {
	if len(values) > 0 {
		params[key] = strings.Join(values, ",")
	}
}

func putRange(params map[string]string, key string, r *Range) {
	if r != nil {
		params[key] = r.Wire()
	}
}

func putInt(params map[string]string, key string, v *int) {
	if v != nil {
		params[key] = strconv.Itoa(*v)
	}
}

func putBool(params map[string]string, key string, v *bool) {
	if v != nil {
		params[key] = strconv.FormatBool(*v)
	}
}
