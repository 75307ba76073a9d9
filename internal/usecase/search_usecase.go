package usecase

import (
	"context"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/c2ccombos/internal/config"
	"github.com/c2ccombos/internal/domain"
	"github.com/c2ccombos/internal/domain/repository"
	"github.com/c2ccombos/internal/pkg/errors"
	"github.com/c2ccombos/internal/pkg/utils"
	"github.com/c2ccombos/internal/usecase/dto"
)

// Нижняя граница паддинга запросного bbox: при крошечных порогах
// вырожденный bbox почти ничего не находит
const minBBoxPadM = 1000.0

// Поля, запрашиваемые по умолчанию для отображения результатов
var (
	defaultWaypointFields = []string{
		"document_id", "locales", "geometry", "bbox", "orientations",
	}
	defaultRouteFields = []string{
		"document_id", "locales", "geometry", "bbox",
		"rock_free_rating", "rock_required_rating", "global_rating", "orientations",
	}
)

// SearchUseCase - use case поиска по каталогу: постраничная выборка
// документов и сопоставление маршрутов с вейпоинтами по расстоянию
type SearchUseCase struct {
	catalogRepo repository.CatalogRepository
	logger      *zap.Logger
	siteURL     string
	defaults    config.SearchConfig
}

// NewSearchUseCase - создание нового SearchUseCase
func NewSearchUseCase(
	catalogRepo repository.CatalogRepository,
	logger *zap.Logger,
	siteURL string,
	defaults config.SearchConfig,
) *SearchUseCase {
	return &SearchUseCase{
		catalogRepo: catalogRepo,
		logger:      logger,
		siteURL:     siteURL,
		defaults:    defaults,
	}
}

// FetchAll - выборка документов ресурса до исчерпания или maxItems.
// Запросы идут строго последовательно со сдвигом offset; любая ошибка
// транспорта прерывает всю выборку без частичного результата.
func (uc *SearchUseCase) FetchAll(
	ctx context.Context,
	resource string,
	params map[string]string,
	pageSize int,
	maxItems int,
) ([]domain.Document, error) {
	offset := 0
	if v, ok := params["offset"]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			offset = n
		}
	}

	var items []domain.Document
	for {
		pageParams := make(map[string]string, len(params)+2)
		for k, v := range params {
			pageParams[k] = v
		}
		pageParams["limit"] = strconv.Itoa(pageSize)
		pageParams["offset"] = strconv.Itoa(offset)

		page, err := uc.catalogRepo.List(ctx, resource, pageParams)
		if err != nil {
			uc.logger.Error("Catalog fetch failed",
				zap.String("resource", resource),
				zap.Int("offset", offset),
				zap.Error(err))
			return nil, errors.ErrCatalogUnavailable
		}

		docs := page.Documents
		if len(docs) == 0 {
			break
		}
		for _, d := range docs {
			items = append(items, d)
			if maxItems > 0 && len(items) >= maxItems {
				return items, nil
			}
		}
		offset += len(docs)

		// Короткая страница считается последней; total не перепроверяется
		if len(docs) < pageSize {
			break
		}
	}
	return items, nil
}

// RoutesInBox - все маршруты в bbox с учётом фильтра
func (uc *SearchUseCase) RoutesInBox(
	ctx context.Context,
	bbox domain.BoundingBox,
	filter domain.SearchFilter,
	pageSize int,
	maxItems int,
) ([]domain.Document, error) {
	return uc.fetchInBox(ctx, domain.ResourceRoutes, bbox, filter, pageSize, maxItems)
}

// WaypointsInBox - все вейпоинты в bbox с учётом фильтра
func (uc *SearchUseCase) WaypointsInBox(
	ctx context.Context,
	bbox domain.BoundingBox,
	filter domain.SearchFilter,
	pageSize int,
	maxItems int,
) ([]domain.Document, error) {
	return uc.fetchInBox(ctx, domain.ResourceWaypoints, bbox, filter, pageSize, maxItems)
}

func (uc *SearchUseCase) fetchInBox(
	ctx context.Context,
	resource string,
	bbox domain.BoundingBox,
	filter domain.SearchFilter,
	pageSize int,
	maxItems int,
) ([]domain.Document, error) {
	params := map[string]string{}
	if filter != nil {
		params = filter.ToQuery()
	}
	params["bbox"] = bbox.ToQuery()
	return uc.FetchAll(ctx, resource, params, pageSize, maxItems)
}

// RoutesNearWaypoints - пары маршрут-вейпоинт не дальше maxDistanceM.
// Запросный bbox строится по точкам вейпоинтов (или углам их bbox) и
// расширяется на max(maxDistanceM, 1km). Совпадающие расстояния сохраняют
// порядок обнаружения: маршруты во внешнем цикле, вейпоинты во внутреннем.
func (uc *SearchUseCase) RoutesNearWaypoints(
	ctx context.Context,
	waypoints []domain.Document,
	routeFilter domain.SearchFilter,
	maxDistanceM float64,
	pageSize int,
	maxItems int,
) ([]domain.Match, error) {
	if len(waypoints) == 0 {
		return []domain.Match{}, nil
	}

	// Агрегатный экстент по точкам вейпоинтов; без точки - по углам bbox
	var xs, ys []float64
	for _, wp := range waypoints {
		if pt, ok := wp.Point(); ok {
			xs = append(xs, pt.X)
			ys = append(ys, pt.Y)
			continue
		}
		if bbox, ok := wp.BBox(); ok {
			xs = append(xs, bbox.MinX, bbox.MaxX)
			ys = append(ys, bbox.MinY, bbox.MaxY)
		}
	}
	if len(xs) == 0 {
		uc.logger.Debug("No waypoint yielded usable coordinates")
		return []domain.Match{}, nil
	}

	extent := domain.BoundingBox{
		MinX: xs[0], MinY: ys[0], MaxX: xs[0], MaxY: ys[0],
	}
	for i := range xs {
		if xs[i] < extent.MinX {
			extent.MinX = xs[i]
		}
		if xs[i] > extent.MaxX {
			extent.MaxX = xs[i]
		}
	}
	for i := range ys {
		if ys[i] < extent.MinY {
			extent.MinY = ys[i]
		}
		if ys[i] > extent.MaxY {
			extent.MaxY = ys[i]
		}
	}

	pad := maxDistanceM
	if pad < minBBoxPadM {
		pad = minBBoxPadM
	}
	queryBox := utils.ExpandBBox(extent, pad)

	routes, err := uc.RoutesInBox(ctx, queryBox, routeFilter, pageSize, maxItems)
	if err != nil {
		return nil, err
	}

	var matches []domain.Match
	for _, route := range routes {
		rpt, ok := route.Point()
		if !ok {
			continue
		}
		for _, wp := range waypoints {
			wpt, ok := wp.Point()
			if !ok {
				continue
			}
			d := utils.Distance(rpt, wpt)
			if d <= maxDistanceM {
				matches = append(matches, domain.Match{
					Route:    route,
					Waypoint: wp,
					Distance: d,
				})
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	uc.logger.Info("Proximity search completed",
		zap.Int("waypoints", len(waypoints)),
		zap.Int("routes", len(routes)),
		zap.Int("matches", len(matches)),
		zap.Float64("max_distance_m", maxDistanceM))

	return matches, nil
}

// Near - поиск вокруг GPS-точки для web API: выбирает вейпоинты в квадрате,
// сопоставляет с маршрутами и возвращает GeoJSON-подобные объекты
func (uc *SearchUseCase) Near(ctx context.Context, req dto.NearRequest) (*dto.NearResponse, error) {
	if req.BoxSizeM == 0 {
		req.BoxSizeM = uc.defaults.BoxSizeM
	}
	if req.MaxDistanceM == 0 {
		req.MaxDistanceM = uc.defaults.MaxDistanceM
	}
	if req.Activity == "" {
		req.Activity = uc.defaults.DefaultActivity
	}
	if req.WaypointType == "" {
		req.WaypointType = uc.defaults.DefaultWaypointType
	}

	center := utils.Project(req.Lon, req.Lat)
	box := utils.BBoxAround(center, req.BoxSizeM)

	wpFilter := domain.WaypointFilter{
		BaseFilter: domain.BaseFilter{
			Lang:   req.Lang,
			Fields: defaultWaypointFields,
		},
		Activities:    []string{req.Activity},
		WaypointTypes: []string{req.WaypointType},
		Orientations:  req.Orientations,
	}

	waypoints, err := uc.WaypointsInBox(ctx, box, wpFilter,
		uc.defaults.WaypointPageSize, uc.defaults.WaypointMaxItems)
	if err != nil {
		return nil, err
	}

	routeFilter := domain.RouteFilter{
		BaseFilter: domain.BaseFilter{
			Lang:   req.Lang,
			Fields: defaultRouteFields,
		},
		Activities: []string{req.Activity},
	}
	if req.FreeRatingLo != "" || req.FreeRatingHi != "" {
		routeFilter.RockFreeRating = domain.Between(req.FreeRatingLo, req.FreeRatingHi)
	}

	matches, err := uc.RoutesNearWaypoints(ctx, waypoints, routeFilter,
		req.MaxDistanceM, uc.defaults.RoutePageSize, uc.defaults.RouteMaxItems)
	if err != nil {
		return nil, err
	}

	takeoffs := make([]dto.Feature, 0, len(waypoints))
	for _, wp := range waypoints {
		if f, ok := uc.waypointFeature(wp, req.Lang); ok {
			takeoffs = append(takeoffs, f)
		}
	}

	// Один маршрут может совпасть с несколькими вейпоинтами
	seen := make(map[int64]bool)
	routes := make([]dto.Feature, 0, len(matches))
	for _, m := range matches {
		if id, ok := m.Route.ID(); ok {
			if seen[id] {
				continue
			}
			seen[id] = true
		}
		if f, ok := uc.routeFeature(m.Route, req.Lang); ok {
			routes = append(routes, f)
		}
	}

	return &dto.NearResponse{
		Takeoffs: takeoffs,
		Routes:   routes,
		Counts: dto.NearCounts{
			Takeoffs: len(takeoffs),
			Routes:   len(routes),
			Matches:  len(matches),
		},
	}, nil
}

// List - одна страница listing-ресурса каталога без пагинации
func (uc *SearchUseCase) List(ctx context.Context, resource string, req dto.ListRequest) (*dto.ListResponse, error) {
	params := map[string]string{}
	if req.BBox != "" {
		params["bbox"] = req.BBox
	}
	if req.Activity != "" {
		params["act"] = req.Activity
	}
	if req.Lang != "" {
		params["lang"] = req.Lang
	}
	if req.Query != "" {
		params["q"] = req.Query
	}
	if req.Limit > 0 {
		params["limit"] = strconv.Itoa(req.Limit)
	}
	if req.Offset > 0 {
		params["offset"] = strconv.Itoa(req.Offset)
	}

	page, err := uc.catalogRepo.List(ctx, resource, params)
	if err != nil {
		uc.logger.Error("Catalog list failed",
			zap.String("resource", resource),
			zap.Error(err))
		return nil, errors.ErrCatalogUnavailable
	}

	return &dto.ListResponse{
		Documents: page.Documents,
		Total:     page.Total,
	}, nil
}

func (uc *SearchUseCase) baseFeature(doc domain.Document, lang string) (dto.Feature, bool) {
	lon, lat, ok := utils.DocumentLonLat(doc)
	if !ok {
		return dto.Feature{}, false
	}
	props := map[string]interface{}{
		"title": doc.Title(lang),
	}
	if id, ok := doc.ID(); ok {
		props["id"] = id
	}
	if url, ok := doc.URL(uc.siteURL); ok {
		props["url"] = url
	}
	return dto.Feature{
		Type: "Feature",
		Geometry: dto.PointGeometry{
			Type:        "Point",
			Coordinates: [2]float64{lon, lat},
		},
		Properties: props,
	}, true
}

func (uc *SearchUseCase) routeFeature(doc domain.Document, lang string) (dto.Feature, bool) {
	f, ok := uc.baseFeature(doc, lang)
	if !ok {
		return dto.Feature{}, false
	}
	free := doc.GetString("rock_free_rating")
	if free == "" {
		free = doc.GetString("global_rating")
	}
	if free != "" {
		f.Properties["free"] = free
	}
	if oblig := doc.GetString("rock_required_rating"); oblig != "" {
		f.Properties["oblig"] = oblig
	}
	if global := doc.GetString("global_rating"); global != "" {
		f.Properties["global"] = global
	}
	if orientations := doc.GetSlice("orientations"); orientations != nil {
		f.Properties["orientations"] = orientations
	}
	return f, true
}

func (uc *SearchUseCase) waypointFeature(doc domain.Document, lang string) (dto.Feature, bool) {
	f, ok := uc.baseFeature(doc, lang)
	if !ok {
		return dto.Feature{}, false
	}
	if orientations := doc.GetSlice("orientations"); orientations != nil {
		f.Properties["orientations"] = orientations
	}
	return f, true
}
