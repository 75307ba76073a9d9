package handler

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/c2ccombos/internal/domain"
	"github.com/c2ccombos/internal/pkg/errors"
	"github.com/c2ccombos/internal/pkg/utils"
	"github.com/c2ccombos/internal/pkg/validator"
	"github.com/c2ccombos/internal/usecase"
	"github.com/c2ccombos/internal/usecase/dto"
)

// SearchHandler - обработчик поисковых запросов по каталогу
type SearchHandler struct {
	searchUC *usecase.SearchUseCase
	logger   *zap.Logger
}

// NewSearchHandler - создание нового SearchHandler
func NewSearchHandler(searchUC *usecase.SearchUseCase, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchUC: searchUC,
		logger:   logger,
	}
}

// Near godoc
// @Summary Поиск маршрутов рядом с вейпоинтами вокруг точки
// @Description Находит вейпоинты заданного типа в квадрате вокруг GPS-точки и маршруты указанной активности не дальше max_distance метров от них
// @Tags Search
// @Accept json
// @Produce json
// @Param lon query number true "Долгота точки (градусы)"
// @Param lat query number true "Широта точки (градусы)"
// @Param box query number false "Сторона поискового квадрата в метрах" default(20000)
// @Param max_distance query number false "Максимальное расстояние маршрут-вейпоинт в метрах" default(2000)
// @Param act query string false "Активность маршрутов" default(rock_climbing)
// @Param wtyp query string false "Тип вейпоинтов" default(paragliding_takeoff)
// @Param wfac query string false "Ориентации вейпоинтов через запятую (S,SW,...)"
// @Param fratmin query string false "Нижняя граница рейтинга лазания (frat)"
// @Param fratmax query string false "Верхняя граница рейтинга лазания (frat)"
// @Param lang query string false "Язык заголовков"
// @Success 200 {object} utils.SuccessResponse{data=dto.NearResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/near [get]
func (h *SearchHandler) Near(c *fiber.Ctx) error {
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	req := dto.NearRequest{
		Lon:          lon,
		Lat:          lat,
		Activity:     c.Query("act"),
		WaypointType: c.Query("wtyp"),
		FreeRatingLo: c.Query("fratmin"),
		FreeRatingHi: c.Query("fratmax"),
		Lang:         c.Query("lang"),
	}
	if v := c.Query("box"); v != "" {
		box, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return utils.SendError(c, errors.ErrInvalidBoxSize)
		}
		req.BoxSizeM = box
	}
	if v := c.Query("max_distance"); v != "" {
		dist, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return utils.SendError(c, errors.ErrInvalidDistance)
		}
		req.MaxDistanceM = dist
	}
	if v := c.Query("wfac"); v != "" {
		req.Orientations = strings.Split(v, ",")
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	result, err := h.searchUC.Near(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Counts.Routes,
	})
}

// ListRoutes godoc
// @Summary Страница маршрутов каталога
// @Description Возвращает одну страницу listing-ресурса маршрутов с фильтрами каталога
// @Tags Catalog
// @Accept json
// @Produce json
// @Param bbox query string false "Ограничивающий прямоугольник minx,miny,maxx,maxy (EPSG:3857)"
// @Param act query string false "Активность"
// @Param q query string false "Полнотекстовый запрос"
// @Param lang query string false "Язык заголовков"
// @Param limit query int false "Размер страницы" default(30)
// @Param offset query int false "Смещение" default(0)
// @Success 200 {object} utils.SuccessResponse{data=dto.ListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/routes [get]
func (h *SearchHandler) ListRoutes(c *fiber.Ctx) error {
	return h.list(c, domain.ResourceRoutes)
}

// ListWaypoints godoc
// @Summary Страница вейпоинтов каталога
// @Description Возвращает одну страницу listing-ресурса вейпоинтов с фильтрами каталога
// @Tags Catalog
// @Accept json
// @Produce json
// @Param bbox query string false "Ограничивающий прямоугольник minx,miny,maxx,maxy (EPSG:3857)"
// @Param act query string false "Активность"
// @Param q query string false "Полнотекстовый запрос"
// @Param lang query string false "Язык заголовков"
// @Param limit query int false "Размер страницы" default(30)
// @Param offset query int false "Смещение" default(0)
// @Success 200 {object} utils.SuccessResponse{data=dto.ListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/waypoints [get]
func (h *SearchHandler) ListWaypoints(c *fiber.Ctx) error {
	return h.list(c, domain.ResourceWaypoints)
}

func (h *SearchHandler) list(c *fiber.Ctx, resource string) error {
	req := dto.ListRequest{
		BBox:     c.Query("bbox"),
		Activity: c.Query("act"),
		Lang:     c.Query("lang"),
		Query:    c.Query("q"),
		Limit:    c.QueryInt("limit", 30),
		Offset:   c.QueryInt("offset", 0),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	result, err := h.searchUC.List(c.Context(), resource, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
		Limit: req.Limit,
	})
}
