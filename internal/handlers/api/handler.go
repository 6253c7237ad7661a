// Package api serves the schedule grid over JSON for web clients.
package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/diegoclair/meal-schedule-bot/internal/domain/catalog"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/civil"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/meal-schedule-bot/internal/domain/entity"
	"github.com/diegoclair/meal-schedule-bot/internal/logger"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	grids     contract.GridService
	catalogs  contract.CatalogService
	rosters   contract.RosterService
	startedAt time.Time
}

func NewHandler(grids contract.GridService, catalogs contract.CatalogService, rosters contract.RosterService) *Handler {
	return &Handler{
		grids:     grids,
		catalogs:  catalogs,
		rosters:   rosters,
		startedAt: time.Now(),
	}
}

type statusView struct {
	Uptime string `json:"uptime"`
	Today  string `json:"today"`
}

// GridView is the JSON form of a grid. Degraded lists the slots that could
// not be read and are shown empty.
type GridView struct {
	AgeGroupID string                  `json:"ageGroupId"`
	Week       civil.Week              `json:"week"`
	Meals      []entity.MealType       `json:"meals"`
	Weekdays   []entity.Weekday        `json:"weekdays"`
	Slots      []entity.SlotAssignment `json:"slots"`
	Degraded   []entity.SlotKey        `json:"degraded"`
}

func newGridView(g entity.Grid) GridView {
	degraded := g.Degraded()
	if degraded == nil {
		degraded = []entity.SlotKey{}
	}
	return GridView{
		AgeGroupID: g.AgeGroupID(),
		Week:       g.Week(),
		Meals:      nonNil(g.Meals()),
		Weekdays:   nonNil(g.Weekdays()),
		Slots:      g.Slots(),
		Degraded:   degraded,
	}
}

type gridQuery struct {
	AgeGroupID string `form:"age_group" binding:"required"`
	Week       string `form:"week"`
}

// SlotRequest saves one slot. Week may be any date of the target week; the
// slot date is derived from the weekday's position in the catalog.
type SlotRequest struct {
	AgeGroupID string   `json:"ageGroupId" binding:"required"`
	MealID     string   `json:"mealId" binding:"required"`
	WeekdayID  string   `json:"weekdayId" binding:"required"`
	Week       string   `json:"week" binding:"required"`
	DishIDs    []string `json:"dishIds"`
}

type dishQuery struct {
	Search   string `form:"search"`
	MealType string `form:"meal_type"`
	Scoped   bool   `form:"scoped"`
}

func (h *Handler) Status(c *gin.Context) {
	success(c, http.StatusOK, statusView{
		Uptime: time.Since(h.startedAt).Truncate(time.Second).String(),
		Today:  civil.Today().String(),
	})
}

func (h *Handler) GetCatalog(c *gin.Context) {
	cat, err := h.catalogs.Catalog(c.Request.Context())
	if err != nil {
		logger.Error("failed to load catalog", "error", err)
		failure(c, http.StatusBadGateway, err.Error())
		return
	}
	success(c, http.StatusOK, cat)
}

func (h *Handler) GetGrid(c *gin.Context) {
	var q gridQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		failure(c, http.StatusBadRequest, err.Error())
		return
	}

	week := civil.ThisWeek()
	if q.Week != "" {
		var err error
		if week, err = civil.ParseWeek(q.Week); err != nil {
			failure(c, http.StatusBadRequest, "invalid week, use YYYY-MM-DD")
			return
		}
	}

	cat, err := h.catalogs.Catalog(c.Request.Context())
	if err != nil {
		failure(c, http.StatusBadGateway, err.Error())
		return
	}

	grid := h.grids.RefreshGrid(c.Request.Context(), q.AgeGroupID, week, cat.Meals, cat.Weekdays)
	success(c, http.StatusOK, newGridView(grid))
}

func (h *Handler) PutSlot(c *gin.Context) {
	var req SlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failure(c, http.StatusBadRequest, err.Error())
		return
	}

	week, err := civil.ParseWeek(req.Week)
	if err != nil {
		failure(c, http.StatusBadRequest, "invalid week, use YYYY-MM-DD")
		return
	}

	cat, err := h.catalogs.Catalog(c.Request.Context())
	if err != nil {
		failure(c, http.StatusBadGateway, err.Error())
		return
	}

	offset, ok := cat.WeekdayOffset(req.WeekdayID)
	if !ok {
		failure(c, http.StatusBadRequest, "unknown weekday: "+req.WeekdayID)
		return
	}

	assignment, err := h.grids.SaveSlot(c.Request.Context(), entity.SlotWrite{
		AgeGroupID: req.AgeGroupID,
		MealID:     req.MealID,
		WeekdayID:  req.WeekdayID,
		Date:       week.Date(offset),
		DishIDs:    req.DishIDs,
	})
	if err != nil {
		var mutationErr *entity.SlotMutationError
		if errors.As(err, &mutationErr) && mutationErr.Stage == entity.StageValidate {
			failure(c, http.StatusBadRequest, err.Error())
			return
		}
		logger.Warn("slot save failed", "error", err)
		failure(c, http.StatusBadGateway, err.Error())
		return
	}

	success(c, http.StatusOK, assignment)
}

func (h *Handler) GetDishes(c *gin.Context) {
	var q dishQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		failure(c, http.StatusBadRequest, err.Error())
		return
	}

	cat, err := h.catalogs.Catalog(c.Request.Context())
	if err != nil {
		failure(c, http.StatusBadGateway, err.Error())
		return
	}

	dishes := catalog.Filter(cat.Dishes, catalog.DishQuery{
		Search:          q.Search,
		MealTypeID:      q.MealType,
		ScopeByMealType: q.Scoped,
	})
	success(c, http.StatusOK, dishes)
}

func (h *Handler) GetRoster(c *gin.Context) {
	groups, err := h.rosters.LatestRoster(c.Request.Context(), c.Param("ageGroupID"))
	if err != nil {
		failure(c, http.StatusBadGateway, err.Error())
		return
	}
	c.Header("X-Total-Count", strconv.Itoa(len(groups)))
	success(c, http.StatusOK, groups)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
