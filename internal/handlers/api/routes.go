package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the HTTP server. slashCommands is mounted at
// /slack/commands when set.
func NewRouter(h *Handler, slashCommands http.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID())

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	if slashCommands != nil {
		router.POST("/slack/commands", gin.WrapF(slashCommands))
	}

	global := router.Group("/api")
	global.GET("/status", h.Status)

	RegisterRoutes(router.Group("/api/"+apiVersion), h)

	return router
}

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	rg.GET("/catalog", h.GetCatalog)
	rg.GET("/dishes", h.GetDishes)
	rg.GET("/roster/:ageGroupID", h.GetRoster)

	grid := rg.Group("/grid")
	{
		grid.GET("", h.GetGrid)
		grid.PUT("/slots", h.PutSlot)
	}
}
