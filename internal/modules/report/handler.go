package report

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reports/dashboard", h.Dashboard)
	rg.GET("/reports/occupancy", h.Occupancy)
	rg.GET("/reports/revenue", h.Revenue)
}

func respondError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   gin.H{"code": "INTERNAL_ERROR", "message": "Internal server error"},
	})
}

func (h *Handler) Dashboard(c *gin.Context) {
	rep, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"dashboard": rep}})
}

func (h *Handler) Occupancy(c *gin.Context) {
	rep, err := h.service.Occupancy(c.Request.Context())
	if err != nil {
		respondError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"occupancy": rep}})
}

func (h *Handler) Revenue(c *gin.Context) {
	rep, err := h.service.Revenue(c.Request.Context())
	if err != nil {
		respondError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"revenue": rep}})
}
