package room

import (
	"errors"
	"net/http"
	"strconv"

	"stayhub/internal/domain"
	"stayhub/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/rooms", h.List)
	rg.POST("/rooms", h.Create)
	rg.GET("/rooms/available", h.ListAvailable)
	rg.GET("/rooms/:id", h.Get)
	rg.PUT("/rooms/:id", h.Update)
	rg.DELETE("/rooms/:id", h.Delete)
	rg.POST("/rooms/:id/refresh-state", h.RefreshState)
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   gin.H{"code": "NOT_FOUND", "message": err.Error()},
		})
	case errors.Is(err, ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error":   gin.H{"code": "DUPLICATE", "message": err.Error()},
		})
	case errors.Is(err, ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   gin.H{"code": "VALIDATION_ERROR", "message": err.Error()},
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   gin.H{"code": "INTERNAL_ERROR", "message": "Internal server error"},
		})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   gin.H{"code": "VALIDATION_ERROR", "message": msg},
	})
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}

func (h *Handler) List(c *gin.Context) {
	var f repository.RoomFilter
	if v := c.Query("room_type"); v != "" {
		f.RoomType = &v
	}
	if v := c.Query("min_capacity"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			badRequest(c, "Invalid min_capacity")
			return
		}
		f.MinCapacity = &n
	}
	if v := c.Query("is_available"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			badRequest(c, "Invalid is_available")
			return
		}
		f.IsAvailable = &b
	}
	if v := c.Query("min_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			badRequest(c, "Invalid min_price")
			return
		}
		f.MinPrice = &p
	}
	if v := c.Query("max_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			badRequest(c, "Invalid max_price")
			return
		}
		f.MaxPrice = &p
	}

	if f.RoomType != nil || f.MinCapacity != nil || f.IsAvailable != nil || f.MinPrice != nil || f.MaxPrice != nil {
		rooms, err := h.service.SearchRooms(c.Request.Context(), f)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"rooms": rooms}})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	rooms, err := h.service.ListRooms(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"rooms": rooms}})
}

func (h *Handler) ListAvailable(c *gin.Context) {
	rooms, err := h.service.ListAvailableRooms(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"rooms": rooms}})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	r, err := h.service.GetRoom(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"room": r}})
}

func (h *Handler) Create(c *gin.Context) {
	var body createRoomBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	r, err := h.service.CreateRoom(c.Request.Context(), &domain.Room{
		RoomNumber:    body.RoomNumber,
		RoomType:      domain.RoomType(body.RoomType),
		Capacity:      body.Capacity,
		PricePerNight: body.PricePerNight,
		Description:   body.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": gin.H{"room": r}})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var body updateRoomBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	r, err := h.service.UpdateRoom(c.Request.Context(), id, func(r *domain.Room) error {
		if body.RoomNumber != nil {
			r.RoomNumber = *body.RoomNumber
		}
		if body.RoomType != nil {
			r.RoomType = domain.RoomType(*body.RoomType)
		}
		if body.Capacity != nil {
			r.Capacity = *body.Capacity
		}
		if body.PricePerNight != nil {
			r.PricePerNight = *body.PricePerNight
		}
		if body.Description != nil {
			r.Description = *body.Description
		}
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"room": r}})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.DeleteRoom(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"message": "Room deleted"}})
}

func (h *Handler) RefreshState(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	r, err := h.service.RefreshState(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"room": r}})
}
