package booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

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
	rg.GET("/bookings", h.List)
	rg.POST("/bookings", h.Create)
	rg.GET("/bookings/availability", h.CheckAvailability)
	rg.GET("/bookings/available-rooms", h.AvailableRooms)
	rg.GET("/bookings/today/checkins", h.TodaysCheckins)
	rg.GET("/bookings/today/checkouts", h.TodaysCheckouts)
	rg.GET("/bookings/upcoming", h.Upcoming)
	rg.GET("/bookings/:id", h.Get)
	rg.PUT("/bookings/:id", h.Update)
	rg.DELETE("/bookings/:id", h.Delete)
	rg.POST("/bookings/:id/status", h.UpdateStatus)
	rg.GET("/bookings/:id/cost", h.Cost)
	rg.POST("/bookings/:id/recalculate", h.Recalculate)
	rg.GET("/bookings/:id/charges", h.ListCharges)
	rg.POST("/bookings/:id/charges", h.AttachCharge)
	rg.DELETE("/bookings/:id/charges/:chargeID", h.DetachCharge)
}

func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid id",
			},
		})
		return 0, false
	}
	return id, true
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": err.Error(),
			},
		})
	case errors.Is(err, ErrNotAvailable):
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ROOM_NOT_AVAILABLE",
				"message": err.Error(),
			},
		})
	case errors.Is(err, ErrInvalidRange), errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": err.Error(),
			},
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INTERNAL_ERROR",
				"message": "Internal server error",
			},
		})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "VALIDATION_ERROR",
			"message": msg,
		},
	})
}

func (h *Handler) List(c *gin.Context) {
	var f repository.BookingFilter
	if v := c.Query("guest_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			badRequest(c, "Invalid guest_id")
			return
		}
		f.GuestID = &id
	}
	if v := c.Query("room_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			badRequest(c, "Invalid room_id")
			return
		}
		f.RoomID = &id
	}
	if v := c.Query("status"); v != "" {
		f.Status = &v
	}
	if v := c.Query("start_date"); v != "" {
		d, err := parseDate(v)
		if err != nil {
			badRequest(c, "Invalid start_date")
			return
		}
		f.StartDate = &d
	}
	if v := c.Query("end_date"); v != "" {
		d, err := parseDate(v)
		if err != nil {
			badRequest(c, "Invalid end_date")
			return
		}
		f.EndDate = &d
	}

	if f.GuestID != nil || f.RoomID != nil || f.Status != nil || f.StartDate != nil || f.EndDate != nil {
		bookings, err := h.service.SearchBookings(c.Request.Context(), f)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"bookings": bookings}})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	bookings, err := h.service.ListBookings(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"bookings": bookings}})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	b, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"booking": b}})
}

func (h *Handler) Create(c *gin.Context) {
	var body createBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	checkIn, err := parseDate(body.CheckInDate)
	if err != nil {
		badRequest(c, "Invalid check_in_date, expected YYYY-MM-DD")
		return
	}
	checkOut, err := parseDate(body.CheckOutDate)
	if err != nil {
		badRequest(c, "Invalid check_out_date, expected YYYY-MM-DD")
		return
	}

	b, err := h.service.Create(c.Request.Context(), CreateBookingRequest{
		GuestID:      body.GuestID,
		RoomID:       body.RoomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       body.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": gin.H{"booking": b}})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var body updateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	req := UpdateBookingRequest{
		GuestID: body.GuestID,
		RoomID:  body.RoomID,
	}
	if body.CheckInDate != nil {
		d, err := parseDate(*body.CheckInDate)
		if err != nil {
			badRequest(c, "Invalid check_in_date, expected YYYY-MM-DD")
			return
		}
		req.CheckInDate = &d
	}
	if body.CheckOutDate != nil {
		d, err := parseDate(*body.CheckOutDate)
		if err != nil {
			badRequest(c, "Invalid check_out_date, expected YYYY-MM-DD")
			return
		}
		req.CheckOutDate = &d
	}

	b, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"booking": b}})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"message": "Booking deleted"}})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var body updateStatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), id, body.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"booking": b}})
}

func (h *Handler) CheckAvailability(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Query("room_id"), 10, 64)
	if err != nil || roomID <= 0 {
		badRequest(c, "Invalid room_id")
		return
	}
	checkIn, err := parseDate(c.Query("check_in"))
	if err != nil {
		badRequest(c, "Invalid check_in, expected YYYY-MM-DD")
		return
	}
	checkOut, err := parseDate(c.Query("check_out"))
	if err != nil {
		badRequest(c, "Invalid check_out, expected YYYY-MM-DD")
		return
	}

	available, err := h.service.CheckAvailability(c.Request.Context(), roomID, checkIn, checkOut, nil)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": availabilityResponse{
		RoomID:    roomID,
		Available: available,
		CheckIn:   checkIn.Format(dateLayout),
		CheckOut:  checkOut.Format(dateLayout),
	}})
}

func (h *Handler) AvailableRooms(c *gin.Context) {
	checkIn, err := parseDate(c.Query("check_in"))
	if err != nil {
		badRequest(c, "Invalid check_in, expected YYYY-MM-DD")
		return
	}
	checkOut, err := parseDate(c.Query("check_out"))
	if err != nil {
		badRequest(c, "Invalid check_out, expected YYYY-MM-DD")
		return
	}

	var roomType *string
	if v := c.Query("room_type"); v != "" {
		roomType = &v
	}
	var minCapacity *int
	if v := c.Query("min_capacity"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			badRequest(c, "Invalid min_capacity")
			return
		}
		minCapacity = &n
	}

	rooms, err := h.service.AvailableRoomsForDates(c.Request.Context(), checkIn, checkOut, roomType, minCapacity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"rooms": rooms}})
}

func (h *Handler) Cost(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	b, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	bd, err := h.service.CostBreakdownFor(c.Request.Context(), b)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
		"booking_id": id,
		"breakdown":  bd,
	}})
}

func (h *Handler) Recalculate(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	b, err := h.service.RecalculateCost(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
		"booking_id": b.ID,
		"total_cost": b.TotalCost,
	}})
}

func (h *Handler) ListCharges(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	charges, err := h.service.ListCharges(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"charges": charges}})
}

func (h *Handler) AttachCharge(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var body attachChargeBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	charge, err := h.service.AttachCharge(c.Request.Context(), id, body.ServiceID, body.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": gin.H{"charge": charge}})
}

func (h *Handler) DetachCharge(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	chargeID, ok := idParam(c, "chargeID")
	if !ok {
		return
	}
	if err := h.service.DetachCharge(c.Request.Context(), id, chargeID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"message": "Charge removed"}})
}

func (h *Handler) TodaysCheckins(c *gin.Context) {
	bookings, err := h.service.TodaysCheckins(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"bookings": bookings}})
}

func (h *Handler) TodaysCheckouts(c *gin.Context) {
	bookings, err := h.service.TodaysCheckouts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"bookings": bookings}})
}

func (h *Handler) Upcoming(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	bookings, err := h.service.UpcomingBookings(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"bookings": bookings}})
}
