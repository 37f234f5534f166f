package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stayhub/internal/database"
	"stayhub/internal/middleware"
	"stayhub/internal/modules/booking"
	"stayhub/internal/modules/catalog"
	"stayhub/internal/modules/guest"
	"stayhub/internal/modules/payment"
	"stayhub/internal/modules/report"
	"stayhub/internal/modules/room"
	"stayhub/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func setupRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, repository.Migrate(db))

	guestRepo := repository.NewGuestRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	chargeRepo := repository.NewBookingChargeRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	paymentService := payment.NewService(paymentRepo, bookingRepo)
	bookingService := booking.NewService(
		bookingRepo, roomRepo, guestRepo, serviceRepo, chargeRepo, paymentService,
		booking.DefaultBufferDays,
	)

	r := gin.New()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	guest.NewHandler(guest.NewService(guestRepo)).RegisterRoutes(v1)
	room.NewHandler(room.NewService(roomRepo, bookingService)).RegisterRoutes(v1)
	catalog.NewHandler(catalog.NewService(serviceRepo)).RegisterRoutes(v1)
	booking.NewHandler(bookingService).RegisterRoutes(v1)
	payment.NewHandler(paymentService).RegisterRoutes(v1)
	report.NewHandler(report.NewService(bookingRepo, roomRepo, paymentRepo, guestRepo)).RegisterRoutes(v1)

	return r
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, TestResponse) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, "/api/v1"+path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp TestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return w, resp
}

// day renders a date the given number of days from now, API format.
func day(n int) string {
	return time.Now().UTC().AddDate(0, 0, n).Format("2006-01-02")
}

func createFixtures(t *testing.T, router *gin.Engine) {
	w, _ := doRequest(t, router, http.MethodPost, "/guests", gin.H{
		"first_name": "Asel",
		"last_name":  "Nurlanova",
		"email":      "asel@mail.kz",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = doRequest(t, router, http.MethodPost, "/rooms", gin.H{
		"room_number":     "101",
		"room_type":       "single",
		"capacity":        1,
		"price_per_night": 80,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = doRequest(t, router, http.MethodPost, "/services", gin.H{
		"name":  "Breakfast",
		"price": 15,
	})
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestBookingLifecycle(t *testing.T) {
	router := setupRouter(t)
	createFixtures(t, router)

	// Create a 3-night stay; the cost is cached and one pending payment
	// registered for the full amount.
	w, resp := doRequest(t, router, http.MethodPost, "/bookings", gin.H{
		"guest_id":       1,
		"room_id":        1,
		"check_in_date":  day(10),
		"check_out_date": day(13),
	})
	require.Equal(t, http.StatusCreated, w.Code)
	b := resp.Data["booking"].(map[string]interface{})
	assert.Equal(t, 240.0, b["total_cost"])
	assert.Equal(t, "pending", b["status"])

	w, resp = doRequest(t, router, http.MethodGet,
		fmt.Sprintf("/bookings/availability?room_id=1&check_in=%s&check_out=%s", day(11), day(12)), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, resp.Data["available"])

	// Two days after checkout is still inside the turnover buffer.
	w, resp = doRequest(t, router, http.MethodGet,
		fmt.Sprintf("/bookings/availability?room_id=1&check_in=%s&check_out=%s", day(14), day(16)), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, resp.Data["available"])

	w, resp = doRequest(t, router, http.MethodGet,
		fmt.Sprintf("/bookings/availability?room_id=1&check_in=%s&check_out=%s", day(16), day(18)), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp.Data["available"])

	// Overlap within the buffer is rejected with the conflict description.
	w, resp = doRequest(t, router, http.MethodPost, "/bookings", gin.H{
		"guest_id":       1,
		"room_id":        1,
		"check_in_date":  day(14),
		"check_out_date": day(16),
	})
	require.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "ROOM_NOT_AVAILABLE", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "Asel Nurlanova")

	// The room shows as reserved until the arrival gets close.
	w, resp = doRequest(t, router, http.MethodGet, "/rooms/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rm := resp.Data["room"].(map[string]interface{})
	assert.Equal(t, "reserved", rm["status"])
	assert.Equal(t, true, rm["is_available"])

	// Attaching a service recalculates the total and registers a second
	// pending payment for the increment.
	w, resp = doRequest(t, router, http.MethodPost, "/bookings/1/charges", gin.H{
		"service_id": 1,
		"quantity":   2,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	charge := resp.Data["charge"].(map[string]interface{})
	assert.Equal(t, 30.0, charge["subtotal"])

	w, resp = doRequest(t, router, http.MethodGet, "/bookings/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	b = resp.Data["booking"].(map[string]interface{})
	assert.Equal(t, 270.0, b["total_cost"])

	w, resp = doRequest(t, router, http.MethodGet, "/bookings/1/cost", nil)
	require.Equal(t, http.StatusOK, w.Code)
	bd := resp.Data["breakdown"].(map[string]interface{})
	assert.Equal(t, 3.0, bd["nights"])
	assert.Equal(t, 240.0, bd["room_cost"])
	assert.Equal(t, 30.0, bd["services_total"])

	w, resp = doRequest(t, router, http.MethodGet, "/payments?booking_id=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	payments := resp.Data["payments"].([]interface{})
	require.Len(t, payments, 2)
	for _, p := range payments {
		assert.Equal(t, "pending", p.(map[string]interface{})["status"])
	}

	// Confirming the booking settles its pending payments.
	w, _ = doRequest(t, router, http.MethodPost, "/bookings/1/status", gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = doRequest(t, router, http.MethodGet, "/payments?booking_id=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	payments = resp.Data["payments"].([]interface{})
	for _, p := range payments {
		assert.Equal(t, "completed", p.(map[string]interface{})["status"])
	}

	// Cancelling flags the settled payments for refund.
	w, _ = doRequest(t, router, http.MethodPost, "/bookings/1/status", gin.H{"status": "cancelled"})
	require.Equal(t, http.StatusOK, w.Code)

	w, resp = doRequest(t, router, http.MethodGet, "/payments?booking_id=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	payments = resp.Data["payments"].([]interface{})
	for _, p := range payments {
		assert.Equal(t, "pending_refund", p.(map[string]interface{})["status"])
	}

	// The cancelled booking no longer blocks the room.
	w, resp = doRequest(t, router, http.MethodGet,
		fmt.Sprintf("/bookings/availability?room_id=1&check_in=%s&check_out=%s", day(11), day(12)), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp.Data["available"])

	w, resp = doRequest(t, router, http.MethodGet, "/rooms/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rm = resp.Data["room"].(map[string]interface{})
	assert.Equal(t, "available", rm["status"])
}

func TestBookingValidation(t *testing.T) {
	router := setupRouter(t)
	createFixtures(t, router)

	// zero-night stay
	w, resp := doRequest(t, router, http.MethodPost, "/bookings", gin.H{
		"guest_id":       1,
		"room_id":        1,
		"check_in_date":  day(5),
		"check_out_date": day(5),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)

	// past check-in
	w, resp = doRequest(t, router, http.MethodPost, "/bookings", gin.H{
		"guest_id":       1,
		"room_id":        1,
		"check_in_date":  day(-1),
		"check_out_date": day(2),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)

	// unknown room
	w, resp = doRequest(t, router, http.MethodPost, "/bookings", gin.H{
		"guest_id":       1,
		"room_id":        42,
		"check_in_date":  day(5),
		"check_out_date": day(7),
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestGuestValidation(t *testing.T) {
	router := setupRouter(t)

	w, resp := doRequest(t, router, http.MethodPost, "/guests", gin.H{
		"first_name": "Asel",
		"last_name":  "Nurlanova",
		"email":      "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)

	w, _ = doRequest(t, router, http.MethodPost, "/guests", gin.H{
		"first_name": "Asel",
		"last_name":  "Nurlanova",
		"email":      "asel@mail.kz",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp = doRequest(t, router, http.MethodPost, "/guests", gin.H{
		"first_name": "Another",
		"last_name":  "Asel",
		"email":      "ASEL@mail.kz",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "DUPLICATE", resp.Error.Code)
}

func TestRoomDuplicateNumber(t *testing.T) {
	router := setupRouter(t)

	w, _ := doRequest(t, router, http.MethodPost, "/rooms", gin.H{
		"room_number":     "101",
		"room_type":       "single",
		"capacity":        1,
		"price_per_night": 80,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := doRequest(t, router, http.MethodPost, "/rooms", gin.H{
		"room_number":     "101",
		"room_type":       "double",
		"capacity":        2,
		"price_per_night": 120,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "DUPLICATE", resp.Error.Code)
}

func TestDashboardReport(t *testing.T) {
	router := setupRouter(t)
	createFixtures(t, router)

	w, _ := doRequest(t, router, http.MethodPost, "/bookings", gin.H{
		"guest_id":       1,
		"room_id":        1,
		"check_in_date":  day(10),
		"check_out_date": day(13),
		"status":         "confirmed",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := doRequest(t, router, http.MethodGet, "/reports/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	d := resp.Data["dashboard"].(map[string]interface{})
	assert.Equal(t, 1.0, d["total_guests"])
	assert.Equal(t, 1.0, d["total_rooms"])
	assert.Equal(t, 1.0, d["total_bookings"])
	assert.Equal(t, 1.0, d["bookings_by_status"].(map[string]interface{})["confirmed"])

	w, resp = doRequest(t, router, http.MethodGet, "/reports/occupancy", nil)
	require.Equal(t, http.StatusOK, w.Code)
	occ := resp.Data["occupancy"].(map[string]interface{})
	assert.Equal(t, 1.0, occ["total_rooms"])
	rooms := occ["rooms"].([]interface{})
	require.Len(t, rooms, 1)
	assert.Equal(t, "reserved", rooms[0].(map[string]interface{})["status"])
}
