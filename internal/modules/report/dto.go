package report

import (
	"time"

	"stayhub/internal/domain"
)

type DashboardReport struct {
	GeneratedAt      time.Time        `json:"generated_at"`
	TotalGuests      int64            `json:"total_guests"`
	TotalRooms       int64            `json:"total_rooms"`
	TotalBookings    int64            `json:"total_bookings"`
	BookingsByStatus map[string]int64 `json:"bookings_by_status"`
	TodaysCheckins   int              `json:"todays_checkins"`
	TodaysCheckouts  int              `json:"todays_checkouts"`
	OccupiedRooms    int64            `json:"occupied_rooms"`
	OccupancyRate    float64          `json:"occupancy_rate"`
	TotalRevenue     float64          `json:"total_revenue"`
	PendingPayments  int64            `json:"pending_payments"`
}

type RoomOccupancy struct {
	RoomID        int64   `json:"room_id"`
	RoomNumber    string  `json:"room_number"`
	RoomType      string  `json:"room_type"`
	Status        string  `json:"status"`
	IsAvailable   bool    `json:"is_available"`
	PricePerNight float64 `json:"price_per_night"`
}

type OccupancyReport struct {
	GeneratedAt   time.Time        `json:"generated_at"`
	TotalRooms    int64            `json:"total_rooms"`
	OccupancyRate float64          `json:"occupancy_rate"`
	ByStatus      map[string]int64 `json:"by_status"`
	Rooms         []RoomOccupancy  `json:"rooms"`
}

type RevenueReport struct {
	GeneratedAt  time.Time          `json:"generated_at"`
	TotalRevenue float64            `json:"total_revenue"`
	ByMethod     map[string]float64 `json:"by_method"`
	Recent       []domain.Payment   `json:"recent"`
}
