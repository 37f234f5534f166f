package report

import (
	"context"
	"time"

	"stayhub/internal/domain"
	"stayhub/internal/repository"
)

type BookingStats interface {
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	TodaysCheckins(ctx context.Context, today time.Time) ([]domain.Booking, error)
	TodaysCheckouts(ctx context.Context, today time.Time) ([]domain.Booking, error)
	Upcoming(ctx context.Context, today time.Time, limit int) ([]domain.Booking, error)
}

type RoomStats interface {
	Count(ctx context.Context) (int64, error)
	Search(ctx context.Context, f repository.RoomFilter) ([]domain.Room, error)
}

type RevenueStats interface {
	TotalRevenue(ctx context.Context) (float64, error)
	RevenueByMethod(ctx context.Context) (map[string]float64, error)
	Recent(ctx context.Context, limit int) ([]domain.Payment, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

type GuestStats interface {
	Count(ctx context.Context) (int64, error)
}

type Service struct {
	bookings BookingStats
	rooms    RoomStats
	payments RevenueStats
	guests   GuestStats
}

func NewService(bookings BookingStats, rooms RoomStats, payments RevenueStats, guests GuestStats) *Service {
	return &Service{bookings: bookings, rooms: rooms, payments: payments, guests: guests}
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Dashboard collects the front-desk summary in one shot.
func (s *Service) Dashboard(ctx context.Context) (*DashboardReport, error) {
	rep := &DashboardReport{GeneratedAt: time.Now().UTC()}

	var err error
	if rep.TotalGuests, err = s.guests.Count(ctx); err != nil {
		return nil, err
	}
	if rep.TotalRooms, err = s.rooms.Count(ctx); err != nil {
		return nil, err
	}
	if rep.TotalBookings, err = s.bookings.Count(ctx); err != nil {
		return nil, err
	}

	rep.BookingsByStatus = make(map[string]int64, len(domain.BookingStatuses))
	for _, st := range domain.BookingStatuses {
		n, err := s.bookings.CountByStatus(ctx, string(st))
		if err != nil {
			return nil, err
		}
		rep.BookingsByStatus[string(st)] = n
	}

	now := today()
	checkins, err := s.bookings.TodaysCheckins(ctx, now)
	if err != nil {
		return nil, err
	}
	checkouts, err := s.bookings.TodaysCheckouts(ctx, now)
	if err != nil {
		return nil, err
	}
	rep.TodaysCheckins = len(checkins)
	rep.TodaysCheckouts = len(checkouts)

	rooms, err := s.rooms.Search(ctx, repository.RoomFilter{})
	if err != nil {
		return nil, err
	}
	occupied := 0
	for _, r := range rooms {
		if r.Status == domain.RoomOccupied {
			occupied++
		}
	}
	rep.OccupiedRooms = int64(occupied)
	if len(rooms) > 0 {
		rep.OccupancyRate = float64(occupied) / float64(len(rooms))
	}

	if rep.TotalRevenue, err = s.payments.TotalRevenue(ctx); err != nil {
		return nil, err
	}
	if rep.PendingPayments, err = s.payments.CountByStatus(ctx, string(domain.PaymentPending)); err != nil {
		return nil, err
	}
	return rep, nil
}

// Occupancy lists every room with its current derived state.
func (s *Service) Occupancy(ctx context.Context) (*OccupancyReport, error) {
	rooms, err := s.rooms.Search(ctx, repository.RoomFilter{})
	if err != nil {
		return nil, err
	}

	rep := &OccupancyReport{
		GeneratedAt: time.Now().UTC(),
		TotalRooms:  int64(len(rooms)),
		ByStatus:    map[string]int64{},
		Rooms:       make([]RoomOccupancy, 0, len(rooms)),
	}
	occupied := 0
	for _, r := range rooms {
		rep.ByStatus[string(r.Status)]++
		if r.Status == domain.RoomOccupied {
			occupied++
		}
		rep.Rooms = append(rep.Rooms, RoomOccupancy{
			RoomID:        r.ID,
			RoomNumber:    r.RoomNumber,
			RoomType:      string(r.RoomType),
			Status:        string(r.Status),
			IsAvailable:   r.IsAvailable,
			PricePerNight: r.PricePerNight,
		})
	}
	if len(rooms) > 0 {
		rep.OccupancyRate = float64(occupied) / float64(len(rooms))
	}
	return rep, nil
}

// Revenue sums completed payments, overall and per method.
func (s *Service) Revenue(ctx context.Context) (*RevenueReport, error) {
	total, err := s.payments.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	byMethod, err := s.payments.RevenueByMethod(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.payments.Recent(ctx, 10)
	if err != nil {
		return nil, err
	}
	return &RevenueReport{
		GeneratedAt:  time.Now().UTC(),
		TotalRevenue: total,
		ByMethod:     byMethod,
		Recent:       recent,
	}, nil
}
