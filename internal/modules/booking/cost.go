package booking

import (
	"context"

	"stayhub/internal/domain"
)

type ServiceLine struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

type CostBreakdown struct {
	RoomCost      float64       `json:"room_cost"`
	Nights        int           `json:"nights"`
	PricePerNight float64       `json:"price_per_night"`
	Services      []ServiceLine `json:"services"`
	ServicesTotal float64       `json:"services_total"`
	TotalCost     float64       `json:"total_cost"`
}

// CostBreakdownFor prices the stay at the room's *current* rate; repricing a
// room retroactively changes later recalculations. Rates are intentionally
// not frozen at booking time, reports depend on live repricing.
//
// Charges whose service no longer resolves are skipped without error and do
// not count toward the total.
func (s *Service) CostBreakdownFor(ctx context.Context, b *domain.Booking) (*CostBreakdown, error) {
	if b.CheckInDate.IsZero() || b.CheckOutDate.IsZero() {
		return &CostBreakdown{Services: []ServiceLine{}}, nil
	}

	nights := b.Nights()

	var pricePerNight float64
	room, err := s.rooms.GetByID(ctx, b.RoomID)
	if err != nil {
		return nil, err
	}
	if room != nil {
		pricePerNight = room.PricePerNight
	}
	roomCost := pricePerNight * float64(nights)

	charges, err := s.charges.GetByBooking(ctx, b.ID)
	if err != nil {
		return nil, err
	}

	lines := make([]ServiceLine, 0, len(charges))
	var servicesTotal float64
	for _, c := range charges {
		svc, err := s.catalog.GetByID(ctx, c.ServiceID)
		if err != nil {
			return nil, err
		}
		if svc == nil {
			continue
		}
		lines = append(lines, ServiceLine{
			Name:      svc.Name,
			Quantity:  c.Quantity,
			UnitPrice: svc.Price,
			Subtotal:  c.Subtotal,
		})
		servicesTotal += c.Subtotal
	}

	return &CostBreakdown{
		RoomCost:      roomCost,
		Nights:        nights,
		PricePerNight: pricePerNight,
		Services:      lines,
		ServicesTotal: servicesTotal,
		TotalCost:     roomCost + servicesTotal,
	}, nil
}
