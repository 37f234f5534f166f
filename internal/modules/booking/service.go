package booking

import (
	"context"

	"stayhub/internal/domain"
	"stayhub/internal/repository"
)

// DefaultBufferDays is the symmetric turnover window applied around every
// stay when checking conflicts and deriving room state.
const DefaultBufferDays = 2

const defaultAutoPaymentMethod = "card"

type Service struct {
	bookings   BookingRepository
	rooms      RoomRepository
	guests     GuestRepository
	catalog    ServiceCatalog
	charges    ChargeRepository
	payments   PaymentService
	bufferDays int
}

func NewService(
	bookings BookingRepository,
	rooms RoomRepository,
	guests GuestRepository,
	catalog ServiceCatalog,
	charges ChargeRepository,
	payments PaymentService,
	bufferDays int,
) *Service {
	if bufferDays <= 0 {
		bufferDays = DefaultBufferDays
	}
	return &Service{
		bookings:   bookings,
		rooms:      rooms,
		guests:     guests,
		catalog:    catalog,
		charges:    charges,
		payments:   payments,
		bufferDays: bufferDays,
	}
}

func (s *Service) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, &NotFoundError{Resource: "booking", ID: id}
	}
	return b, nil
}

func (s *Service) ListBookings(ctx context.Context, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.List(ctx, limit, offset)
}

func (s *Service) SearchBookings(ctx context.Context, f repository.BookingFilter) ([]domain.Booking, error) {
	return s.bookings.Search(ctx, f)
}

func autoPaymentMethod() string {
	if domain.IsValidPaymentMethod(defaultAutoPaymentMethod) {
		return defaultAutoPaymentMethod
	}
	return domain.PaymentMethods[0]
}

// Create validates the guest and room availability, persists the booking,
// caches its cost and registers one pending payment for the full amount.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	guest, err := s.guests.GetByID(ctx, req.GuestID)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, &NotFoundError{Resource: "guest", ID: req.GuestID}
	}

	checkIn := dateOnly(req.CheckInDate)
	checkOut := dateOnly(req.CheckOutDate)

	conflicts, err := s.conflictsFor(ctx, req.RoomID, checkIn, checkOut, nil)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, s.notAvailableError(ctx, req.RoomID, checkIn, checkOut, conflicts)
	}

	status := domain.BookingPending
	if req.Status != "" {
		if !domain.IsValidBookingStatus(req.Status) {
			return nil, ErrInvalidStatus
		}
		status = domain.BookingStatus(req.Status)
	}

	b := &domain.Booking{
		GuestID:      req.GuestID,
		RoomID:       req.RoomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       status,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	bd, err := s.CostBreakdownFor(ctx, b)
	if err != nil {
		return nil, err
	}
	b.TotalCost = bd.TotalCost
	if err := s.bookings.UpdateCost(ctx, b.ID, b.TotalCost); err != nil {
		return nil, err
	}

	if b.TotalCost > 0 {
		if _, err := s.payments.CreatePending(ctx, b.ID, b.TotalCost, autoPaymentMethod()); err != nil {
			return nil, err
		}
	}

	if err := s.RefreshRoomState(ctx, b.RoomID); err != nil {
		return nil, err
	}
	return b, nil
}

// Update re-validates availability for the effective room and dates (new
// values where given, existing otherwise), excluding the booking itself.
func (s *Service) Update(ctx context.Context, id int64, req UpdateBookingRequest) (*domain.Booking, error) {
	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	originalRoom := b.RoomID

	roomID := b.RoomID
	if req.RoomID != nil {
		roomID = *req.RoomID
	}
	checkIn := b.CheckInDate
	if req.CheckInDate != nil {
		checkIn = dateOnly(*req.CheckInDate)
	}
	checkOut := b.CheckOutDate
	if req.CheckOutDate != nil {
		checkOut = dateOnly(*req.CheckOutDate)
	}

	if req.GuestID != nil {
		guest, err := s.guests.GetByID(ctx, *req.GuestID)
		if err != nil {
			return nil, err
		}
		if guest == nil {
			return nil, &NotFoundError{Resource: "guest", ID: *req.GuestID}
		}
	}

	conflicts, err := s.conflictsFor(ctx, roomID, checkIn, checkOut, &id)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, s.notAvailableError(ctx, roomID, checkIn, checkOut, conflicts)
	}

	if req.GuestID != nil {
		b.GuestID = *req.GuestID
	}
	b.RoomID = roomID
	b.CheckInDate = checkIn
	b.CheckOutDate = checkOut
	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	bd, err := s.CostBreakdownFor(ctx, b)
	if err != nil {
		return nil, err
	}
	b.TotalCost = bd.TotalCost
	if err := s.bookings.UpdateCost(ctx, b.ID, b.TotalCost); err != nil {
		return nil, err
	}

	if err := s.RefreshRoomState(ctx, originalRoom); err != nil {
		return nil, err
	}
	if roomID != originalRoom {
		if err := s.RefreshRoomState(ctx, roomID); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Delete removes the booking's charges first, then the booking, then frees
// up the room's derived state.
func (s *Service) Delete(ctx context.Context, id int64) error {
	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return err
	}

	if _, err := s.charges.DeleteByBooking(ctx, id); err != nil {
		return err
	}
	if err := s.bookings.Delete(ctx, id); err != nil {
		return err
	}
	return s.RefreshRoomState(ctx, b.RoomID)
}

// UpdateStatus moves the booking through its lifecycle and synchronizes the
// attached payments: confirming or completing settles pending payments,
// cancelling flags completed payments for refund.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Booking, error) {
	if !domain.IsValidBookingStatus(status) {
		return nil, ErrInvalidStatus
	}

	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.bookings.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	b.Status = domain.BookingStatus(status)

	if err := s.syncPaymentsForStatus(ctx, b); err != nil {
		return nil, err
	}
	if err := s.RefreshRoomState(ctx, b.RoomID); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) syncPaymentsForStatus(ctx context.Context, b *domain.Booking) error {
	payments, err := s.payments.GetByBooking(ctx, b.ID)
	if err != nil {
		return err
	}
	if len(payments) == 0 {
		return nil
	}

	switch b.Status {
	case domain.BookingConfirmed, domain.BookingCompleted:
		for _, p := range payments {
			if p.Status == domain.PaymentPending || p.Status == domain.PaymentPendingRefund {
				if _, err := s.payments.UpdateStatus(ctx, p.ID, string(domain.PaymentCompleted)); err != nil {
					return err
				}
			}
		}
	case domain.BookingCancelled:
		for _, p := range payments {
			if p.Status == domain.PaymentCompleted {
				if _, err := s.payments.UpdateStatus(ctx, p.ID, string(domain.PaymentPendingRefund)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// RecalculateCost refreshes the cached total from the current room rate and
// charges. It never touches payments or room state.
func (s *Service) RecalculateCost(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	bd, err := s.CostBreakdownFor(ctx, b)
	if err != nil {
		return nil, err
	}
	b.TotalCost = bd.TotalCost
	if err := s.bookings.UpdateCost(ctx, b.ID, b.TotalCost); err != nil {
		return nil, err
	}
	return b, nil
}

// RegisterAdditionalCharge recalculates the booking and registers one more
// pending payment for the incremental amount. No-op when amount <= 0.
func (s *Service) RegisterAdditionalCharge(ctx context.Context, bookingID int64, amount float64) error {
	if amount <= 0 {
		return nil
	}
	if _, err := s.RecalculateCost(ctx, bookingID); err != nil {
		return err
	}
	_, err := s.payments.CreatePending(ctx, bookingID, amount, autoPaymentMethod())
	return err
}

// AttachCharge adds a catalog service to an existing booking; the subtotal
// is cached at the service's current price.
func (s *Service) AttachCharge(ctx context.Context, bookingID, serviceID int64, quantity int) (*domain.BookingCharge, error) {
	if quantity <= 0 {
		quantity = 1
	}

	b, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	svc, err := s.catalog.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, &NotFoundError{Resource: "service", ID: serviceID}
	}

	c := &domain.BookingCharge{
		BookingID: b.ID,
		ServiceID: svc.ID,
		Quantity:  quantity,
		Subtotal:  svc.Price * float64(quantity),
	}
	if err := s.charges.Create(ctx, c); err != nil {
		return nil, err
	}

	if err := s.RegisterAdditionalCharge(ctx, b.ID, c.Subtotal); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) ListCharges(ctx context.Context, bookingID int64) ([]domain.BookingCharge, error) {
	if _, err := s.GetBooking(ctx, bookingID); err != nil {
		return nil, err
	}
	return s.charges.GetByBooking(ctx, bookingID)
}

// DetachCharge removes a charge and refreshes the cached total. No payment
// is reversed automatically; refunds stay a manual concern.
func (s *Service) DetachCharge(ctx context.Context, bookingID, chargeID int64) error {
	c, err := s.charges.GetByID(ctx, chargeID)
	if err != nil {
		return err
	}
	if c == nil || c.BookingID != bookingID {
		return &NotFoundError{Resource: "charge", ID: chargeID}
	}

	if err := s.charges.Delete(ctx, chargeID); err != nil {
		return err
	}
	_, err = s.RecalculateCost(ctx, bookingID)
	return err
}

func (s *Service) TodaysCheckins(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.TodaysCheckins(ctx, today())
}

func (s *Service) TodaysCheckouts(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.TodaysCheckouts(ctx, today())
}

func (s *Service) UpcomingBookings(ctx context.Context, limit int) ([]domain.Booking, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.bookings.Upcoming(ctx, today(), limit)
}
