package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"stayhub/internal/database"
	"stayhub/internal/domain"
	"stayhub/internal/modules/booking"
	"stayhub/internal/modules/payment"
	"stayhub/internal/repository"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "stayhub.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM booking_charges")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM guests")

	ctx := context.Background()

	guestRepo := repository.NewGuestRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	chargeRepo := repository.NewBookingChargeRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	paymentService := payment.NewService(paymentRepo, bookingRepo)
	bookingService := booking.NewService(
		bookingRepo,
		roomRepo,
		guestRepo,
		serviceRepo,
		chargeRepo,
		paymentService,
		booking.DefaultBufferDays,
	)

	// ================== GUESTS ==================
	log.Println("Creating guests...")

	guests := []domain.Guest{
		{FirstName: "Asel", LastName: "Nurlanova", Email: "asel@mail.kz", Phone: "+7 777 123 4567"},
		{FirstName: "Bekzat", LastName: "Omarov", Email: "bekzat@gmail.com", Phone: "+7 777 123 4568"},
		{FirstName: "Dina", LastName: "Serikova", Email: "dina@yandex.kz", Phone: "+7 777 123 4569"},
	}
	for i := range guests {
		if err := guestRepo.Create(ctx, &guests[i]); err != nil {
			log.Fatal("guest create failed:", err)
		}
	}

	// ================== ROOMS ==================
	log.Println("Creating rooms...")

	rooms := []domain.Room{
		{RoomNumber: "101", RoomType: domain.RoomSingle, Capacity: 1, PricePerNight: 80, Status: domain.RoomAvailable, IsAvailable: true, Description: "Cozy single with a courtyard view"},
		{RoomNumber: "102", RoomType: domain.RoomSingle, Capacity: 1, PricePerNight: 85, Status: domain.RoomAvailable, IsAvailable: true},
		{RoomNumber: "201", RoomType: domain.RoomDouble, Capacity: 2, PricePerNight: 120, Status: domain.RoomAvailable, IsAvailable: true, Description: "Double with a balcony"},
		{RoomNumber: "202", RoomType: domain.RoomDouble, Capacity: 2, PricePerNight: 125, Status: domain.RoomAvailable, IsAvailable: true},
		{RoomNumber: "301", RoomType: domain.RoomSuite, Capacity: 4, PricePerNight: 250, Status: domain.RoomAvailable, IsAvailable: true, Description: "Top floor suite"},
	}
	for i := range rooms {
		if err := roomRepo.Create(ctx, &rooms[i]); err != nil {
			log.Fatal("room create failed:", err)
		}
	}

	// ================== SERVICES ==================
	log.Println("Creating services...")

	services := []domain.Service{
		{Name: "Breakfast", Description: "Continental breakfast", Price: 15, IsActive: true},
		{Name: "Airport transfer", Description: "One-way pickup", Price: 40, IsActive: true},
		{Name: "Laundry", Price: 10, IsActive: true},
		{Name: "Late checkout", Price: 25, IsActive: false},
	}
	for i := range services {
		if err := serviceRepo.Create(ctx, &services[i]); err != nil {
			log.Fatal("service create failed:", err)
		}
	}

	// ================== BOOKINGS ==================
	// Created through the booking engine so costs, pending payments and room
	// states come out the same way the API produces them.
	log.Println("Creating bookings...")

	today := time.Now().UTC().Truncate(24 * time.Hour)

	seedBookings := []struct {
		guest    int
		room     int
		checkIn  time.Time
		checkOut time.Time
		status   string
	}{
		{0, 0, today, today.AddDate(0, 0, 3), string(domain.BookingConfirmed)},
		{1, 2, today.AddDate(0, 0, 5), today.AddDate(0, 0, 9), string(domain.BookingPending)},
		{2, 4, today.AddDate(0, 0, 1), today.AddDate(0, 0, 2), string(domain.BookingConfirmed)},
	}
	var firstBookingID int64
	for i, sb := range seedBookings {
		b, err := bookingService.Create(ctx, booking.CreateBookingRequest{
			GuestID:      guests[sb.guest].ID,
			RoomID:       rooms[sb.room].ID,
			CheckInDate:  sb.checkIn,
			CheckOutDate: sb.checkOut,
			Status:       sb.status,
		})
		if err != nil {
			log.Fatal("booking create failed:", err)
		}
		if i == 0 {
			firstBookingID = b.ID
		}
		log.Printf("Booking #%d: room %s, %s - %s, total %.2f",
			b.ID, rooms[sb.room].RoomNumber,
			sb.checkIn.Format("2006-01-02"), sb.checkOut.Format("2006-01-02"),
			b.TotalCost)
	}

	// Attach breakfast to the first booking so charge flows have demo data.
	if _, err := bookingService.AttachCharge(ctx, firstBookingID, services[0].ID, 3); err != nil {
		log.Fatal("charge attach failed:", err)
	}

	fmt.Println("Seed complete.")
}
