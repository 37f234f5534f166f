package main

import (
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"stayhub/internal/database"
	"stayhub/internal/middleware"
	"stayhub/internal/modules/booking"
	"stayhub/internal/modules/catalog"
	"stayhub/internal/modules/guest"
	"stayhub/internal/modules/payment"
	"stayhub/internal/modules/report"
	"stayhub/internal/modules/room"
	"stayhub/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "stayhub.db"
	}

	bufferDays := booking.DefaultBufferDays
	if v := os.Getenv("BOOKING_BUFFER_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			log.Fatalf("invalid BOOKING_BUFFER_DAYS: %q", v)
		}
		bufferDays = n
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

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
		bufferDays,
	)

	guestService := guest.NewService(guestRepo)
	roomService := room.NewService(roomRepo, bookingService)
	catalogService := catalog.NewService(serviceRepo)
	reportService := report.NewService(bookingRepo, roomRepo, paymentRepo, guestRepo)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		guest.NewHandler(guestService).RegisterRoutes(v1)
		room.NewHandler(roomService).RegisterRoutes(v1)
		catalog.NewHandler(catalogService).RegisterRoutes(v1)
		booking.NewHandler(bookingService).RegisterRoutes(v1)
		payment.NewHandler(paymentService).RegisterRoutes(v1)
		report.NewHandler(reportService).RegisterRoutes(v1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
