package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkAvailabilityHandler "github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers/check_availability"
	createBookingHandler "github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers/create_booking"
	createEnquiryHandler "github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers/create_enquiry"
	createItineraryHandler "github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers/create_itinerary"
	createOfferHandler "github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers/create_offer"
	createYachtHandler "github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers/create_yacht"
	dashboardStatsHandler "github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers/dashboard_stats"
	deleteItineraryHandler "github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers/delete_itinerary"
	getBookingHandler "github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers/get_booking"
	getYachtHandler "github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers/get_yacht"
	listBookingsHandler "github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers/list_bookings"
	listEnquiriesHandler "github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers/list_enquiries"
	listItinerariesHandler "github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers/list_itineraries"
	listOffersHandler "github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers/list_offers"
	listReviewsHandler "github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers/list_reviews"
	listYachtsHandler "github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers/list_yachts"
	moderateReviewHandler "github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers/moderate_review"
	submitReviewHandler "github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers/submit_review"
	updateBookingHandler "github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers/update_booking"
	updateBookingStatusHandler "github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers/update_booking_status"
	updateEnquiryStatusHandler "github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers/update_enquiry_status"
	updateItineraryHandler "github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers/update_itinerary"
	updateOfferStatusHandler "github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers/update_offer_status"
	updateYachtHandler "github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers/update_yacht"
	yachtReviewsHandler "github.com/LeesureYatchs/Leisure-Yatchs/internal/api/handlers/yacht_reviews"
	"github.com/LeesureYatchs/Leisure-Yatchs/internal/api/middleware"
	"github.com/LeesureYatchs/Leisure-Yatchs/internal/config"
	bookingRepo "github.com/LeesureYatchs/Leisure-Yatchs/internal/infra/storage/booking"
	enquiryRepo "github.com/LeesureYatchs/Leisure-Yatchs/internal/infra/storage/enquiry"
	itineraryRepo "github.com/LeesureYatchs/Leisure-Yatchs/internal/infra/storage/itinerary"
	offerRepo "github.com/LeesureYatchs/Leisure-Yatchs/internal/infra/storage/offer"
	reviewRepo "github.com/LeesureYatchs/Leisure-Yatchs/internal/infra/storage/review"
	yachtRepo "github.com/LeesureYatchs/Leisure-Yatchs/internal/infra/storage/yacht"
	mailerClient "github.com/LeesureYatchs/Leisure-Yatchs/internal/integrations/mailer"
	bookingsService "github.com/LeesureYatchs/Leisure-Yatchs/internal/service/bookings"
	catalogService "github.com/LeesureYatchs/Leisure-Yatchs/internal/service/catalog"
	enquiriesService "github.com/LeesureYatchs/Leisure-Yatchs/internal/service/enquiries"
	itinerariesService "github.com/LeesureYatchs/Leisure-Yatchs/internal/service/itineraries"
	offersService "github.com/LeesureYatchs/Leisure-Yatchs/internal/service/offers"
	reviewsService "github.com/LeesureYatchs/Leisure-Yatchs/internal/service/reviews"
	checkAvailabilityUC "github.com/LeesureYatchs/Leisure-Yatchs/internal/usecase/check_availability"
	createBookingUC "github.com/LeesureYatchs/Leisure-Yatchs/internal/usecase/create_booking"
	"github.com/LeesureYatchs/Leisure-Yatchs/pkg/dbmetrics"
	"github.com/LeesureYatchs/Leisure-Yatchs/pkg/logger"
	"github.com/LeesureYatchs/Leisure-Yatchs/pkg/metrics"
	"github.com/LeesureYatchs/Leisure-Yatchs/pkg/simpletxmanager"
	"github.com/LeesureYatchs/Leisure-Yatchs/pkg/txmanager"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting Leisure-Yachts booking service...")
	log.Info("Configuration loaded from config.toml")

	// Initialize metrics (when enabled)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Connect to the database
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Outgoing mail client
	mail := mailerClient.NewClient(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Username,
		cfg.SMTP.Password,
		cfg.SMTP.From,
		cfg.SMTP.AdminAddress,
		log,
	)
	log.Info("Mail client initialized (host=%s, port=%d)", cfg.SMTP.Host, cfg.SMTP.Port)

	// Initialize repositories (with metrics wrapping or without)
	var (
		bookingRepository   *bookingRepo.Repository
		yachtRepository     *yachtRepo.Repository
		offerRepository     *offerRepo.Repository
		reviewRepository    *reviewRepo.Repository
		enquiryRepository   *enquiryRepo.Repository
		itineraryRepository *itineraryRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		yachtRepository = yachtRepo.NewRepository(wrappedDB)
		offerRepository = offerRepo.NewRepository(wrappedDB)
		reviewRepository = reviewRepo.NewRepository(wrappedDB)
		enquiryRepository = enquiryRepo.NewRepository(wrappedDB)
		itineraryRepository = itineraryRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		yachtRepository = yachtRepo.NewRepository(db)
		offerRepository = offerRepo.NewRepository(db)
		reviewRepository = reviewRepo.NewRepository(db)
		enquiryRepository = enquiryRepo.NewRepository(db)
		itineraryRepository = itineraryRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Initialize services
	bookingSvc := bookingsService.NewService(bookingRepository, yachtRepository, mail, log)
	catalogSvc := catalogService.NewService(yachtRepository, log)
	offerSvc := offersService.NewService(offerRepository, yachtRepository, log)
	reviewSvc := reviewsService.NewService(reviewRepository, yachtRepository, log)
	enquirySvc := enquiriesService.NewService(enquiryRepository, log)
	itinerarySvc := itinerariesService.NewService(itineraryRepository, log)

	// Initialize use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(bookingRepository, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		yachtRepository,
		offerRepository,
		txMgr,
		mail,
		log,
	)

	// Initialize handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listYachtsPublic := listYachtsHandler.NewHandler(catalogSvc, false, log)
	listYachtsAdmin := listYachtsHandler.NewHandler(catalogSvc, true, log)
	getYachtPublic := getYachtHandler.NewHandler(catalogSvc, true, log)
	getYachtAdmin := getYachtHandler.NewHandler(catalogSvc, false, log)
	createYacht := createYachtHandler.NewHandler(catalogSvc, log)
	updateYacht := updateYachtHandler.NewHandler(catalogSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	dashboardStats := dashboardStatsHandler.NewHandler(bookingSvc, catalogSvc, offerSvc, enquirySvc, log)
	listOffersPublic := listOffersHandler.NewHandler(offerSvc, true, log)
	listOffersAdmin := listOffersHandler.NewHandler(offerSvc, false, log)
	createOffer := createOfferHandler.NewHandler(offerSvc, log)
	updateOfferStatus := updateOfferStatusHandler.NewHandler(offerSvc, log)
	submitReview := submitReviewHandler.NewHandler(reviewSvc, log)
	yachtReviews := yachtReviewsHandler.NewHandler(reviewSvc, log)
	listReviews := listReviewsHandler.NewHandler(reviewSvc, log)
	moderateReview := moderateReviewHandler.NewHandler(reviewSvc, log)
	createEnquiry := createEnquiryHandler.NewHandler(enquirySvc, log)
	listEnquiries := listEnquiriesHandler.NewHandler(enquirySvc, log)
	updateEnquiryStatus := updateEnquiryStatusHandler.NewHandler(enquirySvc, log)
	listItineraries := listItinerariesHandler.NewHandler(itinerarySvc, log)
	createItinerary := createItineraryHandler.NewHandler(itinerarySvc, log)
	updateItinerary := updateItineraryHandler.NewHandler(itinerarySvc, log)
	deleteItinerary := deleteItineraryHandler.NewHandler(itinerarySvc, log)

	// Router setup
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Catalog
	api.HandleFunc("/yachts", listYachtsPublic.Handle).Methods(http.MethodGet)
	api.HandleFunc("/yachts/{yachtId}", getYachtPublic.Handle).Methods(http.MethodGet)

	// Availability and bookings
	api.HandleFunc("/yachts/{yachtId}/availability", checkAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Reviews
	api.HandleFunc("/yachts/{yachtId}/reviews", yachtReviews.Handle).Methods(http.MethodGet)
	api.HandleFunc("/yachts/{yachtId}/reviews", submitReview.Handle).Methods(http.MethodPost)

	// Enquiries, offers and itineraries
	api.HandleFunc("/enquiries", createEnquiry.Handle).Methods(http.MethodPost)
	api.HandleFunc("/offers", listOffersPublic.Handle).Methods(http.MethodGet)
	api.HandleFunc("/itineraries", listItineraries.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (X-Admin-Token required)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	// Dashboard
	admin.HandleFunc("/dashboard", dashboardStats.Handle).Methods(http.MethodGet)

	// Bookings
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Fleet management
	admin.HandleFunc("/yachts", listYachtsAdmin.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/yachts", createYacht.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/yachts/{yachtId}", getYachtAdmin.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/yachts/{yachtId}", updateYacht.Handle).Methods(http.MethodPut)

	// Offers
	admin.HandleFunc("/offers", listOffersAdmin.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/offers", createOffer.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/offers/{offerId}/status", updateOfferStatus.Handle).Methods(http.MethodPatch)

	// Reviews moderation
	admin.HandleFunc("/reviews", listReviews.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reviews/{reviewId}/status", moderateReview.Handle).Methods(http.MethodPatch)

	// Enquiries
	admin.HandleFunc("/enquiries", listEnquiries.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/enquiries/{enquiryId}/status", updateEnquiryStatus.Handle).Methods(http.MethodPatch)

	// Itineraries
	admin.HandleFunc("/itineraries", createItinerary.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/itineraries/{itineraryId}", updateItinerary.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/itineraries/{itineraryId}", deleteItinerary.Handle).Methods(http.MethodDelete)

	// HTTP server
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
