package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"petsitter/internal/config"
	"petsitter/internal/database"
	"petsitter/internal/mailer"
	"petsitter/internal/middleware"
	"petsitter/internal/modules/admin"
	"petsitter/internal/modules/auth"
	"petsitter/internal/modules/booking"
	"petsitter/internal/modules/catalog"
	"petsitter/internal/modules/ledger"
	jwtsvc "petsitter/internal/pkg/jwt"
	"petsitter/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	sitterRepo := repository.NewSitterRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	var receiptMailer mailer.Mailer
	smtpCfg := mailer.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}
	if smtpCfg.Configured() {
		receiptMailer = mailer.NewSMTPMailer(smtpCfg)
	} else {
		log.Println("smtp not configured, receipts go to the log")
		receiptMailer = mailer.NewDevConsoleMailer()
	}

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(sitterRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, catalogService, userRepo, receiptMailer)
	bookingHandler := booking.NewHandler(bookingService)

	ledgerService := ledger.NewService(bookingRepo, userRepo, sitterRepo)
	ledgerHandler := ledger.NewHandler(ledgerService)

	adminService := admin.NewService(userRepo, bookingRepo, catalogService, sitterRepo)
	adminHandler := admin.NewHandler(adminService, ledgerService, bookingService)

	r := gin.New()
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.Metrics())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			ledgerHandler.RegisterRoutes(protected)

			adminGroup := protected.Group("/admin")
			adminGroup.Use(middleware.AdminOnly())
			{
				adminHandler.RegisterRoutes(adminGroup)
			}
		}
	}

	log.Printf("listening on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
