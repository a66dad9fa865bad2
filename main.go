// main.go
package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/from1to7/tutoring-backend/config"
	"github.com/from1to7/tutoring-backend/endpoint"
	"github.com/from1to7/tutoring-backend/middleware"
	"github.com/from1to7/tutoring-backend/model"
	"github.com/from1to7/tutoring-backend/notify"
	"github.com/from1to7/tutoring-backend/util"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load the configuration
	cfg := config.LoadConfig()

	if missing := cfg.MissingSecrets(); len(missing) > 0 {
		log.Fatalf("Missing required environment variables: %s", strings.Join(missing, ", "))
	}

	db, err := config.ConnectSQLite()
	if err != nil {
		log.Fatalf("Error connecting to SQLite: %v", err)
	}
	if err := db.AutoMigrate(&model.Booking{}, &model.Testimonial{}, &model.AuditLog{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	util.SetAuditLoggerDB(db)

	if err := util.InitGeoIP(""); err != nil {
		log.Printf("GeoIP unavailable: %v", err)
	}
	defer util.CloseGeoIP()

	// Shared clients are built once at startup and reused for every booking.
	mailer := notify.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFromName)
	sms := notify.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioPhoneNumber)
	endpoint.SetNotifier(&notify.Notifier{
		Email:      mailer,
		SMS:        sms,
		TutorEmail: cfg.TutorEmail,
		TutorPhone: cfg.TutorPhone,
		FromName:   cfg.SMTPFromName,
	})

	endpoint.SetSessionsPasswordHash(util.HashPassword(cfg.SessionsPassword))

	// Set Gin mode from config
	gin.SetMode(cfg.GinMode)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DatabaseMiddleware(db))
	router.Use(middleware.EndpointCallLogger())

	router.StaticFile("/", "./public/index.html")
	router.Static("/public", "./public")
	router.POST("/book", endpoint.CreateBooking)
	router.POST("/testimonials", endpoint.CreateTestimonial)
	router.GET("/testimonials", endpoint.ListTestimonials)
	router.GET("/sessions", endpoint.ListSessions)

	// Start server on specified port
	address := fmt.Sprintf(":%d", cfg.AppPort)
	if err := router.Run(address); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
