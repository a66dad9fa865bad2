package util

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/from1to7/tutoring-backend/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditEventType represents different types of audit events
type AuditEventType string

const (
	EventBookingCreated      AuditEventType = "BOOKING_CREATED"
	EventTestimonialCreated  AuditEventType = "TESTIMONIAL_CREATED"
	EventNotificationFailure AuditEventType = "NOTIFICATION_FAILURE"
	EventUnauthorizedAccess  AuditEventType = "UNAUTHORIZED_ACCESS"
	EventEndpointCall        AuditEventType = "ENDPOINT_CALL"
)

// AuditEvent represents an audit event to be logged
type AuditEvent struct {
	EventType AuditEventType
	IP        string
	UserAgent string
	Message   string
	Details   map[string]interface{}
}

var auditLogger *log.Logger
var auditDB *gorm.DB

// SetAuditLoggerDB sets a gorm DB instance used by the audit logger.
// Call this during application startup (e.g. in main) after DB initialization.
func SetAuditLoggerDB(db *gorm.DB) {
	auditDB = db
}

func init() {
	auditLogger = log.New(os.Stdout, "[AUDIT] ", log.LstdFlags|log.Lmsgprefix)
}

// sanitizeLogValue removes newlines and other characters that could break log parsing
func sanitizeLogValue(value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\t", " ")
	// Truncate very long values to prevent log flooding
	if len(value) > 200 {
		value = value[:200] + "..."
	}
	return value
}

// LogAuditEvent logs an audit event to stdout and, best-effort, to the
// audit_logs table. A persistence failure never affects the caller.
func LogAuditEvent(event AuditEvent) {
	// Sanitize all string fields to prevent log injection
	msg := fmt.Sprintf("Event=%s IP=%s UserAgent=%s Message=%s",
		sanitizeLogValue(string(event.EventType)),
		sanitizeLogValue(event.IP),
		sanitizeLogValue(event.UserAgent),
		sanitizeLogValue(event.Message),
	)

	if len(event.Details) > 0 {
		// Don't log Details map directly to avoid injection
		msg = fmt.Sprintf("%s DetailsCount=%d", msg, len(event.Details))
	}

	auditLogger.Println(msg)

	if auditDB != nil {
		var details datatypes.JSON
		if event.Details != nil {
			if b, err := json.Marshal(event.Details); err == nil {
				details = datatypes.JSON(b)
			}
		}

		// Attempt to resolve city/country for the IP (best-effort, local DB then cache)
		city, country := GetIPLocation(event.IP)
		var location string
		if city != "" && country != "" {
			location = fmt.Sprintf("%s/%s", city, country)
		} else if country != "" {
			location = country
		} else if city != "" {
			location = city
		}

		entry := model.AuditLog{
			EventType: string(event.EventType),
			IP:        sanitizeLogValue(event.IP),
			Location:  sanitizeLogValue(location),
			UserAgent: sanitizeLogValue(event.UserAgent),
			Message:   sanitizeLogValue(event.Message),
			Details:   details,
		}

		// best-effort write; ignore errors but log them
		if err := auditDB.Create(&entry).Error; err != nil {
			auditLogger.Printf("Failed to persist audit event: %v", err)
		}
	}
}

// LogBookingCreated logs a successful booking insert
func LogBookingCreated(bookingID uint, ip, userAgent string) {
	LogAuditEvent(AuditEvent{
		EventType: EventBookingCreated,
		IP:        ip,
		UserAgent: userAgent,
		Message:   fmt.Sprintf("Booking %d stored", bookingID),
		Details:   map[string]interface{}{"booking_id": bookingID},
	})
}

// LogTestimonialCreated logs a successful testimonial insert
func LogTestimonialCreated(testimonialID uint, rating int, ip, userAgent string) {
	LogAuditEvent(AuditEvent{
		EventType: EventTestimonialCreated,
		IP:        ip,
		UserAgent: userAgent,
		Message:   fmt.Sprintf("Testimonial %d stored with rating %d", testimonialID, rating),
		Details:   map[string]interface{}{"testimonial_id": testimonialID, "rating": rating},
	})
}

// LogNotificationFailure logs a failed best-effort notification attempt.
// The failure is observable only here; it never reaches the client.
func LogNotificationFailure(channel, recipient string, bookingID uint, sendErr error) {
	LogAuditEvent(AuditEvent{
		EventType: EventNotificationFailure,
		Message:   fmt.Sprintf("%s to %s failed: %v", channel, recipient, sendErr),
		Details: map[string]interface{}{
			"channel":    channel,
			"recipient":  recipient,
			"booking_id": bookingID,
		},
	})
}

// LogUnauthorizedAccess logs unauthorized access attempts
func LogUnauthorizedAccess(ip, userAgent, resource string) {
	LogAuditEvent(AuditEvent{
		EventType: EventUnauthorizedAccess,
		IP:        ip,
		UserAgent: userAgent,
		Message:   fmt.Sprintf("Unauthorized access to %s", resource),
	})
}

// GetAuditLoggerForTest returns the current audit logger for testing purposes
func GetAuditLoggerForTest() *log.Logger {
	return auditLogger
}

// SetAuditLoggerForTest sets a custom logger for testing purposes
func SetAuditLoggerForTest(logger *log.Logger) {
	auditLogger = logger
}
