package endpoint

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/from1to7/tutoring-backend/middleware"
	"github.com/from1to7/tutoring-backend/model"
	"github.com/from1to7/tutoring-backend/util"
	"github.com/gin-gonic/gin"
)

// requiredBookingFields must all be present and non-empty for a booking to
// be accepted. Age is checked for presence only, not numeric validity.
var requiredBookingFields = []string{
	"name", "surname", "age", "gender", "city", "province",
	"phone", "email", "subject", "topic", "datetime",
}

// BookingNotifier receives a stored booking for best-effort fan-out.
type BookingNotifier interface {
	BookingCreated(model.Booking)
}

var bookingNotifier BookingNotifier

// SetNotifier sets the shared notifier used after booking inserts.
// Call this during application startup.
func SetNotifier(n BookingNotifier) {
	bookingNotifier = n
}

var uploadDir = "uploads"

// SetUploadDir overrides the directory uploaded attachments are written to.
func SetUploadDir(dir string) {
	uploadDir = dir
}

func missingRequiredFields(c *gin.Context) bool {
	for _, field := range requiredBookingFields {
		if c.PostForm(field) == "" {
			return true
		}
	}
	return false
}

// saveAttachment writes the named file part to the upload directory and
// returns the stored path. An absent part is not an error; it yields nil so
// the column stays NULL.
func saveAttachment(c *gin.Context, field string) (*string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}

	dst := filepath.Join(uploadDir, fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(fileHeader.Filename)))
	if err := c.SaveUploadedFile(fileHeader, dst); err != nil {
		return nil, fmt.Errorf("save %s attachment: %w", field, err)
	}
	return &dst, nil
}

// optionalField returns a pointer for nullable columns: nil when the form
// value is absent or empty.
func optionalField(c *gin.Context, field string) *string {
	value := c.PostForm(field)
	if value == "" {
		return nil
	}
	return &value
}

func buildBookingModel(c *gin.Context, questionsPath, proofOfPaymentPath *string) model.Booking {
	return model.Booking{
		Name:               c.PostForm("name"),
		Surname:            c.PostForm("surname"),
		Age:                c.PostForm("age"),
		Gender:             c.PostForm("gender"),
		Township:           c.PostForm("township"),
		City:               c.PostForm("city"),
		PostalCode:         c.PostForm("postalCode"),
		Province:           c.PostForm("province"),
		Phone:              c.PostForm("phone"),
		Email:              c.PostForm("email"),
		School:             c.PostForm("school"),
		Grade:              c.PostForm("grade"),
		Subject:            c.PostForm("subject"),
		Topic:              c.PostForm("topic"),
		QuestionsPath:      questionsPath,
		Comments:           c.PostForm("comments"),
		Datetime:           c.PostForm("datetime"),
		MeetLink:           model.MeetLink,
		PaymentMethod:      optionalField(c, "paymentMethod"),
		ProofOfPaymentPath: proofOfPaymentPath,
	}
}

// CreateBooking godoc
// @Summary      Book a tutoring session
// @Description  Accepts the booking form with optional question and proof-of-payment attachments
// @Tags         Booking
// @Accept       mpfd
// @Produce      json
// @Success      200 {object} util.APIResponse "Booking stored"
// @Failure      400 {object} util.APIResponse "Missing required fields"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /book [post]
func CreateBooking(c *gin.Context) {
	if missingRequiredFields(c) {
		util.CallUserError(c, "Missing required fields")
		return
	}

	db := middleware.GetDB(c)
	if db == nil {
		util.CallServerError(c, "Database error")
		return
	}

	questionsPath, err := saveAttachment(c, "questions")
	if err != nil {
		util.CallServerError(c, "Server error")
		return
	}
	proofOfPaymentPath, err := saveAttachment(c, "proofOfPayment")
	if err != nil {
		util.CallServerError(c, "Server error")
		return
	}

	booking := buildBookingModel(c, questionsPath, proofOfPaymentPath)
	if err := db.Create(&booking).Error; err != nil {
		util.CallServerError(c, "Database error")
		return
	}

	util.LogBookingCreated(booking.ID, c.ClientIP(), c.Request.UserAgent())

	// The insert is durable; notifications are fire-and-forget from here.
	if bookingNotifier != nil {
		go bookingNotifier.BookingCreated(booking)
	}

	util.CallSuccessOK(c)
}
