package endpoint

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/from1to7/tutoring-backend/config"
	"github.com/from1to7/tutoring-backend/middleware"
	"github.com/from1to7/tutoring-backend/model"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupEndpointTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := config.ConnectSQLite()
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}
	if err := db.AutoMigrate(&model.Booking{}, &model.Testimonial{}, &model.AuditLog{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM testimonials")
	db.Exec("DELETE FROM audit_logs")

	router := gin.New()
	router.Use(middleware.DatabaseMiddleware(db))
	router.POST("/book", CreateBooking)
	router.POST("/testimonials", CreateTestimonial)
	router.GET("/testimonials", ListTestimonials)
	router.GET("/sessions", ListSessions)
	return router, db
}

type filePart struct {
	Field    string
	Filename string
	Content  string
}

func multipartBody(t *testing.T, fields map[string]string, files ...filePart) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("failed to write form field %s: %v", key, err)
		}
	}
	for _, file := range files {
		part, err := writer.CreateFormFile(file.Field, file.Filename)
		if err != nil {
			t.Fatalf("failed to create file part %s: %v", file.Field, err)
		}
		if _, err := part.Write([]byte(file.Content)); err != nil {
			t.Fatalf("failed to write file part %s: %v", file.Field, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func performMultipart(router *gin.Engine, method, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func performGet(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validBookingFields() map[string]string {
	return map[string]string{
		"name":     "Thabo",
		"surname":  "Nkosi",
		"age":      "16",
		"gender":   "Male",
		"city":     "Pretoria",
		"province": "Gauteng",
		"phone":    "+27811111111",
		"email":    "thabo@example.com",
		"subject":  "Mathematics",
		"topic":    "Trigonometry",
		"datetime": "2024-06-01T14:00",
	}
}
