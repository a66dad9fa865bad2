package endpoint

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/from1to7/tutoring-backend/model"
	"github.com/stretchr/testify/assert"
)

type recordingNotifier struct {
	done chan model.Booking
}

func (r *recordingNotifier) BookingCreated(b model.Booking) {
	r.done <- b
}

func TestCreateBookingMissingField(t *testing.T) {
	router, db := setupEndpointTest(t)

	fields := validBookingFields()
	delete(fields, "email")
	body, contentType := multipartBody(t, fields)

	w := performMultipart(router, http.MethodPost, "/book", body, contentType)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Missing required fields", resp["message"])

	var count int64
	db.Model(&model.Booking{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateBookingEmptyRequiredFieldRejected(t *testing.T) {
	router, db := setupEndpointTest(t)

	fields := validBookingFields()
	fields["subject"] = ""
	body, contentType := multipartBody(t, fields)

	w := performMultipart(router, http.MethodPost, "/book", body, contentType)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var count int64
	db.Model(&model.Booking{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateBookingStoresVerbatim(t *testing.T) {
	router, db := setupEndpointTest(t)

	fields := validBookingFields()
	fields["age"] = "sixteen"
	fields["datetime"] = "whenever suits"
	fields["township"] = "Mamelodi"
	body, contentType := multipartBody(t, fields)

	w := performMultipart(router, http.MethodPost, "/book", body, contentType)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])

	var stored model.Booking
	assert.NoError(t, db.First(&stored).Error)
	assert.Equal(t, "sixteen", stored.Age)
	assert.Equal(t, "whenever suits", stored.Datetime)
	assert.Equal(t, "Mamelodi", stored.Township)
	assert.Equal(t, model.MeetLink, stored.MeetLink)
	assert.Nil(t, stored.QuestionsPath)
	assert.Nil(t, stored.ProofOfPaymentPath)
	assert.Nil(t, stored.PaymentMethod)
}

func TestCreateBookingSavesAttachments(t *testing.T) {
	router, db := setupEndpointTest(t)
	SetUploadDir(t.TempDir())
	defer SetUploadDir("uploads")

	fields := validBookingFields()
	fields["paymentMethod"] = "EFT"
	body, contentType := multipartBody(t, fields,
		filePart{Field: "questions", Filename: "questions.pdf", Content: "q"},
		filePart{Field: "proofOfPayment", Filename: "pop.png", Content: "p"},
	)

	w := performMultipart(router, http.MethodPost, "/book", body, contentType)

	assert.Equal(t, http.StatusOK, w.Code)
	var stored model.Booking
	assert.NoError(t, db.First(&stored).Error)
	assert.NotNil(t, stored.QuestionsPath)
	assert.Contains(t, *stored.QuestionsPath, "questions.pdf")
	assert.NotNil(t, stored.ProofOfPaymentPath)
	assert.Contains(t, *stored.ProofOfPaymentPath, "pop.png")
	assert.NotNil(t, stored.PaymentMethod)
	assert.Equal(t, "EFT", *stored.PaymentMethod)
}

func TestCreateBookingNotifiesAfterInsert(t *testing.T) {
	router, _ := setupEndpointTest(t)
	notifier := &recordingNotifier{done: make(chan model.Booking, 1)}
	SetNotifier(notifier)
	defer SetNotifier(nil)

	body, contentType := multipartBody(t, validBookingFields())
	w := performMultipart(router, http.MethodPost, "/book", body, contentType)

	assert.Equal(t, http.StatusOK, w.Code)
	select {
	case b := <-notifier.done:
		assert.NotZero(t, b.ID)
		assert.Equal(t, "thabo@example.com", b.Email)
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was never invoked")
	}
}
