package model

import "testing"

func TestBookingStoresNullPathsWhenAbsent(t *testing.T) {
	db := setupTestDB(t, "booking", &Booking{})

	booking := Booking{
		Name:     "A",
		Surname:  "B",
		Age:      "15",
		Gender:   "F",
		City:     "X",
		Province: "Y",
		Phone:    "+2700000",
		Email:    "a@b.com",
		Subject:  "Math",
		Topic:    "Algebra",
		Datetime: "2024-01-01T10:00",
		MeetLink: MeetLink,
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("create booking: %v", err)
	}

	var stored Booking
	if err := db.First(&stored, booking.ID).Error; err != nil {
		t.Fatalf("fetch booking: %v", err)
	}
	if stored.QuestionsPath != nil {
		t.Fatalf("expected nil questionsPath, got %v", *stored.QuestionsPath)
	}
	if stored.ProofOfPaymentPath != nil {
		t.Fatalf("expected nil proofOfPaymentPath, got %v", *stored.ProofOfPaymentPath)
	}
	if stored.PaymentMethod != nil {
		t.Fatalf("expected nil paymentMethod, got %v", *stored.PaymentMethod)
	}
	if stored.MeetLink != MeetLink {
		t.Fatalf("expected meet link %s, got %s", MeetLink, stored.MeetLink)
	}
}

func TestBookingAllowsDuplicateSubmissions(t *testing.T) {
	db := setupTestDB(t, "booking_dup", &Booking{})

	for i := 0; i < 2; i++ {
		booking := Booking{
			Name: "A", Surname: "B", Age: "15", Gender: "F",
			City: "X", Province: "Y", Phone: "+2700000", Email: "a@b.com",
			Subject: "Math", Topic: "Algebra", Datetime: "2024-01-01T10:00",
			MeetLink: MeetLink,
		}
		if err := db.Create(&booking).Error; err != nil {
			t.Fatalf("create booking %d: %v", i, err)
		}
	}

	var count int64
	db.Model(&Booking{}).Count(&count)
	if count != 2 {
		t.Fatalf("expected 2 rows for duplicate submissions, got %d", count)
	}
}

func TestBookingStoresNonNumericAgeVerbatim(t *testing.T) {
	db := setupTestDB(t, "booking_age", &Booking{})

	booking := Booking{
		Name: "A", Surname: "B", Age: "fifteen", Gender: "F",
		City: "X", Province: "Y", Phone: "+2700000", Email: "a@b.com",
		Subject: "Math", Topic: "Algebra", Datetime: "whenever",
		MeetLink: MeetLink,
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("create booking: %v", err)
	}

	var stored Booking
	if err := db.First(&stored, booking.ID).Error; err != nil {
		t.Fatalf("fetch booking: %v", err)
	}
	if stored.Age != "fifteen" {
		t.Fatalf("expected age stored verbatim, got '%s'", stored.Age)
	}
	if stored.Datetime != "whenever" {
		t.Fatalf("expected datetime stored verbatim, got '%s'", stored.Datetime)
	}
}
