package notify

import (
	"fmt"
	"log"

	"github.com/from1to7/tutoring-backend/model"
	"github.com/from1to7/tutoring-backend/util"
)

// Notifier fans a stored booking out to the tutor and the student over
// email and SMS. Every send is best-effort and attempted exactly once:
// failures are logged and never reach the client, and a failed attempt
// does not stop the remaining ones.
type Notifier struct {
	Email      EmailSender
	SMS        SMSSender
	TutorEmail string
	TutorPhone string
	FromName   string
}

// BookingCreated sends all four notifications for one booking. It is meant
// to run in its own goroutine after the insert has been acknowledged; the
// HTTP response never waits on it.
func (n *Notifier) BookingCreated(b model.Booking) {
	if err := n.Email.Send(n.TutorEmail, "New Booking Confirmation", tutorEmailBody(b)); err != nil {
		log.Printf("Tutor email error: %v", err)
		util.LogNotificationFailure("tutor email", n.TutorEmail, b.ID, err)
	} else {
		log.Printf("Tutor email sent for booking %d", b.ID)
	}

	if err := n.Email.Send(b.Email, "Booking Confirmation", studentEmailBody(b)); err != nil {
		log.Printf("Student email error: %v", err)
		util.LogNotificationFailure("student email", b.Email, b.ID, err)
	} else {
		log.Printf("Student email sent for booking %d", b.ID)
	}

	if sid, err := n.SMS.Send(n.TutorPhone, tutorSMSBody(b)); err != nil {
		log.Printf("Tutor SMS error: %v", err)
		util.LogNotificationFailure("tutor SMS", n.TutorPhone, b.ID, err)
	} else {
		log.Printf("Tutor SMS sent for booking %d (sid %s)", b.ID, sid)
	}

	if sid, err := n.SMS.Send(b.Phone, studentSMSBody(b, n.FromName)); err != nil {
		log.Printf("Student SMS error: %v", err)
		util.LogNotificationFailure("student SMS", b.Phone, b.ID, err)
	} else {
		log.Printf("Student SMS sent for booking %d (sid %s)", b.ID, sid)
	}
}

func tutorEmailBody(b model.Booking) string {
	return fmt.Sprintf(`<p>Dear Mdu Mataboge,</p>
<p>A new tutoring session has been booked!</p>
<p><strong>Student Details:</strong></p>
<p>Name: %s %s</p>
<p>Email: %s</p>
<p>Phone: %s</p>
<p><strong>Session Details:</strong></p>
<p>Subject: %s</p>
<p>Topic: %s</p>
<p>Date &amp; Time: %s</p>
<p>Payment Method: %s</p>
<p>Join the session: <a href="%s">Click here</a></p>`,
		b.Name, b.Surname, b.Email, b.Phone,
		b.Subject, b.Topic, b.Datetime,
		util.OrNotSpecified(b.PaymentMethod), b.MeetLink)
}

func studentEmailBody(b model.Booking) string {
	return fmt.Sprintf(`<p>Dear %s %s,</p>
<p>Your tutoring session has been confirmed!</p>
<p><strong>Details:</strong></p>
<p>Subject: %s</p>
<p>Topic: %s</p>
<p>Date &amp; Time: %s</p>
<p>Payment Method: %s</p>
<p>Join your session: <a href="%s">Click here</a></p>`,
		b.Name, b.Surname,
		b.Subject, b.Topic, b.Datetime,
		util.OrNotSpecified(b.PaymentMethod), b.MeetLink)
}

func tutorSMSBody(b model.Booking) string {
	return fmt.Sprintf("New booking: %s %s for %s (%s) on %s. Payment: %s. Join: %s",
		b.Name, b.Surname, b.Subject, b.Topic, b.Datetime,
		util.OrNotSpecified(b.PaymentMethod), b.MeetLink)
}

func studentSMSBody(b model.Booking, fromName string) string {
	return fmt.Sprintf("%s: Your session for %s (%s) is confirmed for %s. Payment Method: %s. Join: %s",
		fromName, b.Subject, b.Topic, b.Datetime,
		util.OrNotSpecified(b.PaymentMethod), b.MeetLink)
}
