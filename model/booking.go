package model

// MeetLink is the fixed meeting link shared by every booking.
const MeetLink = "https://meet.google.com/vee-wxwv-nof"

// Booking represents one tutoring-session reservation. Column names are
// pinned to the legacy bookings schema, so the table stays readable by the
// previous deployment's tooling.
type Booking struct {
	ID                 uint    `json:"id" gorm:"primaryKey;column:id"`
	Name               string  `json:"name" gorm:"column:name"`
	Surname            string  `json:"surname" gorm:"column:surname"`
	Age                string  `json:"age" gorm:"column:age"`
	Gender             string  `json:"gender" gorm:"column:gender"`
	Township           string  `json:"township" gorm:"column:township"`
	City               string  `json:"city" gorm:"column:city"`
	PostalCode         string  `json:"postalCode" gorm:"column:postalCode"`
	Province           string  `json:"province" gorm:"column:province"`
	Phone              string  `json:"phone" gorm:"column:phone"`
	Email              string  `json:"email" gorm:"column:email"`
	School             string  `json:"school" gorm:"column:school"`
	Grade              string  `json:"grade" gorm:"column:grade"`
	Subject            string  `json:"subject" gorm:"column:subject"`
	Topic              string  `json:"topic" gorm:"column:topic"`
	QuestionsPath      *string `json:"questionsPath" gorm:"column:questionsPath"`
	Comments           string  `json:"comments" gorm:"column:comments"`
	Datetime           string  `json:"datetime" gorm:"column:datetime"`
	MeetLink           string  `json:"meetLink" gorm:"column:meetLink"`
	PaymentMethod      *string `json:"paymentMethod" gorm:"column:paymentMethod"`
	ProofOfPaymentPath *string `json:"proofOfPaymentPath" gorm:"column:proofOfPaymentPath"`
}

func (Booking) TableName() string {
	return "bookings"
}
