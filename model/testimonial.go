package model

import "time"

// Testimonial represents one user-submitted rating/comment pair.
// The rating range (1-5) is enforced at the intake boundary, not here.
type Testimonial struct {
	ID        uint      `json:"id" gorm:"primaryKey;column:id"`
	Rating    int       `json:"rating" gorm:"column:rating"`
	Comment   *string   `json:"comment" gorm:"column:comment"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}
