package endpoint

import (
	"html/template"
	"net/http"

	"github.com/from1to7/tutoring-backend/middleware"
	"github.com/from1to7/tutoring-backend/model"
	"github.com/from1to7/tutoring-backend/util"
	"github.com/gin-gonic/gin"
)

var sessionsPasswordHash string

// SetSessionsPasswordHash sets the hash the /sessions password gate checks
// against. Call this during application startup.
func SetSessionsPasswordHash(hash string) {
	sessionsPasswordHash = hash
}

var loginFormTemplate = template.Must(template.New("login").Parse(`<!DOCTYPE html>
<html>
<head>
	<title>Tutor Login</title>
	<style>
		body { font-family: Arial, sans-serif; background: #f4f4f4; display: flex; justify-content: center; align-items: center; height: 100vh; }
		.login-box { background: #fff; padding: 30px; border-radius: 8px; box-shadow: 0 2px 8px rgba(0,0,0,0.15); }
		input[type="password"] { padding: 8px; width: 220px; margin-bottom: 12px; }
		button { padding: 8px 16px; background: #2c7be5; color: #fff; border: none; border-radius: 4px; cursor: pointer; }
	</style>
</head>
<body>
	<div class="login-box">
		<h2>Booked Sessions</h2>
		<form method="GET" action="/sessions">
			<input type="password" name="password" placeholder="Enter password" required>
			<br>
			<button type="submit">View Sessions</button>
		</form>
	</div>
</body>
</html>`))

var sessionsTableTemplate = template.Must(template.New("sessions").Parse(`<!DOCTYPE html>
<html>
<head>
	<title>Booked Sessions</title>
	<style>
		body { font-family: Arial, sans-serif; background: #f4f4f4; padding: 20px; }
		h1 { color: #333; }
		table { border-collapse: collapse; width: 100%; background: #fff; }
		th, td { border: 1px solid #ddd; padding: 10px; text-align: left; }
		th { background: #2c7be5; color: #fff; }
		tr:nth-child(even) { background: #f9f9f9; }
		a.back { display: inline-block; margin-top: 16px; color: #2c7be5; }
	</style>
</head>
<body>
	<h1>Booked Sessions</h1>
	<table>
		<tr>
			<th>ID</th>
			<th>Name</th>
			<th>Surname</th>
			<th>Email</th>
			<th>Phone</th>
			<th>Subject</th>
			<th>Topic</th>
			<th>Date &amp; Time</th>
			<th>Payment Method</th>
			<th>Meet Link</th>
		</tr>
		{{range .}}
		<tr>
			<td>{{.ID}}</td>
			<td>{{.Name}}</td>
			<td>{{.Surname}}</td>
			<td>{{.Email}}</td>
			<td>{{.Phone}}</td>
			<td>{{.Subject}}</td>
			<td>{{.Topic}}</td>
			<td>{{.Datetime}}</td>
			<td>{{.PaymentMethodText}}</td>
			<td><a href="{{.MeetLink}}">Join</a></td>
		</tr>
		{{end}}
	</table>
	<a class="back" href="/">Back to Booking</a>
</body>
</html>`))

// sessionRow carries one booking into the sessions table with the nullable
// payment method already resolved for display.
type sessionRow struct {
	ID                uint
	Name              string
	Surname           string
	Email             string
	Phone             string
	Subject           string
	Topic             string
	Datetime          string
	PaymentMethodText string
	MeetLink          string
}

// ListSessions godoc
// @Summary      List booked sessions
// @Description  Renders the password-gated HTML overview of all bookings
// @Tags         Session
// @Produce      html
// @Param        password query string false "Access password"
// @Success      200 {string} string "Sessions table"
// @Failure      401 {string} string "Login form"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /sessions [get]
func ListSessions(c *gin.Context) {
	password := c.Query("password")
	if !util.VerifyPassword(password, sessionsPasswordHash) {
		util.LogUnauthorizedAccess(c.ClientIP(), c.Request.UserAgent(), "/sessions")
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Status(http.StatusUnauthorized)
		_ = loginFormTemplate.Execute(c.Writer, nil)
		return
	}

	db := middleware.GetDB(c)
	if db == nil {
		util.CallServerError(c, "Database error")
		return
	}

	bookings := []model.Booking{}
	if err := db.Order("datetime ASC").Find(&bookings).Error; err != nil {
		util.CallServerError(c, "Error retrieving sessions")
		return
	}

	rows := make([]sessionRow, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, sessionRow{
			ID:                b.ID,
			Name:              b.Name,
			Surname:           b.Surname,
			Email:             b.Email,
			Phone:             b.Phone,
			Subject:           b.Subject,
			Topic:             b.Topic,
			Datetime:          b.Datetime,
			PaymentMethodText: util.OrNotSpecified(b.PaymentMethod),
			MeetLink:          b.MeetLink,
		})
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	_ = sessionsTableTemplate.Execute(c.Writer, rows)
}
