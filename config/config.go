package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config holds the application's configuration values.
type Config struct {
	AppName string `json:"appname"`
	AppEnv  string `json:"appenv"`
	AppPort uint16 `json:"appport"`
	GinMode string `json:"ginmode"`
	DBPath  string `json:"dbpath"`

	SMTPHost     string `json:"smtphost"`
	SMTPPort     string `json:"smtpport"`
	SMTPUsername string `json:"smtpusername"`
	SMTPPassword string `json:"smtppassword"`
	SMTPFromName string `json:"smtpfromname"`

	TwilioAccountSID  string `json:"twilioaccountsid"`
	TwilioAuthToken   string `json:"twilioauthtoken"`
	TwilioPhoneNumber string `json:"twiliophonenumber"`

	TutorEmail string `json:"tutoremail"`
	TutorPhone string `json:"tutorphone"`

	SessionsPassword string `json:"sessionspassword"`
}

var config *Config
var once sync.Once

// LoadConfig loads the environment variables from a .env file, and returns a singleton Config instance.
func LoadConfig() *Config {
	once.Do(func() {
		// Load environment variables from .env file. A missing file is fine
		// when the process environment is configured directly.
		if err := godotenv.Load(); err != nil && os.Getenv("APPENV") == "" {
			log.Printf("No .env file loaded: %v", err)
		}

		appPort, _ := strconv.ParseUint(os.Getenv("APPPORT"), 10, 16)
		if appPort == 0 {
			appPort = 3000
		}

		// Initialize the Config struct with values from environment variables.
		config = &Config{
			AppName: os.Getenv("APPNAME"),
			AppEnv:  os.Getenv("APPENV"),
			AppPort: uint16(appPort),
			GinMode: os.Getenv("GINMODE"),
			DBPath:  os.Getenv("DBPATH"),

			SMTPHost:     os.Getenv("SMTP_HOST"),
			SMTPPort:     os.Getenv("SMTP_PORT"),
			SMTPUsername: os.Getenv("SMTP_USERNAME"),
			SMTPPassword: os.Getenv("SMTP_PASSWORD"),
			SMTPFromName: os.Getenv("SMTP_FROM_NAME"),

			TwilioAccountSID:  os.Getenv("TWILIO_ACCOUNT_SID"),
			TwilioAuthToken:   os.Getenv("TWILIO_AUTH_TOKEN"),
			TwilioPhoneNumber: os.Getenv("TWILIO_PHONE_NUMBER"),

			TutorEmail: os.Getenv("TUTOR_EMAIL"),
			TutorPhone: os.Getenv("TUTOR_PHONE"),

			SessionsPassword: os.Getenv("SESSIONS_PASSWORD"),
		}
		if config.DBPath == "" {
			config.DBPath = "bookings.db"
		}
		if config.SMTPFromName == "" {
			config.SMTPFromName = "From 1 to 7 Tutoring"
		}
		if config.TutorEmail == "" {
			config.TutorEmail = config.SMTPUsername
		}
		if config.TutorPhone == "" {
			config.TutorPhone = "+27766440806"
		}
	})
	return config
}

// MissingSecrets returns the names of required transport secrets that are
// not set. The caller is expected to refuse to start when the result is
// non-empty.
func (c *Config) MissingSecrets() []string {
	values := map[string]string{
		"TWILIO_ACCOUNT_SID":  c.TwilioAccountSID,
		"TWILIO_AUTH_TOKEN":   c.TwilioAuthToken,
		"TWILIO_PHONE_NUMBER": c.TwilioPhoneNumber,
		"SMTP_USERNAME":       c.SMTPUsername,
		"SMTP_PASSWORD":       c.SMTPPassword,
	}
	names := []string{"TWILIO_ACCOUNT_SID", "TWILIO_AUTH_TOKEN", "TWILIO_PHONE_NUMBER", "SMTP_USERNAME", "SMTP_PASSWORD"}
	var missing []string
	for _, name := range names {
		if values[name] == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// ConnectSQLite opens the embedded SQLite database using the configuration
// values. In the test environment an in-memory database is used so tests
// never touch the on-disk store.
func ConnectSQLite() (*gorm.DB, error) {
	cfg := LoadConfig()

	dsn := cfg.DBPath
	if cfg.AppEnv == "test" {
		dsn = "file::memory:?cache=shared"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite database %s: %w", dsn, err)
	}

	return db, nil
}
