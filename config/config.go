package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort     string
	DatabaseDSN    string
	DBMaxOpenConns int
	DBMaxIdleConns int
	AllowedOrigins string
	RequestTimeout time.Duration

	// requests per minute per IP on the public submit route
	SubmitRateLimit int

	// admin routes stay open unless both are set
	AdminUsername     string
	AdminPasswordHash string

	KafkaBroker   string
	KafkaTopic    string
	KafkaGroupID  string
	KafkaUsername string
	KafkaPassword string

	// smtp (default) or sendgrid
	MailProvider   string
	SendGridAPIKey string

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	MailFrom     string
	MailFromName string
	MailSubject  string
	NotifyTo     string
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Println("Warning: .env not loaded:", err)
		}
	}

	return Config{
		ServerPort:     GetEnv("SERVER_PORT", ":3000"),
		DatabaseDSN:    GetEnv("DATABASE_DSN"),
		DBMaxOpenConns: GetEnvInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns: GetEnvInt("DB_MAX_IDLE_CONNS", 5),
		AllowedOrigins: GetEnv("ALLOWED_ORIGINS", "*"),
		RequestTimeout: GetEnvDuration("REQUEST_TIMEOUT", 5*time.Second),

		SubmitRateLimit: GetEnvInt("SUBMIT_RATE_LIMIT", 20),

		AdminUsername:     GetEnv("ADMIN_USERNAME"),
		AdminPasswordHash: GetEnv("ADMIN_PASSWORD_HASH"),

		KafkaBroker:   GetEnv("KAFKA_BROKER"),
		KafkaTopic:    GetEnv("KAFKA_TOPIC", "thesis-events"),
		KafkaGroupID:  GetEnv("KAFKA_GROUP_ID", "thesis-notifier"),
		KafkaUsername: GetEnv("KAFKA_USERNAME"),
		KafkaPassword: GetEnv("KAFKA_PASSWORD"),

		MailProvider:   GetEnv("MAIL_PROVIDER", "smtp"),
		SendGridAPIKey: GetEnv("SENDGRID_API_KEY"),

		SMTPHost:     GetEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     GetEnv("SMTP_PORT", "587"),
		SMTPUser:     GetEnv("SMTP_USER"),
		SMTPPassword: GetEnv("SMTP_PASSWORD"),
		MailFrom:     GetEnv("MAIL_FROM"),
		MailFromName: GetEnv("MAIL_FROM_NAME", "Thesis Collection Portal"),
		MailSubject:  GetEnv("MAIL_SUBJECT", "New thesis submission"),
		NotifyTo:     GetEnv("NOTIFY_TO"),
	}
}

// AdminAuthEnabled reports whether basic auth guards the admin routes.
func (c Config) AdminAuthEnabled() bool {
	return c.AdminUsername != "" && c.AdminPasswordHash != ""
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: %s=%q is not a number, using %d", key, raw, def)
		return def
	}
	return n
}

func GetEnvDuration(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: %s=%q is not a duration, using %s", key, raw, def)
		return def
	}
	return d
}
