package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	ServerPort string

	// Сессии
	JWTSecret  string
	SessionTTL time.Duration
	BcryptCost int

	// Импорт
	ImportWorkers  int
	ImportMaxBytes int64

	// Интеграции, пустое значение отключает интеграцию
	AMQPURL      string
	MailHost     string
	MailPort     int
	MailUser     string
	MailPassword string
	MailFrom     string

	CORSOrigins []string
	LogLevel    string
}

func LoadConfig() (Config, error) {

	err := godotenv.Load()

	return Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "mini_crm"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		JWTSecret:  getEnv("JWT_SECRET", ""),
		SessionTTL: getEnvDuration("SESSION_TTL", 24*time.Hour),
		BcryptCost: getEnvInt("BCRYPT_COST", 10),

		ImportWorkers:  getEnvInt("IMPORT_WORKERS", 4),
		ImportMaxBytes: int64(getEnvInt("IMPORT_MAX_BYTES", 5<<20)),

		AMQPURL:      getEnv("AMQP_URL", ""),
		MailHost:     getEnv("MAIL_HOST", ""),
		MailPort:     getEnvInt("MAIL_PORT", 587),
		MailUser:     getEnv("MAIL_USER", ""),
		MailPassword: getEnv("MAIL_PASSWORD", ""),
		MailFrom:     getEnv("MAIL_FROM", "Mini CRM <no-reply@minicrm.local>"),

		CORSOrigins: getEnvList("CORS_ORIGINS", []string{"*"}),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}, err
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
