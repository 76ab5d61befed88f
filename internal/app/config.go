package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port           string
	Env            string
	JWTSecret      string
	TokenTTL       time.Duration
	CORSOrigins    []string
	LoginLimit     int
	LoginWindow    time.Duration
	RedisAddr      string
	KafkaBroker    string
	KafkaTopic     string
	KafkaGroupID   string
	ShipDelay      time.Duration
	Cloudinary     CloudinaryConfig
	Email          EmailConfig
	GatewayDelay   time.Duration
	GatewayTimeout time.Duration
	APIURL         string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

func (c CloudinaryConfig) Enabled() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

type EmailConfig struct {
	ResendAPIKey string
	From         string
}

func (c EmailConfig) Enabled() bool {
	return c.ResendAPIKey != ""
}

func (c Config) Production() bool {
	return c.Env == "production"
}

// LoadConfig reads the environment. Call godotenv.Load first if a .env
// file should be honoured.
func LoadConfig() Config {
	return Config{
		Port:         getEnv("PORT", "3000"),
		Env:          getEnv("APP_ENV", "development"),
		JWTSecret:    getEnv("JWT_SECRET", "paperid-dev-secret"),
		TokenTTL:     getDuration("JWT_TTL", 24*time.Hour),
		CORSOrigins:  getList("CORS_ORIGINS", defaultCORSOrigins),
		LoginLimit:   getInt("LOGIN_RATE_LIMIT", 10),
		LoginWindow:  getDuration("LOGIN_RATE_WINDOW", time.Minute),
		RedisAddr:    os.Getenv("REDIS_ADDR"),
		KafkaBroker:  os.Getenv("KAFKA_BROKER"),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "order.events"),
		KafkaGroupID: getEnv("KAFKA_GROUP_ID", "paperid-api"),
		ShipDelay:    getDuration("FULFILMENT_SHIP_DELAY", 30*time.Second),
		Cloudinary: CloudinaryConfig{
			CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
			APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		},
		Email: EmailConfig{
			ResendAPIKey: os.Getenv("RESEND_API_KEY"),
			From:         os.Getenv("RESEND_FROM_EMAIL"),
		},
		GatewayDelay:   getDuration("GATEWAY_DELAY", 600*time.Millisecond),
		GatewayTimeout: getDuration("GATEWAY_TIMEOUT", 10*time.Second),
		APIURL:         os.Getenv("STOREFRONT_API_URL"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return d
}

func getList(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
