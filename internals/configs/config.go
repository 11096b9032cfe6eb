package configs

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
	GoogleClientID   string

	// SSLCommerz store credentials. Sandbox values must come from env,
	// never from source.
	SSLCzStoreID     string
	SSLCzStorePasswd string
	SSLCzSandbox     bool

	StripeSecretKey string

	// Base URL the gateway calls back on (this service), and the base URL
	// of the SPA the browser is redirected to after checkout. Both are
	// required config; no canonical value is inferred.
	PaymentCallbackBaseURL string
	ClientBaseURL          string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded!")
		}
	} else {
		log.Println("🚀 Running on Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	GoogleClientID = GetEnv("GOOGLE_CLIENT_ID")

	SSLCzStoreID = GetEnv("SSLCZ_STORE_ID")
	SSLCzStorePasswd = GetEnv("SSLCZ_STORE_PASSWD")
	SSLCzSandbox = GetEnvBool("SSLCZ_SANDBOX", true)

	StripeSecretKey = GetEnv("STRIPE_SECRET_KEY")

	PaymentCallbackBaseURL = GetEnv("PAYMENT_CALLBACK_BASE_URL")
	ClientBaseURL = GetEnv("CLIENT_BASE_URL")

	mustWarn("JWT_SECRET", JWTSecret)
	mustWarn("SSLCZ_STORE_ID", SSLCzStoreID)
	mustWarn("SSLCZ_STORE_PASSWD", SSLCzStorePasswd)
	mustWarn("PAYMENT_CALLBACK_BASE_URL", PaymentCallbackBaseURL)
	mustWarn("CLIENT_BASE_URL", ClientBaseURL)
}

func mustWarn(key, val string) {
	if val == "" {
		log.Printf("❌ %s is not set!", key)
	} else {
		log.Printf("✅ %s loaded.", key)
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("[WARN] %s is not a number, using default %d", key, defaultValue)
	}
	return defaultValue
}

func GetEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("[WARN] %s is not a bool, using default %v", key, defaultValue)
	}
	return defaultValue
}

// GatewayTimeout is the outbound HTTP timeout for the payment gateway.
// The initiation handler blocks the caller for at most this long.
func GatewayTimeout() time.Duration {
	return time.Duration(GetEnvInt("GATEWAY_TIMEOUT_SECONDS", 15)) * time.Second
}

// PendingPaymentTTL: pending rows older than this get expired by the
// reconciler sweep.
func PendingPaymentTTL() time.Duration {
	return time.Duration(GetEnvInt("PAYMENT_PENDING_TTL_MINUTES", 60)) * time.Minute
}

func ReconcileInterval() time.Duration {
	return time.Duration(GetEnvInt("PAYMENT_RECONCILE_INTERVAL_MINUTES", 15)) * time.Minute
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[INFO] "+msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[WARN] "+msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[ERROR] "+msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	if err != nil {
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	} else if elapsed > l.SlowThreshold {
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
