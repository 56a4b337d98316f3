package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.)
// - default: Values common across all environments (intervals, policy knobs)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	Markdown MarkdownConfig
	Pickup   PickupConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// StoreConfig selects the persistence driver. The memory driver keeps all
// state in-process and is the default for local runs and tests.
type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"memory"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName      string `envconfig:"DB_NAME" default:"zerowaste"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"UTC"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// MarkdownConfig drives the markdown engine and no-show relisting policy.
// The tier schedule itself is fixed; these knobs were console-side constants
// in the original store console and are deliberately configuration inputs here.
type MarkdownConfig struct {
	RecalcInterval    time.Duration `envconfig:"MARKDOWN_RECALC_INTERVAL" default:"10m"`
	SweepInterval     time.Duration `envconfig:"SWEEP_INTERVAL" default:"10m"`
	NonprofitEarly    time.Duration `envconfig:"NONPROFIT_EARLY_ACCESS" default:"2h"`
	NoShowBumpPct     int           `envconfig:"NOSHOW_BUMP_PCT" default:"10"`
	NonprofitPriority bool          `envconfig:"NONPROFIT_PRIORITY" default:"true"`
}

// PickupConfig holds the audience-specific defaults applied when a caller
// does not supply an explicit pickup window.
type PickupConfig struct {
	PublicLead      time.Duration `envconfig:"PUBLIC_PICKUP_LEAD" default:"1h"`
	PublicWindow    time.Duration `envconfig:"PUBLIC_PICKUP_WINDOW" default:"4h"`
	NonprofitLead   time.Duration `envconfig:"NONPROFIT_PICKUP_LEAD" default:"30m"`
	NonprofitWindow time.Duration `envconfig:"NONPROFIT_PICKUP_WINDOW" default:"6h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Driver: "memory",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Markdown: MarkdownConfig{
			NonprofitEarly:    2 * time.Hour,
			NoShowBumpPct:     10,
			NonprofitPriority: true,
		},
		Pickup: PickupConfig{
			PublicLead:      time.Hour,
			PublicWindow:    4 * time.Hour,
			NonprofitLead:   30 * time.Minute,
			NonprofitWindow: 6 * time.Hour,
		},
	}
}
