package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the application configuration.
//
// Values come from defaults, an optional config.yaml and the environment.
// The flat environment names used by the deployment manifests (AWS_REGION,
// MERCADOPAGO_ACCESS_TOKEN, ...) are bound explicitly; every other key can be
// overridden with ORDERS_<SECTION>_<KEY>.
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Server     ServerConfig     `mapstructure:"server"`
	Store      StoreConfig      `mapstructure:"store"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Kafka      KafkaConfig      `mapstructure:"kafka"`
	Gateway    GatewayConfig    `mapstructure:"gateway"`
	Pricing    PricingConfig    `mapstructure:"pricing"`
	Orders     OrdersConfig     `mapstructure:"orders"`
	TopSellers TopSellersConfig `mapstructure:"top_sellers"`
	Log        LogConfig        `mapstructure:"log"`
	Telemetry  TelemetryConfig  `mapstructure:"telemetry"`
	Auth       AuthConfig       `mapstructure:"auth"`
}

type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env"`
}

type ServerConfig struct {
	Port            string          `mapstructure:"port"`
	ReadTimeout     time.Duration   `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration   `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration   `mapstructure:"shutdown_timeout"`
	RateLimit       RateLimitConfig `mapstructure:"rate_limit"`
}

type RateLimitConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Rate    float64 `mapstructure:"rate"`
	Burst   int     `mapstructure:"burst"`
}

// StoreConfig selects the persistence engine: dynamodb, mysql or sqlite.
type StoreConfig struct {
	Driver   string         `mapstructure:"driver"`
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb"`
	SQL      SQLConfig      `mapstructure:"sql"`
	Retry    RetryConfig    `mapstructure:"retry"`
}

type DynamoDBConfig struct {
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	OrdersTable     string `mapstructure:"orders_table"`
	StockTable      string `mapstructure:"stock_table"`
	ExchangesTable  string `mapstructure:"exchanges_table"`
	CustomersTable  string `mapstructure:"customers_table"`
}

type SQLConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
	LogLevel        string        `mapstructure:"log_level"`
}

type RetryConfig struct {
	MaxAttempts  int           `mapstructure:"max_attempts"`
	InitialDelay time.Duration `mapstructure:"initial_delay"`
	MaxDelay     time.Duration `mapstructure:"max_delay"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	OrderTTL time.Duration `mapstructure:"order_ttl"`
	DedupTTL time.Duration `mapstructure:"dedup_ttl"`
}

func (c RedisConfig) Enabled() bool { return strings.TrimSpace(c.Addr) != "" }

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

func (c KafkaConfig) Enabled() bool { return len(c.Brokers) > 0 && c.Brokers[0] != "" }

type GatewayConfig struct {
	AccessToken     string        `mapstructure:"access_token"`
	WebhookSecret   string        `mapstructure:"webhook_secret"`
	NotificationURL string        `mapstructure:"notification_url"`
	Timeout         time.Duration `mapstructure:"timeout"`
	Mock            bool          `mapstructure:"mock"`
	BoletoMethodID  string        `mapstructure:"boleto_method_id"`
}

type PricingConfig struct {
	OriginZip          string  `mapstructure:"origin_zip"`
	LocalFreight       float64 `mapstructure:"local_freight"`
	RemoteFreight      float64 `mapstructure:"remote_freight"`
	PixDiscountPercent int64   `mapstructure:"pix_discount_percent"`
	BoletoFee          float64 `mapstructure:"boleto_fee"`
}

type OrdersConfig struct {
	HoldWindow    time.Duration `mapstructure:"hold_window"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	SweepBatch    int           `mapstructure:"sweep_batch"`
	MaxLines      int           `mapstructure:"max_lines"`
}

type TopSellersConfig struct {
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
	Window          time.Duration `mapstructure:"window"`
	Limit           int           `mapstructure:"limit"`
}

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	FilePath string `mapstructure:"file_path"`
}

type TelemetryConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`
}

// AuthConfig lists user ids that hold every permission.
type AuthConfig struct {
	Superusers []string `mapstructure:"superusers"`
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development" || c.App.Env == "dev"
}

// legacyEnv maps config keys to the environment names already used by the
// deployment manifests and local .env files.
var legacyEnv = map[string][]string{
	"server.port":                      {"PORT"},
	"store.driver":                     {"STORE_DRIVER"},
	"store.dynamodb.region":            {"AWS_REGION"},
	"store.dynamodb.endpoint":          {"DYNAMODB_ENDPOINT"},
	"store.dynamodb.access_key_id":     {"AWS_ACCESS_KEY_ID"},
	"store.dynamodb.secret_access_key": {"AWS_SECRET_ACCESS_KEY"},
	"store.dynamodb.orders_table":      {"ORDERS_TABLE"},
	"store.dynamodb.stock_table":       {"STOCK_LINES_TABLE"},
	"store.dynamodb.exchanges_table":   {"EXCHANGES_TABLE"},
	"store.dynamodb.customers_table":   {"CUSTOMERS_TABLE"},
	"store.sql.dsn":                    {"DATABASE_DSN"},
	"redis.addr":                       {"REDIS_ADDR"},
	"redis.password":                   {"REDIS_PASSWORD"},
	"kafka.brokers":                    {"KAFKA_BROKERS"},
	"kafka.topic":                      {"KAFKA_TOPIC"},
	"gateway.access_token":             {"MERCADOPAGO_ACCESS_TOKEN"},
	"gateway.webhook_secret":           {"MERCADOPAGO_WEBHOOK_SECRET"},
	"gateway.notification_url":         {"MERCADOPAGO_NOTIFICATION_URL"},
	"gateway.mock":                     {"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"},
	"log.level":                        {"LOG_LEVEL"},
	"telemetry.otlp_endpoint":          {"OTEL_EXPORTER_OTLP_ENDPOINT"},
	"auth.superusers":                  {"AUTH_SUPERUSERS"},
}

// Load reads configuration. An empty path looks for config.yaml in . and ./config.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("ORDERS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, envs := range legacyEnv {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Kafka.Brokers = splitList(cfg.Kafka.Brokers)
	cfg.Auth.Superusers = splitList(cfg.Auth.Superusers)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// splitList accepts both yaml lists and a single comma separated env value.
func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "dynamodb", "mysql", "sqlite":
	default:
		return fmt.Errorf("config: unsupported store driver %q", c.Store.Driver)
	}
	if c.Store.Driver != "dynamodb" && strings.TrimSpace(c.Store.SQL.DSN) == "" {
		return fmt.Errorf("config: store.sql.dsn is required for driver %q", c.Store.Driver)
	}
	if c.Orders.HoldWindow <= 0 {
		return fmt.Errorf("config: orders.hold_window must be positive")
	}
	if c.Orders.SweepInterval <= 0 {
		return fmt.Errorf("config: orders.sweep_interval must be positive")
	}
	if len(strings.TrimSpace(c.Pricing.OriginZip)) < 2 {
		return fmt.Errorf("config: pricing.origin_zip must have at least two digits")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "storefront-orders")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.env", "development")

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.rate_limit.enabled", true)
	v.SetDefault("server.rate_limit.rate", 50)
	v.SetDefault("server.rate_limit.burst", 100)

	v.SetDefault("store.driver", "dynamodb")
	v.SetDefault("store.dynamodb.region", "us-east-1")
	v.SetDefault("store.dynamodb.orders_table", "orders")
	v.SetDefault("store.dynamodb.stock_table", "stock_lines")
	v.SetDefault("store.dynamodb.exchanges_table", "exchange_requests")
	v.SetDefault("store.dynamodb.customers_table", "customers")
	v.SetDefault("store.sql.max_open_conns", 25)
	v.SetDefault("store.sql.max_idle_conns", 5)
	v.SetDefault("store.sql.conn_max_lifetime", "5m")
	v.SetDefault("store.sql.auto_migrate", true)
	v.SetDefault("store.sql.log_level", "warn")
	v.SetDefault("store.retry.max_attempts", 4)
	v.SetDefault("store.retry.initial_delay", "20ms")
	v.SetDefault("store.retry.max_delay", "500ms")

	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.order_ttl", "5m")
	v.SetDefault("redis.dedup_ttl", "24h")

	v.SetDefault("kafka.topic", "storefront.orders")

	v.SetDefault("gateway.timeout", "10s")
	v.SetDefault("gateway.mock", false)
	v.SetDefault("gateway.boleto_method_id", "bolbradesco")

	v.SetDefault("pricing.origin_zip", "01310100")
	v.SetDefault("pricing.local_freight", 8.00)
	v.SetDefault("pricing.remote_freight", 20.00)
	v.SetDefault("pricing.pix_discount_percent", 10)
	v.SetDefault("pricing.boleto_fee", 3.50)

	v.SetDefault("orders.hold_window", "30m")
	v.SetDefault("orders.sweep_interval", "1m")
	v.SetDefault("orders.sweep_batch", 100)
	v.SetDefault("orders.max_lines", 50)

	v.SetDefault("top_sellers.refresh_interval", "1h")
	v.SetDefault("top_sellers.window", "720h")
	v.SetDefault("top_sellers.limit", 10)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.file_path", "logs/orders.log")

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.otlp_endpoint", "localhost:4317")
}
