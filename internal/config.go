package internal

import (
	"fmt"
	"strings"
	"time"
)

const (
	DriverBadger   = "badger"
	DriverPostgres = "postgres"
)

type Config struct {
	LogLevel             string        `env:"LOG_LEVEL,required=true"`
	Host                 string        `env:"HOST,default=0.0.0.0"`
	HTTPPort             int           `env:"HTTP_PORT,default=3001"`
	GRPCPort             int           `env:"GRPC_PORT,default=9090"`
	AllowedOrigins       string        `env:"ALLOWED_ORIGINS,default=*"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath        string        `env:"BLUGE_FILEPATH,required=true"`
	StoreDriver          string        `env:"STORE_DRIVER,default=badger"`
	DatabaseDSN          string        `env:"DATABASE_DSN"`
	RedisAddr            string        `env:"REDIS_ADDR"`
	RedisChannel         string        `env:"REDIS_CHANNEL,default=tienda-live:notifications"`
	AMQPURL              string        `env:"AMQP_URL"`
	AMQPExchange         string        `env:"AMQP_EXCHANGE,default=tienda.events"`
	BufferSize           int           `env:"BUFFER_SIZE,required=true"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,required=true"`
	SinkTimeout          time.Duration `env:"SINK_TIMEOUT,default=2s"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	MetricInterval       time.Duration `env:"METRIC_INTERVAL,default=15s"`
	CharReplacement      string        `env:"CHARACTER_REPLACEMENT,default=*"`
	CensoredWords        string        `env:"CENSORED_WORDS"`
	RedeemMaxRetries     int           `env:"REDEEM_MAX_RETRIES,default=20"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}

// Validate checks the combinations go-env can not express.
func (c Config) Validate() error {
	switch c.StoreDriver {
	case DriverBadger:
	case DriverPostgres:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("DATABASE_DSN is required when STORE_DRIVER=%s", DriverPostgres)
		}
	default:
		return fmt.Errorf("STORE_DRIVER must be %s or %s, got %q", DriverBadger, DriverPostgres, c.StoreDriver)
	}
	if c.BufferSize <= 0 || c.ConnectionBufferSize <= 0 {
		return fmt.Errorf("BUFFER_SIZE and CONNECTION_BUFFER_SIZE must be positive")
	}
	if c.RedeemMaxRetries <= 0 {
		return fmt.Errorf("REDEEM_MAX_RETRIES must be positive, got %d", c.RedeemMaxRetries)
	}
	_, err := CharacterRune(c.CharReplacement)
	return err
}

func (c Config) HTTPAddress() string { return fmt.Sprintf("%s:%d", c.Host, c.HTTPPort) }

func (c Config) GRPCAddress() string { return fmt.Sprintf("%s:%d", c.Host, c.GRPCPort) }

// Words splits CENSORED_WORDS on commas.
func (c Config) Words() []string {
	var words []string
	for _, w := range strings.Split(c.CensoredWords, ",") {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	return words
}

func (c Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
