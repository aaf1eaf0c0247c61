package internal

import (
	"testing"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		req := require.New(t)
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("BADGER_FILEPATH", "/tmp/badger")
		t.Setenv("BLUGE_FILEPATH", "/tmp/bluge")
		t.Setenv("BUFFER_SIZE", "100")
		t.Setenv("CONNECTION_BUFFER_SIZE", "16")

		var config Config
		_, err := env.UnmarshalFromEnviron(&config)

		req.NoError(err)
		req.NoError(config.Validate())
		req.Equal(DriverBadger, config.StoreDriver)
		req.Equal("0.0.0.0:3001", config.HTTPAddress())
		req.Equal(20, config.RedeemMaxRetries)
	})

	t.Run("should require a dsn for postgres", func(t *testing.T) {
		req := require.New(t)
		config := Config{StoreDriver: DriverPostgres, BufferSize: 1, ConnectionBufferSize: 1, RedeemMaxRetries: 1, CharReplacement: "*"}

		req.Error(config.Validate())
	})

	t.Run("should refuse a multi-character replacement", func(t *testing.T) {
		req := require.New(t)
		config := Config{StoreDriver: DriverBadger, BufferSize: 1, ConnectionBufferSize: 1, RedeemMaxRetries: 1, CharReplacement: "**"}

		req.Error(config.Validate())
	})

	t.Run("should split lists", func(t *testing.T) {
		req := require.New(t)
		config := Config{CensoredWords: "tonto, idiota ,,", AllowedOrigins: "http://a.test,http://b.test"}

		req.Equal([]string{"tonto", "idiota"}, config.Words())
		req.Equal([]string{"http://a.test", "http://b.test"}, config.Origins())
	})
}
