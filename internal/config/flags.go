package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/tgpolish/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-s string   control API JWT HMAC secret
//	-k string   vault process secret
//	-i int      Telegram application id
//	-h string   Telegram application hash
//	-o string   oracle base endpoint
//	-y string   oracle API key
//	-m string   oracle model name
//	-t int      oracle timeout, seconds
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-k", "-i", "-h", "-o", "-y", "-m", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run the control API")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "control API secret key")
	fs.StringVar(&config.VaultSecret, "k", config.VaultSecret, "vault process secret")
	fs.IntVar(&config.TelegramAppID, "i", config.TelegramAppID, "telegram app id")
	fs.StringVar(&config.TelegramAppHash, "h", config.TelegramAppHash, "telegram app hash")
	fs.StringVar(&config.OracleEndpoint, "o", config.OracleEndpoint, "oracle endpoint")
	fs.StringVar(&config.OracleAPIKey, "y", config.OracleAPIKey, "oracle API key")
	fs.StringVar(&config.OracleModel, "m", config.OracleModel, "oracle model")

	oracleTimeout := fs.Int("t", int(config.OracleTimeout.Seconds()), "oracle timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.OracleTimeout = time.Duration(*oracleTimeout) * time.Second
}
