package ctl

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/tgpolish/internal/flagx"
)

// Config holds runtime settings for the tgpolish control CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the daemon's gRPC control endpoint.
//   - SecretKey: HMAC secret shared with the daemon; the CLI mints its own
//     access token from it, so it must match the daemon's -s value.
//   - UserID: Telegram user id the session commands operate on.
type Config struct {
	ServerEndpointAddr string
	SecretKey          string
	UserID             int64
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.SecretKey = "secretKey"
	c.UserID = 0
}

// LoadConfig builds a Config by applying defaults and overlaying
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)
	return cfg
}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address:port of the daemon gRPC endpoint
//	-s string   control API secret key
//	-u int      user id to operate on
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-u"})

	fs := flag.NewFlagSet("ctl", flag.ContinueOnError)

	fs.StringVar(&config.ServerEndpointAddr, "a", config.ServerEndpointAddr, "address and port of the control API")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "control API secret key")
	fs.Int64Var(&config.UserID, "u", config.UserID, "user id")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
