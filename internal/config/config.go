// Package config resolves pathdiv settings from flags, PATHDIV_* environment
// variables and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pathdiv/netfile"
)

// EnvPrefix is prepended to every key when reading the environment.
const EnvPrefix = "pathdiv"

// Option keys. The environment variable is PATHDIV_<KEY>.
const (
	OptionNodes       = "nodes"
	OptionEdges       = "edges"
	OptionNetwork     = "network"
	OptionK           = "k"
	OptionListen      = "listen"
	OptionLogLevel    = "log_level"
	OptionLogFormat   = "log_format"
	OptionCORSOrigins = "cors_origins"
	OptionSessionTTL  = "session_ttl"
)

// Defaults.
const (
	DefaultK          = 5
	DefaultListen     = "127.0.0.1:8080"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "auto"
	DefaultSessionTTL = 30 * time.Minute
)

// flagNames maps option keys to the command-line flag that can set them.
var flagNames = map[string]string{
	OptionNodes:       "nodes",
	OptionEdges:       "edges",
	OptionNetwork:     "network",
	OptionK:           "k",
	OptionListen:      "listen",
	OptionLogLevel:    "log-level",
	OptionLogFormat:   "log-format",
	OptionCORSOrigins: "cors-origins",
	OptionSessionTTL:  "session-ttl",
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds the resolved settings.
type Config struct {
	// Nodes is the optional coordinates file of the text format.
	Nodes string

	// Edges is the edges file of the text format.
	Edges string

	// Network is a YAML or JSON network document; it wins over Nodes/Edges.
	Network string

	// K is the default number of paths per request.
	K int

	// Listen is the HTTP bind address of the server.
	Listen string

	LogLevel  string
	LogFormat string

	// CORSOrigins lists the browser origins allowed to call the API.
	CORSOrigins []string

	// SessionTTL is how long an idle session keeps its visit counters.
	SessionTTL time.Duration
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. An empty path means
// ".env", which may be missing.
func LoadEnvFile(path string) error {
	optional := path == ""
	if optional {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("config: load %s: %w", path, err)
	}

	return nil
}

// Load resolves the configuration. Precedence: changed flags, environment,
// defaults. flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(OptionK, DefaultK)
	v.SetDefault(OptionListen, DefaultListen)
	v.SetDefault(OptionLogLevel, DefaultLogLevel)
	v.SetDefault(OptionLogFormat, DefaultLogFormat)
	v.SetDefault(OptionSessionTTL, DefaultSessionTTL)

	if flags != nil {
		for key, name := range flagNames {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("config: bind --%s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{
		Nodes:       v.GetString(OptionNodes),
		Edges:       v.GetString(OptionEdges),
		Network:     v.GetString(OptionNetwork),
		K:           v.GetInt(OptionK),
		Listen:      v.GetString(OptionListen),
		LogLevel:    v.GetString(OptionLogLevel),
		LogFormat:   v.GetString(OptionLogFormat),
		CORSOrigins: splitList(v.GetString(OptionCORSOrigins)),
		SessionTTL:  v.GetDuration(OptionSessionTTL),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Source returns the network location described by the configuration.
func (c *Config) Source() netfile.Source {
	return netfile.Source{Document: c.Network, Nodes: c.Nodes, Edges: c.Edges}
}

func (c *Config) validate() error {
	if c.Network == "" && c.Nodes != "" && c.Edges == "" {
		return fmt.Errorf("%w: --nodes needs --edges", ErrInvalid)
	}
	if c.Source().Empty() {
		return fmt.Errorf("%w: no network given (set --network or --edges, or PATHDIV_NETWORK / PATHDIV_EDGES)", ErrInvalid)
	}
	if c.K < 1 {
		return fmt.Errorf("%w: k must be at least 1, got %d", ErrInvalid, c.K)
	}
	if c.Listen == "" {
		return fmt.Errorf("%w: listen address is empty", ErrInvalid)
	}
	switch strings.ToLower(c.LogFormat) {
	case "auto", "text", "json":
	default:
		return fmt.Errorf("%w: log format must be auto, text or json, got %q", ErrInvalid, c.LogFormat)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("%w: session ttl must be positive, got %s", ErrInvalid, c.SessionTTL)
	}
	for _, o := range c.CORSOrigins {
		if o == "*" {
			return fmt.Errorf("%w: cors origins must not contain wildcard '*'", ErrInvalid)
		}
	}

	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
