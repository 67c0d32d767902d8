package appconf

import (
	"strings"
	"time"
)

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// DefaultAllowedOrigin is the only browser origin served outside development.
const DefaultAllowedOrigin = "https://flyazureva.com"

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment maps an -env flag or ENV value to an Environment. Unknown values fall back
// to Development.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "test":
		return Test
	case "production", "prod", "staging":
		return Production
	default:
		return Development
	}
}

// Config holds all the configuration settings for the Application.
type Config struct {
	Port            int
	Env             Environment
	RateLimit       int // requests per second per client
	AllowedOrigins  []string
	DBDriver        string
	DBDSN           string
	ScheduleSource  string
	ScheduleRefresh time.Duration // remote sources only; zero disables refresh
	Verbose         bool
}

// Origins returns the configured CORS origins, or the default production origin when none are set.
func (c Config) Origins() []string {
	var origins []string
	for _, o := range c.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{DefaultAllowedOrigin}
	}
	return origins
}
