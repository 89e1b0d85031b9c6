package config

import (
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port" default:"8080"`
		Host         string        `yaml:"host" default:"0.0.0.0"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"30s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"30s"`
		IdleTimeout  time.Duration `yaml:"idle_timeout" default:"60s"`
	} `yaml:"server"`

	// Gateway holds the presentation-side settings: the public origin used
	// for canonical job URLs and the confirmation delay in the guest
	// application flow.
	Gateway struct {
		PublicOrigin        string        `yaml:"public_origin" default:"http://localhost:8080"`
		GuestConfirmDelay   time.Duration `yaml:"guest_confirm_delay" default:"800ms"`
		SignInNoticeTimeout time.Duration `yaml:"sign_in_notice_timeout" default:"5s"`
		FlowTTL             time.Duration `yaml:"flow_ttl" default:"30m"`
	} `yaml:"gateway"`

	// Backend describes the external JobQuest REST API every business call
	// is forwarded to.
	Backend struct {
		BaseURL    string        `yaml:"base_url" default:"http://localhost:5000"`
		Timeout    time.Duration `yaml:"timeout" default:"30s"`
		MaxRetries int           `yaml:"max_retries" default:"3"`
		RateLimit  int           `yaml:"rate_limit" default:"120"` // requests per minute
		Burst      int           `yaml:"burst" default:"10"`
	} `yaml:"backend"`

	Session struct {
		CookieName string        `yaml:"cookie_name" default:"jobquest_session"`
		TokenKey   string        `yaml:"token_key" default:"jobquest_token"`
		TTL        time.Duration `yaml:"ttl" default:"24h"`
	} `yaml:"session"`

	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"json"`
		Output string `yaml:"output" default:"stdout"`

		Adapters []struct {
			Name    string                 `yaml:"name"`
			Type    string                 `yaml:"type"`
			Enabled bool                   `yaml:"enabled"`
			Options map[string]interface{} `yaml:"options"`
		} `yaml:"adapters"`
	} `yaml:"logging"`

	Redis struct {
		URL      string        `yaml:"url" default:"redis://localhost:6379"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db" default:"0"`
		Timeout  time.Duration `yaml:"timeout" default:"5s"`
	} `yaml:"redis"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second

	config.Gateway.PublicOrigin = "http://localhost:8080"
	config.Gateway.GuestConfirmDelay = 800 * time.Millisecond
	config.Gateway.SignInNoticeTimeout = 5 * time.Second
	config.Gateway.FlowTTL = 30 * time.Minute

	config.Backend.BaseURL = "http://localhost:5000"
	config.Backend.Timeout = 30 * time.Second
	config.Backend.MaxRetries = 3
	config.Backend.RateLimit = 120
	config.Backend.Burst = 10

	config.Session.CookieName = "jobquest_session"
	config.Session.TokenKey = "jobquest_token"
	config.Session.TTL = 24 * time.Hour

	config.Logging.Level = "info"
	config.Logging.Format = "json"
	config.Logging.Output = "stdout"

	config.Redis.URL = "redis://localhost:6379"
	config.Redis.DB = 0
	config.Redis.Timeout = 5 * time.Second

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if origin := os.Getenv("PUBLIC_ORIGIN"); origin != "" {
		c.Gateway.PublicOrigin = origin
	}

	if baseURL := os.Getenv("BACKEND_API_URL"); baseURL != "" {
		c.Backend.BaseURL = baseURL
	}

	if timeout := os.Getenv("BACKEND_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Backend.Timeout = d
		}
	}

	if retries := os.Getenv("BACKEND_MAX_RETRIES"); retries != "" {
		if r, err := strconv.Atoi(retries); err == nil {
			c.Backend.MaxRetries = r
		}
	}

	if rateLimit := os.Getenv("BACKEND_RATE_LIMIT"); rateLimit != "" {
		if r, err := strconv.Atoi(rateLimit); err == nil {
			c.Backend.RateLimit = r
		}
	}

	if cookieName := os.Getenv("SESSION_COOKIE_NAME"); cookieName != "" {
		c.Session.CookieName = cookieName
	}

	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			c.Session.TTL = d
		}
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		c.Redis.URL = redisURL
	}

	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		c.Redis.Password = redisPassword
	}

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		if db, err := strconv.Atoi(redisDB); err == nil {
			c.Redis.DB = db
		}
	}

	if redisTimeout := os.Getenv("REDIS_TIMEOUT"); redisTimeout != "" {
		if timeout, err := time.ParseDuration(redisTimeout); err == nil {
			c.Redis.Timeout = timeout
		}
	}
}
