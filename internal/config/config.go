package config // package config loads application configuration from a YAML file and environment variables

import (
	"errors"   // errors reports missing required settings
	"fmt"      // fmt wraps file and parse errors
	"os"       // os provides access to environment variables and files
	"slices"   // slices sorts the missing keys for a stable message
	"strings"  // strings joins the list of missing keys

	"github.com/joho/godotenv" // godotenv loads a local .env file into the environment
	"gopkg.in/yaml.v3"         // yaml parses the optional config file
)

// DefaultConfigFile is read when no explicit path is given and the file
// exists in the working directory.
const DefaultConfigFile = "config.yaml"

// DefaultLogFile keeps structured logs of the console out of the
// operator's terminal.  LOG_FILE=- sends them to stderr instead.
const DefaultLogFile = "logs/cinema.log"

// LogToStderr is the LogFile value that selects stderr.
const LogToStderr = "-"

// Config holds all runtime configuration values.  Every field can be set
// in the YAML file and overridden by the environment variable named in
// the comment.  Store connection parameters have no defaults except the
// port; they must come from one of the two sources.
type Config struct {
	Env         string       `yaml:"env"`         // APP_ENV: application environment (e.g. "dev", "prod")
	LogLevel    string       `yaml:"logLevel"`    // LOG_LEVEL: debug, info, warn or error
	LogFile     string       `yaml:"logFile"`     // LOG_FILE: structured log destination, "-" for stderr
	DBUser      string       `yaml:"dbUser"`      // DB_USER: database username
	DBPass      string       `yaml:"dbPass"`      // DB_PASS: database password (optional)
	DBHost      string       `yaml:"dbHost"`      // DB_HOST: database host address
	DBPort      string       `yaml:"dbPort"`      // DB_PORT: database port number
	DBName      string       `yaml:"dbName"`      // DB_NAME: database name
	AutoMigrate bool         `yaml:"autoMigrate"` // DB_AUTO_MIGRATE: create missing tables on start
	Events      EventsConfig `yaml:"events"`      // ticket event publishing, see events.go
}

// ErrMissingConfig is wrapped by Load when required values are absent.
var ErrMissingConfig = errors.New("missing required config")

func defaults() Config {
	return Config{
		Env:         "dev",
		LogLevel:    "warn",
		DBPort:      "3306",
		AutoMigrate: true,
		Events:      defaultEvents(),
	}
}

// Load reads configuration in three layers: built-in defaults, the YAML
// file at path (or CINEMA_CONFIG, or config.yaml when present), then the
// environment, including variables from a .env file.  A missing required
// value is reported as an error naming every absent key.  LogFile
// defaults to DefaultLogFile.
func Load(path string) (Config, error) {
	cfg, err := load(path)
	if err != nil {
		return cfg, err
	}
	var missing []string
	for key, v := range map[string]string{"DB_USER": cfg.DBUser, "DB_HOST": cfg.DBHost, "DB_NAME": cfg.DBName} {
		if v == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return cfg, fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}
	if cfg.LogFile == "" {
		cfg.LogFile = DefaultLogFile
	}
	return cfg, nil
}

// LoadConsumer is like Load but does not require store settings.  It
// serves processes that only talk to the message broker.
func LoadConsumer(path string) (Config, error) {
	return load(path)
}

func load(path string) (Config, error) {
	_ = godotenv.Load() // Load .env if present, ignore error

	cfg := defaults()
	if path == "" {
		path = os.Getenv("CINEMA_CONFIG")
	}
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	override(&cfg.Env, "APP_ENV")
	override(&cfg.LogLevel, "LOG_LEVEL")
	override(&cfg.LogFile, "LOG_FILE")
	override(&cfg.DBUser, "DB_USER")
	override(&cfg.DBPass, "DB_PASS")
	override(&cfg.DBHost, "DB_HOST")
	override(&cfg.DBPort, "DB_PORT")
	override(&cfg.DBName, "DB_NAME")
	cfg.AutoMigrate = envBool("DB_AUTO_MIGRATE", cfg.AutoMigrate)
	applyEventsEnv(&cfg.Events)

	if err := cfg.Events.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// override replaces *dst with the environment variable key when it is set.
func override(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
