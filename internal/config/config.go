package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultOwner      = "dotnet"
	DefaultRepo       = "docs"
	DefaultAPIBaseURL = "https://api.github.com/"

	AuthSchemeBasic  = "basic"
	AuthSchemeBearer = "bearer"

	EnvUsername = "CHANGEDFILES_USERNAME"
	EnvToken    = "CHANGEDFILES_TOKEN"
	EnvLogLevel = "CHANGEDFILES_LOG_LEVEL"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Repository identifies the upstream project whose pull requests are queried
type Repository struct {
	Owner string `yaml:"owner"` // GitHub owner
	Name  string `yaml:"name"`  // GitHub repository name
}

// Config is the optional file-backed configuration
type Config struct {
	Repository Repository `yaml:"repository"` // Upstream repository
	APIBaseURL string     `yaml:"apiBaseURL"` // REST API root (GitHub Enterprise or test servers)
	AuthScheme string     `yaml:"authScheme"` // "basic" or "bearer"
	LogLevel   string     `yaml:"logLevel"`   // debug, info, warn or error
}

// Params holds the per-invocation parameters
type Params struct {
	Username      string
	Token         string
	Output        string
	PullRequestID string
}

// Default returns a config with every field set to its built-in value
func Default() *Config {
	return &Config{
		Repository: Repository{Owner: DefaultOwner, Name: DefaultRepo},
		APIBaseURL: DefaultAPIBaseURL,
		AuthScheme: AuthSchemeBasic,
		LogLevel:   "info",
	}
}

// LoadConfig loads the configuration from a YAML file. An empty path yields
// the defaults.
func LoadConfig(path string) (*Config, error) {
	config := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		config.LogLevel = lvl
	}

	// Fields explicitly blanked in the file fall back to defaults
	if config.Repository.Owner == "" {
		config.Repository.Owner = DefaultOwner
	}
	if config.Repository.Name == "" {
		config.Repository.Name = DefaultRepo
	}
	if config.APIBaseURL == "" {
		config.APIBaseURL = DefaultAPIBaseURL
	}
	if config.AuthScheme == "" {
		config.AuthScheme = AuthSchemeBasic
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	config.AuthScheme = strings.ToLower(config.AuthScheme)
	config.LogLevel = strings.ToLower(config.LogLevel)

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Repository.Owner == "" || c.Repository.Name == "" {
		return fmt.Errorf("incomplete repository configuration")
	}

	if c.AuthScheme != AuthSchemeBasic && c.AuthScheme != AuthSchemeBearer {
		return fmt.Errorf("invalid auth scheme '%s'", c.AuthScheme)
	}

	if !slices.Contains(logLevels, c.LogLevel) {
		return fmt.Errorf("invalid log level '%s'", c.LogLevel)
	}

	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("invalid API base URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("API base URL must be an absolute http(s) URL, got '%s'", c.APIBaseURL)
	}

	return nil
}

// ApplyEnv fills in credentials from the environment when they were not
// passed explicitly
func (p *Params) ApplyEnv() {
	if p.Username == "" {
		p.Username = os.Getenv(EnvUsername)
	}
	if p.Token == "" {
		p.Token = os.Getenv(EnvToken)
	}
}

// HasCredentials reports whether both halves of the credential pair are set
func (p *Params) HasCredentials() bool {
	return p.Username != "" && p.Token != ""
}

// Validate checks the parameters needed to issue the request
func (p *Params) Validate() error {
	if p.Output == "" {
		return errors.New("output path is required")
	}
	if p.PullRequestID == "" {
		return errors.New("pull request id is required")
	}
	if _, err := p.PullRequestNumber(); err != nil {
		return err
	}
	return nil
}

// PullRequestNumber parses the pull request identifier
func (p *Params) PullRequestNumber() (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(p.PullRequestID))
	if err != nil {
		return 0, fmt.Errorf("invalid pull request id '%s': %w", p.PullRequestID, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid pull request id '%s': must be positive", p.PullRequestID)
	}
	return n, nil
}

