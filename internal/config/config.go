// Where: internal/config/config.go
// What: Global config load/save helpers.
// Why: Manage ~/.catr/config.yaml consistently.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/catr-tool/catr/internal/constants"
	"github.com/catr-tool/catr/internal/envutil"
	"github.com/catr-tool/catr/internal/meta"
	"gopkg.in/yaml.v3"
)

// Config is the immutable configuration set shared by every operation.
// It is resolved once at startup and passed explicitly; nothing mutates it
// afterwards.
type Config struct {
	Version        int    `yaml:"version" json:"version"`
	Profile        string `yaml:"profile" json:"profile"`
	Domain         string `yaml:"domain" json:"domain"`
	DomainOwner    string `yaml:"domain_owner" json:"domain_owner"`
	Region         string `yaml:"region" json:"region"`
	Source         string `yaml:"source" json:"source"`
	LogPath        string `yaml:"log_path" json:"log_path"`
	TimeoutSeconds int    `yaml:"timeout_seconds" json:"timeout_seconds"`
	// NuGetConfigPath overrides the platform default location of the
	// package manager's credential store file. Empty means default.
	NuGetConfigPath string `yaml:"nuget_config_path,omitempty" json:"nuget_config_path,omitempty"`
}

// Default returns an initialized Config with version and safe defaults set.
// Domain and owner are account-specific and stay empty until the user fills
// them in (file or CATR_DOMAIN / CATR_DOMAIN_OWNER).
func Default() Config {
	return Config{
		Version:        1,
		Profile:        "default",
		Region:         "us-east-1",
		Source:         "codeartifact",
		LogPath:        defaultLogPath(),
		TimeoutSeconds: 45,
	}
}

func defaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return meta.LogFile
	}
	return filepath.Join(home, meta.HomeDir, meta.LogFile)
}

// Path returns the location of the global config file.
// Respects CATR_CONFIG_PATH and CATR_CONFIG_HOME overrides.
func Path() (string, error) {
	if override := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixConfigPath)); override != "" {
		path := override
		if !filepath.IsAbs(path) {
			if abs, err := filepath.Abs(path); err == nil {
				path = abs
			}
		}
		return path, nil
	}
	if override := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixConfigHome)); override != "" {
		return filepath.Join(override, meta.ConfigFile), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, meta.HomeDir, meta.ConfigFile), nil
}

// Ensure creates the global config file with defaults if it doesn't exist.
func Ensure() error {
	path, err := Path()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Save(path, Default())
		}
		return err
	}
	return nil
}

// Load reads and parses the configuration file at path.
func Load(path string) (Config, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes a Config to the specified path.
func Save(path string, cfg Config) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, payload, 0o600)
}

// Resolve ensures the config file exists, loads it, applies environment
// overrides, and validates the result against the embedded schema.
func Resolve() (Config, error) {
	if err := Ensure(); err != nil {
		return Config{}, err
	}
	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, err
	}
	applyEnvOverrides(&cfg)
	if cfg.LogPath == "" {
		cfg.LogPath = defaultLogPath()
	}
	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	overrides := []struct {
		suffix string
		target *string
	}{
		{constants.HostSuffixProfile, &cfg.Profile},
		{constants.HostSuffixDomain, &cfg.Domain},
		{constants.HostSuffixDomainOwner, &cfg.DomainOwner},
		{constants.HostSuffixRegion, &cfg.Region},
		{constants.HostSuffixSource, &cfg.Source},
		{constants.HostSuffixLogPath, &cfg.LogPath},
		{constants.HostSuffixNuGetConfig, &cfg.NuGetConfigPath},
	}
	for _, o := range overrides {
		if value := strings.TrimSpace(envutil.GetHostEnv(o.suffix)); value != "" {
			*o.target = value
		}
	}
	if value := strings.TrimSpace(envutil.GetHostEnv(constants.HostSuffixTimeoutSeconds)); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
			cfg.TimeoutSeconds = seconds
		}
	}
}

// RequireRegistry checks the fields that the refresh path cannot run without.
// Kept separate from schema validation so read-only commands (gt, config)
// work on an incomplete file.
func (c Config) RequireRegistry() error {
	var missing []string
	if strings.TrimSpace(c.Domain) == "" {
		missing = append(missing, "domain")
	}
	if strings.TrimSpace(c.DomainOwner) == "" {
		missing = append(missing, "domain_owner")
	}
	if len(missing) > 0 {
		return fmt.Errorf("config incomplete: set %s (file or %s_* environment)", strings.Join(missing, ", "), meta.EnvPrefix)
	}
	return nil
}
