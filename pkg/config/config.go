package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config carries the tunables of the app. Everything except the API key is
// read from KBCHAT_* environment variables (optionally via a .env file);
// the key itself comes through the interactive path, see APIKey.
type Config struct {
	Model          string
	PollInterval   time.Duration
	MaxPollWait    time.Duration
	MaxUploadBytes int64
	LogFile        string

	// AllowEnvKey enables the GEMINI_API_KEY / GOOGLE_API_KEY fallback.
	// Off by default: the interactive input is the intended credential path.
	AllowEnvKey bool
}

func Load() (*Config, error) {
	// A missing .env file is fine; only real load failures matter.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("KBCHAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("model", "gemini-2.5-flash")
	v.SetDefault("poll_interval", "2s")
	v.SetDefault("max_poll_wait", "5m")
	v.SetDefault("max_upload_bytes", 10<<20)
	v.SetDefault("log_file", "kbchat.log")
	v.SetDefault("allow_env_key", false)

	cfg := &Config{
		Model:          v.GetString("model"),
		PollInterval:   v.GetDuration("poll_interval"),
		MaxPollWait:    v.GetDuration("max_poll_wait"),
		MaxUploadBytes: v.GetInt64("max_upload_bytes"),
		LogFile:        v.GetString("log_file"),
		AllowEnvKey:    v.GetBool("allow_env_key"),
	}
	if cfg.PollInterval <= 0 {
		return nil, fmt.Errorf("config: poll_interval must be positive, got %s", cfg.PollInterval)
	}
	if cfg.MaxPollWait < cfg.PollInterval {
		return nil, fmt.Errorf("config: max_poll_wait %s is below poll_interval %s", cfg.MaxPollWait, cfg.PollInterval)
	}
	return cfg, nil
}

// APIKey resolves the credential. The interactive value wins; the
// environment fallback only applies when AllowEnvKey is set. An empty
// result means the app must stop before touching the network.
func (c *Config) APIKey(interactive string) string {
	if key := strings.TrimSpace(interactive); key != "" {
		return key
	}
	if c.AllowEnvKey {
		for _, name := range []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"} {
			if key := strings.TrimSpace(os.Getenv(name)); key != "" {
				return key
			}
		}
	}
	return ""
}
