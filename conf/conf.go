package conf

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config is the server configuration. Values come from an optional TOML
// file, with environment variables taking precedence.
type Config struct {
	HTTPAddress string   `toml:"http_address"`
	CorsOrigins []string `toml:"cors_origins"`
	S3Region    string   `toml:"s3_region"`
	S3Bucket    string   `toml:"s3_bucket"`

	// secret, env only
	JwtKey string `toml:"-"`
}

func defaultConfig() Config {
	return Config{
		HTTPAddress: ":8080",
		CorsOrigins: []string{"http://localhost:3000"},
	}
}

// Load reads the config file at path when it exists and applies env
// overrides. JWT_KEY is required.
func Load(path string) (Config, error) {
	cfg := defaultConfig()

	if path != "" {
		content, err := os.ReadFile(path)
		if err == nil {
			if err := toml.Unmarshal(content, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTPAddress = v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CorsOrigins = strings.Split(v, ",")
	}
	if v := os.Getenv("S3_REGION"); v != "" {
		cfg.S3Region = v
	}
	if v := os.Getenv("S3_BUCKET"); v != "" {
		cfg.S3Bucket = v
	}

	cfg.JwtKey = os.Getenv("JWT_KEY")
	if cfg.JwtKey == "" {
		return Config{}, fmt.Errorf("JWT_KEY is not set")
	}

	return cfg, nil
}
