package app

import (
	"strings"
	"time"

	"github.com/nzsnyn/bejalen/models"

	"github.com/spf13/viper"
)

const envPrefix = "BEJALEN"

// DefaultExcludeDirs are never descended into by the asset walker.
var DefaultExcludeDirs = []string{"node_modules", ".git", ".next"}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.public_dir", "public")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("database.path", "data/bejalen.db")
	v.SetDefault("assets.exclude_dirs", DefaultExcludeDirs)
	v.SetDefault("assets.exclude_patterns", []string{})
	v.SetDefault("uploads.engine", "local")
	v.SetDefault("uploads.max_size", 5*1024*1024)
	v.SetDefault("uploads.s3.bucket", "")
	v.SetDefault("uploads.s3.region", "")
	v.SetDefault("uploads.s3.prefix", "uploads/gallery")
	v.SetDefault("uploads.s3.public_base_url", "")
}

// NewViper returns a viper instance with defaults and BEJALEN_* env overrides.
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads the YAML file at path (if any) on top of the defaults.
func LoadConfig(path string) (*models.AppConfig, error) {
	v := NewViper()
	return LoadConfigFrom(v, path)
}

func LoadConfigFrom(v *viper.Viper, path string) (*models.AppConfig, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg models.AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
