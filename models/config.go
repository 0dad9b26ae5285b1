package models

import "time"

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	PublicDir    string        `mapstructure:"public_dir"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type AssetsConfig struct {
	ExcludeDirs     []string `mapstructure:"exclude_dirs"`
	ExcludePatterns []string `mapstructure:"exclude_patterns"` // glob, matched against directory names
}

type S3Config struct {
	Bucket        string `mapstructure:"bucket"`
	Region        string `mapstructure:"region"`
	Prefix        string `mapstructure:"prefix"`
	PublicBaseURL string `mapstructure:"public_base_url"`
}

type UploadsConfig struct {
	Engine  string   `mapstructure:"engine"` // local | s3
	MaxSize int64    `mapstructure:"max_size"`
	S3      S3Config `mapstructure:"s3"`
}

type AppConfig struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Assets   AssetsConfig   `mapstructure:"assets"`
	Uploads  UploadsConfig  `mapstructure:"uploads"`
}
