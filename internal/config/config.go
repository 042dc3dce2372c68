package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Output    OutputConfig    `mapstructure:"output"`
	Generator GeneratorConfig `mapstructure:"generator"`
	DB        DBConfig        `mapstructure:"db"`
	Log       LogConfig       `mapstructure:"log"`
}

// OutputConfig locates the CSV file. Empty values fall back to the
// downloads folder and the default file name.
type OutputConfig struct {
	Dir      string `mapstructure:"dir"`
	Filename string `mapstructure:"filename"`
}

// GeneratorConfig only carries the seed; the tables and date range are fixed.
// Seed 0 draws a fresh seed per run.
type GeneratorConfig struct {
	Seed uint64 `mapstructure:"seed"`
}

type DBConfig struct {
	DSN          string `mapstructure:"dsn"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
	Table        string `mapstructure:"table"`
	BatchSize    int    `mapstructure:"batchSize"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

var tableName = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// LoadConfig loads configuration from config.yaml and environment variables.
// A missing config file is fine; every key has a default.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.salesgen/")
	v.AddConfigPath("/etc/salesgen/")

	return load(v)
}

// LoadFile loads configuration from an explicit file
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	// Enable environment variable override with SALESGEN_ prefix
	v.SetEnvPrefix("SALESGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output.dir", "")
	v.SetDefault("output.filename", "")
	v.SetDefault("generator.seed", 0)
	v.SetDefault("db.dsn", "")
	v.SetDefault("db.maxOpenConns", 4)
	v.SetDefault("db.table", "sales_records")
	v.SetDefault("db.batchSize", 500)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.output", "stderr")
	v.SetDefault("log.file_path", "logs/salesgen.log")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("log.compress", false)
}

// Validate checks values a config file could get wrong
func (c *Config) Validate() error {
	if c.DB.BatchSize <= 0 {
		return fmt.Errorf("db.batchSize must be positive, got %d", c.DB.BatchSize)
	}
	if c.DB.MaxOpenConns <= 0 {
		return fmt.Errorf("db.maxOpenConns must be positive, got %d", c.DB.MaxOpenConns)
	}
	if !tableName.MatchString(c.DB.Table) {
		return fmt.Errorf("db.table %q is not a valid table name", c.DB.Table)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	switch c.Log.Output {
	case "stdout", "stderr", "file", "both":
	default:
		return fmt.Errorf("log.output must be stdout, stderr, file or both, got %q", c.Log.Output)
	}
	return nil
}
