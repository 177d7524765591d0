package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDonationIntervalDays = 56
	DefaultLastDonationDate     = "2024-01-15"
	DefaultServerAddr           = ":8080"
	DefaultRedisPrefix          = "savealife:"
)

// StoreConfig selects and configures the key-value backend
type StoreConfig struct {
	Backend       string `yaml:"backend" validate:"required,oneof=memory file sqlite leveldb redis postgres"`
	Dir           string `yaml:"dir,omitempty" validate:"required_if=Backend file"`
	SQLitePath    string `yaml:"sqlitePath,omitempty" validate:"required_if=Backend sqlite"`
	LevelDBPath   string `yaml:"leveldbPath,omitempty" validate:"required_if=Backend leveldb"`
	RedisAddr     string `yaml:"redisAddr,omitempty" validate:"required_if=Backend redis"`
	RedisPassword string `yaml:"redisPassword,omitempty"`
	RedisDB       int    `yaml:"redisDB,omitempty" validate:"min=0"`
	RedisPrefix   string `yaml:"redisPrefix,omitempty"`
	PostgresURL   string `yaml:"postgresURL,omitempty" validate:"required_if=Backend postgres"`
}

// EligibilityConfig controls the donor eligibility window
type EligibilityConfig struct {
	IntervalDays     int    `yaml:"intervalDays,omitempty" validate:"omitempty,min=1"`
	LastDonationDate string `yaml:"lastDonationDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// BloodDrive is a recurring community donation event shown to donors
type BloodDrive struct {
	Name     string `yaml:"name" validate:"required"`
	Location string `yaml:"location,omitempty"`
	Start    string `yaml:"start" validate:"required,datetime=2006-01-02"`
	RRule    string `yaml:"rrule" validate:"required"`
}

// HospitalStock overrides one row of the hospital inventory table
type HospitalStock struct {
	BloodType string `yaml:"bloodType" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Current   int    `yaml:"current" validate:"min=0"`
	Minimum   int    `yaml:"minimum" validate:"min=1"`
}

// BloodBankStock overrides one row of the blood bank inventory table
type BloodBankStock struct {
	BloodType   string  `yaml:"bloodType" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Units       int     `yaml:"units" validate:"min=0"`
	Expiring    int     `yaml:"expiring" validate:"min=0"`
	Temperature float64 `yaml:"temperature"`
}

// EmailAlertConfig enables the Gmail alert sink
type EmailAlertConfig struct {
	To     string `yaml:"to" validate:"required,email"`
	Sender string `yaml:"sender,omitempty" validate:"omitempty,email"`
}

// AlertConfig configures where transient alerts are surfaced
type AlertConfig struct {
	Console bool              `yaml:"console"`
	Email   *EmailAlertConfig `yaml:"email,omitempty"`
}

// ServerConfig configures the HTTP dashboards
type ServerConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

// Config represents the application configuration
type Config struct {
	Store              StoreConfig       `yaml:"store"`
	Server             ServerConfig      `yaml:"server,omitempty"`
	Eligibility        EligibilityConfig `yaml:"eligibility,omitempty"`
	BloodDrives        []BloodDrive      `yaml:"bloodDrives,omitempty" validate:"dive"`
	HospitalInventory  []HospitalStock   `yaml:"hospitalInventory,omitempty" validate:"dive"`
	BloodBankInventory []BloodBankStock  `yaml:"bloodBankInventory,omitempty" validate:"dive"`
	Alerts             AlertConfig       `yaml:"alerts,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadWithEnv loads save_a_life_config.<env>.yaml from the current directory or the home directory
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads, defaults and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, drive := range cfg.BloodDrives {
		if _, err := rrule.StrToROption(drive.RRule); err != nil {
			return fmt.Errorf("invalid rrule in bloodDrives[%d]: %w", i, err)
		}
	}

	return nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Eligibility.IntervalDays == 0 {
		cfg.Eligibility.IntervalDays = DefaultDonationIntervalDays
	}
	if cfg.Eligibility.LastDonationDate == "" {
		cfg.Eligibility.LastDonationDate = DefaultLastDonationDate
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultServerAddr
	}
	if cfg.Store.Backend == "redis" && cfg.Store.RedisPrefix == "" {
		cfg.Store.RedisPrefix = DefaultRedisPrefix
	}
}

// LastDonation parses the configured last donation reference date
func (cfg *Config) LastDonation() (time.Time, error) {
	date := cfg.Eligibility.LastDonationDate
	if date == "" {
		date = DefaultLastDonationDate
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid last donation date: %w", err)
	}
	return t, nil
}

// findConfigFile searches for the env-specific config in the current directory and home directory
func findConfigFile(env string) (string, error) {
	return findEnvFile("save_a_life_config", env, "yaml")
}
