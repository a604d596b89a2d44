package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"agro-advisor/internal/models"
)

const defaultConfigFile = "config/config.yaml"

const (
	defaultAlertFile   = "weather_alert.txt"
	defaultCropName    = "maize"
	defaultRegionName  = "Nyanza"
	defaultRegionLat   = -0.5143
	defaultRegionLon   = 34.4618
	defaultRegionTZ    = "Africa/Nairobi"
	defaultRefreshSpec = "0s"
)

type Config struct {
	// Env-only fields; yaml:"-" keeps the file from setting values the
	// envconfig defaults would silently clobber.
	AppName    string `envconfig:"APP_NAME" default:"agro-advisor" yaml:"-" validate:"required"`
	AppVersion string `envconfig:"APP_VERSION" default:"1.0.0" yaml:"-"`
	AppEnv     string `envconfig:"APP_ENV" default:"development" yaml:"-"`
	Port       string `envconfig:"PORT" default:"8080" yaml:"-" validate:"required"`

	OpenWeatherAPIKey string `envconfig:"OPENWEATHER_API_KEY" yaml:"openweather_api_key"`
	SentryDSN         string `envconfig:"SENTRY_DSN" yaml:"sentry_dsn"`

	// AlertFile is where the rendered farmer report is persisted for the
	// SMS/WhatsApp forwarding integration.
	AlertFile string `envconfig:"ALERT_FILE" yaml:"alert_file"`

	// RefreshInterval controls the periodic report regeneration job,
	// as a Go duration string. "0s" disables the scheduler.
	RefreshInterval string `envconfig:"REFRESH_INTERVAL" yaml:"refresh_interval"`

	DefaultCrop string `envconfig:"DEFAULT_CROP" yaml:"default_crop" validate:"required"`

	Region RegionConfig `yaml:"region"`
	Crops  []CropConfig `yaml:"crops" ignored:"true" validate:"dive"`

	refreshEvery time.Duration
}

// RegionConfig identifies the fixed geographic region the forecast covers.
// The timezone decides which calendar day an observation belongs to.
type RegionConfig struct {
	Name     string  `envconfig:"REGION_NAME" yaml:"name" validate:"required"`
	Lat      float64 `envconfig:"REGION_LAT" yaml:"lat" validate:"gte=-90,lte=90"`
	Lon      float64 `envconfig:"REGION_LON" yaml:"lon" validate:"gte=-180,lte=180"`
	Timezone string  `envconfig:"REGION_TIMEZONE" yaml:"timezone" validate:"required"`
}

type CropConfig struct {
	Name            string  `yaml:"name" validate:"required"`
	OptimalTempLow  float64 `yaml:"optimal_temp_low"`
	OptimalTempHigh float64 `yaml:"optimal_temp_high" validate:"gtefield=OptimalTempLow"`
	WaterNeedMM     float64 `yaml:"water_need_mm" validate:"gte=0"`
	RiskTempC       float64 `yaml:"risk_temp_c"`
	RainLowMM       float64 `yaml:"rain_low_mm" validate:"gte=0"`
	RainHighMM      float64 `yaml:"rain_high_mm" validate:"gtefield=RainLowMM"`
}

// defaultCrops is the compiled-in profile table, used when the YAML config
// does not provide one.
var defaultCrops = []CropConfig{
	{Name: "maize", OptimalTempLow: 20, OptimalTempHigh: 30, WaterNeedMM: 500, RiskTempC: 35, RainLowMM: 5, RainHighMM: 20},
	{Name: "tea", OptimalTempLow: 15, OptimalTempHigh: 25, WaterNeedMM: 1200, RiskTempC: 30, RainLowMM: 5, RainHighMM: 20},
	{Name: "beans", OptimalTempLow: 18, OptimalTempHigh: 27, WaterNeedMM: 400, RiskTempC: 32, RainLowMM: 5, RainHighMM: 20},
}

func NewConfig() (*Config, error) {
	return NewConfigFromFile(defaultConfigFile)
}

func NewConfigFromFile(path string) (*Config, error) {
	_ = godotenv.Load()

	var cnf Config

	// Read from YAML file first; a missing file is fine, defaults apply.
	if yamlData, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(yamlData, &cnf); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	}

	// Override with environment variables.
	if err := envconfig.Process("", &cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	cnf.applyDefaults()

	if err := validator.New().Struct(&cnf); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	refreshEvery, err := time.ParseDuration(cnf.RefreshInterval)
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL %q: %w", cnf.RefreshInterval, err)
	}
	cnf.refreshEvery = refreshEvery

	if _, err := time.LoadLocation(cnf.Region.Timezone); err != nil {
		return nil, fmt.Errorf("invalid region timezone %q: %w", cnf.Region.Timezone, err)
	}

	if _, ok := cnf.CropProfile(cnf.DefaultCrop); !ok {
		return nil, fmt.Errorf("default crop %q has no profile", cnf.DefaultCrop)
	}

	return &cnf, nil
}

// applyDefaults fills in fields that neither the YAML file nor the
// environment provided. Fields shared between YAML and env must not carry
// envconfig defaults, or the env pass would clobber the file values.
func (c *Config) applyDefaults() {
	if c.AlertFile == "" {
		c.AlertFile = defaultAlertFile
	}
	if c.RefreshInterval == "" {
		c.RefreshInterval = defaultRefreshSpec
	}
	if c.DefaultCrop == "" {
		c.DefaultCrop = defaultCropName
	}
	if c.Region == (RegionConfig{}) {
		c.Region = RegionConfig{
			Name:     defaultRegionName,
			Lat:      defaultRegionLat,
			Lon:      defaultRegionLon,
			Timezone: defaultRegionTZ,
		}
	}
	if c.Region.Timezone == "" {
		c.Region.Timezone = defaultRegionTZ
	}
	if c.Region.Name == "" {
		c.Region.Name = defaultRegionName
	}
	if len(c.Crops) == 0 {
		c.Crops = defaultCrops
	}
}

// RefreshEvery reports the parsed refresh interval; zero disables the
// scheduler.
func (c *Config) RefreshEvery() time.Duration {
	return c.refreshEvery
}

// Location resolves the region timezone. NewConfigFromFile has already
// verified it loads.
func (r RegionConfig) Location() (*time.Location, error) {
	return time.LoadLocation(r.Timezone)
}

// CropProfiles converts the configured crop table into domain profiles.
func (c *Config) CropProfiles() []models.CropProfile {
	profiles := make([]models.CropProfile, 0, len(c.Crops))
	for _, crop := range c.Crops {
		profiles = append(profiles, models.CropProfile{
			Name:            strings.ToLower(crop.Name),
			OptimalTempLow:  crop.OptimalTempLow,
			OptimalTempHigh: crop.OptimalTempHigh,
			WaterNeedMM:     crop.WaterNeedMM,
			RiskTempC:       crop.RiskTempC,
			RainLowMM:       crop.RainLowMM,
			RainHighMM:      crop.RainHighMM,
		})
	}
	return profiles
}

// CropProfile looks up a single profile by name, case-insensitively.
func (c *Config) CropProfile(name string) (models.CropProfile, bool) {
	name = strings.ToLower(name)
	for _, p := range c.CropProfiles() {
		if p.Name == name {
			return p, true
		}
	}
	return models.CropProfile{}, false
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
