package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Search  SearchConfig
	Log     LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

// CatalogConfig - настройки клиента удалённого каталога
type CatalogConfig struct {
	BaseURL        string
	SiteURL        string
	UserAgent      string
	RequestTimeout time.Duration
}

// SearchConfig - значения поиска по умолчанию
type SearchConfig struct {
	DefaultActivity     string
	DefaultWaypointType string
	MaxDistanceM        float64
	BoxSizeM            float64
	RoutePageSize       int
	RouteMaxItems       int
	WaypointPageSize    int
	WaypointMaxItems    int
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Конфиг-файл опционален: переменных окружения достаточно
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Catalog: CatalogConfig{
			BaseURL:        viper.GetString("CATALOG_BASE_URL"),
			SiteURL:        viper.GetString("CATALOG_SITE_URL"),
			UserAgent:      viper.GetString("CATALOG_USER_AGENT"),
			RequestTimeout: time.Duration(viper.GetInt("CATALOG_REQUEST_TIMEOUT")) * time.Second,
		},
		Search: SearchConfig{
			DefaultActivity:     viper.GetString("SEARCH_DEFAULT_ACTIVITY"),
			DefaultWaypointType: viper.GetString("SEARCH_DEFAULT_WAYPOINT_TYPE"),
			MaxDistanceM:        viper.GetFloat64("SEARCH_MAX_DISTANCE_M"),
			BoxSizeM:            viper.GetFloat64("SEARCH_BOX_SIZE_M"),
			RoutePageSize:       viper.GetInt("SEARCH_ROUTE_PAGE_SIZE"),
			RouteMaxItems:       viper.GetInt("SEARCH_ROUTE_MAX_ITEMS"),
			WaypointPageSize:    viper.GetInt("SEARCH_WAYPOINT_PAGE_SIZE"),
			WaypointMaxItems:    viper.GetInt("SEARCH_WAYPOINT_MAX_ITEMS"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Catalog.BaseURL == "" {
		cfg.Catalog.BaseURL = "https://api.camptocamp.org"
	}
	if cfg.Catalog.SiteURL == "" {
		cfg.Catalog.SiteURL = "https://www.camptocamp.org"
	}
	if cfg.Catalog.UserAgent == "" {
		cfg.Catalog.UserAgent = "c2ccombos/1.0"
	}
	if cfg.Catalog.RequestTimeout == 0 {
		cfg.Catalog.RequestTimeout = 15 * time.Second
	}
	if cfg.Search.DefaultActivity == "" {
		cfg.Search.DefaultActivity = "rock_climbing"
	}
	if cfg.Search.DefaultWaypointType == "" {
		cfg.Search.DefaultWaypointType = "paragliding_takeoff"
	}
	if cfg.Search.MaxDistanceM == 0 {
		cfg.Search.MaxDistanceM = 2000
	}
	if cfg.Search.BoxSizeM == 0 {
		cfg.Search.BoxSizeM = 20000
	}
	if cfg.Search.RoutePageSize == 0 {
		cfg.Search.RoutePageSize = 200
	}
	if cfg.Search.RouteMaxItems == 0 {
		cfg.Search.RouteMaxItems = 5000
	}
	if cfg.Search.WaypointPageSize == 0 {
		cfg.Search.WaypointPageSize = 200
	}
	if cfg.Search.WaypointMaxItems == 0 {
		cfg.Search.WaypointMaxItems = 2000
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
