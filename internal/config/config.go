package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database"   validate:"required"`
	Pagination PaginationConfig `mapstructure:"pagination" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// StatsTimeZone is the IANA timezone used to bucket review timestamps
	// into calendar dates for the study streak. Defaults to UTC.
	StatsTimeZone string `mapstructure:"stats_time_zone" validate:"required,timezone"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL             string `mapstructure:"url"               validate:"required,url"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"    validate:"gte=0"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"    validate:"gte=0"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime" validate:"gte=0"` // seconds
}

// PaginationConfig carries the default page size of every listing endpoint.
// The source contract differs per endpoint (100 for inventory listings, 20
// for session listings), so the defaults are individual fields rather than
// one global knob.
type PaginationConfig struct {
	WordsPageSize      int `mapstructure:"words_page_size"      validate:"required,gt=0,lte=500"`
	GroupsPageSize     int `mapstructure:"groups_page_size"     validate:"required,gt=0,lte=500"`
	ActivitiesPageSize int `mapstructure:"activities_page_size" validate:"required,gt=0,lte=500"`
	SessionsPageSize   int `mapstructure:"sessions_page_size"   validate:"required,gt=0,lte=500"`
	ReviewsPageSize    int `mapstructure:"reviews_page_size"    validate:"required,gt=0,lte=500"`
}
