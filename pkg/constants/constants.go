// Package constants provides shared constants for the planning-trap application.
package constants

import "time"

// Input defaults substituted for missing or invalid raw values.
const (
	// DefaultHourlyRate is used when the hourly rate is missing or not a positive number
	DefaultHourlyRate = 75.0

	// DefaultHoursPerWeek is used when hours per week is missing or not a positive number
	DefaultHoursPerWeek = 20.0

	// DefaultCustomWeeks is used when a week count cannot be resolved
	DefaultCustomWeeks = 1
)

// Calculation constants
const (
	// OpportunityMultiplier is applied to the direct cost to get the opportunity cost
	OpportunityMultiplier = 1.5

	// HoursPerProduct is the notional effort of one shippable product
	HoursPerProduct = 8.0

	// CustomDuration is the duration selector that defers to the custom week count
	CustomDuration = "custom"
)

// DurationPresets are the week counts offered by the duration selector.
var DurationPresets = []int{1, 2, 4, 8, 12, 26, 52}

// Display constants
const (
	// ProgressHoursCap is the number of planning hours shown as a full progress bar
	ProgressHoursCap = 500.0

	// HighDamageThreshold marks results above which the UI switches to its alarm styling
	HighDamageThreshold = 10000.0

	// CurrencySymbol prefixes every formatted amount
	CurrencySymbol = "$"
)

// Reveal timeline used by the animated views.
const (
	ProgressDelay            = 100 * time.Millisecond
	ResultsDelay             = 500 * time.Millisecond
	DirectCostDuration       = 1000 * time.Millisecond
	OpportunityCostDuration  = 1200 * time.Millisecond
	TotalDamageDelay         = 500 * time.Millisecond
	TotalDamageDuration      = 1500 * time.Millisecond
	ShakeDuration            = 500 * time.Millisecond
	DefaultAnimationInterval = 16 * time.Millisecond
)

// Share constants
const (
	// DefaultShareURL is the public address of the calculator
	DefaultShareURL = "https://vnq-day-1-planningTrapCalculator.vercel.app"

	// DefaultCTAURL is the landing page behind the call-to-action button
	DefaultCTAURL = "https://spark-sprint-landing.vercel.app/"

	// LinkedInShareEndpoint is the LinkedIn offsite share endpoint
	LinkedInShareEndpoint = "https://www.linkedin.com/sharing/share-offsite/"

	// TwitterIntentEndpoint is the Twitter tweet intent endpoint
	TwitterIntentEndpoint = "https://twitter.com/intent/tweet"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Storage constants
const (
	// PreferencesKey is the key the saved hourly rate and hours per week live under
	PreferencesKey = "planningTrapData"

	// StorageBackendMemory keeps preferences for the life of the process
	StorageBackendMemory = "memory"

	// StorageBackendSQLite keeps preferences in a local SQLite file
	StorageBackendSQLite = "sqlite"

	// StorageBackendRedis keeps preferences in Redis
	StorageBackendRedis = "redis"

	// DefaultSQLitePath is the default SQLite database file
	DefaultSQLitePath = "planning-trap.db"

	// DefaultRedisAddress is the default Redis endpoint
	DefaultRedisAddress = "localhost:6379"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix prefixes environment overrides, e.g. PLANNING_TRAP_STORAGE_BACKEND
	EnvPrefix = "PLANNING_TRAP"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// DefaultRequestsPerMinute is the default per-client request rate
	DefaultRequestsPerMinute = 60

	// DefaultRateBurst is the default per-client burst
	DefaultRateBurst = 10

	// DefaultShutdownTimeout bounds graceful shutdown
	DefaultShutdownTimeout = 10 * time.Second

	// ClientCookieName identifies a browser for preference storage
	ClientCookieName = "planning_trap_client"
)
