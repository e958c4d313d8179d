// Package constants provides shared constants for the mortgage-compare application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Comparison defaults and limits
const (
	// DefaultTermYears is the loan term assumed when a quote does not specify one
	DefaultTermYears = 30

	// DefaultHorizonYears is the cost-projection horizon assumed when unset
	DefaultHorizonYears = 7

	// MinQuotesForComparison is the minimum number of valid quotes for a
	// meaningful side-by-side view or alert scan
	MinQuotesForComparison = 2

	// MaxQuotes is the maximum number of quotes held in a comparison session
	MaxQuotes = 4

	// HazardDivergenceThreshold is the relative spread of annual hazard
	// insurance estimates beyond which an alert fires
	HazardDivergenceThreshold = 0.20

	// NeutralScore is the score assigned when no signal is available
	// (zero-weight scoring, missing reputation data)
	NeutralScore = 50

	// MaxRating is the top of the reputation star-rating scale
	MaxRating = 5.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "session.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"
)
