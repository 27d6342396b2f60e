package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Constants
const (
	DateLayout      = "2006-01-02"
	TmpSuffix       = ".tmp"
	FilePermissions = 0644

	// Page layout, in points
	Margin        = 40.0
	Columns       = 12
	Rows          = 33 // 31 day rows + 2 header rows
	HeaderRows    = 2
	TitleSize     = 24.0
	MonthSize     = 10.0
	LabelSize     = 8.0
	WeekSize      = 9.0
	LabelInset    = 4.0
	WeekRightEdge = 60.0 // localized week number, right-aligned at this offset
	WeekLeftEdge  = 20.0 // fixed-table week number, left-aligned at this offset
	HolidayMark   = "*"
	HolidayOffset = 46.0 // mark on a localized Monday, right-aligned left of the week number

	DefaultLanguage = "en"
	MinYear         = 1
	MaxYear         = 9999

	// Config keys
	KeyYear      = "year"
	KeyLanguage  = "language"
	KeyOutput    = "output"
	KeyFormat    = "format"
	KeyHolidays  = "holidays"
	KeyScale     = "scale"
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
	KeyLogOutput = "log.output"

	EnvPrefix  = "YEARPLAN"
	ConfigName = "yearplan"
)

// Sentinel errors
var (
	ErrInvalidYear   = errors.New("invalid year")
	ErrInvalidScale  = errors.New("invalid scale")
	ErrUnknownFormat = errors.New("unknown output format")
	ErrUnknownRegion = errors.New("unknown holiday region")
)

// SupportedLanguages lists the selectors with a weekday label table
var SupportedLanguages = []string{"en", "de", "fr", "it", "es"}

// Config holds the resolved command configuration
type Config struct {
	Year     int
	Language string
	Output   string
	Format   string
	Holidays string
	Scale    float64
	Log      LogConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
	Output string
}

// LoadConfig reads configuration with the priority (highest first):
// 1. flags that were set on the command line
// 2. environment variables with the YEARPLAN_ prefix (e.g. YEARPLAN_LANGUAGE)
// 3. yearplan.{toml,yaml,json} in the working directory or $HOME/.config/yearplan
// 4. built-in defaults
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault(KeyYear, 0)
	v.SetDefault(KeyLanguage, DefaultLanguage)
	v.SetDefault(KeyOutput, "")
	v.SetDefault(KeyFormat, "")
	v.SetDefault(KeyHolidays, "")
	v.SetDefault(KeyScale, 2.0)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "auto")
	v.SetDefault(KeyLogOutput, "stderr")

	v.SetConfigName(ConfigName)
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/yearplan")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Flag names use dashes where config keys use dots (--log-level -> log.level)
	var bindErr error
	if flags != nil {
		flags.VisitAll(func(f *pflag.Flag) {
			if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "."), f); err != nil && bindErr == nil {
				bindErr = err
			}
		})
	}
	if bindErr != nil {
		return nil, fmt.Errorf("error binding flags: %w", bindErr)
	}

	// GetInt and GetFloat64 turn unparsable values into zero
	year, err := cast.ToIntE(v.Get(KeyYear))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYear, v.Get(KeyYear))
	}
	scale, err := cast.ToFloat64E(v.Get(KeyScale))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScale, v.Get(KeyScale))
	}

	return &Config{
		Year:     year,
		Language: v.GetString(KeyLanguage),
		Output:   v.GetString(KeyOutput),
		Format:   v.GetString(KeyFormat),
		Holidays: v.GetString(KeyHolidays),
		Scale:    scale,
		Log: LogConfig{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
			Output: v.GetString(KeyLogOutput),
		},
	}, nil
}
