package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"paymentdeck/deck"
)

// DefaultOutputPath is where the deck is written when nothing overrides it
const DefaultOutputPath = "결제경로_선박조종연구소.pptx"

// Config holds everything the generator reads at startup
type Config struct {
	Output   OutputConfig `mapstructure:"output"`
	Log      LogConfig    `mapstructure:"log"`
	Deck     DeckConfig   `mapstructure:"deck"`
	Merchant deck.Rows    `mapstructure:"merchant"`
	Business deck.Rows    `mapstructure:"business"`
	Verify   bool         `mapstructure:"verify"`
}

// OutputConfig holds the output file locations. Empty companion paths
// disable that file.
type OutputConfig struct {
	Path          string `mapstructure:"path"`
	Checklist     string `mapstructure:"checklist"`
	BusinessSheet string `mapstructure:"business_sheet"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Dir   string `mapstructure:"dir"`
	Level string `mapstructure:"level"`
}

// DeckConfig holds the literal text of the title slides and the site URL
// the capture instructions point at.
type DeckConfig struct {
	Title           string `mapstructure:"title"`
	Subtitle        string `mapstructure:"subtitle"`
	ClosingTitle    string `mapstructure:"closing_title"`
	ClosingSubtitle string `mapstructure:"closing_subtitle"`
	SiteURL         string `mapstructure:"site_url"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"output":         "output.path",
	"checklist":      "output.checklist",
	"business-sheet": "output.business_sheet",
	"base-url":       "deck.site_url",
	"log-dir":        "log.dir",
	"log-level":      "log.level",
	"verify":         "verify",
}

// RegisterFlags defines the command-line overrides on fs. Flag defaults
// are empty so unset flags never shadow file or env values.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("output", "o", "", "output .pptx path (default \""+DefaultOutputPath+"\")")
	fs.String("checklist", "", "also write the capture checklist .xlsx to this path")
	fs.String("business-sheet", "", "also write the business information .docx to this path")
	fs.String("base-url", "", "site URL used in capture instructions")
	fs.String("log-dir", "", "write a run log into this directory")
	fs.String("log-level", "", "log level: debug, info, warn, error (default \"warn\")")
	fs.Bool("verify", false, "read the written deck back and print its slide text")
}

// Load reads configuration from defaults, the optional config file,
// PAYDECK_* environment variables and flags, in increasing priority.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PAYDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	content := deck.DefaultContent()

	// Output defaults
	v.SetDefault("output.path", DefaultOutputPath)
	v.SetDefault("output.checklist", "")
	v.SetDefault("output.business_sheet", "")

	// Log defaults
	v.SetDefault("log.dir", "")
	v.SetDefault("log.level", "warn")

	// Deck defaults
	v.SetDefault("deck.title", content.Title)
	v.SetDefault("deck.subtitle", content.Subtitle)
	v.SetDefault("deck.closing_title", content.ClosingTitle)
	v.SetDefault("deck.closing_subtitle", content.ClosingSubtitle)
	v.SetDefault("deck.site_url", content.SiteURL)

	v.SetDefault("verify", false)

	envBindings := map[string]string{
		"output.path":           "PAYDECK_OUTPUT_PATH",
		"output.checklist":      "PAYDECK_OUTPUT_CHECKLIST",
		"output.business_sheet": "PAYDECK_OUTPUT_BUSINESS_SHEET",
		"log.dir":               "PAYDECK_LOG_DIR",
		"log.level":             "PAYDECK_LOG_LEVEL",
		"deck.title":            "PAYDECK_DECK_TITLE",
		"deck.subtitle":         "PAYDECK_DECK_SUBTITLE",
		"deck.closing_title":    "PAYDECK_DECK_CLOSING_TITLE",
		"deck.closing_subtitle": "PAYDECK_DECK_CLOSING_SUBTITLE",
		"deck.site_url":         "PAYDECK_DECK_SITE_URL",
		"verify":                "PAYDECK_VERIFY",
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", env, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if len(cfg.Merchant) == 0 {
		cfg.Merchant = content.Merchant
	}
	if len(cfg.Business) == 0 {
		cfg.Business = content.Business
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings Load cannot default
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output.Path) == "" {
		return fmt.Errorf("output.path must not be empty")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log.level %q", c.Log.Level)
	}
	if dup := c.Merchant.Duplicate(); dup != "" {
		return fmt.Errorf("duplicate merchant label %q", dup)
	}
	if dup := c.Business.Duplicate(); dup != "" {
		return fmt.Errorf("duplicate business label %q", dup)
	}
	return nil
}

// Content returns the deck data the config describes
func (c *Config) Content() deck.Content {
	return deck.Content{
		Title:           c.Deck.Title,
		Subtitle:        c.Deck.Subtitle,
		ClosingTitle:    c.Deck.ClosingTitle,
		ClosingSubtitle: c.Deck.ClosingSubtitle,
		SiteURL:         c.Deck.SiteURL,
		Merchant:        c.Merchant,
		Business:        c.Business,
	}
}
