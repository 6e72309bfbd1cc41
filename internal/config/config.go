package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/example/go-tts-preprocess/preprocess"
)

type Config struct {
	LogLevel     string             `mapstructure:"log_level"`
	Filters      FiltersConfig      `mapstructure:"filters"`
	Replacements ReplacementsConfig `mapstructure:"replacements"`
	Server       ServerConfig       `mapstructure:"server"`
}

// FiltersConfig toggles the individual pipeline stages.
type FiltersConfig struct {
	Emoji          bool `mapstructure:"emoji"`
	Markdown       bool `mapstructure:"markdown"`
	BracketsQuotes bool `mapstructure:"brackets_quotes"`
	Pauses         bool `mapstructure:"pauses"`
}

// ReplacementsConfig selects the lexical replacements to apply.
// Custom rules can only come from a config file; they are applied after
// the default table so they may build on its output.
type ReplacementsConfig struct {
	UseDefaults bool              `mapstructure:"use_defaults"`
	Custom      []ReplacementRule `mapstructure:"custom"`
}

// ReplacementRule is one literal from→to substitution. Rule order in
// the config file is the order the rules run in.
type ReplacementRule struct {
	From string `mapstructure:"from"`
	To   string `mapstructure:"to"`
}

type ServerConfig struct {
	ListenAddr      string `mapstructure:"listen_addr"`
	MaxTextBytes    int    `mapstructure:"max_text_bytes"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Filters: FiltersConfig{
			Emoji:          true,
			Markdown:       true,
			BracketsQuotes: true,
			Pauses:         true,
		},
		Replacements: ReplacementsConfig{
			UseDefaults: false,
			Custom:      nil,
		},
		Server: ServerConfig{
			ListenAddr:      ":8080",
			MaxTextBytes:    65536,
			ShutdownTimeout: 30,
		},
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
	fs.Bool("filters-emoji", defaults.Filters.Emoji, "Remove emoji characters")
	fs.Bool("filters-markdown", defaults.Filters.Markdown, "Strip markdown formatting")
	fs.Bool("filters-brackets-quotes", defaults.Filters.BracketsQuotes, "Strip brackets and quotation marks")
	fs.Bool("filters-pauses", defaults.Filters.Pauses, "Normalize ellipses and whitespace")
	fs.Bool("replacements-use-defaults", defaults.Replacements.UseDefaults, "Apply the built-in pronunciation replacement table")
	fs.String("server-listen-addr", defaults.Server.ListenAddr, "HTTP listen address")
	fs.Int("server-max-text-bytes", defaults.Server.MaxTextBytes, "Maximum request text size in bytes")
	fs.Int("server-shutdown-timeout", defaults.Server.ShutdownTimeout, "Graceful shutdown drain period in seconds")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix("TTSCLEAN")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("ttsclean")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("filters.emoji", c.Filters.Emoji)
	v.SetDefault("filters.markdown", c.Filters.Markdown)
	v.SetDefault("filters.brackets_quotes", c.Filters.BracketsQuotes)
	v.SetDefault("filters.pauses", c.Filters.Pauses)
	v.SetDefault("replacements.use_defaults", c.Replacements.UseDefaults)
	v.SetDefault("server.listen_addr", c.Server.ListenAddr)
	v.SetDefault("server.max_text_bytes", c.Server.MaxTextBytes)
	v.SetDefault("server.shutdown_timeout", c.Server.ShutdownTimeout)
}

// flagBindings maps each canonical config key to its flag name.
// Binding flags per key (rather than wholesale) keeps config-file
// values visible under the canonical keys: a changed flag still wins,
// an unchanged flag's default loses to file and env values.
var flagBindings = map[string]string{
	"log_level":                 "log-level",
	"filters.emoji":             "filters-emoji",
	"filters.markdown":          "filters-markdown",
	"filters.brackets_quotes":   "filters-brackets-quotes",
	"filters.pauses":            "filters-pauses",
	"replacements.use_defaults": "replacements-use-defaults",
	"server.listen_addr":        "server-listen-addr",
	"server.max_text_bytes":     "server-max-text-bytes",
	"server.shutdown_timeout":   "server-shutdown-timeout",
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for key, name := range flagBindings {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %q: %w", name, err)
		}
	}
	return nil
}

// BuildReplacements assembles the configured replacement mapping:
// the default table first (when enabled), then the custom rules in file
// order. Returns nil when nothing is configured.
func (c Config) BuildReplacements() *preprocess.Replacements {
	var m *preprocess.Replacements
	if c.Replacements.UseDefaults {
		m = preprocess.DefaultReplacements()
	}

	if len(c.Replacements.Custom) > 0 {
		if m == nil {
			m = preprocess.NewReplacements()
		}
		for _, rule := range c.Replacements.Custom {
			if rule.From == "" {
				continue
			}
			m.Set(rule.From, rule.To)
		}
	}

	return m
}

// PipelineOptions translates the config into preprocess options.
func (c Config) PipelineOptions() []preprocess.Option {
	var opts []preprocess.Option

	if !c.Filters.Emoji {
		opts = append(opts, preprocess.WithoutEmoji())
	}
	if !c.Filters.Markdown {
		opts = append(opts, preprocess.WithoutMarkdown())
	}
	if !c.Filters.BracketsQuotes {
		opts = append(opts, preprocess.WithoutBracketsQuotes())
	}
	if !c.Filters.Pauses {
		opts = append(opts, preprocess.WithoutPauseNormalization())
	}
	if m := c.BuildReplacements(); m != nil {
		opts = append(opts, preprocess.WithReplacements(m))
	}

	return opts
}
