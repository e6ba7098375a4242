package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/rhyrak/combo-schedule/pkg/model"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	envPrefix = "SCHEDULE"
)

type Config struct {
	Env          string
	CatalogFile  string
	CSVDelimiter rune
	ExportFile   string
	Top          int

	Log         LogConfig
	Constraints model.Constraints
}

type LogConfig struct {
	Level  string
	Format string
}

// Load reads the optional config file at path, then environment variables
// prefixed with SCHEDULE_ (for example SCHEDULE_CONSTRAINTS_MAX_GAP_MINUTES).
// An empty path skips the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) || os.IsNotExist(err) {
				return nil, fmt.Errorf("config: %s not found", path)
			}
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	return fromViper(v)
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg, _ := fromViper(v)
	return cfg
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	cfg.Env = v.GetString("env")
	cfg.CatalogFile = v.GetString("catalog_file")
	cfg.ExportFile = v.GetString("export_file")
	cfg.Top = v.GetInt("top")

	delim := []rune(v.GetString("csv_delimiter"))
	if len(delim) != 1 {
		return nil, fmt.Errorf("config: csv_delimiter must be a single character, got %q", v.GetString("csv_delimiter"))
	}
	cfg.CSVDelimiter = delim[0]

	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	cfg.Constraints = model.Constraints{
		MinCredits:       v.GetInt("constraints.min_credits"),
		MaxCredits:       v.GetInt("constraints.max_credits"),
		MaxGapMinutes:    v.GetInt("constraints.max_gap_minutes"),
		MaxClassesPerDay: v.GetInt("constraints.max_classes_per_day"),
		MaxDaysPerWeek:   v.GetInt("constraints.max_days_per_week"),
		Mandatory:        stringList(v.Get("constraints.mandatory")),
		Rank:             model.RankMode(v.GetString("constraints.rank")),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", EnvDevelopment)
	v.SetDefault("catalog_file", "./res/catalog.yaml")
	v.SetDefault("csv_delimiter", ";")
	v.SetDefault("export_file", "")
	v.SetDefault("top", 5)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("constraints.min_credits", 15)
	v.SetDefault("constraints.max_credits", 15)
	v.SetDefault("constraints.max_gap_minutes", 60)
	v.SetDefault("constraints.max_classes_per_day", 3)
	v.SetDefault("constraints.max_days_per_week", 4)
	v.SetDefault("constraints.mandatory", []string{})
	v.SetDefault("constraints.rank", string(model.RankByDaysThenGap))
}

// stringList accepts a list or a single comma separated string, which is how
// lists arrive from environment variables.
func stringList(value any) []string {
	var raw []string
	switch t := value.(type) {
	case string:
		raw = strings.Split(t, ",")
	case []string:
		raw = t
	case []any:
		for _, item := range t {
			raw = append(raw, fmt.Sprint(item))
		}
	}
	out := []string{}
	for _, item := range raw {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
