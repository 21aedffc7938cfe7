package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Synonyms are operator overrides merged on top of the built-in catalog.
// Map keys are keywords (lower-cased and trimmed on merge); map values must
// name a known tag or startup fails.
type Synonyms struct {
	Seniority map[string]string `yaml:"seniority"`
	Area      map[string]string `yaml:"area"`
	Stacks    []string          `yaml:"stacks"`
	Locations []string          `yaml:"locations"`
}

type Ranking struct {
	FeatureLogging        bool    `yaml:"feature_logging"`
	WeightHeuristic       float64 `yaml:"weight_heuristic"`
	WeightTitleHits       float64 `yaml:"weight_title_hits"`
	WeightDescriptionHits float64 `yaml:"weight_description_hits"`
	WeightStackHits       float64 `yaml:"weight_stack_hits"`
	WeightSeniorityMatch  float64 `yaml:"weight_seniority_match"`
	WeightFreshnessDays   float64 `yaml:"weight_freshness_days"`
}

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Search struct {
		Synonyms Synonyms `yaml:"synonyms"`
		Ranking  Ranking  `yaml:"ranking"`
	} `yaml:"search"`

	Import struct {
		RequestsPerSecond float64 `yaml:"requests_per_second"`
		Burst             int     `yaml:"burst"`
		TokenAccount      string  `yaml:"token_account"`
	} `yaml:"import"`

	Cleanup struct {
		IntervalHours int `yaml:"interval_hours"`
		MaxAgeDays    int `yaml:"max_age_days"`
	} `yaml:"cleanup"`
}

// Default returns the config used when a field is absent from the YAML file.
func Default() Config {
	var cfg Config
	cfg.App.Port = 8080
	cfg.App.DataDir = "."
	cfg.Search.Ranking = DefaultRanking()
	cfg.Import.RequestsPerSecond = 5
	cfg.Import.Burst = 10
	cfg.Import.TokenAccount = "hermes:import"
	cfg.Cleanup.IntervalHours = 24
	cfg.Cleanup.MaxAgeDays = 90
	return cfg
}

func DefaultRanking() Ranking {
	return Ranking{
		WeightHeuristic:       1.0,
		WeightTitleHits:       1.3,
		WeightDescriptionHits: 0.7,
		WeightStackHits:       1.2,
		WeightSeniorityMatch:  1.0,
		WeightFreshnessDays:   0.2,
	}
}

func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
