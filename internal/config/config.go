package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries every knob the generator reads. It is built from the
// compiled defaults, overlaid with an optional YAML file, then with
// environment variables. Callers receive it explicitly; nothing in the
// fetch or aggregation path reads package-level state.
type Config struct {
	OutputDir string        `yaml:"output_dir"`
	Cache     CacheConfig   `yaml:"cache"`
	HTTP      HTTPConfig    `yaml:"http"`
	Sources   SourcesConfig `yaml:"sources"`
	Scoring   ScoringConfig `yaml:"scoring"`
	Limits    LimitsConfig  `yaml:"limits"`

	// RansomwareCVEs is the static allowlist of CVE ids with known
	// ransomware campaign linkage, matched case-insensitively.
	RansomwareCVEs []string `yaml:"ransomware_cves"`

	// TrendSeeds fill trend history slots when fewer prior reports
	// exist on disk than the history needs.
	TrendSeeds TrendSeeds `yaml:"trend_seeds"`

	// Keywords drive the trending-topic tally over news titles.
	Keywords []string `yaml:"keywords"`

	// KEVTechnique is the fixed tactic/technique pair attributed to
	// every recent vulnerability.
	KEVTechnique Technique `yaml:"kev_technique"`

	// FamilyTechniques maps a malware family to its tactic/technique
	// set, weighted during aggregation by the family's indicator count.
	FamilyTechniques map[string][]Technique `yaml:"family_techniques"`
}

type CacheConfig struct {
	Path     string `yaml:"path"`
	TTLHours int    `yaml:"ttl_hours"`
}

// TTL returns the cache lifetime as a duration.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

type HTTPConfig struct {
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	UserAgent      string `yaml:"user_agent"`
}

// Timeout returns the per-request limit as a duration.
func (c HTTPConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type SourcesConfig struct {
	KEVURL   string    `yaml:"kev_url"`
	FeodoURL string    `yaml:"feodo_url"`
	RSS      []RSSFeed `yaml:"rss"`
}

// RSSFeed names one news feed endpoint.
type RSSFeed struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// ScoringConfig holds the threat score weights and the level cutoffs.
type ScoringConfig struct {
	KEVWeight         int `yaml:"kev_weight"`
	RansomwareWeight  int `yaml:"ransomware_weight"`
	C2Weight          int `yaml:"c2_weight"`
	C2ScoreCap        int `yaml:"c2_score_cap"`
	GuardedThreshold  int `yaml:"guarded_threshold"`
	ElevatedThreshold int `yaml:"elevated_threshold"`
	CriticalThreshold int `yaml:"critical_threshold"`
}

type LimitsConfig struct {
	MaxIndicators  int `yaml:"max_indicators"`
	MaxNewsPerFeed int `yaml:"max_news_per_feed"`
}

type TrendSeeds struct {
	KEV        []int `yaml:"kev"`
	C2         []int `yaml:"c2"`
	Ransomware []int `yaml:"ransomware"`
}

// Technique is one MITRE ATT&CK tactic/technique pair.
type Technique struct {
	TacticID      string `yaml:"tactic_id"`
	TacticName    string `yaml:"tactic_name"`
	TechniqueID   string `yaml:"technique_id"`
	TechniqueName string `yaml:"technique_name"`
}

// Load builds the configuration: defaults, then the YAML file at path
// when one is given, then environment overrides. A missing explicit
// path is an error; an empty path skips the file layer.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.OutputDir = getEnv("TD_OUTPUT_DIR", c.OutputDir)
	c.Cache.Path = getEnv("TD_CACHE_PATH", c.Cache.Path)
	c.Sources.KEVURL = getEnv("TD_KEV_URL", c.Sources.KEVURL)
	c.Sources.FeodoURL = getEnv("TD_FEODO_URL", c.Sources.FeodoURL)
	c.HTTP.TimeoutSeconds = getInt("TD_HTTP_TIMEOUT", c.HTTP.TimeoutSeconds)
	c.HTTP.UserAgent = getEnv("TD_USER_AGENT", c.HTTP.UserAgent)
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
