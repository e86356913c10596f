package server

import "os"

// Config holds the preview server configuration.
type Config struct {
	HTTPAddr    string
	MetricsAddr string
	SiteDir     string
	ReportsDir  string
}

// LoadConfig reads environment variables and returns a Config.
func LoadConfig() *Config {
	return &Config{
		HTTPAddr:    getEnv("TD_HTTP_ADDR", ":8080"),
		MetricsAddr: getEnv("TD_METRICS_ADDR", ":9090"),
		SiteDir:     getEnv("TD_SITE_DIR", "site"),
		ReportsDir:  getEnv("TD_REPORTS_DIR", "site/reports"),
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
