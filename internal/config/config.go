// Package config handles the loading and parsing of the application's configuration.
// It uses the Viper library to read from a YAML file and environment variables.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"

	"jobscout/internal/logger"
)

// Settings defines the overall configuration structure for jobscout.
// It mirrors the structure of the jobscout.yaml file and is populated by Viper.
type Settings struct {
	Input   InputConfig   `mapstructure:"input"`
	Output  OutputConfig  `mapstructure:"output"`
	Crawler CrawlerConfig `mapstructure:"crawler"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Keys    KeyConfig     `mapstructure:"keys"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Logging logger.Config `mapstructure:"logging"`
}

// InputConfig locates the workbook listing the career pages to visit.
type InputConfig struct {
	File   string `mapstructure:"file"`
	Sheet  string `mapstructure:"sheet"`
	Column string `mapstructure:"column"`
}

// OutputConfig locates the results workbook and the run report.
type OutputConfig struct {
	File       string `mapstructure:"file"`
	Sheet      string `mapstructure:"sheet"`
	ReportFile string `mapstructure:"report_file"`
}

// CrawlerConfig contains settings for page retrieval behavior.
type CrawlerConfig struct {
	UseBrowser    bool     `mapstructure:"use_browser"`
	Headless      bool     `mapstructure:"headless"`
	Proxy         string   `mapstructure:"proxy"`
	UserAgents    []string `mapstructure:"user_agents"`
	Timeout       int      `mapstructure:"timeout"`
	RenderWait    int      `mapstructure:"render_wait"`
	SleepBetween  int      `mapstructure:"sleep_between"`
	Retries       int      `mapstructure:"retries"`
}

// FilterConfig holds the location keyword sets used by the geography filter.
type FilterConfig struct {
	AllowedLocations    []string `mapstructure:"allowed_locations"`
	DisallowedLocations []string `mapstructure:"disallowed_locations"`
}

// KeyConfig holds the path markers recognized by the key extractor.
type KeyConfig struct {
	Markers []string `mapstructure:"markers"`
}

// RedisConfig holds the configuration for the optional Redis key mirror.
type RedisConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
	Key     string `mapstructure:"key"`
}

// DefaultAllowedLocations marks locations a posting may be based in.
// Focus on US/HK.
var DefaultAllowedLocations = []string{
	"new york", "nyc", "ny", "los angeles", "la", "chicago", "san francisco", "sf",
	"boston", "houston", "dallas", "philadelphia", "atlanta", "washington dc", "dc",
	"seattle", "miami", "denver", "austin", "menlo park", "palo alto", "charlotte",
	"greenwich", "stamford", "irvine", "newport beach",
	"usa", "us", "united states", "hong kong", "hk",
}

// DefaultDisallowedLocations marks locations that cause a posting to be
// skipped. Entries beginning with "/" are locale path segments matched
// against the URL only.
var DefaultDisallowedLocations = []string{
	// Europe
	"london", "paris", "frankfurt", "milan", "zurich", "geneva", "madrid",
	"amsterdam", "dublin", "luxembourg", "brussels", "stockholm", "warsaw", "birmingham",
	"uk", "united kingdom", "great britain", "france", "germany", "italy",
	"spain", "switzerland", "ireland", "benelux", "nordics", "emea",
	// Asia excluding HK
	"singapore", "tokyo", "seoul", "mumbai", "delhi", "beijing", "shanghai",
	"shenzhen", "dubai", "riyadh", "tel aviv",
	"japan", "korea", "india", "china", "mainland", "australia", "asean", "mea", "israel",
	// Americas excluding US
	"toronto", "montreal", "vancouver", "canada", "mexico city", "sao paulo", "brazil", "latam",
	// Locale path segments
	"/fr-fr", "/de-de", "/it-it", "/ja-jp", "/ko-kr", "/es-es",
}

// DefaultKeyMarkers are the path segments that open the descriptive part of
// a posting URL.
var DefaultKeyMarkers = []string{"/opp/", "/job/"}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input.file", "job_sites.xlsx")
	v.SetDefault("input.sheet", "Sheet1")
	v.SetDefault("input.column", "A")
	v.SetDefault("output.file", "found_jobs.xlsx")
	v.SetDefault("output.sheet", "Sheet1")
	v.SetDefault("output.report_file", "reports/run_report.json")
	v.SetDefault("crawler.use_browser", true)
	v.SetDefault("crawler.headless", true)
	v.SetDefault("crawler.timeout", 30)
	v.SetDefault("crawler.render_wait", 3)
	v.SetDefault("crawler.sleep_between", 1)
	v.SetDefault("crawler.retries", 3)
	v.SetDefault("crawler.user_agents", []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/108.0.0.0 Safari/537.36",
	})
	v.SetDefault("filter.allowed_locations", DefaultAllowedLocations)
	v.SetDefault("filter.disallowed_locations", DefaultDisallowedLocations)
	v.SetDefault("keys.markers", DefaultKeyMarkers)
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.key", "jobscout:keys")
	v.SetDefault("logging.level", "info")
}

// LoadConfig reads configuration from jobscout.yaml in the given path and
// unmarshals it into a Settings struct. A missing config file is not an
// error; the defaults produce a runnable configuration.
func LoadConfig(path string) (config Settings, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("jobscout")
	v.SetConfigType("yaml")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	return
}
