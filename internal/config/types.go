package config

// Config is the top-level webnotes configuration, corresponding to .webnotes.yml.
type Config struct {
	// ContentDir holds home.md and the language folders of each category.
	ContentDir string `yaml:"content_dir" koanf:"content_dir"`
	// BaseURL, when set, fetches documents over HTTP instead of from ContentDir.
	BaseURL string `yaml:"base_url" koanf:"base_url"`
	// Catalog is an optional YAML file replacing the built-in content index.
	Catalog             string   `yaml:"catalog" koanf:"catalog"`
	HomeFile            string   `yaml:"home_file" koanf:"home_file"`
	SiteTitle           string   `yaml:"site_title" koanf:"site_title"`
	Port                int      `yaml:"port" koanf:"port"`
	MaxConcurrency      int      `yaml:"max_concurrency" koanf:"max_concurrency"`
	FetchTimeoutSeconds int      `yaml:"fetch_timeout_seconds" koanf:"fetch_timeout_seconds"`
	AllowAllOrigins     bool     `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Include             []string `yaml:"include" koanf:"include"`
	Exclude             []string `yaml:"exclude" koanf:"exclude"`
}
