package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	FRED struct {
		APIKey  string        `yaml:"api_key"`
		BaseURL string        `yaml:"base_url"`
		Timeout time.Duration `yaml:"timeout"`
		Series  struct {
			Treasury10Y string `yaml:"treasury_10y"`
			CPI         string `yaml:"cpi"`
			DollarIndex string `yaml:"dollar_index"`
		} `yaml:"series"`
	} `yaml:"fred"`
	Yahoo struct {
		BaseURL  string        `yaml:"base_url"`
		Range    string        `yaml:"range"`
		Interval string        `yaml:"interval"`
		Timeout  time.Duration `yaml:"timeout"`
		RetryMax time.Duration `yaml:"retry_max_elapsed"`
		Tickers  struct {
			VIX    string `yaml:"vix"`
			SP500  string `yaml:"sp500"`
			Nifty  string `yaml:"nifty"`
			Gold   string `yaml:"gold"`
			Silver string `yaml:"silver"`
			USDINR string `yaml:"usdinr"`
		} `yaml:"tickers"`
	} `yaml:"yahoo"`
	Cache struct {
		Backend string        `yaml:"backend"` // memory, redis or layered
		TTL     time.Duration `yaml:"ttl"`
		Memory  struct {
			MaxSize         int           `yaml:"max_size"`
			CleanupInterval time.Duration `yaml:"cleanup_interval"`
		} `yaml:"memory"`
		Redis struct {
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Refresh struct {
		Enabled  bool   `yaml:"enabled"`
		Schedule string `yaml:"schedule"`
	} `yaml:"refresh"`
	Thresholds struct {
		VIXLow            float64 `yaml:"vix_low"`
		VIXHigh           float64 `yaml:"vix_high"`
		GoldSilverHigh    float64 `yaml:"gold_silver_high"`
		GoldSilverLow     float64 `yaml:"gold_silver_low"`
		RealYieldCritical float64 `yaml:"real_yield_critical"`
		DXYMovePct        float64 `yaml:"dxy_move_pct"`
		INRMovePct        float64 `yaml:"inr_move_pct"`
		RealYieldMove     float64 `yaml:"real_yield_move"`
		CorrelationCutoff float64 `yaml:"correlation_cutoff"`
		EquityRallyPct    float64 `yaml:"equity_rally_pct"`
		Lookback          int     `yaml:"lookback"`
		Majority          int     `yaml:"majority"`
	} `yaml:"thresholds"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("FRED_API_KEY"); v != "" {
		c.FRED.APIKey = v
	}
	if v := os.Getenv("CACHE_BACKEND"); v != "" {
		c.Cache.Backend = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Cache.Redis.Password = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
	if c.FRED.Timeout <= 0 {
		c.FRED.Timeout = 15 * time.Second
	}
	if c.Yahoo.Timeout <= 0 {
		c.Yahoo.Timeout = 15 * time.Second
	}
	if c.Yahoo.RetryMax <= 0 {
		c.Yahoo.RetryMax = 30 * time.Second
	}
	if c.FRED.BaseURL == "" {
		c.FRED.BaseURL = "https://api.stlouisfed.org/fred"
	}
	if c.FRED.Series.Treasury10Y == "" {
		c.FRED.Series.Treasury10Y = "DGS10"
	}
	if c.FRED.Series.CPI == "" {
		c.FRED.Series.CPI = "CPIAUCSL"
	}
	if c.FRED.Series.DollarIndex == "" {
		c.FRED.Series.DollarIndex = "DTWEXBGS"
	}
	if c.Yahoo.BaseURL == "" {
		c.Yahoo.BaseURL = "https://query1.finance.yahoo.com"
	}
	if c.Yahoo.Range == "" {
		c.Yahoo.Range = "1y"
	}
	if c.Yahoo.Interval == "" {
		c.Yahoo.Interval = "1d"
	}
	tk := &c.Yahoo.Tickers
	if tk.VIX == "" {
		tk.VIX = "^VIX"
	}
	if tk.SP500 == "" {
		tk.SP500 = "^GSPC"
	}
	if tk.Nifty == "" {
		tk.Nifty = "^NSEI"
	}
	if tk.Gold == "" {
		tk.Gold = "GC=F"
	}
	if tk.Silver == "" {
		tk.Silver = "SI=F"
	}
	if tk.USDINR == "" {
		tk.USDINR = "USDINR=X"
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = "memory"
	}
	if c.Cache.TTL <= 0 {
		c.Cache.TTL = 5 * time.Minute
	}
	if c.Refresh.Schedule == "" {
		c.Refresh.Schedule = "0 * * * *"
	}

	t := &c.Thresholds
	if t.VIXLow == 0 {
		t.VIXLow = 13
	}
	if t.VIXHigh == 0 {
		t.VIXHigh = 20
	}
	if t.GoldSilverHigh == 0 {
		t.GoldSilverHigh = 85
	}
	if t.GoldSilverLow == 0 {
		t.GoldSilverLow = 65
	}
	if t.RealYieldCritical == 0 {
		t.RealYieldCritical = 2.0
	}
	if t.DXYMovePct == 0 {
		t.DXYMovePct = 2
	}
	if t.INRMovePct == 0 {
		t.INRMovePct = 1
	}
	if t.RealYieldMove == 0 {
		t.RealYieldMove = 0.5
	}
	if t.CorrelationCutoff == 0 {
		t.CorrelationCutoff = -0.3
	}
	if t.EquityRallyPct == 0 {
		t.EquityRallyPct = 5
	}
	if t.Lookback == 0 {
		t.Lookback = 30
	}
	if t.Majority == 0 {
		t.Majority = 3
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	switch c.Cache.Backend {
	case "memory", "redis", "layered":
	default:
		return fmt.Errorf("cache.backend must be 'memory', 'redis' or 'layered', got '%s'", c.Cache.Backend)
	}
	if c.Cache.Backend != "memory" && c.Cache.Redis.Host == "" {
		return fmt.Errorf("cache.redis.host is required for backend '%s'", c.Cache.Backend)
	}
	if c.Thresholds.Lookback <= 0 {
		return fmt.Errorf("thresholds.lookback must be positive")
	}
	if c.Thresholds.Majority < 1 || c.Thresholds.Majority > 6 {
		return fmt.Errorf("thresholds.majority must be between 1 and 6")
	}
	return nil
}
