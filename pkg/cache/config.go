package cache

import "time"

// MemoryConfig holds tunables for the in-memory cache.
type MemoryConfig struct {
	MaxSize         int
	CleanupInterval time.Duration
}

// MemoryOption mutates a MemoryConfig.
type MemoryOption func(*MemoryConfig)

func WithMemoryMaxSize(n int) MemoryOption {
	return func(cfg *MemoryConfig) {
		if n > 0 {
			cfg.MaxSize = n
		}
	}
}

func WithMemoryCleanupInterval(d time.Duration) MemoryOption {
	return func(cfg *MemoryConfig) {
		if d > 0 {
			cfg.CleanupInterval = d
		}
	}
}

// RedisConfig holds connection settings for the Redis cache.
type RedisConfig struct {
	Host        string
	Port        int
	Password    string
	DB          int
	PoolSize    int
	PoolTimeout time.Duration
	Prefix      string
}

// RedisOption mutates a RedisConfig.
type RedisOption func(*RedisConfig)

func WithRedisHost(host string) RedisOption {
	return func(cfg *RedisConfig) {
		if host != "" {
			cfg.Host = host
		}
	}
}

func WithRedisPort(port int) RedisOption {
	return func(cfg *RedisConfig) {
		if port > 0 {
			cfg.Port = port
		}
	}
}

func WithRedisPassword(password string) RedisOption {
	return func(cfg *RedisConfig) {
		cfg.Password = password
	}
}

func WithRedisDB(db int) RedisOption {
	return func(cfg *RedisConfig) {
		cfg.DB = db
	}
}

func WithRedisPoolSize(n int) RedisOption {
	return func(cfg *RedisConfig) {
		if n > 0 {
			cfg.PoolSize = n
		}
	}
}

func WithRedisPrefix(prefix string) RedisOption {
	return func(cfg *RedisConfig) {
		if prefix != "" {
			cfg.Prefix = prefix
		}
	}
}
