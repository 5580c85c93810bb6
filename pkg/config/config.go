package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Catalog       string       `toml:"catalog"`
	DataDir       string       `toml:"data_dir"`
	ListenAddress string       `toml:"listen_address"`
	Title         string       `toml:"title"`
	CacheSize     int          `toml:"cache_size"`
	SessionLimit  int          `toml:"session_limit"`
	Redis         RedisConfig  `toml:"redis"`
	Rabbit        RabbitConfig `toml:"rabbit"`
}

type RedisConfig struct {
	Url      string `toml:"url"`
	Password string `toml:"password"`
	Db       int    `toml:"db"`
}

type RabbitConfig struct {
	Url string `toml:"url"`
}

func Default() Config {
	return Config{
		Catalog:       "default",
		DataDir:       "data",
		ListenAddress: ":8080",
		Title:         "Diecast Collection",
		CacheSize:     1024,
		SessionLimit:  10000,
	}
}

// Load reads the optional TOML file at path and applies environment
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		file, err := os.Open(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to open config: %w", err)
		default:
			defer file.Close()
			if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(env string, target *string) {
		if v, ok := lookup(env); ok && v != "" {
			*target = v
		}
	}
	num := func(env string, target *int) error {
		v, ok := lookup(env)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", env, v, err)
		}
		*target = n
		return nil
	}
	str("CATALOG", &c.Catalog)
	str("DATA_DIR", &c.DataDir)
	str("LISTEN_ADDRESS", &c.ListenAddress)
	str("TITLE", &c.Title)
	str("REDIS_URL", &c.Redis.Url)
	str("REDIS_PASSWORD", &c.Redis.Password)
	str("RABBIT_URL", &c.Rabbit.Url)
	if err := num("CACHE_SIZE", &c.CacheSize); err != nil {
		return err
	}
	if err := num("SESSION_LIMIT", &c.SessionLimit); err != nil {
		return err
	}
	return num("REDIS_DB", &c.Redis.Db)
}
