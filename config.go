package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net"
	"time"

	"github.com/hjson/hjson-go"

	"github.com/9seconds/cartographer/cartolib"
	"github.com/9seconds/cartographer/resolvers"
)

const (
	DefaultHTTPTimeout = 10 * time.Second

	// One request a second, no bursts: the reference cooldown of
	// free geolocation APIs.
	DefaultRateLimitInterval = time.Second
	DefaultRateLimitBurst    = 1

	DefaultListen = "127.0.0.1:8000"
)

type duration struct {
	time.Duration
}

func (d *duration) UnmarshalJSON(b []byte) error {
	var v interface{}

	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("cannot unmarshal duration: %w", err)
	}

	vv, ok := v.(string)
	if !ok {
		return fmt.Errorf("incorrect duration: %v", v)
	}

	dur, err := time.ParseDuration(vv)
	if err != nil {
		return fmt.Errorf("cannot parse duration: %w", err)
	}

	d.Duration = dur

	return nil
}

type config struct {
	Listen            string   `json:"listen"`
	Resolver          string   `json:"resolver"`
	DatabasePath      string   `json:"database_path"`
	RemoteURL         string   `json:"remote_url"`
	HTTPTimeout       duration `json:"http_timeout"`
	RateLimitInterval duration `json:"rate_limit_interval"`
	RateLimitBurst    uint     `json:"rate_limit_burst"`
	CacheSize         uint     `json:"cache_size"`
	AuthUser          string   `json:"auth_user"`
	AuthPassword      string   `json:"auth_password"`
}

func (c config) GetListen() string {
	if c.Listen != "" {
		return c.Listen
	}

	return DefaultListen
}

func (c config) GetResolver() string {
	if c.Resolver != "" {
		return c.Resolver
	}

	return resolvers.NameLocal
}

func (c config) GetDatabasePath() string {
	return c.DatabasePath
}

func (c config) GetRemoteURL() string {
	return c.RemoteURL
}

func (c config) GetHTTPTimeout() time.Duration {
	if c.HTTPTimeout.Duration == 0 {
		return DefaultHTTPTimeout
	}

	return c.HTTPTimeout.Duration
}

func (c config) GetRateLimitInterval() time.Duration {
	if c.RateLimitInterval.Duration == 0 {
		return DefaultRateLimitInterval
	}

	return c.RateLimitInterval.Duration
}

func (c config) GetRateLimitBurst() int {
	if c.RateLimitBurst == 0 {
		return DefaultRateLimitBurst
	}

	return int(c.RateLimitBurst)
}

func (c config) GetAuthUser() string {
	return c.AuthUser
}

func (c config) GetAuthPassword() string {
	return c.AuthPassword
}

func (c config) GetCacheSize() int {
	if c.CacheSize == 0 {
		return cartolib.DefaultCacheSize
	}

	return int(c.CacheSize)
}

func parseConfig(path string) (*config, error) {
	content, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read file: %w", err)
	}

	conf := config{}
	rawMap := map[string]interface{}{}

	if err := hjson.Unmarshal(content, &rawMap); err != nil {
		return nil, fmt.Errorf("cannot parse json: %w", err)
	}

	rawBytes, _ := json.Marshal(rawMap)

	if err := json.Unmarshal(rawBytes, &conf); err != nil {
		return nil, fmt.Errorf("incorrect config: %w", err)
	}

	switch conf.GetResolver() {
	case resolvers.NameLocal:
		if conf.GetDatabasePath() == "" {
			return nil, fmt.Errorf("local resolver requires database_path")
		}
	case resolvers.NameRemote:
		if conf.GetRemoteURL() == "" {
			return nil, fmt.Errorf("remote resolver requires remote_url")
		}
	default:
		return nil, fmt.Errorf("unsupported resolver: %s", conf.GetResolver())
	}

	if _, _, err := net.SplitHostPort(conf.GetListen()); err != nil {
		return nil, fmt.Errorf("incorrect host:port for listen: %w", err)
	}

	return &conf, nil
}
