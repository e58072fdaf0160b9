package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

func defaultConfig() (Config, error) {
	var def Config

	err := toml.Unmarshal([]byte(DefaultCfg), &def)

	if err != nil {
		return Config{}, errors.Wrap(err, "parsing default config")
	}

	return def, nil
}

// DefaultCfg shows the default configuration of the feedsync engine
var DefaultCfg = `
[log]
	level = "info"     # error, info, debug
	file = "-"         # stderr, or a filename
	formatter = "text" # text, json
[remote]
	url = "http://localhost:8283/api"
	sort = "publishedAt"
	order = "desc"
[timeout]
	connect = "1s"
	read-write = "10s"
[feed]
	page-size = 10
	stats-ttl = "5m"
[notify]
	duration = "5s"
	error-duration = "8s"
[trigger]
	setup-retries = 5
	setup-delay = "100ms"
[token]
	storage-path = "./storage/token.db"
`
