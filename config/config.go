package config

import (
	"io/ioutil"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config is the feedsync configuration
type Config struct {
	Log     Log     `toml:"log"`
	Remote  Remote  `toml:"remote"`
	Timeout Timeout `toml:"timeout"`
	Feed    Feed    `toml:"feed"`
	Notify  Notify  `toml:"notify"`
	Trigger Trigger `toml:"trigger"`
	Token   Token   `toml:"token"`
}

// Read loads the config data from the given path
func Read(path string) (Config, error) {
	c, err := defaultConfig()

	if err != nil {
		return Config{}, errors.WithMessage(err, "initializing default config")
	}

	if path != "" {
		b, err := ioutil.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrapf(err, "reading config from %s", path)
		}

		if err = toml.Unmarshal(b, &c); err != nil {
			return Config{}, errors.Wrapf(err, "unmarshaling toml config from %s", path)
		}
	}

	for _, c := range []converter{&c.Timeout, &c.Feed, &c.Notify, &c.Trigger} {
		c.convert()
	}

	return c, nil
}
