package config

import "time"

type Log struct {
	Level     string `toml:"level"`
	File      string `toml:"file"`
	Formatter string `toml:"formatter"`
}

type Remote struct {
	URL   string `toml:"url"`
	Sort  string `toml:"sort"`
	Order string `toml:"order"`
}

type Timeout struct {
	Connect   string `toml:"connect"`
	ReadWrite string `toml:"read-write"`

	Converted struct {
		Connect   time.Duration
		ReadWrite time.Duration
	} `toml:"-"`
}

type Feed struct {
	PageSize int    `toml:"page-size"`
	StatsTTL string `toml:"stats-ttl"`

	Converted struct {
		StatsTTL time.Duration
	} `toml:"-"`
}

type Notify struct {
	Duration      string `toml:"duration"`
	ErrorDuration string `toml:"error-duration"`

	Converted struct {
		Duration      time.Duration
		ErrorDuration time.Duration
	} `toml:"-"`
}

type Trigger struct {
	SetupRetries int    `toml:"setup-retries"`
	SetupDelay   string `toml:"setup-delay"`

	Converted struct {
		SetupDelay time.Duration
	} `toml:"-"`
}

type Token struct {
	StoragePath string `toml:"storage-path"`
}

type converter interface {
	convert()
}

func (c *Timeout) convert() {
	c.Converted.Connect = durationOr(c.Connect, time.Second)
	c.Converted.ReadWrite = durationOr(c.ReadWrite, 10*time.Second)
}

func (c *Feed) convert() {
	if c.PageSize <= 0 {
		c.PageSize = 10
	}

	c.Converted.StatsTTL = durationOr(c.StatsTTL, 5*time.Minute)
}

func (c *Notify) convert() {
	c.Converted.Duration = durationOr(c.Duration, 5*time.Second)
	c.Converted.ErrorDuration = durationOr(c.ErrorDuration, 8*time.Second)
}

func (c *Trigger) convert() {
	if c.SetupRetries <= 0 {
		c.SetupRetries = 5
	}

	c.Converted.SetupDelay = durationOr(c.SetupDelay, 100*time.Millisecond)
}

func durationOr(value string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}

	return def
}
