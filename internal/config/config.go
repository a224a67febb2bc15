// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package config loads flywatch's HCL configuration. The file is only ever
// read; settings changed from the TUI live in memory (see Store).
package config

import (
	"grimm.is/flywatch/internal/logging"
	"grimm.is/flywatch/internal/page"
)

// Config is the top-level structure of flywatch.hcl.
type Config struct {
	// UI language for the TUI ("en", "it", "de"). HTTP clients pick their
	// own through Accept-Language.
	// @default: "en"
	Language string `hcl:"language,optional" json:"language,omitempty"`

	Notifications *NotificationsConfig `hcl:"notifications,block" json:"notifications,omitempty"`
	API           *APIConfig           `hcl:"api,block" json:"api,omitempty"`
	SSH           *SSHConfig           `hcl:"ssh,block" json:"ssh,omitempty"`
	Logging       *LoggingConfig       `hcl:"logging,block" json:"logging,omitempty"`
	GeoIP         *GeoIPConfig         `hcl:"geoip,block" json:"geoip,omitempty"`
}

// NotificationsConfig selects which alerts the detection engine raises.
// An absent threshold disables that alert.
type NotificationsConfig struct {
	// Packets per second above which a packets alert fires.
	PacketsThreshold *uint32 `hcl:"packets_threshold,optional" json:"packets_threshold,omitempty"`
	// Bytes per second above which a bytes alert fires.
	BytesThreshold *uint32 `hcl:"bytes_threshold,optional" json:"bytes_threshold,omitempty"`
	// Notify when a favorite host exchanges data.
	NotifyOnFavorite bool `hcl:"notify_on_favorite,optional" json:"notify_on_favorite"`
}

// Thresholds converts the block into the page's view of it. A nil receiver
// means nothing is configured.
func (n *NotificationsConfig) Thresholds() page.Thresholds {
	if n == nil {
		return page.Thresholds{}
	}
	t := page.Thresholds{FavoriteNotify: n.NotifyOnFavorite}
	if n.PacketsThreshold != nil {
		v := *n.PacketsThreshold
		t.PacketsThreshold = &v
	}
	if n.BytesThreshold != nil {
		v := *n.BytesThreshold
		t.BytesThreshold = &v
	}
	return t
}

// Clone returns a deep copy.
func (n *NotificationsConfig) Clone() *NotificationsConfig {
	if n == nil {
		return nil
	}
	t := n.Thresholds()
	return &NotificationsConfig{
		PacketsThreshold: t.PacketsThreshold,
		BytesThreshold:   t.BytesThreshold,
		NotifyOnFavorite: n.NotifyOnFavorite,
	}
}

// APIConfig configures the HTTP ingest and query API.
type APIConfig struct {
	Enabled bool `hcl:"enabled,optional" json:"enabled"`
	// @default: ":8787"
	Listen string `hcl:"listen,optional" json:"listen,omitempty"`
}

// LoggingConfig configures the process logger.
type LoggingConfig struct {
	// @enum: debug, info, warn, error
	// @default: "info"
	Level  string        `hcl:"level,optional" json:"level,omitempty"`
	JSON   bool          `hcl:"json,optional" json:"json,omitempty"`
	Syslog *SyslogConfig `hcl:"syslog,block" json:"syslog,omitempty"`
}

// SyslogConfig forwards log lines to a remote syslog server.
type SyslogConfig struct {
	Enabled  bool   `hcl:"enabled,optional" json:"enabled"`
	Host     string `hcl:"host" json:"host"`
	Port     int    `hcl:"port,optional" json:"port,omitempty"`
	Protocol string `hcl:"protocol,optional" json:"protocol,omitempty"`
	Tag      string `hcl:"tag,optional" json:"tag,omitempty"`
	Facility int    `hcl:"facility,optional" json:"facility,omitempty"`
}

// LoggerConfig maps the block onto logging.Config.
func (l *LoggingConfig) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	if l == nil {
		return cfg
	}
	cfg.Level = logging.ParseLevel(l.Level)
	cfg.JSON = l.JSON
	if s := l.Syslog; s != nil {
		cfg.Syslog = logging.SyslogConfig{
			Enabled:  s.Enabled,
			Host:     s.Host,
			Port:     s.Port,
			Protocol: s.Protocol,
			Tag:      s.Tag,
			Facility: s.Facility,
		}
	}
	return cfg
}

// GeoIPConfig points at MaxMind databases used to enrich favorite-host
// events that arrive with an IP address only. Both are optional.
type GeoIPConfig struct {
	CountryDB string `hcl:"country_db,optional" json:"country_db,omitempty"`
	ASNDB     string `hcl:"asn_db,optional" json:"asn_db,omitempty"`
}

const (
	DefaultAPIListen = ":8787"
	DefaultSSHPort   = 2323
)

// Default returns the configuration used when no file is given: API on,
// SSH off, nothing configured for notifications.
func Default() *Config {
	return &Config{
		Language:      "en",
		Notifications: &NotificationsConfig{},
		API:           &APIConfig{Enabled: true, Listen: DefaultAPIListen},
		SSH:           &SSHConfig{Port: DefaultSSHPort, HostKeyPath: DefaultSSHHostKeyPath},
		Logging:       &LoggingConfig{Level: "info"},
		GeoIP:         &GeoIPConfig{},
	}
}

// applyDefaults fills blocks the file left out.
func (c *Config) applyDefaults() {
	d := Default()
	if c.Language == "" {
		c.Language = d.Language
	}
	if c.Notifications == nil {
		c.Notifications = d.Notifications
	}
	if c.API == nil {
		c.API = d.API
	}
	if c.API.Listen == "" {
		c.API.Listen = DefaultAPIListen
	}
	if c.SSH == nil {
		c.SSH = d.SSH
	}
	if c.SSH.Port == 0 {
		c.SSH.Port = DefaultSSHPort
	}
	if c.SSH.HostKeyPath == "" {
		c.SSH.HostKeyPath = DefaultSSHHostKeyPath
	}
	if c.Logging == nil {
		c.Logging = d.Logging
	}
	if c.GeoIP == nil {
		c.GeoIP = d.GeoIP
	}
}
