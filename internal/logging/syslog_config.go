// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package logging

// SyslogConfig describes an optional remote syslog sink.
type SyslogConfig struct {
	Enabled  bool
	Host     string
	Port     int    // default 514
	Protocol string // udp or tcp, default udp
	Tag      string // default flywatch
	Facility int    // syslog facility number, default 1 (user)
}

// DefaultSyslogConfig is disabled and points at the standard port.
func DefaultSyslogConfig() SyslogConfig {
	return SyslogConfig{
		Port:     514,
		Protocol: "udp",
		Tag:      "flywatch",
		Facility: 1,
	}
}

func (c SyslogConfig) withDefaults() SyslogConfig {
	d := DefaultSyslogConfig()
	if c.Port == 0 {
		c.Port = d.Port
	}
	if c.Protocol == "" {
		c.Protocol = d.Protocol
	}
	if c.Tag == "" {
		c.Tag = d.Tag
	}
	if c.Facility == 0 {
		c.Facility = d.Facility
	}
	return c
}
