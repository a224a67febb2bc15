// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package config

import (
	"fmt"
	"net"
	"strings"

	"golang.org/x/text/language"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// HasErrors returns true if there are any validation errors.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// Validate validates the entire configuration.
func (c *Config) Validate() ValidationErrors {
	var errs ValidationErrors

	if c.Language != "" {
		if _, err := language.Parse(c.Language); err != nil {
			errs = append(errs, ValidationError{Field: "language", Message: fmt.Sprintf("invalid language tag %q", c.Language)})
		}
	}
	errs = append(errs, c.Notifications.validate()...)
	errs = append(errs, c.validateAPI()...)
	errs = append(errs, c.validateSSH()...)
	errs = append(errs, c.validateLogging()...)

	return errs
}

func (n *NotificationsConfig) validate() ValidationErrors {
	if n == nil {
		return nil
	}
	var errs ValidationErrors
	if n.PacketsThreshold != nil && *n.PacketsThreshold == 0 {
		errs = append(errs, ValidationError{Field: "notifications.packets_threshold", Message: "must be greater than zero"})
	}
	if n.BytesThreshold != nil && *n.BytesThreshold == 0 {
		errs = append(errs, ValidationError{Field: "notifications.bytes_threshold", Message: "must be greater than zero"})
	}
	return errs
}

func (c *Config) validateAPI() ValidationErrors {
	if c.API == nil || !c.API.Enabled {
		return nil
	}
	if _, _, err := net.SplitHostPort(c.API.Listen); err != nil {
		return ValidationErrors{{Field: "api.listen", Message: fmt.Sprintf("invalid address %q", c.API.Listen)}}
	}
	return nil
}

func (c *Config) validateSSH() ValidationErrors {
	if c.SSH == nil || !c.SSH.Enabled {
		return nil
	}
	var errs ValidationErrors
	if c.SSH.Port < 1 || c.SSH.Port > 65535 {
		errs = append(errs, ValidationError{Field: "ssh.port", Message: fmt.Sprintf("port %d out of range", c.SSH.Port)})
	}
	if c.SSH.ListenAddress != "" && net.ParseIP(c.SSH.ListenAddress) == nil {
		errs = append(errs, ValidationError{Field: "ssh.listen_address", Message: "must be an IP address"})
	}
	if c.SSH.AuthorizedKeys == "" {
		ip := net.ParseIP(c.SSH.ListenAddress)
		if ip == nil || !ip.IsLoopback() {
			errs = append(errs, ValidationError{Field: "ssh.authorized_keys", Message: "required unless listening on loopback"})
		}
	}
	return errs
}

func (c *Config) validateLogging() ValidationErrors {
	if c.Logging == nil {
		return nil
	}
	var errs ValidationErrors
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, ValidationError{Field: "logging.level", Message: fmt.Sprintf("unknown level %q", c.Logging.Level)})
	}
	if s := c.Logging.Syslog; s != nil && s.Enabled && s.Host == "" {
		errs = append(errs, ValidationError{Field: "logging.syslog.host", Message: "required when syslog is enabled"})
	}
	return errs
}
