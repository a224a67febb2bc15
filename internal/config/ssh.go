// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package config

import (
	"net"
	"strconv"
)

// SSHConfig configures the SSH server that serves the TUI to remote
// operators.
type SSHConfig struct {
	Enabled       bool   `hcl:"enabled,optional" json:"enabled"`
	ListenAddress string `hcl:"listen_address,optional" json:"listen_address,omitempty"` // Default: all interfaces
	Port          int    `hcl:"port,optional" json:"port,omitempty"`                     // Default: 2323
	// HostKeyPath is where the host key is kept. It is generated on first
	// start when missing.
	HostKeyPath string `hcl:"host_key_path,optional" json:"host_key_path,omitempty"`
	// AuthorizedKeys lists the public keys allowed in, OpenSSH format.
	// Without it only loopback listeners are accepted.
	AuthorizedKeys string `hcl:"authorized_keys,optional" json:"authorized_keys,omitempty"`
}

// DefaultSSHHostKeyPath is relative to the working directory.
const DefaultSSHHostKeyPath = "flywatch_host_ed25519"

// Addr is the host:port the server listens on.
func (s *SSHConfig) Addr() string {
	port := s.Port
	if port == 0 {
		port = DefaultSSHPort
	}
	return net.JoinHostPort(s.ListenAddress, strconv.Itoa(port))
}
