// internal/config/database.go
package config

import (
	"fmt"
)

type DatabaseConfig struct {
	URI            string
	Host           string
	Port           string
	User           string
	Password       string
	Database       string
	ConnectTimeout int
	DataPath       string
}

// ConnectionURI returns the configured URI as-is, or builds one from the
// individual host fields when no full URI was supplied.
func (d *DatabaseConfig) ConnectionURI() string {
	if d.URI != "" {
		return d.URI
	}
	if d.User != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s", d.User, d.Password, d.Host, d.Port)
	}
	return fmt.Sprintf("mongodb://%s:%s", d.Host, d.Port)
}
