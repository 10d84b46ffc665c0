package config

import (
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
)

// ChatDBConfig for the external Messages chat database
type ChatDBConfig struct {
	Path string `mapstructure:"path"`
}

// ResolvedPath returns the configured path, defaulting to the Messages
// database in the user's home directory.
func (c ChatDBConfig) ResolvedPath() string {
	if c.Path != "" {
		return c.Path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "Library", "Messages", "chat.db")
}

// DSN returns a read-only, immutable data source name, safe to use while
// Messages.app holds the database open.
func (c ChatDBConfig) DSN() string {
	return "file:" + c.ResolvedPath() + "?immutable=1&mode=ro"
}

// Open opens the chat database lazily: a missing or unreadable database
// surfaces as a query-time error, which the reply oracle treats as
// "no reply observed".
func (c ChatDBConfig) Open() (*sqlx.DB, error) {
	return sqlx.Open("sqlite", c.DSN())
}
