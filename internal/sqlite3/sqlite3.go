// Package sqlite3 registers the pure-Go modernc.org/sqlite driver under the
// name the ent sqlite dialect expects. Importing it for side effects lets
// repository tests run against an in-memory database without cgo.
package sqlite3

import (
	"database/sql"
	"database/sql/driver"
	"fmt"

	"modernc.org/sqlite"
)

type sqliteDriver struct {
	*sqlite.Driver
}

type execConn interface {
	Exec(query string, args []driver.Value) (driver.Result, error)
}

// Open enables foreign key enforcement on every new connection. Ent refuses
// to run migrations on sqlite connections without it.
func (d sqliteDriver) Open(name string) (driver.Conn, error) {
	conn, err := d.Driver.Open(name)
	if err != nil {
		return nil, err
	}
	ec, ok := conn.(execConn)
	if !ok {
		_ = conn.Close()
		return nil, fmt.Errorf("sqlite3: connection does not support Exec")
	}
	if _, err := ec.Exec("PRAGMA foreign_keys = ON;", nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("sqlite3: enable foreign keys: %w", err)
	}
	return conn, nil
}

func init() {
	sql.Register("sqlite3", sqliteDriver{Driver: &sqlite.Driver{}})
}
