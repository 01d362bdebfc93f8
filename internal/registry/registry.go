// Package registry keeps a persistent record of which symbol owns a GUID, so
// that guidgen can refuse to assign one GUID to two declarations across
// packages and runs.
package registry

import (
	"context"
	"database/sql"

	"github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/pkg/errors"

	"github.com/Lzww0608/guid"
)

var (
	// ErrConflict is returned by Claim when the GUID belongs to another symbol.
	ErrConflict = errors.New("registry: guid already claimed")

	// ErrNotFound is returned by Lookup for an unclaimed GUID.
	ErrNotFound = errors.New("registry: guid not found")
)

// Supported drivers.
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"
)

// Entry is the owner of a GUID.
type Entry struct {
	Guid    guid.Guid
	Package string
	Symbol  string
}

// Store is a database/sql backed registry.
type Store struct {
	db     *sql.DB
	driver string
}

// Open connects to the registry database. driver is DriverMySQL or
// DriverSQLite.
func Open(driver, dsn string) (*Store, error) {
	switch driver {
	case DriverMySQL:
		cfg, err := mysql.ParseDSN(dsn)
		if err != nil {
			return nil, errors.Wrap(err, "registry: parse mysql dsn")
		}
		connector, err := mysql.NewConnector(cfg)
		if err != nil {
			return nil, errors.Wrap(err, "registry: mysql connector")
		}
		return &Store{db: sql.OpenDB(connector), driver: driver}, nil
	case DriverSQLite:
		db, err := sql.Open(driver, dsn)
		if err != nil {
			return nil, errors.Wrap(err, "registry: open sqlite")
		}
		// every connection to :memory: is a separate database
		db.SetMaxOpenConns(1)
		return &Store{db: db, driver: driver}, nil
	default:
		return nil, errors.Errorf("registry: unsupported driver %q", driver)
	}
}

// Init creates the registry table if it does not exist.
func (s *Store) Init(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS guid_registry (
		guid    CHAR(36)     NOT NULL PRIMARY KEY,
		package VARCHAR(255) NOT NULL,
		symbol  VARCHAR(255) NOT NULL
	)`)
	return errors.Wrap(err, "registry: create table")
}

// Claim records e. Claiming a GUID again for the same package and symbol is
// a no-op; claiming it for anything else returns an error wrapping
// ErrConflict.
func (s *Store) Claim(ctx context.Context, e Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "registry: begin")
	}
	defer tx.Rollback()

	prev, err := lookup(ctx, tx, e.Guid)
	switch {
	case err == nil:
		if prev.Package == e.Package && prev.Symbol == e.Symbol {
			return nil
		}
		return errors.Wrapf(ErrConflict, "%s owned by %s.%s", e.Guid, prev.Package, prev.Symbol)
	case !errors.Is(err, ErrNotFound):
		return err
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO guid_registry (guid, package, symbol) VALUES (?, ?, ?)",
		e.Guid, e.Package, e.Symbol); err != nil {
		return errors.Wrap(err, "registry: insert")
	}
	return errors.Wrap(tx.Commit(), "registry: commit")
}

// Lookup returns the owner of g.
func (s *Store) Lookup(ctx context.Context, g guid.Guid) (Entry, error) {
	return lookup(ctx, s.db, g)
}

// Release removes the claim on g, if any.
func (s *Store) Release(ctx context.Context, g guid.Guid) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM guid_registry WHERE guid = ?", g)
	return errors.Wrap(err, "registry: delete")
}

// Driver returns the database driver name.
func (s *Store) Driver() string {
	return s.driver
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

func lookup(ctx context.Context, q queryer, g guid.Guid) (Entry, error) {
	var e Entry
	err := q.QueryRowContext(ctx,
		"SELECT guid, package, symbol FROM guid_registry WHERE guid = ?", g).
		Scan(&e.Guid, &e.Package, &e.Symbol)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, errors.Wrapf(ErrNotFound, "%s", g)
	}
	if err != nil {
		return Entry{}, errors.Wrap(err, "registry: query")
	}
	return e, nil
}
