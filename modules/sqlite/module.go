// Package sqlite provides a SQLite database component and a statement
// runner that executes against it.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/specialistvlad/compgrid/internal/component"
	"github.com/specialistvlad/compgrid/internal/ctxlog"
	"github.com/specialistvlad/compgrid/internal/registry"
)

// ErrNotOpen is returned when the database is used outside its scope.
var ErrNotOpen = errors.New("sqlite database is not open")

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for the sqlite kind.
type Input struct {
	// Path is a file path or a go-sqlite3 DSN such as "file::memory:?cache=shared".
	Path string `hcl:"path"`
	// Init statements run once, in order, right after the database opens.
	Init []string `hcl:"init,optional"`
}

// Database owns a *sql.DB for the lifetime of its scope.
type Database struct {
	input *Input

	mu sync.RWMutex
	db *sql.DB
}

func newDatabase(_ context.Context, input *Input, _ component.Deps) (any, error) {
	if input.Path == "" {
		return nil, errors.New("sqlite path cannot be empty")
	}
	return &Database{input: input}, nil
}

// Open connects, verifies the connection and runs the init statements.
func (d *Database) Open(ctx context.Context) (any, error) {
	logger := ctxlog.FromContext(ctx).With("path", d.input.Path)

	db, err := sql.Open("sqlite3", d.input.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to sqlite database: %w", err)
	}

	for i, stmt := range d.input.Init {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("init statement %d failed: %w", i, err)
		}
	}
	logger.Debug("SQLite database ready.", "init_statements", len(d.input.Init))

	d.mu.Lock()
	d.db = db
	d.mu.Unlock()
	return d, nil
}

// Close closes the connection pool.
func (d *Database) Close(context.Context) error {
	d.mu.Lock()
	db := d.db
	d.db = nil
	d.mu.Unlock()

	if db == nil {
		return nil
	}
	return db.Close()
}

// DB returns the live connection pool.
func (d *Database) DB() (*sql.DB, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.db == nil {
		return nil, ErrNotOpen
	}
	return d.db, nil
}

func (d *Database) String() string {
	return fmt.Sprintf("sqlite(%s)", d.input.Path)
}

// Register registers the sqlite and sql_exec kinds.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterKind(registry.NewKind("sqlite", "SQLite database connection.", newDatabase))
	r.RegisterKind(registry.NewKind("sql_exec", "Executes one SQL statement against a database.", newExec))
}
