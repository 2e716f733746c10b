package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/specialistvlad/compgrid/internal/component"
	"github.com/specialistvlad/compgrid/internal/ctxlog"
)

// ExecInput defines the arguments for the sql_exec kind.
type ExecInput struct {
	Statement string   `hcl:"statement"`
	Args      []string `hcl:"args,optional"`
}

// DBProvider is satisfied by the sqlite component.
type DBProvider interface {
	DB() (*sql.DB, error)
}

// Exec runs one statement when run and records the affected row count.
type Exec struct {
	input *ExecInput
	db    DBProvider

	RowsAffected int64
}

func newExec(_ context.Context, input *ExecInput, deps component.Deps) (any, error) {
	db, err := component.Get[DBProvider](deps, "db")
	if err != nil {
		return nil, err
	}
	if input.Statement == "" {
		return nil, errors.New("sql_exec statement cannot be empty")
	}
	return &Exec{input: input, db: db}, nil
}

// Run executes the statement.
func (e *Exec) Run(ctx context.Context) error {
	db, err := e.db.DB()
	if err != nil {
		return err
	}

	args := make([]any, len(e.input.Args))
	for i, a := range e.input.Args {
		args[i] = a
	}

	res, err := db.ExecContext(ctx, e.input.Statement, args...)
	if err != nil {
		return fmt.Errorf("failed to execute statement: %w", err)
	}
	e.RowsAffected, err = res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	ctxlog.FromContext(ctx).Info("SQL statement executed", "rows_affected", e.RowsAffected)
	return nil
}

func (e *Exec) String() string {
	return fmt.Sprintf("sql_exec(rows_affected=%d)", e.RowsAffected)
}
