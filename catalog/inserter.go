package catalog

import (
	"context"
	"strings"

	"github.com/pkg/errors"
)

// Inserter batches rows for one table into multi-row INSERT statements.
// Rows are sent to the database every 'size' rows, and when Exec is called
// with no arguments.
type Inserter struct {
	ctx     context.Context
	tx      *Tx
	size    int
	table   string
	prefix  string
	columns int
	rows    int
	args    []interface{}
}

// NewInserter returns an inserter into table for the columns given. All
// statements are executed inside tx.
func (db *DB) NewInserter(
	ctx context.Context,
	tx *Tx,
	size int,
	table string,
	columns ...string,
) (*Inserter, error) {
	if size < 1 {
		return nil, ef("batch size must be positive, but got %d", size)
	}
	if len(columns) == 0 {
		return nil, ef("no columns given for inserter into %s", table)
	}
	return &Inserter{
		ctx:     ctx,
		tx:      tx,
		size:    size,
		table:   table,
		prefix:  sf("INSERT INTO %s (%s) VALUES ", table, strings.Join(columns, ", ")),
		columns: len(columns),
	}, nil
}

// Exec adds a row. The number of arguments must match the number of columns.
// Calling Exec with no arguments flushes any pending rows.
func (ins *Inserter) Exec(args ...interface{}) error {
	if len(args) == 0 {
		return ins.flush()
	}
	if len(args) != ins.columns {
		return ef("inserter into %s expects %d values but got %d",
			ins.table, ins.columns, len(args))
	}
	ins.args = append(ins.args, args...)
	ins.rows++
	if ins.rows >= ins.size {
		return ins.flush()
	}
	return nil
}

func (ins *Inserter) flush() error {
	if ins.rows == 0 {
		return nil
	}
	row := "(" + strings.TrimSuffix(strings.Repeat("?, ", ins.columns), ", ") + ")"
	rows := make([]string, ins.rows)
	for i := range rows {
		rows[i] = row
	}
	q := ins.tx.db.Rebind(ins.prefix + strings.Join(rows, ", "))
	if _, err := ins.tx.ExecContext(ins.ctx, q, ins.args...); err != nil {
		return errors.Wrapf(err, "could not insert %d rows into %s",
			ins.rows, ins.table)
	}
	ins.rows, ins.args = 0, ins.args[:0]
	return nil
}
