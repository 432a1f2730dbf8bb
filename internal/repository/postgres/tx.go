package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
)

type txKey struct{}

type executor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// txConn serializes statements on one transaction: a single postgres connection cannot run
// two queries at once, while callers such as the branch loader issue them from several goroutines.
type txConn struct {
	mu sync.Mutex
	tx *sqlx.Tx
}

func (c *txConn) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tx.ExecContext(ctx, query, args...)
}

func (c *txConn) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tx.GetContext(ctx, dest, query, args...)
}

func (c *txConn) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tx.SelectContext(ctx, dest, query, args...)
}

// Chk returns the transaction bound to ctx, or the pool when there is none.
func (r *Repository) Chk(ctx context.Context) executor {
	if conn, ok := ctx.Value(txKey{}).(*txConn); ok {
		return conn
	}
	return r.connection
}

func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*txConn); ok {
		return cb(ctx)
	}

	tx, err := r.connection.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}

	if err := cb(context.WithValue(ctx, txKey{}, &txConn{tx: tx})); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}
