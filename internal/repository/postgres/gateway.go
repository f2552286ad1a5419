package postgres

import (
	"context"
	"database/sql"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"aiorder/internal/result"
)

var (
	errReleased = errors.New("postgres: connection already released")
	errNoTx     = errors.New("postgres: no transaction in progress")
)

// Gateway hands out logical connections over a pooled gorm handle.
type Gateway struct {
	db *gorm.DB
}

func NewGateway(db *gorm.DB) *Gateway {
	return &Gateway{db: db}
}

// Acquire checks out a connection. Outside a transaction statements go through
// the pool; after Begin they are pinned to the transaction's connection.
func (g *Gateway) Acquire(ctx context.Context) (*Conn, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "acquire connection")
	}
	return &Conn{db: g.db}, nil
}

type Conn struct {
	db       *gorm.DB
	tx       *gorm.DB
	released bool
}

func (c *Conn) handle() *gorm.DB {
	if c.tx != nil {
		return c.tx
	}
	return c.db
}

func (c *Conn) Begin(ctx context.Context) error {
	if c.released {
		return errReleased
	}
	tx := c.db.BeginTx(ctx, &sql.TxOptions{})
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "begin transaction")
	}
	c.tx = tx
	return nil
}

func (c *Conn) Commit() error {
	if c.tx == nil {
		return errNoTx
	}
	err := c.tx.Commit().Error
	c.tx = nil
	return errors.Wrap(err, "commit")
}

// Rollback is a no-op when no transaction is open.
func (c *Conn) Rollback() error {
	if c.tx == nil {
		return nil
	}
	err := c.tx.Rollback().Error
	c.tx = nil
	return errors.Wrap(err, "rollback")
}

// Release rolls back an unfinished transaction and retires the connection.
// Calling it again has no effect.
func (c *Conn) Release() {
	if c.released {
		return
	}
	if c.tx != nil {
		_ = c.Rollback()
	}
	c.released = true
}

func (c *Conn) Exec(stmt string, args ...any) result.Result[int64] {
	if c.released {
		return result.Fail[int64](errReleased)
	}
	res := c.handle().Exec(stmt, args...)
	return result.Of(res.RowsAffected, res.Error)
}

// Select runs a query on c and scans every row into a T. A query without rows
// yields an empty, non-nil slice.
func Select[T any](c *Conn, stmt string, args ...any) result.Result[[]T] {
	if c.released {
		return result.Fail[[]T](errReleased)
	}
	out := []T{}
	err := c.handle().Raw(stmt, args...).Scan(&out).Error
	if gorm.IsRecordNotFoundError(err) {
		err = nil
	}
	if out == nil {
		out = []T{}
	}
	return result.Of(out, err)
}
