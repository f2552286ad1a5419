package postgres

import (
	"context"

	"github.com/pkg/errors"

	"aiorder/internal/models"
	"aiorder/internal/result"
)

type OrderGroupPostgresRepo struct {
	gw *Gateway
}

func NewOrderGroupPostgres(gw *Gateway) *OrderGroupPostgresRepo {
	return &OrderGroupPostgresRepo{gw: gw}
}

func (r *OrderGroupPostgresRepo) ListOrderGroups(ctx context.Context, partition string, q models.OrderGroupQuery) result.Result[[]models.OrderGroupRow] {
	table, err := partitionIdent(partition)
	if err != nil {
		return result.Fail[[]models.OrderGroupRow](err)
	}
	conn, err := r.gw.Acquire(ctx)
	if err != nil {
		return result.Fail[[]models.OrderGroupRow](err)
	}
	defer conn.Release()

	return Select[models.OrderGroupRow](conn, selectOrderGroupList(table),
		q.CompanyID, q.StoreID, q.OrderDate, q.ProductType).
		Annotate("select order groups from %s", partition)
}

func (r *OrderGroupPostgresRepo) ListStatusRows(ctx context.Context, partition, companyID, storeID, orderDate string) result.Result[[]models.StatusRow] {
	table, err := partitionIdent(partition)
	if err != nil {
		return result.Fail[[]models.StatusRow](err)
	}
	conn, err := r.gw.Acquire(ctx)
	if err != nil {
		return result.Fail[[]models.StatusRow](err)
	}
	defer conn.Release()

	return Select[models.StatusRow](conn, groupByProductType(table), companyID, storeID, orderDate).
		Annotate("group product types in %s", partition)
}

// InsertOrderGroups bulk-inserts rows; rows already present for the same
// company, store, date and group are skipped, so the call is safe to repeat.
func (r *OrderGroupPostgresRepo) InsertOrderGroups(ctx context.Context, partition string, rows []models.PartitionRow) result.Result[int64] {
	table, err := partitionIdent(partition)
	if err != nil {
		return result.Fail[int64](err)
	}
	if len(rows) == 0 {
		return result.Ok[int64](0)
	}
	conn, err := r.gw.Acquire(ctx)
	if err != nil {
		return result.Fail[int64](err)
	}
	defer conn.Release()

	if err := conn.Begin(ctx); err != nil {
		return result.Fail[int64](err)
	}
	var total int64
	for start := 0; start < len(rows); start += insertChunk {
		end := min(start+insertChunk, len(rows))
		args := make([]any, 0, (end-start)*len(models.PartitionColumns))
		for _, row := range rows[start:end] {
			args = append(args, row.Values()...)
		}
		res := conn.Exec(insertOrderGroup(table, end-start), args...)
		if res.Failed() {
			_ = conn.Rollback()
			return res.Annotate("insert order groups into %s", partition)
		}
		total += res.Data
	}
	if err := conn.Commit(); err != nil {
		return result.Fail[int64](errors.Wrapf(err, "insert order groups into %s", partition))
	}
	return result.Ok(total)
}

func (r *OrderGroupPostgresRepo) BeginStatusTx(ctx context.Context) (*StatusTx, error) {
	conn, err := r.gw.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	if err := conn.Begin(ctx); err != nil {
		conn.Release()
		return nil, err
	}
	return &StatusTx{conn: conn}, nil
}

// StatusTx marks order groups as sent inside one relational transaction.
type StatusTx struct {
	conn *Conn
}

func (t *StatusTx) MarkSent(key models.OrderStatusKey, sendDate string) result.Result[int64] {
	table, err := partitionIdent(key.Partition)
	if err != nil {
		return result.Fail[int64](err)
	}
	return t.conn.Exec(updateOrderStatus(table),
		sendDate, key.CompanyID, key.StoreID, key.OrderGroupCode, key.OrderDate).
		Annotate("update order status in %s", key.Partition)
}

func (t *StatusTx) Commit() error   { return t.conn.Commit() }
func (t *StatusTx) Rollback() error { return t.conn.Rollback() }
func (t *StatusTx) Release()        { t.conn.Release() }
