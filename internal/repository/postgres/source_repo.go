package postgres

import (
	"context"

	"aiorder/internal/models"
	"aiorder/internal/result"
)

// OrderGroupSourceRepo reads the order-group schedule kept outside the partitions.
type OrderGroupSourceRepo struct {
	gw *Gateway
}

func NewOrderGroupSource(gw *Gateway) *OrderGroupSourceRepo {
	return &OrderGroupSourceRepo{gw: gw}
}

func (r *OrderGroupSourceRepo) ListSourceOrderGroups(ctx context.Context, orderDate, storeID string) result.Result[[]models.SourceOrderGroup] {
	conn, err := r.gw.Acquire(ctx)
	if err != nil {
		return result.Fail[[]models.SourceOrderGroup](err)
	}
	defer conn.Release()

	return Select[models.SourceOrderGroup](conn, selectSourceOrderGroups(), orderDate, storeID).
		Annotate("select %s", sourceTable)
}
