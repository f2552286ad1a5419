package repository

import (
	"context"

	"github.com/jinzhu/gorm"
	"go.mongodb.org/mongo-driver/mongo"

	"aiorder/internal/models"
	"aiorder/internal/repository/mongodb"
	"aiorder/internal/repository/postgres"
	"aiorder/internal/result"
)

// OrderGroupPartition reads and writes the order_group_NNN partitions.
type OrderGroupPartition interface {
	ListOrderGroups(ctx context.Context, partition string, q models.OrderGroupQuery) result.Result[[]models.OrderGroupRow]
	ListStatusRows(ctx context.Context, partition, companyID, storeID, orderDate string) result.Result[[]models.StatusRow]
	InsertOrderGroups(ctx context.Context, partition string, rows []models.PartitionRow) result.Result[int64]
	BeginStatusTx(ctx context.Context) (StatusTx, error)
}

// StatusTx is an open relational transaction on one pooled connection.
// Release returns the connection and must be called exactly once.
type StatusTx interface {
	MarkSent(key models.OrderStatusKey, sendDate string) result.Result[int64]
	Commit() error
	Rollback() error
	Release()
}

// OrderGroupSource is the secondary schedule source used to seed empty partitions.
type OrderGroupSource interface {
	ListSourceOrderGroups(ctx context.Context, orderDate, storeID string) result.Result[[]models.SourceOrderGroup]
}

type OrderedGroupStore interface {
	StartSession(ctx context.Context) (DocumentSession, error)
}

// DocumentSession is a document-store session carrying its own transaction.
type DocumentSession interface {
	StartTransaction() error
	Upsert(ctx context.Context, order models.SubmittedOrder) result.Result[models.OrderedGroup]
	CommitTransaction(ctx context.Context) error
	AbortTransaction(ctx context.Context) error
	EndSession(ctx context.Context)
}

type OrderGroupCache interface {
	Get(q models.OrderGroupQuery) (models.OrderGroupList, bool)
	Put(q models.OrderGroupQuery, list models.OrderGroupList)
	Invalidate(companyID, storeID, orderDate string)
}

type Repository struct {
	OrderGroupPartition
	OrderGroupSource
	OrderedGroupStore
	OrderGroupCache
}

type partitionStore struct {
	*postgres.OrderGroupPostgresRepo
}

func (p partitionStore) BeginStatusTx(ctx context.Context) (StatusTx, error) {
	tx, err := p.OrderGroupPostgresRepo.BeginStatusTx(ctx)
	if err != nil {
		return nil, err
	}
	return tx, nil
}

type documentStore struct {
	*mongodb.OrderedGroupRepo
}

func (d documentStore) StartSession(ctx context.Context) (DocumentSession, error) {
	sess, err := d.OrderedGroupRepo.StartSession(ctx)
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// NewRepository wires the stores. cch may be nil to disable response caching.
func NewRepository(db, source *gorm.DB, orderedGroups *mongo.Collection, cch OrderGroupCache) *Repository {
	return &Repository{
		OrderGroupPartition: partitionStore{postgres.NewOrderGroupPostgres(postgres.NewGateway(db))},
		OrderGroupSource:    postgres.NewOrderGroupSource(postgres.NewGateway(source)),
		OrderedGroupStore:   documentStore{mongodb.NewOrderedGroupRepo(orderedGroups)},
		OrderGroupCache:     cch,
	}
}
