package mongodb

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"aiorder/internal/models"
	"aiorder/internal/result"
)

const OrderedGroupCollection = "orderedgroups"

var OrderedGroupIndexes = []mongo.IndexModel{
	{
		Keys: bson.D{
			{Key: "companyId", Value: 1},
			{Key: "storeId", Value: 1},
			{Key: "orderDate", Value: 1},
			{Key: "orderGroupCode", Value: 1},
		},
		Options: options.Index().SetName("uniq_company_store_date_group").SetUnique(true),
	},
}

type OrderedGroupRepo struct {
	coll *mongo.Collection
}

func NewOrderedGroupRepo(coll *mongo.Collection) *OrderedGroupRepo {
	return &OrderedGroupRepo{coll: coll}
}

func (r *OrderedGroupRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, OrderedGroupIndexes)
	return errors.Wrap(err, "create ordered group indexes")
}

func (r *OrderedGroupRepo) StartSession(ctx context.Context) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "start session")
	}
	sess, err := r.coll.Database().Client().StartSession()
	if err != nil {
		return nil, errors.Wrap(err, "start session")
	}
	return &Session{coll: r.coll, sess: sess}, nil
}

// FindOrderedGroup reads a saved order group outside any session.
func (r *OrderedGroupRepo) FindOrderedGroup(ctx context.Context, key models.OrderedGroupKey) result.Result[models.OrderedGroup] {
	var doc models.OrderedGroup
	err := r.coll.FindOne(ctx, key).Decode(&doc)
	return result.Of(doc, err).Annotate("find ordered group %s", key.OrderGroupCode)
}

// Session is one client session. All writes made through it between
// StartTransaction and Commit/Abort belong to the same transaction.
type Session struct {
	coll *mongo.Collection
	sess mongo.Session
}

func (s *Session) StartTransaction() error {
	opts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())
	return errors.Wrap(s.sess.StartTransaction(opts), "start transaction")
}

// Upsert stores the product list of order under its natural key. Header
// fields are written only when the document is first created.
func (s *Session) Upsert(ctx context.Context, order models.SubmittedOrder) result.Result[models.OrderedGroup] {
	sctx := mongo.NewSessionContext(ctx, s.sess)

	productList := order.ProductList
	if productList == nil {
		productList = []models.LineItem{}
	}
	update := bson.M{
		"$setOnInsert": bson.M{
			"vendorCode": order.VendorCode,
			"hoFileExt":  order.HoFileExt,
			"hoDataType": order.HoDataType,
			"hoDocNo":    order.HoDocNo,
			"roundInd":   order.RoundInd,
		},
		"$set": bson.M{"productList": productList},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc models.OrderedGroup
	err := s.coll.FindOneAndUpdate(sctx, order.Key(), update, opts).Decode(&doc)
	return result.Of(doc, err).Annotate("upsert ordered group %s", order.OrderGroupCode)
}

func (s *Session) CommitTransaction(ctx context.Context) error {
	return errors.Wrap(s.sess.CommitTransaction(ctx), "commit transaction")
}

func (s *Session) AbortTransaction(ctx context.Context) error {
	return errors.Wrap(s.sess.AbortTransaction(ctx), "abort transaction")
}

func (s *Session) EndSession(ctx context.Context) {
	s.sess.EndSession(ctx)
}
