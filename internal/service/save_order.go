package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"aiorder/internal/models"
	"aiorder/internal/repository"
	"aiorder/internal/shard"
)

const (
	dateLayout     = "2006-01-02"
	sendDataLayout = "2006-01-02:15:04:05"

	// cleanupTimeout bounds abort and rollback once the save context is done.
	cleanupTimeout = 5 * time.Second
)

// SaveOrder persists a batch of order groups for one store day. Each order is
// upserted into the document store and marked sent in its partition, one order
// at a time, inside one transaction per store. The document transaction commits
// first; if the relational commit then fails the receipt reports
// DocumentCommitted without RelationalCommitted.
func (s *Service) SaveOrder(ctx context.Context, companyID string, orders []models.SubmittedOrder) (models.SaveReceipt, error) {
	batch, err := s.prepareBatch(companyID, orders)
	if err != nil {
		return models.SaveReceipt{}, err
	}
	head := batch[0]
	partition, err := shard.Resolve(head.StoreID)
	if err != nil {
		return models.SaveReceipt{}, &Error{Kind: ErrInvalidArgument, Err: err}
	}

	if s.saveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.saveTimeout)
		defer cancel()
	}

	timer := prometheus.NewTimer(s.metrics.SaveLatencySec)
	defer timer.ObserveDuration()

	now := s.now()
	receipt := models.SaveReceipt{
		CompanyID: companyID,
		StoreID:   head.StoreID,
		OrderDate: head.OrderDate,
	}
	if err := s.commitBatch(ctx, partition, batch, now.Format(dateLayout), &receipt); err != nil {
		s.metrics.SaveAborted.Inc()
		return receipt, err
	}
	s.metrics.SaveCommitted.Inc()

	receipt.OrderReceiptNo = receiptNumber(head.OrderDate, head.StoreID, len(batch))
	receipt.SendDataDateTime = now.Format(sendDataLayout)

	if s.cache != nil {
		s.cache.Invalidate(companyID, head.StoreID, head.OrderDate)
	}
	s.runHooks(ctx, receipt, batch)
	return receipt, nil
}

// prepareBatch stamps companyID on every order and checks that the batch is a
// non-empty set of valid orders for a single store day.
func (s *Service) prepareBatch(companyID string, orders []models.SubmittedOrder) ([]models.SubmittedOrder, error) {
	if companyID == "" {
		return nil, invalidArgument("company id is required")
	}
	if len(orders) == 0 {
		return nil, invalidArgument("order batch is empty")
	}

	batch := make([]models.SubmittedOrder, len(orders))
	for i, o := range orders {
		switch o.CompanyID {
		case "":
			o.CompanyID = companyID
		case companyID:
		default:
			return nil, invalidArgument("order %d belongs to company %q, not %q", i, o.CompanyID, companyID)
		}
		if o.StoreID != orders[0].StoreID || o.OrderDate != orders[0].OrderDate {
			return nil, invalidArgument("order %d is for store %s on %s, batch is for store %s on %s",
				i, o.StoreID, o.OrderDate, orders[0].StoreID, orders[0].OrderDate)
		}
		if err := s.v.Struct(o); err != nil {
			return nil, validationError(err)
		}
		batch[i] = o
	}
	return batch, nil
}

func (s *Service) commitBatch(ctx context.Context, partition string, batch []models.SubmittedOrder, sendDate string, receipt *models.SaveReceipt) error {
	tx, err := s.BeginStatusTx(ctx)
	if err != nil {
		return dbError(err)
	}
	defer tx.Release()

	sess, err := s.StartSession(ctx)
	if err != nil {
		s.rollback(ctx, tx, nil, err)
		return dbError(err)
	}
	defer sess.EndSession(context.WithoutCancel(ctx))

	if err := sess.StartTransaction(); err != nil {
		s.rollback(ctx, tx, nil, err)
		return dbError(err)
	}

	for _, order := range batch {
		if err := s.saveOne(ctx, tx, sess, partition, order, sendDate); err != nil {
			s.rollback(ctx, tx, sess, err)
			return dbError(err)
		}
	}

	if err := sess.CommitTransaction(ctx); err != nil {
		s.rollback(ctx, tx, sess, err)
		return dbError(err)
	}
	receipt.DocumentCommitted = true

	if err := tx.Commit(); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"companyId": receipt.CompanyID,
			"storeId":   receipt.StoreID,
			"orderDate": receipt.OrderDate,
		}).Error("relational commit failed after document commit")
		s.rollback(ctx, tx, nil, err)
		return dbError(err)
	}
	receipt.RelationalCommitted = true
	return nil
}

func (s *Service) saveOne(ctx context.Context, tx repository.StatusTx, sess repository.DocumentSession, partition string, order models.SubmittedOrder, sendDate string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := sess.Upsert(ctx, order).Err; err != nil {
		return err
	}

	key := models.OrderStatusKey{
		CompanyID:      order.CompanyID,
		StoreID:        order.StoreID,
		OrderGroupCode: order.OrderGroupCode,
		OrderDate:      order.OrderDate,
		Partition:      partition,
	}
	affected, err := tx.MarkSent(key, sendDate).Unpack()
	if err != nil {
		return err
	}
	if affected == 0 {
		logrus.WithFields(logrus.Fields{
			"partition":      partition,
			"storeId":        order.StoreID,
			"orderDate":      order.OrderDate,
			"orderGroupCode": order.OrderGroupCode,
		}).Warn("no order status row to mark sent")
	}
	return nil
}

// rollback aborts sess (when given) and rolls back tx. It runs on a context
// detached from ctx so that a timed-out save still cleans up.
func (s *Service) rollback(ctx context.Context, tx repository.StatusTx, sess repository.DocumentSession, cause error) {
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()

	log := logrus.WithField("cause", cause.Error())
	log.Warn("save order rolled back")

	if sess != nil {
		if err := sess.AbortTransaction(cctx); err != nil {
			log.WithError(err).Error("abort document transaction")
		}
	}
	if err := tx.Rollback(); err != nil {
		log.WithError(err).Error("rollback relational transaction")
	}
}

// receiptNumber is MMDD of the order date, the store id and the two-digit
// number of order groups saved.
func receiptNumber(orderDate, storeID string, groups int) string {
	mmdd := strings.ReplaceAll(orderDate[5:], "-", "")
	return fmt.Sprintf("%s%s%02d", mmdd, storeID, groups)
}
