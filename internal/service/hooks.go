package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"aiorder/internal/models"
)

// PostCommitHook is notified once a batch is committed in both stores.
type PostCommitHook interface {
	AfterCommit(ctx context.Context, receipt models.SaveReceipt, orders []models.SubmittedOrder) error
}

type HookFunc func(ctx context.Context, receipt models.SaveReceipt, orders []models.SubmittedOrder) error

func (f HookFunc) AfterCommit(ctx context.Context, receipt models.SaveReceipt, orders []models.SubmittedOrder) error {
	return f(ctx, receipt, orders)
}

// runHooks never fails the save; hook errors are logged and counted.
func (s *Service) runHooks(ctx context.Context, receipt models.SaveReceipt, orders []models.SubmittedOrder) {
	for _, h := range s.hooks {
		if err := h.AfterCommit(ctx, receipt, orders); err != nil {
			s.metrics.PostCommitFailed.Inc()
			logrus.WithError(&Error{Kind: ErrWriteFailure, Err: err}).
				WithField("orderReceiptNo", receipt.OrderReceiptNo).
				Error("post-commit hook failed")
		}
	}
}
