package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"aiorder/internal/aggregate"
	"aiorder/internal/models"
	"aiorder/internal/shard"
)

func (s *Service) GetProductType(ctx context.Context, companyID, storeID, orderDate string) (models.ProductTypeSummary, error) {
	if companyID == "" {
		return models.ProductTypeSummary{}, invalidArgument("company id is required")
	}
	partition, err := shard.Resolve(storeID)
	if err != nil {
		return models.ProductTypeSummary{}, &Error{Kind: ErrInvalidArgument, Err: err}
	}

	rows, err := s.statusRows(ctx, partition, companyID, storeID, orderDate)
	if err != nil {
		return models.ProductTypeSummary{}, err
	}

	counters := aggregate.ProductTypes(rows)
	return models.ProductTypeSummary{
		CompanyID:   companyID,
		StoreID:     storeID,
		OrderDate:   orderDate,
		ProductType: counters.Slice(),
	}, nil
}

// statusRows reads the status rows of a store day. When the partition holds
// none, it is seeded from the schedule source and read exactly once more.
func (s *Service) statusRows(ctx context.Context, partition, companyID, storeID, orderDate string) ([]models.StatusRow, error) {
	rows, err := s.ListStatusRows(ctx, partition, companyID, storeID, orderDate).Unpack()
	if err != nil {
		return nil, dbError(err)
	}
	if len(rows) > 0 {
		return rows, nil
	}

	if err := s.seedPartition(ctx, partition, companyID, storeID, orderDate); err != nil {
		return nil, err
	}

	rows, err = s.ListStatusRows(ctx, partition, companyID, storeID, orderDate).Unpack()
	if err != nil {
		return nil, dbError(err)
	}
	return rows, nil
}

func (s *Service) seedPartition(ctx context.Context, partition, companyID, storeID, orderDate string) error {
	src, err := rowsOrNotFound(s.ListSourceOrderGroups(ctx, orderDate, storeID))
	if err != nil {
		return err
	}

	inserted, err := s.InsertOrderGroups(ctx, partition, aggregate.SeedRows(companyID, src)).Unpack()
	if err != nil {
		return dbError(err)
	}
	s.metrics.PartitionSeeded.Inc()

	logrus.WithFields(logrus.Fields{
		"partition": partition,
		"companyId": companyID,
		"storeId":   storeID,
		"orderDate": orderDate,
		"source":    len(src),
		"inserted":  inserted,
	}).Info("partition seeded from order group schedule")
	return nil
}
