package service

import (
	"context"

	"aiorder/internal/aggregate"
	"aiorder/internal/models"
	"aiorder/internal/shard"
)

func (s *Service) GetOrderGroupList(ctx context.Context, q models.OrderGroupQuery) (models.OrderGroupList, error) {
	if q.CompanyID == "" {
		return models.OrderGroupList{}, invalidArgument("company id is required")
	}
	if _, ok := models.CategoryFromType(q.ProductType); !ok {
		return models.OrderGroupList{}, invalidArgument("unknown product type %q", q.ProductType)
	}
	partition, err := shard.Resolve(q.StoreID)
	if err != nil {
		return models.OrderGroupList{}, &Error{Kind: ErrInvalidArgument, Err: err}
	}

	if s.cache != nil {
		if list, ok := s.cache.Get(q); ok {
			s.metrics.OrderGroupCacheHit.Inc()
			return list, nil
		}
	}

	rows, err := rowsOrNotFound(s.ListOrderGroups(ctx, partition, q))
	if err != nil {
		return models.OrderGroupList{}, err
	}

	list := models.OrderGroupList{
		CompanyID:   q.CompanyID,
		StoreID:     q.StoreID,
		OrderDate:   q.OrderDate,
		ProductType: q.ProductType,
		VendorList:  aggregate.OrderGroups(rows).Values(),
	}
	if s.cache != nil {
		s.cache.Put(q, list)
	}
	return list, nil
}
