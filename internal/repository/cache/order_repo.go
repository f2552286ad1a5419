package cache

import (
	"strings"

	"aiorder/internal/models"
)

const keySep = "|"

// OrderGroupCacheRepo keeps order-group list responses keyed by
// company, store, date and product type.
type OrderGroupCacheRepo struct {
	cch KV
}

func NewOrderGroupCache(cch KV) *OrderGroupCacheRepo {
	return &OrderGroupCacheRepo{cch: cch}
}

func storeDayPrefix(companyID, storeID, orderDate string) string {
	return strings.Join([]string{companyID, storeID, orderDate}, keySep) + keySep
}

func listKey(q models.OrderGroupQuery) string {
	return storeDayPrefix(q.CompanyID, q.StoreID, q.OrderDate) + q.ProductType
}

func (o *OrderGroupCacheRepo) Put(q models.OrderGroupQuery, list models.OrderGroupList) {
	o.cch.Put(listKey(q), list)
}

func (o *OrderGroupCacheRepo) Get(q models.OrderGroupQuery) (models.OrderGroupList, bool) {
	v, ok := o.cch.Get(listKey(q))
	if !ok {
		return models.OrderGroupList{}, false
	}
	list, ok := v.(models.OrderGroupList)
	if !ok {
		o.cch.Delete(listKey(q))
		return models.OrderGroupList{}, false
	}
	return list, true
}

// Invalidate drops every cached product type for the store and day.
func (o *OrderGroupCacheRepo) Invalidate(companyID, storeID, orderDate string) {
	o.cch.DeletePrefix(storeDayPrefix(companyID, storeID, orderDate))
}
