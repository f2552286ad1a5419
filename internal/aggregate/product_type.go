package aggregate

import "aiorder/internal/models"

// Counters holds one ProductTypeCounter per category, indexed by models.Category.
type Counters [models.CategoryCount]models.ProductTypeCounter

func NewCounters() Counters {
	var c Counters
	for i := range c {
		cat := models.Category(i)
		c[i] = models.ProductTypeCounter{
			ProductTypeCode: cat.Code(),
			ProductTypeName: cat.Name(),
		}
	}
	return c
}

func (c *Counters) Get(cat models.Category) models.ProductTypeCounter { return c[cat] }

func (c *Counters) Slice() []models.ProductTypeCounter {
	out := make([]models.ProductTypeCounter, len(c))
	copy(out, c[:])
	return out
}

// ProductTypes folds status rows into per-category counters. Each row adds its
// Count to orderGroupQty, to orderedQty when ordered or received, and to sentQty
// when received at destination. Rows of an unknown category are not counted.
func ProductTypes(rows []models.StatusRow) Counters {
	c := NewCounters()
	for _, r := range rows {
		cat, ok := models.CategoryFromType(r.OrderGroupType1)
		if !ok {
			continue
		}
		b := &c[cat]
		b.OrderGroupQty += r.Count
		switch {
		case r.DestinationReceiveStatus == "Y":
			b.OrderedQty += r.Count
			b.SentQty += r.Count
		case r.OrderStatus == "Y":
			b.OrderedQty += r.Count
		}
	}
	for i := range c {
		c[i].Complete = c[i].OrderGroupQty == c[i].SentQty
	}
	return c
}
