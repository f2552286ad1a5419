// Package aggregate folds flat partition rows into response shapes.
package aggregate

import "aiorder/internal/models"

// VendorGroups is a vendor id -> VendorOrderGroups mapping that remembers
// first-appearance order of its keys.
type VendorGroups struct {
	order []string
	byID  map[string]*models.VendorOrderGroups
}

func NewVendorGroups() *VendorGroups {
	return &VendorGroups{byID: make(map[string]*models.VendorOrderGroups)}
}

func (v *VendorGroups) Len() int { return len(v.order) }

func (v *VendorGroups) Keys() []string {
	out := make([]string, len(v.order))
	copy(out, v.order)
	return out
}

func (v *VendorGroups) Get(vendorID string) (models.VendorOrderGroups, bool) {
	g, ok := v.byID[vendorID]
	if !ok {
		return models.VendorOrderGroups{}, false
	}
	return *g, true
}

// Values returns the vendors in first-appearance order.
func (v *VendorGroups) Values() []models.VendorOrderGroups {
	out := make([]models.VendorOrderGroups, 0, len(v.order))
	for _, id := range v.order {
		out = append(out, *v.byID[id])
	}
	return out
}

func (v *VendorGroups) add(row models.OrderGroupRow) {
	g, ok := v.byID[row.VendorID]
	if !ok {
		g = &models.VendorOrderGroups{
			SupplierCode:   row.VendorID,
			SupplierName:   row.VendorName,
			HoFileExt:      row.HoFileExtend,
			HoDataType:     row.HoDataType,
			HoDocNo:        row.HoDocumentNo,
			OrderGroupList: []models.OrderGroupSummary{},
		}
		v.byID[row.VendorID] = g
		v.order = append(v.order, row.VendorID)
	}
	g.OrderGroupList = append(g.OrderGroupList, models.OrderGroupSummary{
		OrderNumber:         row.OrderNumber,
		OrderGroupCode:      row.OrderGroupCode,
		OrderGroupName:      row.OrderGroupName,
		CutoffTime:          row.CutoffTime,
		StartPeriodForecast: row.StartPeriodForecast,
		StopPeriodForecast:  row.StopPeriodForecast,
	})
}

// OrderGroups groups rows by vendor. Every row contributes one summary entry,
// duplicates included; vendor metadata is taken from the first row seen.
// Empty input yields an empty mapping.
func OrderGroups(rows []models.OrderGroupRow) *VendorGroups {
	v := NewVendorGroups()
	for _, r := range rows {
		v.add(r)
	}
	return v
}
