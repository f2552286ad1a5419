package models

// Category is one of the fixed order-group classifications used for completion counters.
type Category int

const (
	CategoryLarge Category = iota
	CategorySmall
	CategoryUnclassified

	CategoryCount = 3
)

var categoryNames = [CategoryCount]string{"L", "S", "U"}
var categoryCodes = [CategoryCount]string{"001", "002", "003"}

// CategoryFromType maps an order_group_type_1 value onto a Category.
// Any value other than L, S or U is reported as not ok.
func CategoryFromType(t string) (Category, bool) {
	for i, n := range categoryNames {
		if n == t {
			return Category(i), true
		}
	}
	return 0, false
}

func (c Category) Name() string { return categoryNames[c] }
func (c Category) Code() string { return categoryCodes[c] }

type StatusRow struct {
	OrderGroupType1          string `gorm:"column:order_group_type_1"`
	OrderStatus              string `gorm:"column:order_status"`
	DestinationReceiveStatus string `gorm:"column:destination_receive_status"`
	Count                    int    `gorm:"column:count"`
}

type ProductTypeCounter struct {
	ProductTypeCode string `json:"productTypeCode"`
	ProductTypeName string `json:"productTypeName"`
	OrderGroupQty   int    `json:"orderGroupQty"`
	OrderedQty      int    `json:"orderedQty"`
	SentQty         int    `json:"sentQty"`
	Complete        bool   `json:"status"`
}

type ProductTypeSummary struct {
	CompanyID   string               `json:"companyId"`
	StoreID     string               `json:"storeId"`
	OrderDate   string               `json:"orderDate"`
	ProductType []ProductTypeCounter `json:"productType"`
}
