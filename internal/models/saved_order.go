package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type LineItem struct {
	ProductCode string `json:"productCode" bson:"productCode" validate:"required"`
	OrderQty    int    `json:"orderQty"    bson:"orderQty"    validate:"gte=0"`
}

type OrderListEntry struct {
	OrderGroupCode string     `json:"orderGroupCode" validate:"required"`
	VendorCode     string     `json:"vendorCode"     validate:"required"`
	HoFileExt      string     `json:"hoFileExt"`
	HoDataType     string     `json:"hoDataType"`
	HoDocNo        string     `json:"hoDocNo"`
	RoundInd       string     `json:"roundInd"`
	ProductList    []LineItem `json:"productList"    validate:"dive"`
}

type SaveOrderRequest struct {
	StoreID   string           `json:"storeId"   validate:"required,numeric"`
	OrderDate string           `json:"orderDate" validate:"required,datetime=2006-01-02"`
	OrderList []OrderListEntry `json:"orderList" validate:"required,min=1,dive"`
}

// Orders flattens the request into one SubmittedOrder per order group.
func (r SaveOrderRequest) Orders(companyID string) []SubmittedOrder {
	out := make([]SubmittedOrder, 0, len(r.OrderList))
	for _, e := range r.OrderList {
		out = append(out, SubmittedOrder{
			CompanyID:      companyID,
			StoreID:        r.StoreID,
			OrderDate:      r.OrderDate,
			OrderListEntry: e,
		})
	}
	return out
}

type SubmittedOrder struct {
	CompanyID string `validate:"required"`
	StoreID   string `validate:"required,numeric"`
	OrderDate string `validate:"required,datetime=2006-01-02"`
	OrderListEntry
}

func (o SubmittedOrder) Key() OrderedGroupKey {
	return OrderedGroupKey{
		CompanyID:      o.CompanyID,
		StoreID:        o.StoreID,
		OrderDate:      o.OrderDate,
		OrderGroupCode: o.OrderGroupCode,
	}
}

type OrderedGroupKey struct {
	CompanyID      string `bson:"companyId"`
	StoreID        string `bson:"storeId"`
	OrderDate      string `bson:"orderDate"`
	OrderGroupCode string `bson:"orderGroupCode"`
}

type OrderedGroup struct {
	ID             primitive.ObjectID `json:"id"             bson:"_id,omitempty"`
	CompanyID      string             `json:"companyId"      bson:"companyId"`
	StoreID        string             `json:"storeId"        bson:"storeId"`
	OrderDate      string             `json:"orderDate"      bson:"orderDate"`
	OrderGroupCode string             `json:"orderGroupCode" bson:"orderGroupCode"`
	VendorCode     string             `json:"vendorCode"     bson:"vendorCode"`
	HoFileExt      string             `json:"hoFileExt"      bson:"hoFileExt"`
	HoDataType     string             `json:"hoDataType"     bson:"hoDataType"`
	HoDocNo        string             `json:"hoDocNo"        bson:"hoDocNo"`
	RoundInd       string             `json:"roundInd"       bson:"roundInd"`
	ProductList    []LineItem         `json:"productList"    bson:"productList"`
}

type OrderStatusKey struct {
	CompanyID      string
	StoreID        string
	OrderGroupCode string
	OrderDate      string
	Partition      string
}

// SaveReceipt is returned by a save. The commit flags are set as each store
// commits, so a failed save can still report that the document side went through.
type SaveReceipt struct {
	CompanyID           string `json:"companyId"`
	StoreID             string `json:"storeId"`
	OrderDate           string `json:"orderDate"`
	OrderReceiptNo      string `json:"orderReceiptNo"`
	SendDataDateTime    string `json:"sendDataDateTime"`
	DocumentCommitted   bool   `json:"-"`
	RelationalCommitted bool   `json:"-"`
}
