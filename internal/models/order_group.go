package models

type OrderGroupQuery struct {
	CompanyID   string
	StoreID     string
	OrderDate   string
	ProductType string
}

type OrderGroupRow struct {
	VendorID            string `gorm:"column:vendor_id"`
	VendorName          string `gorm:"column:vendor_name"`
	HoFileExtend        string `gorm:"column:ho_file_extend_1"`
	HoDataType          string `gorm:"column:ho_data_type"`
	HoDocumentNo        string `gorm:"column:ho_document_no"`
	OrderNumber         int    `gorm:"column:order_number"`
	OrderGroupCode      string `gorm:"column:order_grp_cd"`
	OrderGroupName      string `gorm:"column:order_grp_name"`
	CutoffTime          string `gorm:"column:order_cutoff_time"`
	StartPeriodForecast string `gorm:"column:start_period_forecast"`
	StopPeriodForecast  string `gorm:"column:stop_period_forecast"`
}

type OrderGroupSummary struct {
	OrderNumber         int    `json:"orderNumber"`
	OrderGroupCode      string `json:"orderGroupCode"`
	OrderGroupName      string `json:"orderGroupName"`
	CutoffTime          string `json:"cutOffTime"`
	StartPeriodForecast string `json:"startPeriodForecast"`
	StopPeriodForecast  string `json:"stopPeriodForecast"`
	Status              string `json:"status"`
	OrderDateSend       string `json:"orderDateSend"`
	TopAllQty           int    `json:"topAllQty"`
	TopNorDerQty        int    `json:"topNorDerQty"`
}

type VendorOrderGroups struct {
	SupplierCode   string              `json:"supplierCode"`
	SupplierName   string              `json:"supplierName"`
	HoFileExt      string              `json:"hoFileExt"`
	HoDataType     string              `json:"hoDataType"`
	HoDocNo        string              `json:"hoDocNo"`
	OrderGroupList []OrderGroupSummary `json:"orderGroupList"`
}

type OrderGroupList struct {
	CompanyID   string              `json:"companyId"`
	StoreID     string              `json:"storeId"`
	OrderDate   string              `json:"orderDate"`
	ProductType string              `json:"productType"`
	VendorList  []VendorOrderGroups `json:"vendorList"`
}
