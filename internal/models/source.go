package models

import "github.com/shopspring/decimal"

// SourceOrderGroup is one schedule record of the secondary (MM2C) source.
type SourceOrderGroup struct {
	StoreID                string          `gorm:"column:store_id"`
	OrderGroupCode         string          `gorm:"column:order_grp_cd"`
	OrderGroupName         string          `gorm:"column:order_grp_name"`
	VendorName             string          `gorm:"column:vendor_name"`
	VendorID               string          `gorm:"column:vendor_id"`
	VendorSubID            string          `gorm:"column:vendor_sub_id"`
	OrderSunday            string          `gorm:"column:order_sunday"`
	OrderMonday            string          `gorm:"column:order_monday"`
	OrderTuesday           string          `gorm:"column:order_tuesday"`
	OrderWednesday         string          `gorm:"column:order_wednesday"`
	OrderThursday          string          `gorm:"column:order_thursday"`
	OrderFriday            string          `gorm:"column:order_friday"`
	OrderSaturday          string          `gorm:"column:order_saturday"`
	OrderDay               string          `gorm:"column:order_day"`
	DatePart               int             `gorm:"column:datepart"`
	OrderGroupType1        string          `gorm:"column:order_group_type_1"`
	HoFileExtend           string          `gorm:"column:ho_file_extend_1"`
	HoDataType             string          `gorm:"column:ho_data_type"`
	HoDocumentNo           string          `gorm:"column:ho_document_no"`
	OrderCycle             string          `gorm:"column:order_cycle"`
	OrderDate              string          `gorm:"column:order_date"`
	OrderCutoffTime        string          `gorm:"column:order_cutoff_time"`
	ReceiveDate            string          `gorm:"column:receive_dt"`
	SaleDate               string          `gorm:"column:sale_dt"`
	ReceiveOffsetHours     int             `gorm:"column:receive_offset_hours"`
	NextOrderDate          string          `gorm:"column:next_order_dt"`
	NextReceiveDate        string          `gorm:"column:next_receive_dt"`
	NextSaleDate           string          `gorm:"column:next_sale_dt"`
	NextReceiveOffsetHours int             `gorm:"column:next_receive_offset_hours"`
	StartPeriodForecast    string          `gorm:"column:start_period_forecast"`
	StopPeriodForecast     string          `gorm:"column:stop_period_forecast"`
	RangePeriodForecast    int             `gorm:"column:range_period_forecast"`
	OrderStatus            string          `gorm:"column:order_status"`
	SendOrderDate          string          `gorm:"column:send_order_dt"`
	DestReceiveStatus      string          `gorm:"column:destination_receive_status"`
	StoreCreditLimit       decimal.Decimal `gorm:"column:store_credit_limit"`
}

// PartitionRow is a SourceOrderGroup stamped with the company it is seeded for,
// in the column order of an order_group_NNN partition.
type PartitionRow struct {
	CompanyID string
	SourceOrderGroup
}

var PartitionColumns = []string{
	"company_id", "store_id", "order_grp_cd", "order_grp_name", "vendor_name", "vendor_id",
	"vendor_sub_id", "order_sunday", "order_monday", "order_tuesday", "order_wednesday",
	"order_thursday", "order_friday", "order_saturday", "order_day", "datepart",
	"order_group_type_1", "ho_file_extend_1", "ho_data_type", "ho_document_no", "order_cycle",
	"order_date", "order_cutoff_time", "receive_dt", "sale_dt", "receive_offset_hours",
	"next_order_dt", "next_receive_dt", "next_sale_dt", "next_receive_offset_hours",
	"start_period_forecast", "stop_period_forecast", "range_period_forecast", "order_status",
	"send_order_dt", "destination_receive_status", "store_credit_limit",
}

// Values returns the row's fields in PartitionColumns order.
func (r PartitionRow) Values() []any {
	s := r.SourceOrderGroup
	return []any{
		r.CompanyID, s.StoreID, s.OrderGroupCode, s.OrderGroupName, s.VendorName, s.VendorID,
		s.VendorSubID, s.OrderSunday, s.OrderMonday, s.OrderTuesday, s.OrderWednesday,
		s.OrderThursday, s.OrderFriday, s.OrderSaturday, s.OrderDay, s.DatePart,
		s.OrderGroupType1, s.HoFileExtend, s.HoDataType, s.HoDocumentNo, s.OrderCycle,
		s.OrderDate, s.OrderCutoffTime, s.ReceiveDate, s.SaleDate, s.ReceiveOffsetHours,
		s.NextOrderDate, s.NextReceiveDate, s.NextSaleDate, s.NextReceiveOffsetHours,
		s.StartPeriodForecast, s.StopPeriodForecast, s.RangePeriodForecast, s.OrderStatus,
		s.SendOrderDate, s.DestReceiveStatus, s.StoreCreditLimit,
	}
}
