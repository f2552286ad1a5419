package postgres

import (
	"fmt"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"
)

const orderGroupColumnsDDL = `
	store_id VARCHAR(10) NOT NULL,
	order_grp_cd VARCHAR(32) NOT NULL,
	order_grp_name VARCHAR(255),
	vendor_name VARCHAR(255),
	vendor_id VARCHAR(32),
	vendor_sub_id VARCHAR(32),
	order_sunday CHAR(1),
	order_monday CHAR(1),
	order_tuesday CHAR(1),
	order_wednesday CHAR(1),
	order_thursday CHAR(1),
	order_friday CHAR(1),
	order_saturday CHAR(1),
	order_day VARCHAR(16),
	datepart INTEGER,
	order_group_type_1 CHAR(1),
	ho_file_extend_1 VARCHAR(16),
	ho_data_type VARCHAR(16),
	ho_document_no VARCHAR(32),
	order_cycle VARCHAR(16),
	order_date VARCHAR(10) NOT NULL,
	order_cutoff_time VARCHAR(32),
	receive_dt VARCHAR(32),
	sale_dt VARCHAR(32),
	receive_offset_hours INTEGER,
	next_order_dt VARCHAR(32),
	next_receive_dt VARCHAR(32),
	next_sale_dt VARCHAR(32),
	next_receive_offset_hours INTEGER,
	start_period_forecast VARCHAR(32),
	stop_period_forecast VARCHAR(32),
	range_period_forecast INTEGER,
	order_status CHAR(1),
	send_order_dt VARCHAR(32),
	destination_receive_status CHAR(1),
	store_credit_limit NUMERIC(14, 2)`

// EnsurePartition creates an order_group_NNN table when it is missing.
func EnsurePartition(db *gorm.DB, partition string) error {
	table, err := partitionIdent(partition)
	if err != nil {
		return err
	}
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	company_id VARCHAR(10) NOT NULL,%s,
	PRIMARY KEY (company_id, store_id, order_date, order_grp_cd))`, table, orderGroupColumnsDDL)
	return errors.Wrapf(db.Exec(ddl).Error, "create %s", partition)
}

// EnsureSourceTable creates the schedule table read by OrderGroupSourceRepo.
func EnsureSourceTable(db *gorm.DB) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (%s,
	PRIMARY KEY (store_id, order_date, order_grp_cd))`, sourceTable, orderGroupColumnsDDL)
	return errors.Wrapf(db.Exec(ddl).Error, "create %s", sourceTable)
}
