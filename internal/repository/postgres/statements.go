package postgres

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/pkg/errors"

	"aiorder/internal/models"
	"aiorder/internal/shard"
)

const sourceTable = "order_group_schedule"

// insertChunk keeps a multi-row insert well under the 65535 bind parameter limit.
const insertChunk = 500

var ErrInvalidPartition = errors.New("postgres: invalid partition name")

func partitionIdent(partition string) (string, error) {
	if !shard.IsPartition(partition) {
		return "", errors.Wrapf(ErrInvalidPartition, "%q", partition)
	}
	return pq.QuoteIdentifier(partition), nil
}

func selectOrderGroupList(table string) string {
	return fmt.Sprintf(`SELECT vendor_id, vendor_name, ho_file_extend_1, ho_data_type, ho_document_no,
	ROW_NUMBER() OVER (ORDER BY vendor_id, order_grp_cd) AS order_number,
	order_grp_cd, order_grp_name, order_cutoff_time, start_period_forecast, stop_period_forecast
FROM %s
WHERE company_id = ? AND store_id = ? AND order_date = ? AND order_group_type_1 = ?
ORDER BY vendor_id, order_grp_cd`, table)
}

func groupByProductType(table string) string {
	return fmt.Sprintf(`SELECT order_group_type_1,
	COALESCE(order_status, '') AS order_status,
	COALESCE(destination_receive_status, '') AS destination_receive_status,
	COUNT(*) AS count
FROM %s
WHERE company_id = ? AND store_id = ? AND order_date = ?
GROUP BY order_group_type_1, order_status, destination_receive_status`, table)
}

func insertOrderGroup(table string, n int) string {
	row := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(models.PartitionColumns)), ", ") + ")"
	rows := make([]string, n)
	for i := range rows {
		rows[i] = row
	}
	return fmt.Sprintf(`INSERT INTO %s (%s) VALUES %s
ON CONFLICT (company_id, store_id, order_date, order_grp_cd) DO NOTHING`,
		table, strings.Join(models.PartitionColumns, ", "), strings.Join(rows, ", "))
}

func updateOrderStatus(table string) string {
	return fmt.Sprintf(`UPDATE %s SET order_status = 'Y', send_order_dt = ?
WHERE company_id = ? AND store_id = ? AND order_grp_cd = ? AND order_date = ?`, table)
}

func selectSourceOrderGroups() string {
	cols := models.PartitionColumns[1:]
	return fmt.Sprintf(`SELECT %s FROM %s WHERE order_date = ? AND store_id = ? ORDER BY order_grp_cd`,
		strings.Join(cols, ", "), sourceTable)
}
