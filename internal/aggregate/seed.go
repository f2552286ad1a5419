package aggregate

import "aiorder/internal/models"

// SeedRows converts secondary-source records into partition rows for companyID.
func SeedRows(companyID string, src []models.SourceOrderGroup) []models.PartitionRow {
	out := make([]models.PartitionRow, 0, len(src))
	for _, s := range src {
		out = append(out, models.PartitionRow{CompanyID: companyID, SourceOrderGroup: s})
	}
	return out
}
