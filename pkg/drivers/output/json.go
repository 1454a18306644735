package output

import (
	"encoding/json"

	"github.com/rontip123/excel-input-driver-analyze/pkg/drivers/models"
)

// ToJSON serializes a report with its diagnostics and sheet summaries.
func ToJSON(report *models.Report, pretty bool) ([]byte, error) {
	return marshal(report, pretty)
}

// ValueToJSON serializes any value, used for explanations.
func ValueToJSON(v interface{}, pretty bool) ([]byte, error) {
	return marshal(v, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
