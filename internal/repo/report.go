package repo

import (
	"fmt"
	"strings"

	"github.com/rogerio-castellano/inventory-manager/internal/models"
)

// NoLowStockMessage replaces the listing when no product is low on stock.
const NoLowStockMessage = "No items are low on stock."

// LowStockReport is the list of products at or below Threshold, in store order.
// Message holds NoLowStockMessage when Items is empty.
type LowStockReport struct {
	Threshold int              `json:"threshold"`
	Items     []models.Product `json:"items"`
	Message   string           `json:"message,omitempty"`
}

func newLowStockReport(threshold int, items []models.Product) LowStockReport {
	r := LowStockReport{Threshold: threshold, Items: items}
	if r.Empty() {
		r.Message = NoLowStockMessage
	}
	return r
}

// Empty reports whether no product is low on stock.
func (r LowStockReport) Empty() bool {
	return len(r.Items) == 0
}

// Text renders the report as plain text.
func (r LowStockReport) Text() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Low Stock Report (threshold %d) ===\n\n", r.Threshold)
	if r.Empty() {
		sb.WriteString(NoLowStockMessage + "\n")
		return sb.String()
	}
	for _, p := range r.Items {
		fmt.Fprintf(&sb, "ID: %d | Name: %s | Qty: %d | Price: %.2f\n", p.ID, p.Name, p.Quantity, p.Price)
	}
	return sb.String()
}
