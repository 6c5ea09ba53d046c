package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rogerio-castellano/inventory-manager/internal/models"
	"github.com/rogerio-castellano/inventory-manager/internal/repo"
)

var (
	accent  = lipgloss.Color("#2563EB") // blue
	fg      = lipgloss.Color("#E5E7EB")
	dim     = lipgloss.Color("#6B7280")
	success = lipgloss.Color("#22C55E")
	danger  = lipgloss.Color("#EF4444")
	warning = lipgloss.Color("#F59E0B")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2).
			Width(22)

	cardLabelStyle = lipgloss.NewStyle().Foreground(dim)
	cardValueStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	lowStyle       = lipgloss.NewStyle().Foreground(warning)
	dimStyle       = lipgloss.NewStyle().Foreground(dim)
	okStyle        = lipgloss.NewStyle().Foreground(success)
	errStyle       = lipgloss.NewStyle().Foreground(danger).Bold(true)
)

func card(label, value string) string {
	return cardStyle.Render(cardLabelStyle.Render(label) + "\n" + cardValueStyle.Render(value))
}

// RenderDashboard draws the four summary cards.
func RenderDashboard(m repo.Metrics) string {
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total Products", fmt.Sprintf("%d", m.TotalProducts)),
		card(fmt.Sprintf("Low Stock (<= %d)", m.Threshold), fmt.Sprintf("%d", m.LowStockCount)),
		card("Stock Value", fmt.Sprintf("%.2f", m.StockValue)),
		card("Newest Item", m.NewestItem),
	)
	return titleStyle.Render("Dashboard") + "\n" + cards + "\n"
}

// RenderProducts lists products in store order; low-stock rows are highlighted.
func RenderProducts(products []models.Product, threshold int) string {
	if len(products) == 0 {
		return dimStyle.Render("No products.") + "\n"
	}

	nameWidth := len("Name")
	for _, p := range products {
		nameWidth = max(nameWidth, len(p.Name))
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-6s %-*s %8s %10s", "ID", nameWidth, "Name", "Qty", "Price")))
	b.WriteString("\n")
	for _, p := range products {
		line := fmt.Sprintf("%-6d %-*s %8d %10.2f", p.ID, nameWidth, p.Name, p.Quantity, p.Price)
		if p.IsLowStock(threshold) {
			line = lowStyle.Render(line + "  low")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// RenderReport prints the low-stock report text under a title.
func RenderReport(r repo.LowStockReport) string {
	return titleStyle.Render("Reports") + "\n" + r.Text()
}

func renderInfo(msg string) string {
	return okStyle.Render(msg) + "\n"
}

func renderError(msg string) string {
	return errStyle.Render("Error: "+msg) + "\n"
}
