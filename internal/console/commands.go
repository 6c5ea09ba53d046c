package console

import (
	"fmt"
	"strings"

	"github.com/rogerio-castellano/inventory-manager/internal/forms"
)

type command struct {
	name      string
	help      string
	adminOnly bool
	run       func(*Session) error
}

var commands []command

func init() {
	commands = []command{
		{name: "dashboard", help: "show the summary cards", run: (*Session).dashboard},
		{name: "list", help: "list all products", run: (*Session).list},
		{name: "report", help: "print the low-stock report", run: (*Session).report},
		{name: "add", help: "add a product", run: (*Session).add},
		{name: "delete", help: "delete a product by ID", run: (*Session).remove},
		{name: "update", help: "update a product by ID", adminOnly: true, run: (*Session).update},
		{name: "threshold", help: "set the low-stock threshold", adminOnly: true, run: (*Session).threshold},
		{name: "reset", help: "restore the sample data", adminOnly: true, run: (*Session).reset},
		{name: "clear", help: "remove every product", adminOnly: true, run: (*Session).clear},
		{name: "help", help: "show this list", run: (*Session).help},
	}
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func (s *Session) dashboard() error {
	m, err := s.metrics.GetDashboardMetrics()
	if err != nil {
		return fmt.Errorf("dashboard metrics: %w", err)
	}
	s.print(RenderDashboard(m))
	return nil
}

func (s *Session) list() error {
	s.print(RenderProducts(s.products.GetAll(), s.products.LowStockThreshold()))
	return nil
}

func (s *Session) report() error {
	s.print(RenderReport(s.products.LowStockReport()))
	return nil
}

// readProduct prompts for the four product fields and parses them in form order.
func (s *Session) readProduct() (forms.ProductInput, error) {
	var fields [4]string
	for i, label := range []string{"ID", "Name", "Quantity", "Price"} {
		v, err := s.prompt(label)
		if err != nil {
			return forms.ProductInput{}, err
		}
		fields[i] = v
	}
	return forms.ParseProduct(fields[0], fields[1], fields[2], fields[3])
}

func (s *Session) add() error {
	in, err := s.readProduct()
	if err != nil {
		return err
	}
	p, err := s.products.Add(in.ID, in.Name, in.Quantity, in.Price)
	if err != nil {
		return err
	}
	s.log.Info().Int("id", p.ID).Str("name", p.Name).Str("by", s.user.Username).Msg("product added")
	s.print(renderInfo("Added."))
	return nil
}

func (s *Session) update() error {
	in, err := s.readProduct()
	if err != nil {
		return err
	}
	p, err := s.products.UpdateByID(in.ID, in.Name, in.Quantity, in.Price)
	if err != nil {
		return err
	}
	s.log.Info().Int("id", p.ID).Str("by", s.user.Username).Msg("product updated")
	s.print(renderInfo("Updated."))
	return nil
}

func (s *Session) remove() error {
	raw, err := s.prompt("ID")
	if err != nil {
		return err
	}
	id, err := forms.ParseID(raw)
	if err != nil {
		return err
	}
	if err := s.products.DeleteByID(id); err != nil {
		return err
	}
	s.log.Info().Int("id", id).Str("by", s.user.Username).Msg("product deleted")
	s.print(renderInfo("Deleted."))
	return nil
}

func (s *Session) threshold() error {
	raw, err := s.prompt(fmt.Sprintf("Threshold (current %d)", s.products.LowStockThreshold()))
	if err != nil {
		return err
	}
	v, err := forms.ParseNonNegativeInt(raw, "Threshold")
	if err != nil {
		return err
	}
	stored := s.products.SetLowStockThreshold(v)
	s.print(renderInfo(fmt.Sprintf("Low-stock threshold set to %d", stored)))
	return nil
}

func (s *Session) reset() error {
	s.products.ResetSample()
	s.print(renderInfo("Sample data restored."))
	return nil
}

func (s *Session) clear() error {
	answer, err := s.prompt("Clear all products? [y/N]")
	if err != nil {
		return err
	}
	if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
		s.print(dimStyle.Render("Cancelled.") + "\n")
		return nil
	}
	s.products.ClearAll()
	s.print(renderInfo("All products cleared."))
	return nil
}

func (s *Session) help() error {
	var b strings.Builder
	for _, c := range commands {
		if c.adminOnly && !s.user.Role.IsAdmin() {
			continue
		}
		fmt.Fprintf(&b, "  %-10s %s\n", c.name, c.help)
	}
	b.WriteString("  logout     return to the login prompt\n")
	b.WriteString("  quit       leave the console\n")
	s.print(headerStyle.Render("Commands") + "\n" + b.String())
	return nil
}
