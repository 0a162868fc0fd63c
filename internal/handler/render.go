package handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	cartdto "github.com/kopbox/kopbox-pos/internal/cart/dto"
	"github.com/kopbox/kopbox-pos/internal/model"
	"github.com/kopbox/kopbox-pos/internal/sales"
)

const (
	colorReset  = "\033[0m"
	colorCyan   = "\033[96m"
	colorGreen  = "\033[92m"
	colorYellow = "\033[93m"
)

func (s *Session) clear() {
	fmt.Fprint(s.out, "\033[2J\033[H")
}

func (s *Session) heading(text string) {
	fmt.Fprintln(s.out, colorCyan+text+colorReset)
}

func (s *Session) pause(msg string) {
	if msg != "" {
		fmt.Fprintln(s.out, msg)
	}
	s.prompt("Press Enter to continue...")
}

// money renders an amount with the configured symbol and thousands
// grouping, e.g. "Rp 20,000".
func (s *Session) money(amount int64) string {
	return s.cfg.App.CurrencySymbol + " " + groupDigits(amount)
}

func groupDigits(n int64) string {
	raw := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(raw, "-")
	if neg {
		raw = raw[1:]
	}
	var b strings.Builder
	for i, r := range raw {
		if i > 0 && (len(raw)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func (s *Session) printCategories(ctx context.Context) {
	cats, err := s.categories.ListCategories(ctx)
	if err != nil {
		s.reportErr(err)
		return
	}
	if len(cats) == 0 {
		fmt.Fprintln(s.out, "No categories yet.")
		return
	}
	fmt.Fprintf(s.out, "%-4s %-6s %-30s %s\n", "ID", "Code", "Name", "Created")
	fmt.Fprintln(s.out, strings.Repeat("-", 60))
	for _, c := range cats {
		fmt.Fprintf(s.out, "%-4d %-6s %-30s %s\n",
			c.ID, c.CodePrefix, c.Name, c.CreatedAt.Format("2006-01-02 15:04:05"))
	}
}

func (s *Session) printItems(ctx context.Context, categoryID int) {
	items, err := s.items.ListByCategory(ctx, categoryID)
	if err != nil {
		s.reportErr(err)
		return
	}
	if len(items) == 0 {
		fmt.Fprintln(s.out, "No items yet.")
		return
	}
	fmt.Fprintf(s.out, "%-4s %-8s %-30s %-6s %-12s %s\n", "No", "Code", "Name", "Stock", "Price", "Created")
	fmt.Fprintln(s.out, strings.Repeat("-", 80))
	for _, it := range items {
		fmt.Fprintf(s.out, "%-4d %-8s %-30s %-6d %-12s %s\n",
			it.LocalSequence, it.DisplayCode, it.Name, it.Stock,
			s.money(it.UnitPrice), it.CreatedAt.Format("2006-01-02 15:04:05"))
	}
}

func (s *Session) printCatalogGrouped(ctx context.Context) {
	cats, err := s.categories.ListCategories(ctx)
	if err != nil {
		s.reportErr(err)
		return
	}
	if len(cats) == 0 {
		fmt.Fprintln(s.out, "No items yet.")
		return
	}
	for _, c := range cats {
		fmt.Fprintf(s.out, "\n%s== %s (prefix %s) ==%s\n", colorCyan, c.Name, c.CodePrefix, colorReset)
		items, err := s.items.ListByCategory(ctx, c.ID)
		if err != nil {
			s.reportErr(err)
			return
		}
		if len(items) == 0 {
			fmt.Fprintln(s.out, "  (no items)")
			continue
		}
		for _, it := range items {
			fmt.Fprintf(s.out, "  %-8s %-25s stock %-5d %s\n",
				it.DisplayCode, it.Name, it.Stock, s.money(it.UnitPrice))
		}
	}
}

func (s *Session) printCart() {
	lines := s.cart.Lines()
	if len(lines) == 0 {
		fmt.Fprintln(s.out, "The cart is empty.")
		return
	}
	fmt.Fprintf(s.out, "%-3s %-8s %-30s %-5s %-12s %s\n", "No", "Code", "Name", "Qty", "Price", "Total")
	fmt.Fprintln(s.out, strings.Repeat("-", 80))
	for i, l := range lines {
		fmt.Fprintf(s.out, "%-3d %-8s %-30s %-5d %-12s %s\n",
			i+1, l.DisplayCode, l.ItemName, l.Quantity, s.money(l.UnitPrice), s.money(l.Total()))
	}
	fmt.Fprintln(s.out, strings.Repeat("-", 80))
	fmt.Fprintln(s.out, colorGreen+"TOTAL: "+s.money(s.cart.Total())+colorReset)
}

func (s *Session) printReceipt(r *cartdto.Receipt) {
	s.clear()
	s.heading("RECEIPT " + r.ReceiptID)
	fmt.Fprintf(s.out, "Date: %s\n", r.CommittedAt.Format("2006-01-02 15:04:05"))
	for _, l := range r.Lines {
		fmt.Fprintf(s.out, "%s - %s x%d = %s\n", l.DisplayCode, l.ItemName, l.Quantity, s.money(l.LineTotal))
	}
	fmt.Fprintln(s.out, strings.Repeat("-", 60))
	fmt.Fprintln(s.out, colorYellow+"TOTAL DUE: "+s.money(r.Total)+colorReset)
	fmt.Fprintln(s.out, strings.Repeat("-", 60))
}

func (s *Session) printReport(lines []model.SaleLine, title string) {
	s.clear()
	s.heading(title)
	fmt.Fprintln(s.out, strings.Repeat("-", 100))
	if len(lines) == 0 {
		fmt.Fprintln(s.out, "No transactions for this period.")
		return
	}
	fmt.Fprintf(s.out, "%-4s %-8s %-30s %-5s %-12s %-12s %s\n",
		"ID", "Code", "Item", "Qty", "Price", "Total", "Date")
	fmt.Fprintln(s.out, strings.Repeat("-", 100))
	for _, l := range lines {
		fmt.Fprintf(s.out, "%-4d %-8s %-30s %-5d %-12s %-12s %s\n",
			l.ID, l.DisplayCode, l.ItemName, l.Quantity,
			s.money(l.UnitPrice), s.money(l.LineTotal),
			l.CommittedAt.Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintln(s.out, strings.Repeat("-", 100))
	fmt.Fprintln(s.out, colorYellow+"TOTAL: "+s.money(sales.Sum(lines))+colorReset)
}
