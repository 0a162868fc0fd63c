// Package handler is the interactive boundary of the POS. It owns no
// business rules: every menu action calls into a usecase and renders the
// result, and every error is reported and re-prompted, never fatal.
package handler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kopbox/kopbox-pos/config"
	"github.com/kopbox/kopbox-pos/internal/cart"
	"github.com/kopbox/kopbox-pos/internal/catalog"
	catalogdto "github.com/kopbox/kopbox-pos/internal/catalog/dto"
	"github.com/kopbox/kopbox-pos/internal/category"
	categorydto "github.com/kopbox/kopbox-pos/internal/category/dto"
	"github.com/kopbox/kopbox-pos/internal/poserr"
	"github.com/kopbox/kopbox-pos/internal/reindex"
	"github.com/kopbox/kopbox-pos/internal/sales"
	"github.com/kopbox/kopbox-pos/pkg/logger"
)

type Session struct {
	in  *bufio.Scanner
	out io.Writer

	cfg        *config.Config
	categories category.UseCase
	items      catalog.UseCase
	cart       cart.UseCase
	sales      sales.UseCase
	reindexer  reindex.UseCase
	logger     logger.ZapLogger
}

func NewSession(
	in io.Reader,
	out io.Writer,
	cfg *config.Config,
	categories category.UseCase,
	items catalog.UseCase,
	cartUC cart.UseCase,
	salesUC sales.UseCase,
	reindexer reindex.UseCase,
	log logger.ZapLogger,
) *Session {
	return &Session{
		in:         bufio.NewScanner(in),
		out:        out,
		cfg:        cfg,
		categories: categories,
		items:      items,
		cart:       cartUC,
		sales:      salesUC,
		reindexer:  reindexer,
		logger:     log,
	}
}

// Run shows the welcome screen and drives the top-level menu until the
// operator quits or input ends.
func (s *Session) Run(ctx context.Context) error {
	if !s.welcome() {
		return nil
	}
	for {
		s.clear()
		s.heading("==== KOPBOX POS MAIN MENU ====")
		fmt.Fprintln(s.out, "1. Categories & Items")
		fmt.Fprintln(s.out, "2. Sell (by item code)")
		fmt.Fprintln(s.out, "3. Sales Reports")
		fmt.Fprintln(s.out, "0. Quit")

		switch s.prompt("\nChoose [0-3]: ") {
		case "1":
			s.categoryMenu(ctx)
		case "2":
			s.sellMenu(ctx)
		case "3":
			s.reportMenu(ctx)
		case "0", "":
			fmt.Fprintln(s.out, "Thank you.")
			return nil
		default:
			s.pause("Invalid choice.")
		}
	}
}

func (s *Session) welcome() bool {
	s.clear()
	s.heading("K O P B O X   P O S")
	answer := strings.ToLower(s.prompt("\nPress Enter to start, 'q' to quit: "))
	return answer != "q"
}

func (s *Session) categoryMenu(ctx context.Context) {
	for {
		s.clear()
		s.heading("CATEGORIES")
		s.printCategories(ctx)
		fmt.Fprintln(s.out, strings.Repeat("-", 60))
		fmt.Fprintln(s.out, "1. Add Category")
		fmt.Fprintln(s.out, "2. Edit Category")
		fmt.Fprintln(s.out, "3. Delete Category")
		fmt.Fprintln(s.out, "4. Open Item Table")
		fmt.Fprintln(s.out, "5. Tidy Item Codes (reindex all)")
		fmt.Fprintln(s.out, "0. Back")

		switch s.prompt("\nChoose [0-5]: ") {
		case "1":
			s.addCategory(ctx)
		case "2":
			s.editCategory(ctx)
		case "3":
			s.deleteCategory(ctx)
		case "4":
			s.itemMenu(ctx)
		case "5":
			if err := s.reindexer.ReindexAll(ctx); err != nil {
				s.reportErr(err)
				continue
			}
			s.pause("Item codes tidied for every category.")
		case "0":
			return
		default:
			s.pause("Invalid choice.")
		}
	}
}

func (s *Session) addCategory(ctx context.Context) {
	name := s.prompt("Category name: ")
	prefix := s.prompt("Code prefix (2-4 letters, e.g. MA): ")
	cat, err := s.categories.CreateCategory(ctx, &categorydto.CreateCategoryInput{
		Name:       name,
		CodePrefix: prefix,
	})
	if err != nil {
		s.reportErr(err)
		return
	}
	s.pause(fmt.Sprintf("Category %q added with prefix %s.", cat.Name, cat.CodePrefix))
}

func (s *Session) editCategory(ctx context.Context) {
	id, err := s.promptInt("Category id: ")
	if err != nil {
		s.reportErr(err)
		return
	}
	input := &categorydto.UpdateCategoryInput{ID: id}
	if name := s.prompt("New name (blank to keep): "); name != "" {
		input.Name = &name
	}
	if prefix := s.prompt("New prefix (blank to keep): "); prefix != "" {
		input.CodePrefix = &prefix
	}
	cat, err := s.categories.UpdateCategory(ctx, input)
	if err != nil {
		s.reportErr(err)
		return
	}
	s.pause(fmt.Sprintf("Category %d updated (prefix %s).", cat.ID, cat.CodePrefix))
}

func (s *Session) deleteCategory(ctx context.Context) {
	id, err := s.promptInt("Category id: ")
	if err != nil {
		s.reportErr(err)
		return
	}
	confirmed := s.confirm("Delete this category and every item in it? (y/n): ")
	if err := s.categories.DeleteCategory(ctx, id, confirmed); err != nil {
		s.reportErr(err)
		return
	}
	s.pause("Category, its items and their sales history removed; codes tidied.")
}

func (s *Session) itemMenu(ctx context.Context) {
	id, err := s.promptInt("Category id: ")
	if err != nil {
		s.reportErr(err)
		return
	}
	cat, err := s.categories.GetCategory(ctx, id)
	if err != nil {
		s.reportErr(err)
		return
	}

	for {
		s.clear()
		s.heading(fmt.Sprintf("ITEMS — %s (prefix %s)", cat.Name, cat.CodePrefix))
		s.printItems(ctx, cat.ID)
		fmt.Fprintln(s.out, strings.Repeat("-", 60))
		fmt.Fprintln(s.out, "1. Add Item")
		fmt.Fprintln(s.out, "2. Edit Item")
		fmt.Fprintln(s.out, "3. Delete Item")
		fmt.Fprintln(s.out, "4. Tidy Item Codes (this category)")
		fmt.Fprintln(s.out, "0. Back")

		switch s.prompt("\nChoose [0-4]: ") {
		case "1":
			s.addItem(ctx, cat.ID)
		case "2":
			s.editItem(ctx, cat.ID)
		case "3":
			s.deleteItem(ctx, cat.ID)
		case "4":
			if err := s.reindexer.ReindexCategory(ctx, cat.ID); err != nil {
				s.reportErr(err)
				continue
			}
			s.pause("Item codes tidied for this category.")
		case "0":
			return
		default:
			s.pause("Invalid choice.")
		}
	}
}

func (s *Session) addItem(ctx context.Context, categoryID int) {
	name := s.prompt("Item name: ")
	stock, err := s.promptInt("Stock: ")
	if err != nil {
		s.reportErr(err)
		return
	}
	price, err := s.promptInt("Unit price: ")
	if err != nil {
		s.reportErr(err)
		return
	}
	it, err := s.items.AddItem(ctx, &catalogdto.AddItemInput{
		CategoryID: categoryID,
		Name:       name,
		Stock:      stock,
		UnitPrice:  int64(price),
	})
	if err != nil {
		s.reportErr(err)
		return
	}
	s.pause(fmt.Sprintf("Item %q added with code %s.", it.Name, it.DisplayCode))
}

func (s *Session) editItem(ctx context.Context, categoryID int) {
	code := s.prompt("Item code (e.g. MA001): ")
	input := &catalogdto.UpdateItemInput{CategoryID: categoryID, DisplayCode: code}
	if name := s.prompt("New name (blank to keep): "); name != "" {
		input.Name = &name
	}
	if raw := s.prompt("New stock (blank to keep): "); raw != "" {
		stock, err := parseInt(raw)
		if err != nil {
			s.reportErr(err)
			return
		}
		input.Stock = &stock
	}
	if raw := s.prompt("New price (blank to keep): "); raw != "" {
		price, err := parseInt(raw)
		if err != nil {
			s.reportErr(err)
			return
		}
		p := int64(price)
		input.UnitPrice = &p
	}
	it, err := s.items.UpdateItem(ctx, input)
	if err != nil {
		s.reportErr(err)
		return
	}
	s.pause(fmt.Sprintf("Item %s updated.", it.DisplayCode))
}

func (s *Session) deleteItem(ctx context.Context, categoryID int) {
	code := s.prompt("Item code to delete (e.g. MA001): ")
	confirmed := s.confirm("Delete this item? (y/n): ")
	if err := s.items.RemoveItem(ctx, categoryID, code, confirmed); err != nil {
		s.reportErr(err)
		return
	}
	s.pause("Item deleted; codes tidied for this category.")
}

func (s *Session) sellMenu(ctx context.Context) {
	for {
		s.clear()
		s.heading("SELL — enter an item code such as MA001")
		s.printCatalogGrouped(ctx)
		fmt.Fprintln(s.out, "\nType 0 to go back.")

		code := s.prompt("\nItem code: ")
		if code == "0" || code == "" {
			if s.cart.State() == cart.StateActive {
				if err := s.cart.Cancel(ctx); err != nil {
					s.reportErr(err)
					continue
				}
				s.pause("Cart cancelled, stock restored.")
			}
			return
		}

		qty, err := s.promptInt("Quantity: ")
		if err != nil {
			s.reportErr(err)
			continue
		}
		line, err := s.cart.AddLine(ctx, code, qty)
		if err != nil {
			s.reportErr(err)
			continue
		}
		fmt.Fprintf(s.out, "\nAdded %s x%d = %s\n", line.DisplayCode, line.Quantity, s.money(line.Total()))

		if done := s.cartMenu(ctx); done {
			return
		}
	}
}

// cartMenu returns true when the sell flow is finished (checkout or cancel).
func (s *Session) cartMenu(ctx context.Context) bool {
	for {
		s.clear()
		s.heading("CART")
		s.printCart()
		fmt.Fprintln(s.out, "\n1. Add another item")
		fmt.Fprintln(s.out, "2. Checkout (print receipt)")
		fmt.Fprintln(s.out, "3. Remove a line")
		fmt.Fprintln(s.out, "0. Cancel cart")

		switch s.prompt("Choose: ") {
		case "1":
			return false
		case "2":
			receipt, err := s.cart.Checkout(ctx)
			if err != nil {
				s.reportErr(err)
				continue
			}
			s.printReceipt(receipt)
			s.pause("Sale committed.")
			return true
		case "3":
			no, err := s.promptInt("Line number to remove: ")
			if err != nil {
				s.reportErr(err)
				continue
			}
			if err := s.cart.RemoveLine(ctx, no-1); err != nil {
				s.reportErr(err)
				continue
			}
			s.pause("Line removed, stock restored.")
			if s.cart.State() == cart.StateEmpty {
				return false
			}
		case "0":
			if err := s.cart.Cancel(ctx); err != nil {
				s.reportErr(err)
				continue
			}
			s.pause("Cart cancelled, stock restored.")
			return true
		default:
			s.pause("Invalid choice.")
		}
	}
}

func (s *Session) reportMenu(ctx context.Context) {
	for {
		s.clear()
		s.heading("SALES REPORTS")
		fmt.Fprintln(s.out, "1. Daily")
		fmt.Fprintln(s.out, "2. Weekly")
		fmt.Fprintln(s.out, "3. Monthly")
		fmt.Fprintln(s.out, "4. All")
		fmt.Fprintln(s.out, "0. Back")

		switch s.prompt("\nChoose: ") {
		case "1":
			s.dailyReport(ctx)
		case "2":
			s.weeklyReport(ctx)
		case "3":
			now := time.Now()
			lines, err := s.sales.QueryMonth(ctx, now)
			if err != nil {
				s.reportErr(err)
				continue
			}
			s.printReport(lines, fmt.Sprintf("MONTHLY — %s", now.Format("January 2006")))
			s.pause("")
		case "4":
			lines, err := s.sales.QueryAll(ctx)
			if err != nil {
				s.reportErr(err)
				continue
			}
			s.printReport(lines, "ALL SALES")
			s.pause("")
		case "0":
			return
		default:
			s.pause("Invalid choice.")
		}
	}
}

func (s *Session) dailyReport(ctx context.Context) {
	day := time.Now()
	title := "DAILY — today"
	if s.confirm("Use another date? (y/n): ") {
		parsed, err := s.promptDate("Date (YYYY-MM-DD): ")
		if err != nil {
			s.reportErr(err)
			return
		}
		day = parsed
		title = "DAILY — " + day.Format("2006-01-02")
	}
	lines, err := s.sales.QueryDay(ctx, day)
	if err != nil {
		s.reportErr(err)
		return
	}
	s.printReport(lines, title)
	s.pause("")
}

func (s *Session) weeklyReport(ctx context.Context) {
	start, end := sales.WeekRange(time.Now())
	if s.confirm("Use another range? (y/n): ") {
		var err error
		start, err = s.promptDate("Start date (YYYY-MM-DD): ")
		if err != nil {
			s.reportErr(err)
			return
		}
		end, err = s.promptDate("End date (YYYY-MM-DD): ")
		if err != nil {
			s.reportErr(err)
			return
		}
		if end.Before(start) {
			s.reportErr(fmt.Errorf("end before start: %w", poserr.ErrInvalidInput))
			return
		}
	}
	lines, err := s.sales.QueryRange(ctx, start, end)
	if err != nil {
		s.reportErr(err)
		return
	}
	s.printReport(lines, fmt.Sprintf("WEEKLY — %s to %s",
		start.Format("2006-01-02"), end.Format("2006-01-02")))
	s.pause("")
}

// prompt reads one trimmed line, returning "" at end of input.
func (s *Session) prompt(label string) string {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}

func (s *Session) promptInt(label string) (int, error) {
	return parseInt(s.prompt(label))
}

func (s *Session) promptDate(label string) (time.Time, error) {
	raw := s.prompt(label)
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: %w", raw, poserr.ErrInvalidInput)
	}
	return t, nil
}

func (s *Session) confirm(label string) bool {
	return strings.ToLower(s.prompt(label)) == "y"
}

func parseInt(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("number %q: %w", raw, poserr.ErrInvalidInput)
	}
	return n, nil
}

// reportErr translates error kinds into operator-facing messages. Nothing
// here is fatal; the surrounding menu loop re-prompts.
func (s *Session) reportErr(err error) {
	var msg string
	switch {
	case errors.Is(err, poserr.ErrNotConfirmed):
		msg = "Cancelled."
	case errors.Is(err, poserr.ErrDuplicatePrefix):
		msg = "That prefix is already in use. Pick another."
	case errors.Is(err, poserr.ErrInvalidPrefix):
		msg = "Prefix must be 2-4 letters."
	case errors.Is(err, poserr.ErrEmptyName):
		msg = "Name must not be empty."
	case errors.Is(err, poserr.ErrInsufficientStock):
		msg = "Not enough stock: " + err.Error()
	case errors.Is(err, poserr.ErrInvalidQuantity):
		msg = "Quantity must be a positive number within stock."
	case errors.Is(err, poserr.ErrInvalidPrice):
		msg = "Price must not be negative."
	case errors.Is(err, poserr.ErrEmptyCart):
		msg = "The cart is empty."
	case errors.Is(err, poserr.ErrIndexOutOfRange):
		msg = "No cart line with that number."
	case errors.Is(err, poserr.ErrNotFound):
		msg = "Not found. Check the id or code."
	case errors.Is(err, poserr.ErrInvalidInput):
		msg = "Invalid input: a number or date was expected."
	default:
		msg = "Unexpected error: " + err.Error()
		s.logger.Error("unclassified error at console boundary", zap.Error(err))
	}
	s.pause(msg)
}
