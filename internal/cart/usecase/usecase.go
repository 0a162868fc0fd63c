package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kopbox/kopbox-pos/internal/cart"
	cartdto "github.com/kopbox/kopbox-pos/internal/cart/dto"
	"github.com/kopbox/kopbox-pos/internal/catalog"
	"github.com/kopbox/kopbox-pos/internal/model"
	"github.com/kopbox/kopbox-pos/internal/poserr"
	"github.com/kopbox/kopbox-pos/internal/sales"
	salesdto "github.com/kopbox/kopbox-pos/internal/sales/dto"
	"github.com/kopbox/kopbox-pos/pkg/logger"
)

// cartUseCase holds the session's single active cart. Unlike the other
// usecases it is stateful: the lines slice is the working set between
// AddLine and Checkout/Cancel.
type cartUseCase struct {
	itemRepo catalog.Repository
	sales    sales.UseCase
	logger   logger.ZapLogger

	lines []model.CartLine
}

func NewCartUseCase(itemRepo catalog.Repository, salesUC sales.UseCase, log logger.ZapLogger) cart.UseCase {
	return &cartUseCase{
		itemRepo: itemRepo,
		sales:    salesUC,
		logger:   log,
	}
}

func (uc *cartUseCase) AddLine(ctx context.Context, displayCode string, quantity int) (*model.CartLine, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity %d: %w", quantity, poserr.ErrInvalidQuantity)
	}

	it, err := uc.itemRepo.FindByCode(ctx, displayCode)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, fmt.Errorf("item %s: %w", strings.ToUpper(displayCode), poserr.ErrNotFound)
	}
	if quantity > it.Stock {
		return nil, fmt.Errorf("%w: %d requested, %d available", poserr.ErrInsufficientStock, quantity, it.Stock)
	}

	// Reserve at add time.
	it.Stock -= quantity
	if err := uc.itemRepo.Update(ctx, it); err != nil {
		return nil, err
	}

	line := model.CartLine{
		ItemID:      it.ID,
		DisplayCode: it.DisplayCode,
		ItemName:    it.Name,
		Quantity:    quantity,
		UnitPrice:   it.UnitPrice,
	}
	uc.lines = append(uc.lines, line)

	uc.logger.Debug("cart line added",
		zap.String("code", line.DisplayCode),
		zap.Int("quantity", quantity),
		zap.Int("stock_left", it.Stock))
	return &line, nil
}

func (uc *cartUseCase) RemoveLine(ctx context.Context, index int) error {
	if index < 0 || index >= len(uc.lines) {
		return fmt.Errorf("line %d: %w", index, poserr.ErrIndexOutOfRange)
	}
	line := uc.lines[index]
	if err := uc.release(ctx, line); err != nil {
		return err
	}
	uc.lines = append(uc.lines[:index], uc.lines[index+1:]...)
	return nil
}

func (uc *cartUseCase) Cancel(ctx context.Context) error {
	for _, line := range uc.lines {
		if err := uc.release(ctx, line); err != nil {
			return err
		}
	}
	uc.lines = nil
	uc.logger.Debug("cart cancelled, reservations released")
	return nil
}

func (uc *cartUseCase) Checkout(ctx context.Context) (*cartdto.Receipt, error) {
	if len(uc.lines) == 0 {
		return nil, poserr.ErrEmptyCart
	}

	receiptID := uuid.New().String()
	committedAt := time.Now()
	receipt := &cartdto.Receipt{
		ReceiptID:   receiptID,
		CommittedAt: committedAt,
	}

	for _, line := range uc.lines {
		sold, err := uc.sales.Record(ctx, &salesdto.RecordSaleInput{
			ReceiptID:   receiptID,
			ItemID:      line.ItemID,
			DisplayCode: line.DisplayCode,
			ItemName:    line.ItemName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			CommittedAt: committedAt,
		})
		if err != nil {
			return nil, err
		}
		receipt.Lines = append(receipt.Lines, *sold)
		receipt.Total += sold.LineTotal
	}

	uc.lines = nil
	uc.logger.Info("checkout committed",
		zap.String("receipt_id", receiptID),
		zap.Int("lines", len(receipt.Lines)),
		zap.Int64("total", receipt.Total))
	return receipt, nil
}

func (uc *cartUseCase) Lines() []model.CartLine {
	out := make([]model.CartLine, len(uc.lines))
	copy(out, uc.lines)
	return out
}

func (uc *cartUseCase) Total() int64 {
	var total int64
	for _, line := range uc.lines {
		total += line.Total()
	}
	return total
}

func (uc *cartUseCase) State() cart.State {
	if len(uc.lines) == 0 {
		return cart.StateEmpty
	}
	return cart.StateActive
}

// release returns a line's reserved quantity to its item. Lookup is by
// global id, not by the snapshotted code: a reindex or prefix edit may have
// recoded the item while the cart held the line. A deleted item has no
// stock row left to restore.
func (uc *cartUseCase) release(ctx context.Context, line model.CartLine) error {
	it, err := uc.itemRepo.FindByID(ctx, line.ItemID)
	if err != nil {
		return err
	}
	if it == nil {
		uc.logger.Warn("reserved item deleted, reservation dropped",
			zap.String("code", line.DisplayCode),
			zap.Int("item_id", line.ItemID))
		return nil
	}
	it.Stock += line.Quantity
	return uc.itemRepo.Update(ctx, it)
}
