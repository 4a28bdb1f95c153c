// Package console wires the purchasing stores, editors and list screens into
// one interactive session.
package console

import (
	"fmt"
	"log/slog"

	"github.com/odyssey-erp/console/internal/app"
	"github.com/odyssey-erp/console/internal/catalog"
	"github.com/odyssey-erp/console/internal/purchasing"
)

// Session owns the state of one console run. Nothing is shared between
// sessions.
type Session struct {
	Config  *app.Config
	Logger  *slog.Logger
	Catalog *catalog.Directory

	Orders *purchasing.Store[*purchasing.Order]
	Bills  *purchasing.Store[*purchasing.Bill]

	OrderEditor *purchasing.Editor[*purchasing.Order]
	BillEditor  *purchasing.BillEditor

	Format      *Formatter
	OrderScreen *OrderScreen
	BillScreen  *BillScreen
	View        *DocumentView
}

// NewSession builds the stores, seeding them unless disabled, and everything
// that works on them.
func NewSession(cfg *app.Config, logger *slog.Logger) (*Session, error) {
	if cfg == nil {
		return nil, fmt.Errorf("console: config is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	orders := purchasing.NewOrderStore(logger.With(slog.String("store", "orders")))
	bills := purchasing.NewBillStore(logger.With(slog.String("store", "bills")))
	if cfg.Seed {
		if err := purchasing.SeedStores(orders, bills); err != nil {
			return nil, fmt.Errorf("console: %w", err)
		}
	}

	format := NewFormatter(cfg.LanguageTag(), cfg.CurrencyUnit())
	dir := catalog.Default()
	s := &Session{
		Config:      cfg,
		Logger:      logger,
		Catalog:     dir,
		Orders:      orders,
		Bills:       bills,
		OrderEditor: purchasing.NewOrderEditor(orders, logger),
		BillEditor:  purchasing.NewBillEditor(bills, cfg.AttachmentMaxBytes, logger),
		Format:      format,
		OrderScreen: NewOrderScreen(orders, format, cfg.PageSize),
		BillScreen:  NewBillScreen(bills, orders, format, cfg.PageSize),
		View:        NewDocumentView(format, dir),
	}
	s.OrderEditor.OnSave = func(o *purchasing.Order) {
		logger.Info("purchase order saved", slog.String("id", o.ID))
	}
	s.BillEditor.OnSave = func(b *purchasing.Bill) {
		logger.Info("purchase bill saved", slog.String("id", b.ID), slog.String("purchase_order_id", b.PurchaseOrderID))
	}
	logger.Debug("console session ready",
		slog.Int("orders", orders.Len()),
		slog.Int("bills", bills.Len()),
		slog.String("env", cfg.AppEnv),
	)
	return s, nil
}
