package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/shineart/studiopos/internal/billing"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func (s *Store) GetBill(ctx context.Context, number string) (*billing.Bill, error) {
	query := `
		SELECT b.id, b.bill_number, b.customer_id, b.subtotal,
		       COALESCE(b.service_charge, 0), COALESCE(b.discount, 0), b.total_amount,
		       COALESCE(b.cash_given, 0), COALESCE(u.full_name, ''), b.created_at
		FROM bills b
		LEFT JOIN users u ON u.id = b.created_by
		WHERE b.bill_number = $1
	`

	var b billing.Bill

	err := s.db.QueryRowContext(ctx, query, number).Scan(
		&b.ID, &b.Number, &b.CustomerID, &b.Subtotal,
		&b.ServiceCharge, &b.Discount, &b.Total,
		&b.CashGiven, &b.CreatedByName, &b.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, billing.ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("getting bill: %w", err)
	}

	return &b, nil
}

func (s *Store) ListBillItems(ctx context.Context, billID uuid.UUID) ([]billing.LineItem, error) {
	query := `
		SELECT item_name, item_type, quantity, unit_price, total_price
		FROM bill_items
		WHERE bill_id = $1
		ORDER BY position, id
	`

	return s.listItems(ctx, query, billID)
}

func (s *Store) GetInvoice(ctx context.Context, number string) (*billing.Invoice, error) {
	query := `
		SELECT i.id, i.invoice_number, i.customer_id, i.subtotal,
		       COALESCE(i.category_service_cost, 0), COALESCE(i.discount, 0), i.total_amount,
		       COALESCE(i.advance_payment, 0), i.paid_amount, i.balance_amount,
		       COALESCE(u.full_name, ''), i.created_at
		FROM invoices i
		LEFT JOIN users u ON u.id = i.created_by
		WHERE i.invoice_number = $1
	`

	var inv billing.Invoice

	err := s.db.QueryRowContext(ctx, query, number).Scan(
		&inv.ID, &inv.Number, &inv.CustomerID, &inv.Subtotal,
		&inv.CategoryServiceCost, &inv.Discount, &inv.Total,
		&inv.AdvancePayment, &inv.PaidAmount, &inv.Balance,
		&inv.CreatedByName, &inv.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, billing.ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("getting invoice: %w", err)
	}

	return &inv, nil
}

func (s *Store) ListInvoiceItems(ctx context.Context, invoiceID uuid.UUID) ([]billing.LineItem, error) {
	query := `
		SELECT item_name, item_type, quantity, unit_price, total_price
		FROM invoice_items
		WHERE invoice_id = $1
		ORDER BY position, id
	`

	return s.listItems(ctx, query, invoiceID)
}

func (s *Store) GetCustomer(ctx context.Context, id uuid.UUID) (*billing.Customer, error) {
	query := `SELECT full_name, COALESCE(mobile_number, '') FROM customers WHERE id = $1`

	var c billing.Customer

	err := s.db.QueryRowContext(ctx, query, id).Scan(&c.FullName, &c.MobileNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, billing.ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("getting customer: %w", err)
	}

	return &c, nil
}

func (s *Store) listItems(ctx context.Context, query string, parentID uuid.UUID) ([]billing.LineItem, error) {
	rows, err := s.db.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("querying items: %w", err)
	}
	defer rows.Close()

	var items []billing.LineItem

	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}

	return items, nil
}

// scanItem expects: item_name, item_type, quantity, unit_price, total_price
func scanItem(s scanner) (billing.LineItem, error) {
	var (
		item    billing.LineItem
		typeStr string
	)

	if err := s.Scan(&item.Name, &typeStr, &item.Quantity, &item.UnitPrice, &item.Total); err != nil {
		return billing.LineItem{}, err
	}

	item.Type = billing.ItemType(typeStr)

	return item, nil
}
