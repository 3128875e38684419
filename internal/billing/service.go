package billing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=billing
type Repository interface {
	GetBill(ctx context.Context, number string) (*Bill, error)
	ListBillItems(ctx context.Context, billID uuid.UUID) ([]LineItem, error)

	GetInvoice(ctx context.Context, number string) (*Invoice, error)
	ListInvoiceItems(ctx context.Context, invoiceID uuid.UUID) ([]LineItem, error)

	GetCustomer(ctx context.Context, id uuid.UUID) (*Customer, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Bill loads a bill with its items and a snapshot of its customer.
func (s *Service) Bill(ctx context.Context, number string) (*BillDetails, error) {
	bill, err := s.repo.GetBill(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("getting bill %s: %w", number, err)
	}

	items, err := s.repo.ListBillItems(ctx, bill.ID)
	if err != nil {
		return nil, fmt.Errorf("listing bill items: %w", err)
	}

	customer, err := s.customer(ctx, bill.CustomerID)
	if err != nil {
		return nil, err
	}

	return &BillDetails{Bill: *bill, Items: items, Customer: customer}, nil
}

// Invoice loads an invoice with its items and a snapshot of its customer.
func (s *Service) Invoice(ctx context.Context, number string) (*InvoiceDetails, error) {
	inv, err := s.repo.GetInvoice(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("getting invoice %s: %w", number, err)
	}

	items, err := s.repo.ListInvoiceItems(ctx, inv.ID)
	if err != nil {
		return nil, fmt.Errorf("listing invoice items: %w", err)
	}

	customer, err := s.customer(ctx, inv.CustomerID)
	if err != nil {
		return nil, err
	}

	return &InvoiceDetails{Invoice: *inv, Items: items, Customer: customer}, nil
}

func (s *Service) customer(ctx context.Context, id *uuid.UUID) (Customer, error) {
	if id == nil {
		return Customer{FullName: GuestCustomer, MobileNumber: GuestCustomer}, nil
	}

	c, err := s.repo.GetCustomer(ctx, *id)
	if err != nil {
		return Customer{}, fmt.Errorf("getting customer: %w", err)
	}

	return *c, nil
}
