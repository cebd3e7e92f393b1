package service

import (
	"context"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/dto"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/receipt"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/upstream"
)

// LedgerService serves the settlement screens. Balances come from the
// upstream ledger when present; the summary labels the source either way.
type LedgerService interface {
	Customer(ctx context.Context, token, phone string) (*dto.LedgerResponse, error)
	Employee(ctx context.Context, token, phone string, month, year int) (*dto.LedgerResponse, error)
	Settle(ctx context.Context, token string, req dto.SettlementRequest) (*dto.LedgerResponse, error)
}

type ledgerService struct {
	api *upstream.Client
}

func NewLedgerService(api *upstream.Client) LedgerService {
	return &ledgerService{api: api}
}

func (s *ledgerService) Customer(ctx context.Context, token, phone string) (*dto.LedgerResponse, error) {
	ledger, err := s.api.CustomerLedger(ctx, token, phone)
	if err != nil {
		return nil, err
	}
	return &dto.LedgerResponse{Ledger: *ledger, Summary: receipt.SummarizeAccount(*ledger)}, nil
}

func (s *ledgerService) Employee(ctx context.Context, token, phone string, month, year int) (*dto.LedgerResponse, error) {
	ledger, err := s.api.EmployeeLedger(ctx, token, phone, month, year)
	if err != nil {
		return nil, err
	}
	return &dto.LedgerResponse{Ledger: *ledger, Summary: receipt.SummarizeAccount(*ledger)}, nil
}

func (s *ledgerService) Settle(ctx context.Context, token string, req dto.SettlementRequest) (*dto.LedgerResponse, error) {
	ledger, err := s.api.RecordSettlement(ctx, token, upstream.SettlementRequest{
		Phone:  req.Phone,
		Amount: req.Amount,
		Method: req.Method,
		Note:   req.Note,
		Month:  req.Month,
		Year:   req.Year,
	})
	if err != nil {
		return nil, err
	}
	return &dto.LedgerResponse{Ledger: *ledger, Summary: receipt.SummarizeAccount(*ledger)}, nil
}
