package tools

import (
	"context"

	"github.com/kelsos/etherscan-tools/internal/client"
)

// TransactionService handles transaction-related tool operations
type TransactionService struct {
	client *client.Client
}

// NewTransactionService creates a new transaction service
func NewTransactionService(c *client.Client) *TransactionService {
	return &TransactionService{client: c}
}

// TransactionStatusResult carries the execution status of a transaction.
type TransactionStatusResult struct {
	TxHash  string `json:"txHash"`
	IsError string `json:"isError"`
	Message string `json:"message,omitempty"`
}

// TransactionStatus fetches the execution status of a transaction.
func (s *TransactionService) TransactionStatus(ctx context.Context, txHash string) (*TransactionStatusResult, error) {
	status, err := s.client.GetTransactionStatus(ctx, txHash)
	if err != nil {
		return nil, err
	}

	return &TransactionStatusResult{
		TxHash:  txHash,
		IsError: status.IsError,
		Message: status.ErrDescription,
	}, nil
}

// ReceiptStatusResult carries the receipt status of a transaction.
type ReceiptStatusResult struct {
	TxHash string `json:"txHash"`
	Status string `json:"status"`
}

// TransactionReceiptStatus fetches the receipt status of a transaction.
func (s *TransactionService) TransactionReceiptStatus(ctx context.Context, txHash string) (*ReceiptStatusResult, error) {
	status, err := s.client.GetTransactionReceiptStatus(ctx, txHash)
	if err != nil {
		return nil, err
	}

	return &ReceiptStatusResult{TxHash: txHash, Status: status.Status}, nil
}
