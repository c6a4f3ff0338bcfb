package client

import (
	"context"
	"net/url"

	"github.com/kelsos/etherscan-tools/internal/models"
)

// GetTransactionStatus fetches the execution status of a transaction.
// Absence of the transaction is an error, not a valid empty state.
func (c *Client) GetTransactionStatus(ctx context.Context, txHash string) (*models.TransactionStatus, error) {
	if err := requireHash(txHash); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("txhash", txHash)

	raw, requestURL, err := c.get(ctx, "transaction", "getstatus", params, false)
	if err != nil {
		return nil, err
	}

	var status models.TransactionStatus
	if err := decode(requestURL, raw, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetTransactionReceiptStatus fetches the receipt status of a transaction.
func (c *Client) GetTransactionReceiptStatus(ctx context.Context, txHash string) (*models.ReceiptStatus, error) {
	if err := requireHash(txHash); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("txhash", txHash)

	raw, requestURL, err := c.get(ctx, "transaction", "gettxreceiptstatus", params, false)
	if err != nil {
		return nil, err
	}

	var status models.ReceiptStatus
	if err := decode(requestURL, raw, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
