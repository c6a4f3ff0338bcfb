package models

// TransactionStatus is the result of transaction/getstatus.
type TransactionStatus struct {
	IsError        string `json:"isError"`
	ErrDescription string `json:"errDescription,omitempty"`
}

// ReceiptStatus is the result of transaction/gettxreceiptstatus.
type ReceiptStatus struct {
	Status string `json:"status"`
}
