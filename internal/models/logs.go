package models

// LogEntry is one emitted event from logs/getLogs. The numeric fields arrive
// as strings and are promoted to Numeric; ordering mirrors upstream.
type LogEntry struct {
	Address          string   `json:"address"`
	BlockNumber      Numeric  `json:"blockNumber"`
	Data             string   `json:"data"`
	LogIndex         Numeric  `json:"logIndex"`
	Timestamp        Numeric  `json:"timestamp"`
	Topics           []string `json:"topics"`
	TransactionHash  string   `json:"transactionHash"`
	TransactionIndex Numeric  `json:"transactionIndex"`
}

// RawLogEntry is the wire shape of one log record.
type RawLogEntry struct {
	Address          string   `json:"address"`
	BlockNumber      string   `json:"blockNumber"`
	Data             string   `json:"data"`
	LogIndex         string   `json:"logIndex"`
	TimeStamp        string   `json:"timeStamp"`
	Topics           []string `json:"topics"`
	TransactionHash  string   `json:"transactionHash"`
	TransactionIndex string   `json:"transactionIndex"`
}

// Promote parses the string-typed numeric fields of a raw record.
func (r RawLogEntry) Promote() LogEntry {
	return LogEntry{
		Address:          r.Address,
		BlockNumber:      ParseNumeric(r.BlockNumber),
		Data:             r.Data,
		LogIndex:         ParseNumeric(r.LogIndex),
		Timestamp:        ParseNumeric(r.TimeStamp),
		Topics:           r.Topics,
		TransactionHash:  r.TransactionHash,
		TransactionIndex: ParseNumeric(r.TransactionIndex),
	}
}
