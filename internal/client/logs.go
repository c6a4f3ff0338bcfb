package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/kelsos/etherscan-tools/internal/models"
)

// maxTopics is the number of indexed topic positions an EVM log can carry.
const maxTopics = 4

// LogQuery describes one logs/getLogs call. Every field is optional; a blank
// topic entry means "don't filter this position" and is omitted from the
// query entirely. FromBlock and ToBlock use pointers so the zero block stays
// expressible; zero Page/Offset means unset.
type LogQuery struct {
	Address   string
	FromBlock *int64
	ToBlock   *int64
	Page      int64
	Offset    int64
	// Topics holds up to four position-ordered filters (topic0..topic3).
	Topics []string
}

// GetLogs fetches event logs matching the query. The result keeps upstream
// ordering; string-typed numeric fields are promoted via models.Numeric, so
// a malformed field becomes NaN instead of failing the fetch.
func (c *Client) GetLogs(ctx context.Context, q LogQuery) ([]models.LogEntry, error) {
	params := url.Values{}

	if q.Address != "" {
		if err := requireAddress(q.Address); err != nil {
			return nil, err
		}
		params.Set("address", q.Address)
	}
	if q.FromBlock != nil {
		if err := requireBlock(*q.FromBlock); err != nil {
			return nil, err
		}
		params.Set("fromBlock", strconv.FormatInt(*q.FromBlock, 10))
	}
	if q.ToBlock != nil {
		if err := requireBlock(*q.ToBlock); err != nil {
			return nil, err
		}
		params.Set("toBlock", strconv.FormatInt(*q.ToBlock, 10))
	}
	if err := setPaging(params, q.Page, q.Offset); err != nil {
		return nil, err
	}

	if len(q.Topics) > maxTopics {
		return nil, invalidf("", "at most %d topic filters, got %d", maxTopics, len(q.Topics))
	}
	for position, topic := range q.Topics {
		if topic == "" {
			continue
		}
		if !ValidHash(topic) {
			return nil, invalidf("", "invalid topic%d: %q", position, topic)
		}
		params.Set("topic"+strconv.Itoa(position), topic)
	}

	raw, requestURL, err := c.get(ctx, "logs", "getLogs", params, true)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []models.LogEntry{}, nil
	}

	var rawLogs []models.RawLogEntry
	if err := decode(requestURL, raw, &rawLogs); err != nil {
		return nil, err
	}

	entries := make([]models.LogEntry, 0, len(rawLogs))
	for _, rawLog := range rawLogs {
		entries = append(entries, rawLog.Promote())
	}
	return entries, nil
}
