package client_test

import (
	"context"
	"testing"

	"github.com/kelsos/etherscan-tools/internal/client"
)

const topicHash = "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"

func int64ptr(v int64) *int64 { return &v }

func TestGetLogsPromotesNumericStrings(t *testing.T) {
	body := `{"status":"1","message":"OK","result":[
		{"address":"0x6b175474e89094c44da98b954eedeac495271d0f","blockNumber":"0012345","data":"0x00","logIndex":"007","timeStamp":"1609459200","topics":["` + topicHash + `"],"transactionHash":"0x1e2910a262b1008d0616a0beb24c1a491d78771baa54a33e66065e03b1f46bc1","transactionIndex":"0"},
		{"address":"0x6b175474e89094c44da98b954eedeac495271d0f","blockNumber":"0x3039","data":"0x01","logIndex":"8","timeStamp":"not-a-number","topics":[],"transactionHash":"0x1e2910a262b1008d0616a0beb24c1a491d78771baa54a33e66065e03b1f46bc1","transactionIndex":"2"}
	]}`
	c, _ := newTestClient(nil, respondWith(200, body))

	logs, err := c.GetLogs(context.Background(), client.LogQuery{Address: testAddress})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 logs, got %d", len(logs))
	}

	// Leading zeros and hex spellings both resolve to the same integer.
	if logs[0].BlockNumber != 12345 || logs[1].BlockNumber != 12345 {
		t.Fatalf("unexpected block numbers: %v %v", logs[0].BlockNumber, logs[1].BlockNumber)
	}
	if logs[0].LogIndex != 7 {
		t.Fatalf("expected log index 7, got %v", logs[0].LogIndex)
	}
	if logs[0].Timestamp != 1609459200 {
		t.Fatalf("unexpected timestamp: %v", logs[0].Timestamp)
	}

	// Malformed numeric strings become NaN instead of failing the fetch.
	if !logs[1].Timestamp.IsNaN() {
		t.Fatalf("expected NaN timestamp, got %v", logs[1].Timestamp)
	}

	// Upstream ordering is preserved.
	if logs[0].Data != "0x00" || logs[1].Data != "0x01" {
		t.Fatalf("ordering not preserved: %q %q", logs[0].Data, logs[1].Data)
	}
}

func TestGetLogsTopicsMapToPositions(t *testing.T) {
	c, transport := newTestClient(nil, respondWith(200, `{"status":"1","result":[]}`))

	_, err := c.GetLogs(context.Background(), client.LogQuery{
		Address:   testAddress,
		FromBlock: int64ptr(0),
		ToBlock:   int64ptr(19000000),
		Topics:    []string{topicHash, "", topicHash},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	query := transport.lastQuery(t)
	if query.Get("topic0") != topicHash || query.Get("topic2") != topicHash {
		t.Fatalf("topic positions not mapped: %v", query)
	}
	// The skipped position is omitted from the query, not sent blank.
	if _, present := query["topic1"]; present {
		t.Fatal("empty topic position must be omitted")
	}
	if query.Get("fromBlock") != "0" || query.Get("toBlock") != "19000000" {
		t.Fatalf("block range not carried: %v", query)
	}
}

func TestGetLogsRejectsBadTopics(t *testing.T) {
	c, transport := newTestClient(nil, respondWith(200, `{"status":"1","result":[]}`))

	_, err := c.GetLogs(context.Background(), client.LogQuery{
		Address: testAddress,
		Topics:  []string{"0xshort"},
	})
	requireKind(t, err, client.KindInvalidResponse)

	_, err = c.GetLogs(context.Background(), client.LogQuery{
		Address: testAddress,
		Topics:  []string{topicHash, topicHash, topicHash, topicHash, topicHash},
	})
	requireKind(t, err, client.KindInvalidResponse)

	if transport.calls() != 0 {
		t.Fatalf("expected zero network calls, got %d", transport.calls())
	}
}

func TestGetLogsRejectsNegativeBlocksAndPaging(t *testing.T) {
	c, transport := newTestClient(nil, respondWith(200, `{"status":"1","result":[]}`))

	_, err := c.GetLogs(context.Background(), client.LogQuery{Address: testAddress, FromBlock: int64ptr(-1)})
	requireKind(t, err, client.KindInvalidResponse)

	_, err = c.GetLogs(context.Background(), client.LogQuery{Address: testAddress, Page: -1})
	requireKind(t, err, client.KindInvalidResponse)

	if transport.calls() != 0 {
		t.Fatalf("expected zero network calls, got %d", transport.calls())
	}
}
