package client_test

import (
	"context"
	"testing"

	"github.com/kelsos/etherscan-tools/internal/client"
)

func TestTokenBalanceTagDefaultsToLatest(t *testing.T) {
	c, transport := newTestClient(nil, respondWith(200, `{"status":"1","result":"135499"}`))

	balance, err := c.GetTokenBalance(context.Background(), testAddress, otherAddress, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if balance != "135499" {
		t.Fatalf("unexpected balance: %q", balance)
	}
	if got := transport.lastQuery(t).Get("tag"); got != "latest" {
		t.Fatalf("expected default tag latest, got %q", got)
	}
}

func TestTokenBalanceRejectsUnknownTag(t *testing.T) {
	c, transport := newTestClient(nil, respondWith(200, `{"status":"1","result":"0"}`))

	_, err := c.GetTokenBalance(context.Background(), testAddress, otherAddress, "newest")
	requireKind(t, err, client.KindInvalidResponse)
	if transport.calls() != 0 {
		t.Fatalf("expected zero network calls, got %d", transport.calls())
	}
}

func TestHistoricalLookupsRejectNegativeBlock(t *testing.T) {
	c, transport := newTestClient(nil, respondWith(200, `{"status":"1","result":"0"}`))

	_, err := c.GetHistoricalTokenSupply(context.Background(), testAddress, -5)
	requireKind(t, err, client.KindInvalidResponse)

	_, err = c.GetHistoricalTokenBalance(context.Background(), testAddress, otherAddress, -1)
	requireKind(t, err, client.KindInvalidResponse)

	if transport.calls() != 0 {
		t.Fatalf("expected zero network calls, got %d", transport.calls())
	}
}

func TestHistoricalSupplyCarriesBlockNumber(t *testing.T) {
	c, transport := newTestClient(nil, respondWith(200, `{"status":"1","result":"21265524714464"}`))

	supply, err := c.GetHistoricalTokenSupply(context.Background(), testAddress, 8000000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if supply != "21265524714464" {
		t.Fatalf("unexpected supply: %q", supply)
	}
	if got := transport.lastQuery(t).Get("blockno"); got != "8000000" {
		t.Fatalf("expected blockno param, got %q", got)
	}
}

func TestTokenHoldersPromotesWithFallbackKeys(t *testing.T) {
	body := `{"status":"1","result":[
		{"TokenHolderAddress":"0xb5b06a16621616875a6c2637948bf98ea57c58fa","TokenHolderQuantity":"9000"},
		{"address":"0x07a9e9e0ba2be9fbbdfd1d1dcb43c9979217414b","balance":"42","extra":"kept"}
	]}`
	c, _ := newTestClient(nil, respondWith(200, body))

	holders, err := c.GetTokenHolders(context.Background(), testAddress, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(holders) != 2 {
		t.Fatalf("expected 2 holders, got %d", len(holders))
	}
	if holders[0].Address != "0xb5b06a16621616875a6c2637948bf98ea57c58fa" || holders[0].Balance != "9000" {
		t.Fatalf("primary keys not promoted: %+v", holders[0])
	}
	if holders[1].Address != "0x07a9e9e0ba2be9fbbdfd1d1dcb43c9979217414b" || holders[1].Balance != "42" {
		t.Fatalf("fallback keys not promoted: %+v", holders[1])
	}
	// The raw record is carried alongside the promoted fields.
	if holders[1].Raw["extra"] != "kept" {
		t.Fatalf("raw record not preserved: %v", holders[1].Raw)
	}
}

func TestPagingValidationAndParams(t *testing.T) {
	c, transport := newTestClient(nil, respondWith(200, `{"status":"1","result":[]}`))

	if _, err := c.GetTokenHolders(context.Background(), testAddress, -1, 0); err == nil {
		t.Fatal("expected error for negative page")
	} else {
		requireKind(t, err, client.KindInvalidResponse)
	}
	if transport.calls() != 0 {
		t.Fatalf("expected zero network calls, got %d", transport.calls())
	}

	if _, err := c.GetTokenHolders(context.Background(), testAddress, 2, 50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	query := transport.lastQuery(t)
	if query.Get("page") != "2" || query.Get("offset") != "50" {
		t.Fatalf("paging params not carried: %v", query)
	}

	// Unset paging sends neither parameter.
	if _, err := c.GetTokenHolders(context.Background(), testAddress, 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	query = transport.lastQuery(t)
	if _, present := query["page"]; present {
		t.Fatal("unset page must be omitted")
	}
}

func TestAddressHoldingsSymbolNameFallbacks(t *testing.T) {
	body := `{"status":"1","result":[
		{"TokenAddress":"0x6b175474e89094c44da98b954eedeac495271d0f","TokenName":"Dai","TokenSymbol":"DAI","TokenQuantity":"100"},
		{"tokenAddress":"0xdac17f958d2ee523a2206206994597c13d831ec7","name":"Tether","symbol":"USDT","balance":"7"}
	]}`
	c, _ := newTestClient(nil, respondWith(200, body))

	holdings, err := c.GetAddressTokenHoldings(context.Background(), testAddress, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if holdings[0].Symbol != "DAI" || holdings[0].Balance != "100" {
		t.Fatalf("primary keys not promoted: %+v", holdings[0])
	}
	if holdings[1].Symbol != "USDT" || holdings[1].Name != "Tether" || holdings[1].Balance != "7" {
		t.Fatalf("fallback keys not promoted: %+v", holdings[1])
	}
}

func TestNFTInventoryOptionalContractFilter(t *testing.T) {
	body := `{"status":"1","result":[{"TokenAddress":"0x6b175474e89094c44da98b954eedeac495271d0f","TokenId":"77"}]}`
	c, transport := newTestClient(nil, respondWith(200, body))

	items, err := c.GetAddressNFTInventory(context.Background(), testAddress, otherAddress, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].TokenID != "77" {
		t.Fatalf("unexpected items: %+v", items)
	}
	if got := transport.lastQuery(t).Get("contractaddress"); got != otherAddress {
		t.Fatalf("contract filter not carried: %q", got)
	}

	// Without a filter the parameter is omitted.
	if _, err := c.GetAddressNFTInventory(context.Background(), testAddress, "", 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, present := transport.lastQuery(t)["contractaddress"]; present {
		t.Fatal("empty contract filter must be omitted")
	}
}

func TestTokenInfoFirstElementAndEmptyTolerance(t *testing.T) {
	body := `{"status":"1","result":[{"contractAddress":"0x6b175474e89094c44da98b954eedeac495271d0f","tokenName":"Dai","symbol":"DAI","divisor":"18","tokenType":"ERC20","totalSupply":"3500000000"}]}`
	c, _ := newTestClient(nil, respondWith(200, body))

	info, err := c.GetTokenInfo(context.Background(), testAddress)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info == nil || info.Symbol != "DAI" || info.Divisor != "18" {
		t.Fatalf("unexpected info: %+v", info)
	}

	c, _ = newTestClient(nil, respondWith(200, `{"status":"0","message":"No records found","result":[]}`))
	info, err = c.GetTokenInfo(context.Background(), testAddress)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info != nil {
		t.Fatalf("expected nil info on tolerated empty result, got %+v", info)
	}
}
