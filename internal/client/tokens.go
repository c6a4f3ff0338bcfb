package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/kelsos/etherscan-tools/internal/models"
)

// Tag is an upstream block-reference keyword substituting for an explicit
// block number in balance lookups.
type Tag string

const (
	TagLatest   Tag = "latest"
	TagEarliest Tag = "earliest"
	TagPending  Tag = "pending"
)

func resolveTag(tag Tag) (Tag, error) {
	switch tag {
	case "":
		return TagLatest, nil
	case TagLatest, TagEarliest, TagPending:
		return tag, nil
	default:
		return "", invalidf("", "invalid tag: %q", tag)
	}
}

// setPaging appends the optional page/offset pair; zero means unset, and a
// set value must be positive.
func setPaging(params url.Values, page, offset int64) error {
	if page < 0 {
		return invalidf("", "invalid page: %d", page)
	}
	if offset < 0 {
		return invalidf("", "invalid offset: %d", offset)
	}
	if page > 0 {
		params.Set("page", strconv.FormatInt(page, 10))
	}
	if offset > 0 {
		params.Set("offset", strconv.FormatInt(offset, 10))
	}
	return nil
}

// GetTokenSupply fetches the current total supply of an ERC-20 token as a
// raw numeric string.
func (c *Client) GetTokenSupply(ctx context.Context, contractAddress string) (string, error) {
	if err := requireAddress(contractAddress); err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("contractaddress", contractAddress)

	return c.getString(ctx, "stats", "tokensupply", params)
}

// GetHistoricalTokenSupply fetches the total supply at a specific block.
func (c *Client) GetHistoricalTokenSupply(ctx context.Context, contractAddress string, blockNo int64) (string, error) {
	if err := requireAddress(contractAddress); err != nil {
		return "", err
	}
	if err := requireBlock(blockNo); err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("contractaddress", contractAddress)
	params.Set("blockno", strconv.FormatInt(blockNo, 10))

	return c.getString(ctx, "stats", "tokensupplyhistory", params)
}

// GetTokenBalance fetches the token balance of an account at the given tag
// (latest when unspecified).
func (c *Client) GetTokenBalance(ctx context.Context, contractAddress, address string, tag Tag) (string, error) {
	if err := requireAddress(contractAddress); err != nil {
		return "", err
	}
	if err := requireAddress(address); err != nil {
		return "", err
	}
	resolved, err := resolveTag(tag)
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("contractaddress", contractAddress)
	params.Set("address", address)
	params.Set("tag", string(resolved))

	return c.getString(ctx, "account", "tokenbalance", params)
}

// GetHistoricalTokenBalance fetches the token balance of an account at a
// specific block.
func (c *Client) GetHistoricalTokenBalance(ctx context.Context, contractAddress, address string, blockNo int64) (string, error) {
	if err := requireAddress(contractAddress); err != nil {
		return "", err
	}
	if err := requireAddress(address); err != nil {
		return "", err
	}
	if err := requireBlock(blockNo); err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("contractaddress", contractAddress)
	params.Set("address", address)
	params.Set("blockno", strconv.FormatInt(blockNo, 10))

	return c.getString(ctx, "account", "tokenbalancehistory", params)
}

// GetTokenHolders fetches the holder list of a token contract.
func (c *Client) GetTokenHolders(ctx context.Context, contractAddress string, page, offset int64) ([]models.TokenHolder, error) {
	if err := requireAddress(contractAddress); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("contractaddress", contractAddress)
	if err := setPaging(params, page, offset); err != nil {
		return nil, err
	}

	raw, err := c.getRecords(ctx, "token", "tokenholderlist", params)
	if err != nil {
		return nil, err
	}

	holders := make([]models.TokenHolder, 0, len(raw))
	for _, record := range raw {
		holders = append(holders, models.NewTokenHolder(record))
	}
	return holders, nil
}

// GetTokenInfo fetches project metadata for a token contract. A tolerated
// empty result yields nil.
func (c *Client) GetTokenInfo(ctx context.Context, contractAddress string) (*models.TokenInfo, error) {
	if err := requireAddress(contractAddress); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("contractaddress", contractAddress)

	raw, err := c.getRecords(ctx, "token", "tokeninfo", params)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	info := models.NewTokenInfo(raw[0])
	return &info, nil
}

// GetAddressTokenHoldings fetches the ERC-20 holdings of an address.
func (c *Client) GetAddressTokenHoldings(ctx context.Context, address string, page, offset int64) ([]models.TokenHolding, error) {
	return c.getHoldings(ctx, "addresstokenbalance", address, page, offset)
}

// GetAddressNFTHoldings fetches the ERC-721 holdings of an address.
func (c *Client) GetAddressNFTHoldings(ctx context.Context, address string, page, offset int64) ([]models.TokenHolding, error) {
	return c.getHoldings(ctx, "addresstokennftbalance", address, page, offset)
}

// GetAddressNFTInventory fetches the per-token NFT inventory of an address,
// optionally filtered to one collection contract.
func (c *Client) GetAddressNFTInventory(ctx context.Context, address, contractAddress string, page, offset int64) ([]models.NFTInventoryItem, error) {
	if err := requireAddress(address); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("address", address)
	if contractAddress != "" {
		if err := requireAddress(contractAddress); err != nil {
			return nil, err
		}
		params.Set("contractaddress", contractAddress)
	}
	if err := setPaging(params, page, offset); err != nil {
		return nil, err
	}

	raw, err := c.getRecords(ctx, "account", "addresstokennftinventory", params)
	if err != nil {
		return nil, err
	}

	items := make([]models.NFTInventoryItem, 0, len(raw))
	for _, record := range raw {
		items = append(items, models.NewNFTInventoryItem(record))
	}
	return items, nil
}

func (c *Client) getHoldings(ctx context.Context, action, address string, page, offset int64) ([]models.TokenHolding, error) {
	if err := requireAddress(address); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("address", address)
	if err := setPaging(params, page, offset); err != nil {
		return nil, err
	}

	raw, err := c.getRecords(ctx, "account", action, params)
	if err != nil {
		return nil, err
	}

	holdings := make([]models.TokenHolding, 0, len(raw))
	for _, record := range raw {
		holdings = append(holdings, models.NewTokenHolding(record))
	}
	return holdings, nil
}

// getString fetches an operation whose result is a plain string value.
func (c *Client) getString(ctx context.Context, module, action string, params url.Values) (string, error) {
	raw, requestURL, err := c.get(ctx, module, action, params, false)
	if err != nil {
		return "", err
	}

	var value string
	if err := decode(requestURL, raw, &value); err != nil {
		return "", err
	}
	return value, nil
}

// getRecords fetches an empty-tolerant operation whose result is an array of
// string-valued records, keeping each record raw for passthrough.
func (c *Client) getRecords(ctx context.Context, module, action string, params url.Values) ([]map[string]string, error) {
	raw, requestURL, err := c.get(ctx, module, action, params, true)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var records []map[string]string
	if err := decode(requestURL, raw, &records); err != nil {
		return nil, err
	}
	return records, nil
}
