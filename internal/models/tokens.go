package models

// Upstream casing is not consistent across the token endpoints: the same
// logical field may arrive as TokenSymbol on one and symbol on another.
// Promoted fields are filled from an ordered fallback list of keys, and the
// full raw record is kept alongside so nothing is lost in reshaping.

// FirstKey returns the first non-blank value among the given keys.
func FirstKey(raw map[string]string, keys ...string) string {
	for _, key := range keys {
		if v := raw[key]; v != "" {
			return v
		}
	}
	return ""
}

// TokenHolder is one record from token/tokenholderlist.
type TokenHolder struct {
	Address string            `json:"address"`
	Balance string            `json:"balance"`
	Raw     map[string]string `json:"raw"`
}

// NewTokenHolder promotes the holder address and quantity from a raw record.
func NewTokenHolder(raw map[string]string) TokenHolder {
	return TokenHolder{
		Address: FirstKey(raw, "TokenHolderAddress", "tokenHolderAddress", "address"),
		Balance: FirstKey(raw, "TokenHolderQuantity", "tokenHolderQuantity", "TokenBalance", "balance"),
		Raw:     raw,
	}
}

// TokenHolding is one record from the addresstokenbalance and
// addresstokennftbalance endpoints.
type TokenHolding struct {
	TokenAddress string            `json:"tokenAddress"`
	Name         string            `json:"name,omitempty"`
	Symbol       string            `json:"symbol,omitempty"`
	Balance      string            `json:"balance"`
	Raw          map[string]string `json:"raw"`
}

// NewTokenHolding promotes the commonly used fields from a raw record.
func NewTokenHolding(raw map[string]string) TokenHolding {
	return TokenHolding{
		TokenAddress: FirstKey(raw, "TokenAddress", "tokenAddress", "contractAddress"),
		Name:         FirstKey(raw, "TokenName", "tokenName", "name"),
		Symbol:       FirstKey(raw, "TokenSymbol", "tokenSymbol", "symbol"),
		Balance:      FirstKey(raw, "TokenQuantity", "TokenBalance", "balance"),
		Raw:          raw,
	}
}

// NFTInventoryItem is one record from account/addresstokennftinventory.
type NFTInventoryItem struct {
	TokenAddress string            `json:"tokenAddress"`
	TokenID      string            `json:"tokenId"`
	Raw          map[string]string `json:"raw"`
}

// NewNFTInventoryItem promotes the contract address and token id.
func NewNFTInventoryItem(raw map[string]string) NFTInventoryItem {
	return NFTInventoryItem{
		TokenAddress: FirstKey(raw, "TokenAddress", "tokenAddress", "contractAddress"),
		TokenID:      FirstKey(raw, "TokenId", "tokenId", "tokenID"),
		Raw:          raw,
	}
}

// TokenInfo is the reshaped first element of a token/tokeninfo response.
type TokenInfo struct {
	ContractAddress string            `json:"contractAddress"`
	Name            string            `json:"name,omitempty"`
	Symbol          string            `json:"symbol,omitempty"`
	Divisor         string            `json:"divisor,omitempty"`
	TokenType       string            `json:"tokenType,omitempty"`
	TotalSupply     string            `json:"totalSupply,omitempty"`
	Raw             map[string]string `json:"raw"`
}

// NewTokenInfo promotes the commonly used fields from a raw record.
func NewTokenInfo(raw map[string]string) TokenInfo {
	return TokenInfo{
		ContractAddress: FirstKey(raw, "contractAddress", "ContractAddress", "tokenAddress"),
		Name:            FirstKey(raw, "tokenName", "TokenName", "name"),
		Symbol:          FirstKey(raw, "symbol", "tokenSymbol", "TokenSymbol"),
		Divisor:         FirstKey(raw, "divisor", "tokenDivisor", "decimals"),
		TokenType:       FirstKey(raw, "tokenType", "TokenType"),
		TotalSupply:     FirstKey(raw, "totalSupply", "TotalSupply"),
		Raw:             raw,
	}
}
