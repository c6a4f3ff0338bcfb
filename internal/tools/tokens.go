package tools

import (
	"context"
	"strconv"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/kelsos/etherscan-tools/internal/client"
	"github.com/kelsos/etherscan-tools/internal/logger"
	"github.com/kelsos/etherscan-tools/internal/models"
)

// TokenService handles token-related tool operations
type TokenService struct {
	client *client.Client
}

// NewTokenService creates a new token service
func NewTokenService(c *client.Client) *TokenService {
	return &TokenService{client: c}
}

// TokenSupplyResult carries the current total supply of a token.
type TokenSupplyResult struct {
	ContractAddress string `json:"contractAddress"`
	TotalSupply     string `json:"totalSupply"`
}

// TokenSupply fetches the current total supply of a token.
func (s *TokenService) TokenSupply(ctx context.Context, contractAddress string) (*TokenSupplyResult, error) {
	supply, err := s.client.GetTokenSupply(ctx, contractAddress)
	if err != nil {
		return nil, err
	}
	return &TokenSupplyResult{ContractAddress: contractAddress, TotalSupply: supply}, nil
}

// TokenSupplyAtResult carries the total supply at a specific block.
type TokenSupplyAtResult struct {
	ContractAddress string `json:"contractAddress"`
	BlockNumber     int64  `json:"blockNumber"`
	TotalSupply     string `json:"totalSupply"`
}

// TokenSupplyAt fetches the total supply of a token at a block.
func (s *TokenService) TokenSupplyAt(ctx context.Context, contractAddress string, blockNo int64) (*TokenSupplyAtResult, error) {
	supply, err := s.client.GetHistoricalTokenSupply(ctx, contractAddress, blockNo)
	if err != nil {
		return nil, err
	}
	return &TokenSupplyAtResult{
		ContractAddress: contractAddress,
		BlockNumber:     blockNo,
		TotalSupply:     supply,
	}, nil
}

// TokenBalanceResult echoes the inputs alongside the fetched balance.
type TokenBalanceResult struct {
	ContractAddress string `json:"contractAddress"`
	Address         string `json:"address"`
	Tag             string `json:"tag,omitempty"`
	BlockNumber     *int64 `json:"blockNumber,omitempty"`
	Balance         string `json:"balance"`
}

// TokenBalance fetches the token balance of an account at a tag.
func (s *TokenService) TokenBalance(ctx context.Context, contractAddress, address string, tag client.Tag) (*TokenBalanceResult, error) {
	balance, err := s.client.GetTokenBalance(ctx, contractAddress, address, tag)
	if err != nil {
		return nil, err
	}
	if tag == "" {
		tag = client.TagLatest
	}
	return &TokenBalanceResult{
		ContractAddress: contractAddress,
		Address:         address,
		Tag:             string(tag),
		Balance:         balance,
	}, nil
}

// TokenBalanceAt fetches the token balance of an account at a block.
func (s *TokenService) TokenBalanceAt(ctx context.Context, contractAddress, address string, blockNo int64) (*TokenBalanceResult, error) {
	balance, err := s.client.GetHistoricalTokenBalance(ctx, contractAddress, address, blockNo)
	if err != nil {
		return nil, err
	}
	return &TokenBalanceResult{
		ContractAddress: contractAddress,
		Address:         address,
		BlockNumber:     &blockNo,
		Balance:         balance,
	}, nil
}

// TokenHoldersResult carries the holder list of a token contract.
type TokenHoldersResult struct {
	ContractAddress string               `json:"contractAddress"`
	Count           int                  `json:"count"`
	Holders         []models.TokenHolder `json:"holders"`
}

// TokenHolders fetches the holder list of a token contract.
func (s *TokenService) TokenHolders(ctx context.Context, contractAddress string, page, offset int64) (*TokenHoldersResult, error) {
	holders, err := s.client.GetTokenHolders(ctx, contractAddress, page, offset)
	if err != nil {
		return nil, err
	}
	return &TokenHoldersResult{
		ContractAddress: contractAddress,
		Count:           len(holders),
		Holders:         holders,
	}, nil
}

// AddressHoldingsResult carries the token holdings of an address.
type AddressHoldingsResult struct {
	Address  string                `json:"address"`
	Count    int                   `json:"count"`
	Holdings []models.TokenHolding `json:"holdings"`
}

// AddressTokenHoldings fetches the ERC-20 holdings of an address.
func (s *TokenService) AddressTokenHoldings(ctx context.Context, address string, page, offset int64) (*AddressHoldingsResult, error) {
	holdings, err := s.client.GetAddressTokenHoldings(ctx, address, page, offset)
	if err != nil {
		return nil, err
	}
	return &AddressHoldingsResult{Address: address, Count: len(holdings), Holdings: holdings}, nil
}

// AddressNFTHoldings fetches the ERC-721 holdings of an address.
func (s *TokenService) AddressNFTHoldings(ctx context.Context, address string, page, offset int64) (*AddressHoldingsResult, error) {
	holdings, err := s.client.GetAddressNFTHoldings(ctx, address, page, offset)
	if err != nil {
		return nil, err
	}
	return &AddressHoldingsResult{Address: address, Count: len(holdings), Holdings: holdings}, nil
}

// NFTInventoryResult carries the per-token NFT inventory of an address.
type NFTInventoryResult struct {
	Address         string                    `json:"address"`
	ContractAddress string                    `json:"contractAddress,omitempty"`
	Count           int                       `json:"count"`
	Items           []models.NFTInventoryItem `json:"items"`
}

// AddressNFTInventory fetches the NFT inventory of an address, optionally
// filtered to one collection contract.
func (s *TokenService) AddressNFTInventory(ctx context.Context, address, contractAddress string, page, offset int64) (*NFTInventoryResult, error) {
	items, err := s.client.GetAddressNFTInventory(ctx, address, contractAddress, page, offset)
	if err != nil {
		return nil, err
	}
	return &NFTInventoryResult{
		Address:         address,
		ContractAddress: contractAddress,
		Count:           len(items),
		Items:           items,
	}, nil
}

// TokenResourceResult is the composite token payload: project metadata plus
// the current supply, with a decimal-adjusted rendering when the token's
// divisor is known.
type TokenResourceResult struct {
	ContractAddress string            `json:"contractAddress"`
	Token           *models.TokenInfo `json:"token,omitempty"`
	TotalSupply     string            `json:"totalSupply,omitempty"`
	FormattedSupply string            `json:"formattedSupply,omitempty"`
}

// TokenResource is the resource-style composite read: token metadata and
// token supply are fetched concurrently and joined. A supply failure is
// swallowed only when it is an API-level failure; any other class
// propagates. A metadata failure always propagates.
func (s *TokenService) TokenResource(ctx context.Context, contractAddress string) (*TokenResourceResult, error) {
	if !client.ValidAddress(contractAddress) {
		return nil, client.InvalidRequest("invalid address: %q", contractAddress)
	}

	var (
		wg        sync.WaitGroup
		info      *models.TokenInfo
		infoErr   error
		supply    string
		supplyErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		info, infoErr = s.client.GetTokenInfo(ctx, contractAddress)
	}()
	go func() {
		defer wg.Done()
		supply, supplyErr = s.client.GetTokenSupply(ctx, contractAddress)
	}()
	wg.Wait()

	if infoErr != nil {
		return nil, infoErr
	}
	if supplyErr != nil {
		if !client.IsKind(supplyErr, client.KindAPI) {
			return nil, supplyErr
		}
		logger.Warn("Token supply unavailable for %s: %v", contractAddress, supplyErr)
		supply = ""
	}

	result := &TokenResourceResult{
		ContractAddress: contractAddress,
		Token:           info,
		TotalSupply:     supply,
	}
	if info != nil && supply != "" {
		result.FormattedSupply = formatSupply(supply, info.Divisor)
	}
	return result, nil
}

// formatSupply shifts a raw supply by the token's divisor. Blank when either
// input does not parse.
func formatSupply(rawSupply, divisor string) string {
	supply, err := decimal.NewFromString(rawSupply)
	if err != nil {
		return ""
	}
	decimals, err := strconv.ParseInt(divisor, 10, 32)
	if err != nil || decimals < 0 {
		return ""
	}
	return supply.Shift(int32(-decimals)).String()
}
