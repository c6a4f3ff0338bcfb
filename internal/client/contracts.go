package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/kelsos/etherscan-tools/internal/models"
)

// maxCreationAddresses is the upstream limit on getcontractcreation.
const maxCreationAddresses = 5

// GetContractSource fetches the verified source of a contract and reshapes
// the first element of the array result. An empty array is an
// invalid-response failure, distinct from an unverified contract.
func (c *Client) GetContractSource(ctx context.Context, address string) (*models.ContractSource, error) {
	if err := requireAddress(address); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("address", address)

	raw, requestURL, err := c.get(ctx, "contract", "getsourcecode", params, false)
	if err != nil {
		return nil, err
	}

	var rows []map[string]string
	if err := decode(requestURL, raw, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, invalidf(requestURL, "empty result for contract source of %s", address)
	}

	first := rows[0]
	parsedABI, summary, err := parseABIText(requestURL, address, first["ABI"])
	if err != nil {
		return nil, err
	}

	metadata := make(map[string]string, len(first))
	for key, value := range first {
		if key == "SourceCode" || key == "ABI" {
			continue
		}
		metadata[key] = value
	}

	return &models.ContractSource{
		Address:         address,
		SourceCode:      first["SourceCode"],
		ABI:             parsedABI,
		ABISummary:      summary,
		ContractName:    first["ContractName"],
		CompilerVersion: first["CompilerVersion"],
		Metadata:        metadata,
	}, nil
}

// GetContractABI fetches just the ABI of a verified contract.
func (c *Client) GetContractABI(ctx context.Context, address string) (json.RawMessage, *models.ABISummary, error) {
	if err := requireAddress(address); err != nil {
		return nil, nil, err
	}

	params := url.Values{}
	params.Set("address", address)

	raw, requestURL, err := c.get(ctx, "contract", "getabi", params, false)
	if err != nil {
		return nil, nil, err
	}

	var abiText string
	if err := decode(requestURL, raw, &abiText); err != nil {
		return nil, nil, err
	}

	return parseABIText(requestURL, address, abiText)
}

// GetContractCreation fetches deployer info for up to five addresses in one
// call. Zero addresses short-circuits to an empty list without touching the
// network; more than five is rejected the same way.
func (c *Client) GetContractCreation(ctx context.Context, addresses []string) ([]models.ContractCreation, error) {
	if len(addresses) == 0 {
		return []models.ContractCreation{}, nil
	}
	if len(addresses) > maxCreationAddresses {
		return nil, invalidf("", "at most %d addresses per contract creation request, got %d", maxCreationAddresses, len(addresses))
	}
	for _, address := range addresses {
		if err := requireAddress(address); err != nil {
			return nil, err
		}
	}

	params := url.Values{}
	params.Set("contractaddresses", strings.Join(addresses, ","))

	raw, requestURL, err := c.get(ctx, "contract", "getcontractcreation", params, true)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []models.ContractCreation{}, nil
	}

	var creations []models.ContractCreation
	if err := decode(requestURL, raw, &creations); err != nil {
		return nil, err
	}
	return creations, nil
}

// parseABIText classifies and parses the raw ABI field of a contract
// response. Text containing "not verified" (any case) means the source was
// never verified upstream; anything else must be valid JSON. A successful
// parse additionally attempts a full ABI decode to surface the callable
// surface; failure of that secondary decode is not an error.
func parseABIText(requestURL, address, abiText string) (json.RawMessage, *models.ABISummary, error) {
	if strings.Contains(strings.ToLower(abiText), "not verified") {
		return nil, nil, &Error{
			Kind:    KindNotVerified,
			Message: fmt.Sprintf("contract %s is not verified", address),
			URL:     requestURL,
			Details: abiText,
		}
	}

	var parsed json.RawMessage
	if err := json.Unmarshal([]byte(abiText), &parsed); err != nil {
		return nil, nil, &Error{
			Kind:    KindInvalidResponse,
			Message: fmt.Sprintf("error parsing ABI of contract %s", address),
			URL:     requestURL,
			Details: abiText,
			Err:     err,
		}
	}

	return parsed, summarizeABI(abiText), nil
}

func summarizeABI(abiText string) *models.ABISummary {
	decoded, err := abi.JSON(strings.NewReader(abiText))
	if err != nil {
		return nil
	}

	summary := &models.ABISummary{}
	for name := range decoded.Methods {
		summary.Functions = append(summary.Functions, name)
	}
	for name := range decoded.Events {
		summary.Events = append(summary.Events, name)
	}
	sort.Strings(summary.Functions)
	sort.Strings(summary.Events)

	if len(summary.Functions) == 0 && len(summary.Events) == 0 {
		return nil
	}
	return summary
}
