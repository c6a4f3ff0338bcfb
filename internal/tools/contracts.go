package tools

import (
	"context"
	"encoding/json"

	"github.com/kelsos/etherscan-tools/internal/client"
	"github.com/kelsos/etherscan-tools/internal/logger"
	"github.com/kelsos/etherscan-tools/internal/models"
)

// ContractService handles contract-related tool operations
type ContractService struct {
	client *client.Client
}

// NewContractService creates a new contract service
func NewContractService(c *client.Client) *ContractService {
	return &ContractService{client: c}
}

// CheckContractParams selects which sections of the contract payload to
// fetch. Every flag defaults to true at the dispatch boundary.
type CheckContractParams struct {
	Address         string
	IncludeABI      bool
	IncludeSource   bool
	IncludeMetadata bool
	IncludeCreation bool
}

// CheckContractResult is the composite contract payload.
type CheckContractResult struct {
	Address         string                   `json:"address"`
	ABI             json.RawMessage          `json:"abi,omitempty"`
	ABISummary      *models.ABISummary       `json:"abiSummary,omitempty"`
	SourceCode      string                   `json:"sourceCode,omitempty"`
	ContractName    string                   `json:"contractName,omitempty"`
	CompilerVersion string                   `json:"compilerVersion,omitempty"`
	Metadata        map[string]string        `json:"metadata,omitempty"`
	Creation        *models.ContractCreation `json:"creation,omitempty"`
}

// CheckContract fetches a contract's verified source, ABI, metadata and
// creation info in one payload. A creation lookup that fails at the API
// level is treated as absent; any other failure aborts the operation.
func (s *ContractService) CheckContract(ctx context.Context, params CheckContractParams) (*CheckContractResult, error) {
	source, err := s.client.GetContractSource(ctx, params.Address)
	if err != nil {
		return nil, err
	}

	result := &CheckContractResult{Address: params.Address}
	if params.IncludeABI {
		result.ABI = source.ABI
		result.ABISummary = source.ABISummary
	}
	if params.IncludeSource {
		result.SourceCode = source.SourceCode
		result.ContractName = source.ContractName
		result.CompilerVersion = source.CompilerVersion
	}
	if params.IncludeMetadata {
		result.Metadata = source.Metadata
	}

	if params.IncludeCreation {
		creations, err := s.client.GetContractCreation(ctx, []string{params.Address})
		switch {
		case err == nil:
			if len(creations) > 0 {
				result.Creation = &creations[0]
			}
		case client.IsKind(err, client.KindAPI):
			logger.Warn("No creation info for contract %s: %v", params.Address, err)
		default:
			return nil, err
		}
	}

	return result, nil
}

// ContractLogsParams describes one contract log query. The address is
// required here even though the underlying endpoint allows omitting it.
type ContractLogsParams struct {
	Address   string
	FromBlock *int64
	ToBlock   *int64
	Page      int64
	Offset    int64
	Topics    []string
}

// ContractLogsResult carries the matched log entries in upstream order.
type ContractLogsResult struct {
	Address string            `json:"address"`
	Count   int               `json:"count"`
	Logs    []models.LogEntry `json:"logs"`
}

// ContractLogs fetches event logs emitted by a contract.
func (s *ContractService) ContractLogs(ctx context.Context, params ContractLogsParams) (*ContractLogsResult, error) {
	if !client.ValidAddress(params.Address) {
		return nil, client.InvalidRequest("invalid address: %q", params.Address)
	}

	logs, err := s.client.GetLogs(ctx, client.LogQuery{
		Address:   params.Address,
		FromBlock: params.FromBlock,
		ToBlock:   params.ToBlock,
		Page:      params.Page,
		Offset:    params.Offset,
		Topics:    params.Topics,
	})
	if err != nil {
		return nil, err
	}

	return &ContractLogsResult{
		Address: params.Address,
		Count:   len(logs),
		Logs:    logs,
	}, nil
}

// ContractCreationResult carries the deployer records.
type ContractCreationResult struct {
	Count     int                       `json:"count"`
	Creations []models.ContractCreation `json:"creations"`
}

// ContractCreation fetches deployer info for up to five contract addresses.
func (s *ContractService) ContractCreation(ctx context.Context, addresses []string) (*ContractCreationResult, error) {
	creations, err := s.client.GetContractCreation(ctx, addresses)
	if err != nil {
		return nil, err
	}
	return &ContractCreationResult{Count: len(creations), Creations: creations}, nil
}

// ContractResource is the resource-style read keyed by address; it returns
// the same payload as CheckContract with every section included.
func (s *ContractService) ContractResource(ctx context.Context, address string) (*CheckContractResult, error) {
	return s.CheckContract(ctx, CheckContractParams{
		Address:         address,
		IncludeABI:      true,
		IncludeSource:   true,
		IncludeMetadata: true,
		IncludeCreation: true,
	})
}
