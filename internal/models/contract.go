package models

import "encoding/json"

// ABISummary lists the callable surface extracted from a verified ABI.
type ABISummary struct {
	Functions []string `json:"functions,omitempty"`
	Events    []string `json:"events,omitempty"`
}

// ContractSource is the reshaped first element of a getsourcecode response.
// Everything upstream sends besides the source text and ABI is carried
// through verbatim in Metadata.
type ContractSource struct {
	Address         string            `json:"address"`
	SourceCode      string            `json:"sourceCode,omitempty"`
	ABI             json.RawMessage   `json:"abi,omitempty"`
	ABISummary      *ABISummary       `json:"abiSummary,omitempty"`
	ContractName    string            `json:"contractName,omitempty"`
	CompilerVersion string            `json:"compilerVersion,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

// ContractCreation is one deployer record from getcontractcreation.
type ContractCreation struct {
	ContractAddress string `json:"contractAddress"`
	ContractCreator string `json:"contractCreator"`
	TxHash          string `json:"txHash"`
}
