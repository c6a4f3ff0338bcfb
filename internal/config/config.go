package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variables consulted by Resolve. All of them are optional.
const (
	EnvAPIKey  = "ETHERSCAN_API_KEY"
	EnvNetwork = "ETHERSCAN_NETWORK"
	EnvChainID = "ETHERSCAN_CHAIN_ID"
	EnvBaseURL = "ETHERSCAN_BASE_URL"
	EnvTimeout = "ETHERSCAN_TIMEOUT"
)

const (
	DefaultNetwork   = "mainnet"
	DefaultChainID   = "1"
	DefaultTimeoutMS = 30000

	// Requests shorter than this are pointless against the upstream API.
	minTimeoutMS = 1000
)

// Config holds the resolved connection parameters for the Etherscan API.
// It is computed once at process start and never mutated afterwards.
type Config struct {
	// BaseURL is the API endpoint without any query parameters.
	BaseURL string
	// APIKey is the optional upstream API key. Blank means absent; a blank
	// key never produces an apikey query parameter.
	APIKey string
	// Network selects the API host when BaseURL is synthesized.
	Network string
	// ChainID accompanies every request as the chainid query parameter.
	ChainID string
	// Timeout bounds each outbound request.
	Timeout time.Duration
}

// Resolve derives a Config from the given environment lookup. Every input
// degrades to a fixed default; Resolve never fails.
func Resolve(lookup func(string) string) *Config {
	network := strings.TrimSpace(lookup(EnvNetwork))
	if network == "" {
		network = DefaultNetwork
	}

	chainID := strings.TrimSpace(lookup(EnvChainID))
	if chainID == "" {
		chainID = DefaultChainID
	}

	timeoutMS := DefaultTimeoutMS
	if raw := strings.TrimSpace(lookup(EnvTimeout)); raw != "" {
		if ms, err := strconv.Atoi(raw); err == nil {
			timeoutMS = ms
		}
	}
	if timeoutMS < minTimeoutMS {
		timeoutMS = minTimeoutMS
	}

	baseURL := strings.TrimSpace(lookup(EnvBaseURL))
	if baseURL != "" {
		baseURL = strings.TrimRight(baseURL, "/")
	} else {
		baseURL = apiURL(network)
	}

	return &Config{
		BaseURL: baseURL,
		APIKey:  strings.TrimSpace(lookup(EnvAPIKey)),
		Network: network,
		ChainID: chainID,
		Timeout: time.Duration(timeoutMS) * time.Millisecond,
	}
}

// FromEnvironment resolves the configuration from the process environment.
func FromEnvironment() *Config {
	return Resolve(os.Getenv)
}

// apiURL synthesizes the Etherscan v2 endpoint for a network id.
func apiURL(network string) string {
	if network == DefaultNetwork {
		return "https://api.etherscan.io/v2/api"
	}
	return fmt.Sprintf("https://api-%s.etherscan.io/v2/api", network)
}
