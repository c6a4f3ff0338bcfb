package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kelsos/etherscan-tools/internal/client"
	"github.com/kelsos/etherscan-tools/internal/config"
	"github.com/kelsos/etherscan-tools/internal/logger"
	"github.com/kelsos/etherscan-tools/internal/tools"
	"github.com/kelsos/etherscan-tools/internal/utils"
)

// output writes the tool result (or failure) as pretty-printed JSON on
// stdout. Logging goes to stderr, so stdout carries nothing else.
func output(v interface{}) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		logger.Error("Failed to encode output: %v", err)
	}
}

// runTool executes one tool invocation under a signal-aware context. Every
// error becomes a structured failure response and the process still exits
// with status 0; the dispatcher consuming the output decides what failure
// means.
func runTool(fn func(ctx context.Context) (interface{}, error)) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	defer func() {
		if r := recover(); r != nil {
			output(tools.FailureFromRecovered(r))
		}
	}()

	result, err := fn(ctx)
	if err != nil {
		output(tools.NewFailure(err))
		return
	}
	output(result)
}

// optionalBlock converts a flag value into an optional block number; any
// negative value means unset.
func optionalBlock(v int64) *int64 {
	if v < 0 {
		return nil
	}
	return &v
}

func main() {
	utils.LoadEnvironment()
	logger.Init()

	cfg := config.FromEnvironment()
	apiClient := client.New(cfg)

	contracts := tools.NewContractService(apiClient)
	transactions := tools.NewTransactionService(apiClient)
	tokens := tools.NewTokenService(apiClient)

	rootCmd := &cobra.Command{
		Use:   "etherscan-tools",
		Short: "Typed tool operations over the Etherscan API",
		Long:  `etherscan-tools exposes Etherscan-compatible explorer endpoints as typed, validated tool operations with structured JSON output.`,
	}

	var (
		includeABI      bool
		includeSource   bool
		includeMetadata bool
		includeCreation bool
	)
	contractCmd := &cobra.Command{
		Use:   "contract <address>",
		Short: "Fetch a contract's verified source, ABI, metadata and creation info",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runTool(func(ctx context.Context) (interface{}, error) {
				return contracts.CheckContract(ctx, tools.CheckContractParams{
					Address:         args[0],
					IncludeABI:      includeABI,
					IncludeSource:   includeSource,
					IncludeMetadata: includeMetadata,
					IncludeCreation: includeCreation,
				})
			})
		},
	}
	contractCmd.Flags().BoolVar(&includeABI, "abi", true, "Include the parsed ABI")
	contractCmd.Flags().BoolVar(&includeSource, "source", true, "Include the source text")
	contractCmd.Flags().BoolVar(&includeMetadata, "metadata", true, "Include the metadata mapping")
	contractCmd.Flags().BoolVar(&includeCreation, "creation", true, "Include deployer info")

	var (
		fromBlock  int64
		toBlock    int64
		logsPage   int64
		logsOffset int64
		topics     []string
	)
	contractLogsCmd := &cobra.Command{
		Use:   "contract-logs <address>",
		Short: "Fetch event logs emitted by a contract",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runTool(func(ctx context.Context) (interface{}, error) {
				return contracts.ContractLogs(ctx, tools.ContractLogsParams{
					Address:   args[0],
					FromBlock: optionalBlock(fromBlock),
					ToBlock:   optionalBlock(toBlock),
					Page:      logsPage,
					Offset:    logsOffset,
					Topics:    topics,
				})
			})
		},
	}
	contractLogsCmd.Flags().Int64Var(&fromBlock, "from-block", -1, "Lowest block to search")
	contractLogsCmd.Flags().Int64Var(&toBlock, "to-block", -1, "Highest block to search")
	contractLogsCmd.Flags().Int64Var(&logsPage, "page", 0, "Result page")
	contractLogsCmd.Flags().Int64Var(&logsOffset, "offset", 0, "Records per page")
	contractLogsCmd.Flags().StringSliceVar(&topics, "topic", nil, "Position-ordered topic filters (empty entry skips a position, up to 4)")

	contractCreationCmd := &cobra.Command{
		Use:   "contract-creation [address...]",
		Short: "Fetch deployer info for up to 5 contract addresses",
		Args:  cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runTool(func(ctx context.Context) (interface{}, error) {
				return contracts.ContractCreation(ctx, args)
			})
		},
	}

	contractResourceCmd := &cobra.Command{
		Use:   "contract-resource <address>",
		Short: "Fetch the full contract payload for an address",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runTool(func(ctx context.Context) (interface{}, error) {
				return contracts.ContractResource(ctx, args[0])
			})
		},
	}

	txStatusCmd := &cobra.Command{
		Use:   "tx-status <txhash>",
		Short: "Fetch the execution status of a transaction",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runTool(func(ctx context.Context) (interface{}, error) {
				return transactions.TransactionStatus(ctx, args[0])
			})
		},
	}

	txReceiptStatusCmd := &cobra.Command{
		Use:   "tx-receipt-status <txhash>",
		Short: "Fetch the receipt status of a transaction",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runTool(func(ctx context.Context) (interface{}, error) {
				return transactions.TransactionReceiptStatus(ctx, args[0])
			})
		},
	}

	tokenSupplyCmd := &cobra.Command{
		Use:   "token-supply <contract>",
		Short: "Fetch the current total supply of a token",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runTool(func(ctx context.Context) (interface{}, error) {
				return tokens.TokenSupply(ctx, args[0])
			})
		},
	}

	var supplyBlock int64
	tokenSupplyAtCmd := &cobra.Command{
		Use:   "token-supply-at <contract>",
		Short: "Fetch the total supply of a token at a block",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runTool(func(ctx context.Context) (interface{}, error) {
				return tokens.TokenSupplyAt(ctx, args[0], supplyBlock)
			})
		},
	}
	tokenSupplyAtCmd.Flags().Int64Var(&supplyBlock, "block", 0, "Block number")

	var balanceTag string
	tokenBalanceCmd := &cobra.Command{
		Use:   "token-balance <contract> <address>",
		Short: "Fetch the token balance of an account",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			runTool(func(ctx context.Context) (interface{}, error) {
				return tokens.TokenBalance(ctx, args[0], args[1], client.Tag(balanceTag))
			})
		},
	}
	tokenBalanceCmd.Flags().StringVar(&balanceTag, "tag", "latest", "Block tag (latest, earliest or pending)")

	var balanceBlock int64
	tokenBalanceAtCmd := &cobra.Command{
		Use:   "token-balance-at <contract> <address>",
		Short: "Fetch the token balance of an account at a block",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			runTool(func(ctx context.Context) (interface{}, error) {
				return tokens.TokenBalanceAt(ctx, args[0], args[1], balanceBlock)
			})
		},
	}
	tokenBalanceAtCmd.Flags().Int64Var(&balanceBlock, "block", 0, "Block number")

	var (
		page   int64
		offset int64
	)
	tokenHoldersCmd := &cobra.Command{
		Use:   "token-holders <contract>",
		Short: "Fetch the holder list of a token contract",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runTool(func(ctx context.Context) (interface{}, error) {
				return tokens.TokenHolders(ctx, args[0], page, offset)
			})
		},
	}

	addressTokenHoldingsCmd := &cobra.Command{
		Use:   "address-token-holdings <address>",
		Short: "Fetch the ERC-20 holdings of an address",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runTool(func(ctx context.Context) (interface{}, error) {
				return tokens.AddressTokenHoldings(ctx, args[0], page, offset)
			})
		},
	}

	addressNFTHoldingsCmd := &cobra.Command{
		Use:   "address-nft-holdings <address>",
		Short: "Fetch the ERC-721 holdings of an address",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runTool(func(ctx context.Context) (interface{}, error) {
				return tokens.AddressNFTHoldings(ctx, args[0], page, offset)
			})
		},
	}

	var inventoryContract string
	addressNFTInventoryCmd := &cobra.Command{
		Use:   "address-nft-inventory <address>",
		Short: "Fetch the NFT inventory of an address",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runTool(func(ctx context.Context) (interface{}, error) {
				return tokens.AddressNFTInventory(ctx, args[0], inventoryContract, page, offset)
			})
		},
	}
	addressNFTInventoryCmd.Flags().StringVar(&inventoryContract, "contract", "", "Filter to one collection contract")

	for _, cmd := range []*cobra.Command{tokenHoldersCmd, addressTokenHoldingsCmd, addressNFTHoldingsCmd, addressNFTInventoryCmd} {
		cmd.Flags().Int64Var(&page, "page", 0, "Result page")
		cmd.Flags().Int64Var(&offset, "offset", 0, "Records per page")
	}

	tokenResourceCmd := &cobra.Command{
		Use:   "token-resource <contract>",
		Short: "Fetch token metadata and supply in one payload",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runTool(func(ctx context.Context) (interface{}, error) {
				return tokens.TokenResource(ctx, args[0])
			})
		},
	}

	rootCmd.AddCommand(
		contractCmd,
		contractLogsCmd,
		contractCreationCmd,
		contractResourceCmd,
		txStatusCmd,
		txReceiptStatusCmd,
		tokenSupplyCmd,
		tokenSupplyAtCmd,
		tokenBalanceCmd,
		tokenBalanceAtCmd,
		tokenHoldersCmd,
		addressTokenHoldingsCmd,
		addressNFTHoldingsCmd,
		addressNFTInventoryCmd,
		tokenResourceCmd,
	)

	// Execute the root command
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Failed to execute command: %v", err)
	}
}
