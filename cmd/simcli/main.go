package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/cgpxyz/simbundle/bundleclient"
	"github.com/cgpxyz/simbundle/ethapi"
	"github.com/cgpxyz/simbundle/internal/config"
)

func main() {
	_ = godotenv.Load()
	_ = godotenv.Overload(".env.local")

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "simcli",
		Short:        "Simulate transaction bundles via cgp_simulateTransactionsBundle",
		SilenceUsage: true,
	}
	root.AddCommand(newSimulateCmd())
	return root
}

func newSimulateCmd() *cobra.Command {
	st := config.Load()
	var overridesFile string

	cmd := &cobra.Command{
		Use:   "simulate [bundle.json]",
		Short: "Run a bundle against a chosen block state without touching the chain",
		Long: "Reads an ordered JSON array of call requests from the given file (or stdin)\n" +
			"and simulates it on the node. Receipts, logs and gas come back as if the\n" +
			"bundle had been mined; nothing is persisted.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txs, err := readBundle(args)
			if err != nil {
				return err
			}
			blockID, err := parseBlockID(st.BlockTag)
			if err != nil {
				return err
			}

			var opts ethapi.EmulateOptions
			if st.Tracer != "" {
				tracer := st.Tracer
				opts.TracingOptions = &ethapi.TracingOptions{Tracer: &tracer}
			}
			if overridesFile != "" {
				so, err := readStateOverrides(overridesFile)
				if err != nil {
					return err
				}
				opts.StateOverrides = so
			}

			ctx := cmd.Context()
			if st.Preflight {
				preflight(ctx, st.RPCURL)
			}

			copts := []bundleclient.Option{bundleclient.WithRequestID(st.RequestID)}
			if st.Verbose {
				copts = append(copts, bundleclient.WithLogf(func(format string, a ...any) {
					fmt.Fprintf(os.Stderr, format+"\n", a...)
				}))
			}
			cl := bundleclient.New(st.RPCURL, copts...)
			resp, err := cl.SimulateTransactionsBundle(ctx, txs, blockID, opts)
			if err != nil {
				return err
			}
			if !resp.Result.StateUntouched() {
				fmt.Fprintf(os.Stderr, "warning: trie hashes %q/%q, node persisted state?\n",
					resp.Result.TrieHashBefore, resp.Result.TrieHashAfter)
			}
			if err := resp.Result.CheckBundle(len(txs)); err != nil {
				fmt.Fprintln(os.Stderr, "warning:", err)
			}
			return printResult(&resp.Result, len(txs))
		},
	}

	cmd.Flags().StringVar(&st.RPCURL, "rpc", st.RPCURL, "node RPC endpoint")
	cmd.Flags().StringVar(&st.BlockTag, "block", st.BlockTag, "block to simulate against: tag, number or hash")
	cmd.Flags().StringVar(&st.Tracer, "tracer", st.Tracer, "debug tracer to run (e.g. callTracer, prestateTracer)")
	cmd.Flags().StringVar(&overridesFile, "state-overrides", "", "JSON file with account overrides")
	cmd.Flags().Uint64Var(&st.RequestID, "id", st.RequestID, "request envelope id")
	cmd.Flags().BoolVar(&st.Preflight, "preflight", st.Preflight, "query chain id and head before simulating")
	cmd.Flags().BoolVarP(&st.Verbose, "verbose", "v", st.Verbose, "log client progress to stderr")
	return cmd
}

// readBundle loads the ordered call array from the file argument, or
// from stdin when no argument is given.
func readBundle(args []string) ([]ethapi.CallRequest, error) {
	var (
		raw []byte
		err error
	)
	if len(args) == 1 && args[0] != "-" {
		raw, err = os.ReadFile(args[0])
	} else {
		raw, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return nil, fmt.Errorf("read bundle: %w", err)
	}
	var txs []ethapi.CallRequest
	if err := json.Unmarshal(raw, &txs); err != nil {
		return nil, fmt.Errorf("parse bundle: %w", err)
	}
	if len(txs) == 0 {
		return nil, fmt.Errorf("bundle is empty")
	}
	return txs, nil
}

func readStateOverrides(path string) (*ethapi.StateOverride, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overrides: %w", err)
	}
	var so ethapi.StateOverride
	if err := json.Unmarshal(raw, &so); err != nil {
		return nil, fmt.Errorf("parse overrides: %w", err)
	}
	return &so, nil
}

// parseBlockID turns the --block flag into a BlockID: block hash, decimal
// number, hex number, or one of the geth tags. Empty means "node default".
func parseBlockID(s string) (*ethapi.BlockID, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "none" {
		return nil, nil
	}
	if strings.HasPrefix(s, "0x") && len(s) == 66 {
		return ethapi.BlockIDHash(common.HexToHash(s)), nil
	}
	if n, err := strconv.ParseUint(s, 10, 63); err == nil {
		return ethapi.BlockIDNumber(rpc.BlockNumber(n)), nil
	}
	var bn rpc.BlockNumber
	if err := bn.UnmarshalJSON([]byte(strconv.Quote(s))); err != nil {
		return nil, fmt.Errorf("bad block id %q: %w", s, err)
	}
	return ethapi.BlockIDNumber(bn), nil
}

// preflight prints chain id and head info the way an operator would want
// to sanity-check the endpoint before burning a simulation on it.
func preflight(ctx context.Context, rpcURL string) {
	ec, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "preflight: dial:", err)
		return
	}
	defer ec.Close()
	chainID, err := ec.ChainID(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "preflight: chain id:", err)
		return
	}
	head, err := ec.HeaderByNumber(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "preflight: head:", err)
		return
	}
	fmt.Println("=== NODE ===")
	fmt.Println("RPC      :", rpcURL)
	fmt.Println("ChainID  :", chainID.String())
	fmt.Println("Head     :", head.Number.String())
	if head.BaseFee != nil {
		fmt.Println("BaseFee  :", formatGwei(head.BaseFee), "gwei")
	}
	fmt.Println("============")
}
