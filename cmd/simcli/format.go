package main

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"golang.org/x/term"

	"github.com/cgpxyz/simbundle/ethapi"
)

func formatGwei(v *big.Int) string {
	if v == nil {
		return "0"
	}
	r := new(big.Rat).SetFrac(v, big.NewInt(1_000_000_000))
	return r.FloatString(2)
}

// printResult pretty-prints a summary on a terminal and emits the raw
// result JSON when piped.
func printResult(info *ethapi.TransactionSimulationInfo, bundleLen int) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		raw, err := json.Marshal(info)
		if err != nil {
			return err
		}
		_, err = fmt.Println(string(raw))
		return err
	}

	fmt.Println("=== SIMULATION ===")
	fmt.Println("Bundle size   :", bundleLen)
	fmt.Println("Total gas     :", info.TotalGasUsed)
	fmt.Println("State touched :", !info.StateUntouched())
	fmt.Println("Receipts      :", len(info.TxReceipts))
	for i, r := range info.TxReceipts {
		status := "ok"
		if r.Status == 0 {
			status = "reverted"
		}
		fmt.Printf("  #%d %s gas=%d status=%s\n", i, r.TxHash.Hex(), r.GasUsed, status)
	}
	fmt.Println("Logs          :", len(info.TxLogs))
	if info.TraceDebugInfo == nil {
		fmt.Println("Traces        : (not requested)")
	} else {
		fmt.Println("Traces        :", len(info.TraceDebugInfo))
		for i, tr := range info.TraceDebugInfo {
			fmt.Printf("  trace #%d: %s\n", i, string(tr))
		}
	}
	fmt.Println("==================")
	return nil
}
