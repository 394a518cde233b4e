package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/ugobe007/merlin2-sub009/internal/config"
	"github.com/ugobe007/merlin2-sub009/internal/finance"
	"github.com/ugobe007/merlin2-sub009/internal/model"
	"github.com/ugobe007/merlin2-sub009/internal/quote"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "quote":
		cmdQuote(os.Args[2:])
	case "montecarlo":
		cmdMonteCarlo(os.Args[2:])
	case "industries":
		cmdIndustries()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli quote --config examples/carwash.yaml --out results/cashflows.csv")
	fmt.Println("  cli montecarlo --config examples/carwash.yaml --iterations 10000 --seed 42")
	fmt.Println("  cli industries")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - quote prints the sizing and financial summary; --out writes the cash-flow CSV")
	fmt.Println("  - montecarlo prints NPV percentiles and probability of a positive outcome")
}

func cmdQuote(args []string) {
	fs := pflag.NewFlagSet("quote", pflag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario")
	outPath := fs.String("out", "", "Optional: output cash-flow CSV path")
	strict := fs.Bool("strict", false, "Fail on pricing-critical defaults and hard invariant violations")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Fprintln(os.Stderr, "--config is required")
		os.Exit(2)
	}

	scenario, err := config.Load(*cfgPath)
	if err != nil {
		fatal("load scenario: %v", err)
	}

	req := quote.FromScenario(scenario)
	req.IncludeCashFlows = *outPath != ""
	if *strict {
		req.Strict = true
	}

	result, err := quote.New().Run(req)
	if err != nil {
		fatal("quote failed: %v", err)
	}

	printSummary(result)

	if *outPath != "" {
		if err := quote.WriteCashFlowCSV(*outPath, result.CashFlows); err != nil {
			fatal("write cash flows: %v", err)
		}
		fmt.Printf("\ncash-flow schedule written to %s\n", *outPath)
	}
}

func cmdMonteCarlo(args []string) {
	fs := pflag.NewFlagSet("montecarlo", pflag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario")
	iterations := fs.Int("iterations", 0, "Draw count (0 = default 10000)")
	seed := fs.Int64("seed", 0, "Random seed for reproducible runs")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Fprintln(os.Stderr, "--config is required")
		os.Exit(2)
	}

	scenario, err := config.Load(*cfgPath)
	if err != nil {
		fatal("load scenario: %v", err)
	}

	req := quote.FromScenario(scenario)
	req.Risk = &finance.RiskOptions{Iterations: *iterations, Seed: *seed}

	result, err := quote.New().Run(req)
	if err != nil {
		fatal("quote failed: %v", err)
	}

	r := result.Risk
	fmt.Printf("monte carlo (%d draws, seed %d)\n", r.Iterations, r.Seed)
	fmt.Printf("  p10 NPV:  $%.0f\n", r.P10NPV)
	fmt.Printf("  p50 NPV:  $%.0f\n", r.P50NPV)
	fmt.Printf("  p90 NPV:  $%.0f\n", r.P90NPV)
	fmt.Printf("  P(NPV>0): %.1f%%\n", r.ProbabilityPositive*100)
	fmt.Printf("  VaR(95):  $%.0f\n", r.ValueAtRisk95)
}

func cmdIndustries() {
	for _, ind := range model.Industries() {
		fmt.Println(ind)
	}
}

func printSummary(result *model.QuoteResult) {
	fmt.Printf("quote %s (%s, goal %s)\n", result.ID, result.Industry, result.Goal)
	fmt.Printf("  load:    base %.1f kW / peak %.1f kW / %.0f kWh/day\n",
		result.LoadProfile.BaseLoadKW, result.LoadProfile.PeakLoadKW, result.LoadProfile.EnergyKWhPerDay)
	fmt.Printf("  battery: %.1f kW / %.1f kWh (%.0fh)\n",
		result.BESSConfig.PowerKW, result.BESSConfig.EnergyKWh, result.BESSConfig.DurationHrs)

	f := result.FinancialResult
	fmt.Printf("  capex:   $%.0f (ITC %.0f%% = $%.0f)\n", f.CapexTotal, f.ITCRate*100, f.ITCCreditAmount)
	fmt.Printf("  savings: $%.0f/yr, NPV $%.0f\n", f.AnnualSavings, f.NPV)
	if f.IRR != nil {
		fmt.Printf("  IRR:     %.1f%%\n", *f.IRR*100)
	} else {
		fmt.Printf("  IRR:     not computable\n")
	}
	if f.PaybackYears != nil {
		fmt.Printf("  payback: %.1f years\n", *f.PaybackYears)
	} else {
		fmt.Printf("  payback: beyond horizon\n")
	}

	if len(result.Assumptions) > 0 {
		fmt.Println("assumptions:")
		for _, a := range result.Assumptions {
			fmt.Printf("  - %s\n", a)
		}
	}
	if len(result.Warnings) > 0 {
		fmt.Println("warnings:")
		for _, w := range result.Warnings {
			fmt.Printf("  - %s\n", w)
		}
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
