package quote

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/ugobe007/merlin2-sub009/internal/model"
)

// WriteCashFlowCSV writes the year-by-year schedule. This is the primary
// artifact for auditing "where the NPV comes from".
func WriteCashFlowCSV(path string, schedule []model.CashFlowYear) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"year",
		"capacity_pct",
		"savings",
		"om_cost",
		"net_cash_flow",
		"cumulative_cash_flow",
		"discounted_cash_flow",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range schedule {
		row := []string{
			strconv.Itoa(r.Year),
			fmtFloat(r.CapacityPct),
			fmtFloat(r.Savings),
			fmtFloat(r.OMCost),
			fmtFloat(r.NetCashFlow),
			fmtFloat(r.CumulativeCashFlow),
			fmtFloat(r.DiscountedCashFlow),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
