package analysis

import (
	"context"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lancemnguyen/dataferry/errors"
)

// GenderCount is the population of one gender in the dataset.
type GenderCount struct {
	Gender     string
	Count      int
	Percentage float64
}

// GenderSales is the total sales attributed to one gender.
type GenderSales struct {
	Gender     string
	Total      float64
	Percentage float64
}

// PaymentUsage is the usage count of one payment method.
type PaymentUsage struct {
	Method     string
	Count      int
	Percentage float64
}

// DaySales is the total sales on one invoice day.
type DaySales struct {
	Date  time.Time
	Total float64
}

// Report holds the results of all four analyses.
type Report struct {
	Population      []GenderCount
	Sales           []GenderSales
	Payments        []PaymentUsage
	MostUsedPayment PaymentUsage
	BestDay         DaySales

	totalCustomers int
	grandTotal     float64
}

// BuildReport runs the four independent analyses concurrently and
// collects their results.
func BuildReport(ctx context.Context, txs []Transaction) (*Report, error) {
	if len(txs) == 0 {
		return nil, errors.New(errors.ErrCodeDataLoad, "no transactions to analyze")
	}

	report := &Report{}
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		report.Population, report.totalCustomers = PopulationByGender(txs)
		return nil
	})
	g.Go(func() error {
		report.Sales, report.grandTotal = SalesByGender(txs)
		return nil
	})
	g.Go(func() error {
		var err error
		report.Payments, report.MostUsedPayment, err = PaymentMethods(txs)
		return err
	})
	g.Go(func() error {
		var err error
		report.BestDay, err = BestSalesDay(txs)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return report, nil
}

// PopulationByGender counts customers grouped by gender, most numerous
// first. The second result is the total row count.
func PopulationByGender(txs []Transaction) ([]GenderCount, int) {
	counts := map[string]int{}
	for _, tx := range txs {
		counts[tx.Gender]++
	}

	out := make([]GenderCount, 0, len(counts))
	for gender, n := range counts {
		out = append(out, GenderCount{
			Gender:     gender,
			Count:      n,
			Percentage: float64(n) / float64(len(txs)) * 100,
		})
	}
	sortStable(out, func(a, b GenderCount) bool {
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Gender < b.Gender
	})
	return out, len(txs)
}

// SalesByGender sums quantity*price grouped by gender, largest first.
// The second result is the grand total.
func SalesByGender(txs []Transaction) ([]GenderSales, float64) {
	totals := map[string]float64{}
	var grand float64
	for _, tx := range txs {
		sale := tx.TotalSale()
		totals[tx.Gender] += sale
		grand += sale
	}

	out := make([]GenderSales, 0, len(totals))
	for gender, total := range totals {
		pct := 0.0
		if grand != 0 {
			pct = total / grand * 100
		}
		out = append(out, GenderSales{Gender: gender, Total: total, Percentage: pct})
	}
	sortStable(out, func(a, b GenderSales) bool {
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return a.Gender < b.Gender
	})
	return out, grand
}

// PaymentMethods counts transactions per payment method, most used
// first, and returns the most used method.
func PaymentMethods(txs []Transaction) ([]PaymentUsage, PaymentUsage, error) {
	if len(txs) == 0 {
		return nil, PaymentUsage{}, errors.New(errors.ErrCodeDataLoad, "no transactions to analyze")
	}

	counts := map[string]int{}
	for _, tx := range txs {
		counts[tx.PaymentMethod]++
	}

	out := make([]PaymentUsage, 0, len(counts))
	for method, n := range counts {
		out = append(out, PaymentUsage{
			Method:     method,
			Count:      n,
			Percentage: float64(n) / float64(len(txs)) * 100,
		})
	}
	sortStable(out, func(a, b PaymentUsage) bool {
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Method < b.Method
	})
	return out, out[0], nil
}

// BestSalesDay finds the invoice day with the highest total sales.
func BestSalesDay(txs []Transaction) (DaySales, error) {
	if len(txs) == 0 {
		return DaySales{}, errors.New(errors.ErrCodeDataLoad, "no transactions to analyze")
	}

	totals := map[time.Time]float64{}
	for _, tx := range txs {
		day := tx.InvoiceDate.Truncate(24 * time.Hour)
		totals[day] += tx.TotalSale()
	}

	var best DaySales
	first := true
	for day, total := range totals {
		if first || total > best.Total || (total == best.Total && day.Before(best.Date)) {
			best = DaySales{Date: day, Total: total}
			first = false
		}
	}
	return best, nil
}

// Render writes the report as text tables.
func (r *Report) Render(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "Population grouped by gender:")
	fmt.Fprintln(tw, "Gender\tCount\tPercentage")
	for _, row := range r.Population {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Gender, formatCount(row.Count), formatPercent(row.Percentage))
	}
	fmt.Fprintf(tw, "Total: %s\n\n", formatCount(r.totalCustomers))

	fmt.Fprintln(tw, "Total sales by gender:")
	fmt.Fprintln(tw, "Gender\tTotal Sales\tPercentage")
	for _, row := range r.Sales {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Gender, formatCurrency(row.Total), formatPercent(row.Percentage))
	}
	fmt.Fprintf(tw, "Grand Total: %s\n\n", formatCurrency(r.grandTotal))

	fmt.Fprintln(tw, "Payment method usage:")
	fmt.Fprintln(tw, "Method\tCount\tPercentage")
	for _, row := range r.Payments {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Method, formatCount(row.Count), formatPercent(row.Percentage))
	}
	fmt.Fprintf(tw, "Most used payment method: %s (%s transactions)\n\n",
		r.MostUsedPayment.Method, formatCount(r.MostUsedPayment.Count))

	fmt.Fprintf(tw, "Day with the most sales: %s (%s)\n",
		r.BestDay.Date.Format("2006-01-02"), formatCurrency(r.BestDay.Total))

	tw.Flush()
}

func sortStable[T any](s []T, less func(a, b T) bool) {
	sort.SliceStable(s, func(i, j int) bool { return less(s[i], s[j]) })
}
