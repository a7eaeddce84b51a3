package analysis

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/lancemnguyen/dataferry/errors"
)

// Transaction is one row of the customer shopping dataset.
type Transaction struct {
	InvoiceNo     string
	CustomerID    string
	Gender        string
	Age           int
	Category      string
	Quantity      int
	Price         float64
	PaymentMethod string
	// InvoiceDate is parsed day-first (d/m/yyyy).
	InvoiceDate  time.Time
	ShoppingMall string
}

// TotalSale returns quantity * price for the transaction.
func (t Transaction) TotalSale() float64 {
	return float64(t.Quantity) * t.Price
}

// dateLayout matches day-first dates; "2/1/2006" also accepts
// zero-padded day and month.
const dateLayout = "2/1/2006"

// LoadTransactions reads and parses the dataset at path. A missing or
// empty file and any malformed row are load errors.
func LoadTransactions(path string) ([]Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.DataLoad(path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err == io.EOF {
		return nil, errors.DataLoad(path, fmt.Errorf("the file is empty"))
	}
	if err != nil {
		return nil, errors.DataLoad(path, err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{
		"invoice_no", "customer_id", "gender", "age", "category",
		"quantity", "price", "payment_method", "invoice_date", "shopping_mall",
	} {
		if _, ok := col[required]; !ok {
			return nil, errors.DataLoad(path, fmt.Errorf("missing column %q", required))
		}
	}

	var txs []Transaction
	for row := 2; ; row++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.DataLoad(path, err).WithDetail("row", row)
		}

		tx, err := parseTransaction(record, col)
		if err != nil {
			return nil, errors.DataLoad(path, err).WithDetail("row", row)
		}
		txs = append(txs, tx)
	}

	if len(txs) == 0 {
		return nil, errors.DataLoad(path, fmt.Errorf("the file has no data rows"))
	}
	return txs, nil
}

func parseTransaction(record []string, col map[string]int) (Transaction, error) {
	field := func(name string) string { return record[col[name]] }

	age, err := strconv.Atoi(field("age"))
	if err != nil {
		return Transaction{}, fmt.Errorf("bad age %q: %w", field("age"), err)
	}
	quantity, err := strconv.Atoi(field("quantity"))
	if err != nil {
		return Transaction{}, fmt.Errorf("bad quantity %q: %w", field("quantity"), err)
	}
	price, err := strconv.ParseFloat(field("price"), 64)
	if err != nil {
		return Transaction{}, fmt.Errorf("bad price %q: %w", field("price"), err)
	}
	date, err := time.Parse(dateLayout, field("invoice_date"))
	if err != nil {
		return Transaction{}, fmt.Errorf("bad invoice_date %q: %w", field("invoice_date"), err)
	}

	return Transaction{
		InvoiceNo:     field("invoice_no"),
		CustomerID:    field("customer_id"),
		Gender:        field("gender"),
		Age:           age,
		Category:      field("category"),
		Quantity:      quantity,
		Price:         price,
		PaymentMethod: field("payment_method"),
		InvoiceDate:   date,
		ShoppingMall:  field("shopping_mall"),
	}, nil
}
