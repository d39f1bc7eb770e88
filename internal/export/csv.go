package export

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/buxfer/internal/dates"
	"github.com/MrJamesThe3rd/buxfer/internal/encoding"
	"github.com/MrJamesThe3rd/buxfer/internal/errs"
	"github.com/MrJamesThe3rd/buxfer/internal/expense"
	"github.com/MrJamesThe3rd/buxfer/internal/money"
)

var csvHeader = []string{"Date", "Description", "Category", "Amount"}

// Record is one row of an expenses CSV file.
type Record struct {
	Date        time.Time
	Description string
	Category    string
	Amount      int64
}

// WriteExpensesCSV writes expenses as Date,Description,Category,Amount rows.
// Descriptions are always quoted, with embedded quotes doubled.
func WriteExpensesCSV(w io.Writer, expenses []*expense.Expense) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(strings.Join(csvHeader, ",") + "\n")

	for _, e := range expenses {
		fmt.Fprintf(bw, "%s,%s,%s,%s\n",
			dates.Format(e.Date),
			quote(e.Description),
			field(e.Category),
			money.Format(e.Amount),
		)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}

	return nil
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// field quotes s only when it would otherwise break the row.
func field(s string) string {
	if strings.ContainsAny(s, ",\"\r\n") {
		return quote(s)
	}

	return s
}

// ReadExpensesCSV parses a file in the format produced by WriteExpensesCSV and reports the charset it
// was read as. The input may be in any encoding the encoding package detects.
func ReadExpensesCSV(r io.Reader) ([]Record, encoding.Charset, error) {
	utf8Reader, charset, err := encoding.Decode(r)
	if err != nil {
		return nil, "", err
	}

	records, err := readRecords(utf8Reader)

	return records, charset, err
}

func readRecords(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(csvHeader)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errs.Invalid("file", "empty")
	}

	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	for i, name := range csvHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), name) {
			return nil, errs.Invalid("header", fmt.Sprintf("column %d must be %s", i+1, name))
		}
	}

	var records []Record

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}

		line, _ := reader.FieldPos(0)

		rec, err := parseRecord(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		records = append(records, rec)
	}

	return records, nil
}

func parseRecord(row []string) (Record, error) {
	date, err := dates.Parse(row[0])
	if err != nil {
		return Record{}, err
	}

	amount, err := money.Parse(row[3])
	if err != nil {
		return Record{}, errs.Invalid("amount", fmt.Sprintf("%q is not an amount", row[3]))
	}

	return Record{
		Date:        date,
		Description: strings.TrimSpace(row[1]),
		Category:    strings.TrimSpace(row[2]),
		Amount:      amount,
	}, nil
}
