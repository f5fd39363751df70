package normalizers

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"payout-analytics/internal/models"

	"github.com/shopspring/decimal"
)

// The export layout is a documented contract of the source format, not
// something inferred from content: a report banner and a blank line precede
// the header row, and a block of summary rows follows the last data row.
// Earlier format revisions shipped a 2-row footer; current exports carry 4.
// Verified against testdata/sample_report.csv.
const (
	LeadingBannerLines = 2
	TrailingFooterRows = 4
)

// Date layouts the export has been observed to use. All are interpreted as
// UTC; the export carries no zone information.
var orderDateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.000Z",
	"2006-01-02",
}

// ReportNormalizer turns a raw payout-report CSV into a canonical RecordSet.
//
//go:generate mockgen -source=report_normalizer.go -destination=./mocks/report_normalizer_mock.go -package=mocks
type ReportNormalizer interface {
	Normalize(r io.Reader) (*NormalizeResult, error)
}

// NormalizeResult carries the record set plus data-quality tallies from the
// normalization pass.
type NormalizeResult struct {
	RecordSet *models.RecordSet
	// CoercedMissing counts earnings cells that failed numeric coercion and
	// were recorded as missing rather than zero.
	CoercedMissing int
}

type reportNormalizer struct{}

func NewReportNormalizer() ReportNormalizer {
	return &reportNormalizer{}
}

func (n *reportNormalizer) Normalize(r io.Reader) (*NormalizeResult, error) {
	buffered := bufio.NewReader(r)

	// Skip the banner lines before handing the rest to the CSV reader.
	for i := 0; i < LeadingBannerLines; i++ {
		if _, err := buffered.ReadString('\n'); err != nil {
			if err == io.EOF {
				// Shorter than the banner: an empty upload, which is a valid
				// empty record set.
				return &NormalizeResult{RecordSet: &models.RecordSet{}}, nil
			}
			return nil, errInvalidInput("failed to read report", err)
		}
	}

	csvReader := csv.NewReader(buffered)
	// Footer rows do not match the header width.
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, errInvalidInput("report is not valid CSV", err)
	}
	if len(records) == 0 {
		return &NormalizeResult{RecordSet: &models.RecordSet{}}, nil
	}

	header := records[0]
	columns := make([]string, len(header))
	columnIndex := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		columns[i] = name
		columnIndex[name] = i
	}

	rows := records[1:]
	if len(rows) <= TrailingFooterRows {
		// Header and footer only: valid, empty.
		return &NormalizeResult{RecordSet: &models.RecordSet{Columns: columns}}, nil
	}
	rows = rows[:len(rows)-TrailingFooterRows]

	dateIdx, hasDate := columnIndex[models.ColumnOrderDate]
	if !hasDate {
		return nil, errMissingColumn(models.ColumnOrderDate)
	}

	result := &NormalizeResult{
		RecordSet: &models.RecordSet{
			Columns: columns,
			Orders:  make([]*models.Order, 0, len(rows)),
		},
	}

	for i, row := range rows {
		order, coerced, err := n.normalizeRow(columns, columnIndex, dateIdx, row, i)
		if err != nil {
			return nil, err
		}
		result.CoercedMissing += coerced
		result.RecordSet.Orders = append(result.RecordSet.Orders, order)
	}

	metricRowsNormalizedTotal.Add(float64(len(result.RecordSet.Orders)))
	metricEarningsCoercedMissingTotal.Add(float64(result.CoercedMissing))

	return result, nil
}

func (n *reportNormalizer) normalizeRow(columns []string, columnIndex map[string]int, dateIdx int, row []string, rowIdx int) (*models.Order, int, error) {
	orderDate, err := n.parseOrderDate(cell(row, dateIdx))
	if err != nil {
		// An unparseable order date invalidates the whole upload; it must
		// never be silently zeroed.
		return nil, 0, errUnparseableOrderDate(rowIdx+1, cell(row, dateIdx), err)
	}

	order := &models.Order{OrderDate: orderDate}
	coerced := 0

	if idx, ok := columnIndex[models.ColumnProduct]; ok {
		order.Product = strings.TrimSpace(cell(row, idx))
	}
	if idx, ok := columnIndex[models.ColumnTitle]; ok {
		order.Title = strings.TrimSpace(cell(row, idx))
	}
	for _, col := range []struct {
		name string
		dst  *decimal.NullDecimal
	}{
		{models.ColumnDesignerEarnings, &order.DesignerEarnings},
		{models.ColumnAffiliateEarnings, &order.AffiliateEarnings},
		{models.ColumnTotalEarnings, &order.TotalEarnings},
	} {
		idx, ok := columnIndex[col.name]
		if !ok {
			continue
		}
		value, ok := n.coerceDecimal(cell(row, idx))
		if !ok {
			coerced++
		}
		*col.dst = value
	}

	// Carry unmodeled columns verbatim for full-row projections.
	for i, name := range columns {
		switch name {
		case models.ColumnOrderDate, models.ColumnProduct, models.ColumnTitle,
			models.ColumnDesignerEarnings, models.ColumnAffiliateEarnings, models.ColumnTotalEarnings:
			continue
		}
		if order.Passthrough == nil {
			order.Passthrough = make(map[string]string)
		}
		order.Passthrough[name] = cell(row, i)
	}

	return order, coerced, nil
}

func (n *reportNormalizer) parseOrderDate(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range orderDateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}

// coerceDecimal parses an earnings cell. A blank or non-numeric cell becomes
// an invalid NullDecimal ("missing"): zero for summation but distinguishable
// from a true zero. ok is false when coercion failed on a non-empty cell or a
// blank cell.
func (n *reportNormalizer) coerceDecimal(raw string) (decimal.NullDecimal, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.NullDecimal{}, false
	}
	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.NullDecimal{}, false
	}
	return decimal.NullDecimal{Decimal: value, Valid: true}, true
}

// cell returns the i-th field of a possibly ragged CSV row.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
