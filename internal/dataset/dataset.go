// Package dataset projects the raw delimited files into typed series. Each
// dataset has its own field names, delimiter and numeric convention; rows
// whose date or value fail to parse are dropped and counted rather than
// carried through as NaN.
package dataset

import (
	"math"
	"strconv"
	"strings"
	"time"

	"RetailRadar/internal/dsv"
	"RetailRadar/internal/model"
)

// Dataset names, used as keys in load results and snapshots.
const (
	Sales    = "sales"
	Loans    = "loans"
	Percent  = "percent"
	Founding = "founding"
)

// Source file names under the asset base path.
const (
	FileSales    = "retailSales.csv"
	FileLoans    = "loans.csv"
	FilePercent  = "percentOfTotal.csv"
	FileFounding = "foundingDates.csv"
)

// FileFor returns the source file name for a dataset.
func FileFor(name string) string {
	switch name {
	case Sales:
		return FileSales
	case Loans:
		return FileLoans
	case Percent:
		return FilePercent
	case Founding:
		return FileFounding
	}
	return ""
}

const dateLayout = "2006-01-02"

// ParseSales reads the retail e-commerce sales file (semicolon-delimited,
// point decimals). Returns the series plus the number of dropped rows.
func ParseSales(text string) (model.Series, int) {
	return observations(text, "ECOMSA", false)
}

// ParseLoans reads the consumer loan balance file (semicolon-delimited,
// values may use a decimal comma).
func ParseLoans(text string) (model.Series, int) {
	return observations(text, "CCLACBW027SBOG", true)
}

// ParsePercent reads the e-commerce share-of-retail file (semicolon-delimited,
// values may use a decimal comma).
func ParsePercent(text string) (model.Series, int) {
	return observations(text, "ECOMPCTSA", true)
}

// ParseFounding reads the company founding file (comma-delimited). Rows with
// an empty company name or an unparseable date are dropped.
func ParseFounding(text string) ([]model.FoundingRecord, int) {
	var out []model.FoundingRecord
	skipped := 0
	for _, rec := range dsv.Parse(text, ',') {
		company := strings.TrimSpace(rec["company"])
		founded, err := time.Parse(dateLayout, strings.TrimSpace(rec["founded_date"]))
		if company == "" || err != nil {
			skipped++
			continue
		}
		out = append(out, model.FoundingRecord{Company: company, Founded: founded})
	}
	return out, skipped
}

func observations(text, valueField string, commaDecimal bool) (model.Series, int) {
	var out model.Series
	skipped := 0
	for _, rec := range dsv.Parse(text, ';') {
		date, err := time.Parse(dateLayout, strings.TrimSpace(rec["observation_date"]))
		if err != nil {
			skipped++
			continue
		}
		raw := strings.TrimSpace(rec[valueField])
		if commaDecimal {
			raw = normalizeDecimalComma(raw)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			skipped++
			continue
		}
		out = append(out, model.SeriesPoint{Date: date, Value: v})
	}
	return out, skipped
}

// normalizeDecimalComma replaces the decimal comma with a point. Only a
// single replacement is made; the sources never carry thousands separators.
func normalizeDecimalComma(s string) string {
	return strings.Replace(s, ",", ".", 1)
}
