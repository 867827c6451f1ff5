package dataset

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/maryrojas/rentabilidad-go/internal/domain"
)

// Normalized column names of the source file. String-keyed column lookup is
// confined to this package; everything downstream works on typed Records.
const (
	colEBITDA      = "ebitda (cartera)"
	colPrice       = "precio"
	colUnits       = "uds"
	colFirstMile   = "1era milla"
	colLastMileVeh = "log um veh"
	colChannel     = "canal"
	colProductType = "tipo huevo"
	colCity        = "ciudad"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Load reads the profitability CSV at path into an immutable Dataset.
//
// The header row is normalized (trim, lowercase, embedded newlines stripped)
// and columns are addressed by normalized name. Monetary columns run through
// ParseAmount; absent monetary or categorical columns are skipped. The two
// logistics sub-columns are required because the derived total has no
// fallback. Any failure to locate or tokenize the file returns a
// *domain.LoadError; callers report it and keep their session alive.
func Load(path string) (*domain.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.LoadError{Source: path, Err: err}
	}
	defer f.Close()

	br := bufio.NewReader(f)
	if bom, err := br.Peek(len(utf8BOM)); err == nil && string(bom) == string(utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	r := csv.NewReader(br)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, &domain.LoadError{Source: path, Err: errors.Wrap(err, "read header row")}
	}

	// Map normalized column names to indices; first occurrence wins.
	colMap := make(map[string]int, len(header))
	for i, col := range header {
		name := normalizeHeader(col)
		if _, ok := colMap[name]; !ok {
			colMap[name] = i
		}
	}

	for _, required := range []string{colFirstMile, colLastMileVeh} {
		if _, ok := colMap[required]; !ok {
			return nil, &domain.LoadError{
				Source: path,
				Err:    errors.Errorf("required logistics column %q missing", required),
			}
		}
	}

	ds := &domain.Dataset{SourcePath: path}

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &domain.LoadError{Source: path, Err: errors.Wrap(err, "read data row")}
		}

		row := domain.Record{
			Channel:     NormalizeChannel(cell(rec, colMap, colChannel)),
			ProductType: NormalizeProductType(cell(rec, colMap, colProductType)),
			City:        NormalizeCity(cell(rec, colMap, colCity)),
		}
		row.Price = money(rec, colMap, colPrice, ds)
		row.Units = money(rec, colMap, colUnits, ds)
		row.EBITDA = money(rec, colMap, colEBITDA, ds)
		row.FirstMile = money(rec, colMap, colFirstMile, ds)
		row.LastMileVeh = money(rec, colMap, colLastMileVeh, ds)
		row.LogisticsTotal = row.FirstMile + row.LastMileVeh

		ds.Records = append(ds.Records, row)
	}

	if ds.CoercedCells > 0 {
		log.Warn().
			Str("source", path).
			Int("coerced_cells", ds.CoercedCells).
			Msg("monetary cells coerced to 0.0; aggregates may be understated")
	}

	log.Info().
		Str("source", path).
		Int("rows", len(ds.Records)).
		Msg("dataset loaded")

	return ds, nil
}

// cell returns the raw value of a column, or "" when the column is absent or
// the row is too short (ragged rows are tolerated).
func cell(rec []string, colMap map[string]int, name string) string {
	idx, ok := colMap[name]
	if !ok || idx >= len(rec) {
		return ""
	}
	return rec[idx]
}

// money parses a monetary cell, counting coercions on the dataset.
func money(rec []string, colMap map[string]int, name string, ds *domain.Dataset) float64 {
	if _, ok := colMap[name]; !ok {
		return 0
	}
	v, ok := ParseAmount(cell(rec, colMap, name))
	if !ok {
		ds.CoercedCells++
	}
	return v
}
