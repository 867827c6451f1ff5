package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maryrojas/rentabilidad-go/internal/domain"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pyg.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCleansAndDerives(t *testing.T) {
	// BOM prefix, an embedded newline in a header, currency-formatted cells
	// and one unparseable price.
	content := "\uFEFFCanal,Tipo Huevo,Ciudad,Precio,Uds,\"EBITDA (Cartera)\n\",1era Milla,LOG UM VEH\n" +
		" tat ,AAA,Bogota,\"$1,200.50\",10,\"$100.00\",$30,$20\n" +
		"MY,aaa,Cali,junk,5,-50,10.5,4.5\n"

	ds, err := Load(writeTempCSV(t, content))
	require.NoError(t, err)
	require.Len(t, ds.Records, 2)

	first := ds.Records[0]
	assert.Equal(t, "TAT", first.Channel)
	assert.Equal(t, "aaa", first.ProductType)
	assert.Equal(t, "Bogota", first.City)
	assert.Equal(t, 1200.5, first.Price)
	assert.Equal(t, 10.0, first.Units)
	assert.Equal(t, 100.0, first.EBITDA)

	second := ds.Records[1]
	assert.Equal(t, 0.0, second.Price, "unparseable price coerces to zero")
	assert.Equal(t, -50.0, second.EBITDA, "EBITDA may be negative")
	assert.Equal(t, 1, ds.CoercedCells)

	for _, r := range ds.Records {
		assert.Equal(t, r.FirstMile+r.LastMileVeh, r.LogisticsTotal)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)

	var loadErr *domain.LoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestLoadEmptyFile(t *testing.T) {
	_, err := Load(writeTempCSV(t, ""))

	var loadErr *domain.LoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestLoadMissingLogisticsColumnFails(t *testing.T) {
	// The derived logistics total has no fallback, so either sub-column
	// missing fails the load.
	content := "Canal,Tipo Huevo,Ciudad,Precio,1era Milla\nTAT,aaa,Bogota,10,5\n"

	_, err := Load(writeTempCSV(t, content))
	require.Error(t, err)

	var loadErr *domain.LoadError
	assert.True(t, errors.As(err, &loadErr))
	assert.Contains(t, err.Error(), "log um veh")
}

func TestLoadAbsentOptionalColumnsSkipped(t *testing.T) {
	content := "Canal,Tipo Huevo,Ciudad,1era Milla,LOG UM VEH\nTAT,aaa,Bogota,5,3\n"

	ds, err := Load(writeTempCSV(t, content))
	require.NoError(t, err)
	require.Len(t, ds.Records, 1)

	assert.Equal(t, 0.0, ds.Records[0].Price)
	assert.Equal(t, 0.0, ds.Records[0].EBITDA)
	assert.Equal(t, 8.0, ds.Records[0].LogisticsTotal)
	assert.Equal(t, 0, ds.CoercedCells, "absent columns are skipped, not coerced")
}

func TestLoadToleratesRaggedRows(t *testing.T) {
	content := "Canal,Tipo Huevo,Ciudad,1era Milla,LOG UM VEH\n" +
		"TAT,aaa,Bogota,5,3\n" +
		"MY,aaa\n"

	ds, err := Load(writeTempCSV(t, content))
	require.NoError(t, err)
	require.Len(t, ds.Records, 2)

	short := ds.Records[1]
	assert.Equal(t, "MY", short.Channel)
	assert.Equal(t, "", short.City)
	assert.Equal(t, 0.0, short.LogisticsTotal)
}
