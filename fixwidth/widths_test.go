package fixwidth

import (
	"testing"

	"github.com/erraggy/csvtools/csverrors"
	"github.com/erraggy/csvtools/delim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidthTable_Observe(t *testing.T) {
	table := NewWidthTable()
	assert.Equal(t, 0, table.Len())

	table.Observe([]string{"a", "bb"})
	assert.Equal(t, []int{1, 2}, table.Widths())

	table.Observe([]string{"  ccc  ", "d", "eeee"})
	assert.Equal(t, []int{3, 2, 4}, table.Widths(), "trimmed length counts and the table grows")

	table.Observe([]string{""})
	assert.Equal(t, []int{3, 2, 4}, table.Widths(), "a shorter row never shrinks the table")
}

func TestWidthTable_At(t *testing.T) {
	table := NewWidthTable()
	table.Grow(2)
	table.Observe([]string{"xyz"})

	w, ok := table.At(0)
	assert.True(t, ok)
	assert.Equal(t, 3, w)

	w, ok = table.At(1)
	assert.True(t, ok)
	assert.Equal(t, 0, w)

	_, ok = table.At(2)
	assert.False(t, ok)
	_, ok = table.At(-1)
	assert.False(t, ok)
}

func TestWidthTable_WidthsIsCopy(t *testing.T) {
	table := NewWidthTable()
	table.Observe([]string{"abc"})
	widths := table.Widths()
	widths[0] = 99

	w, _ := table.At(0)
	assert.Equal(t, 3, w)
}

func TestWidthTable_BytesNotRunes(t *testing.T) {
	table := NewWidthTable()
	table.Observe([]string{"héllo"})
	assert.Equal(t, []int{6}, table.Widths())
}

func TestScanWidths(t *testing.T) {
	src := delim.NewBytesSource("in.csv", []byte("a,bb\nccc,d\n x ,y,zz\n"))
	records, err := src.Records(delim.DefaultDialect())
	require.NoError(t, err)
	defer func() { _ = records.Close() }()

	table, rows, err := ScanWidths(records)
	require.NoError(t, err)
	assert.Equal(t, 3, rows, "the first row is data")
	assert.Equal(t, []int{3, 2, 2}, table.Widths())
}

// Every measured width bounds every trimmed field in its column.
func TestScanWidths_BoundsEveryField(t *testing.T) {
	data := "id,name,notes\n1, Alice ,\n22,Bob,long note here\n333,,x\n"
	src := delim.NewBytesSource("in.csv", []byte(data))

	records, err := src.Records(delim.DefaultDialect())
	require.NoError(t, err)
	table, _, err := ScanWidths(records)
	require.NoError(t, err)
	require.NoError(t, records.Close())

	records, err = src.Records(delim.DefaultDialect())
	require.NoError(t, err)
	defer func() { _ = records.Close() }()
	for {
		row, err := records.Read()
		if err != nil {
			break
		}
		for i, field := range row {
			w, ok := table.At(i)
			require.True(t, ok)
			assert.GreaterOrEqual(t, w, delim.TrimmedLen(field))
		}
	}
}

func TestScanWidths_ParseError(t *testing.T) {
	src := delim.NewBytesSource("bad.csv", []byte("a,b\n\"open\n"))
	records, err := src.Records(delim.DefaultDialect())
	require.NoError(t, err)
	defer func() { _ = records.Close() }()

	_, _, err = ScanWidths(records)
	require.Error(t, err)
	assert.ErrorIs(t, err, csverrors.ErrParse)
	assert.Contains(t, err.Error(), "bad.csv")
}
