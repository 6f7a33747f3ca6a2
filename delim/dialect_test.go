package delim

import (
	"testing"

	"github.com/erraggy/csvtools/csverrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{",", ',', false},
		{";", ';', false},
		{"\t", '\t', false},
		{`\t`, '\t', false},
		{"tab", '\t', false},
		{"TAB", '\t', false},
		{"pipe", '|', false},
		{"semicolon", ';', false},
		{"space", ' ', false},
		{"§", '§', false},
		{"", 0, true},
		{"ab", 0, true},
		{`"`, 0, true},
		{"\n", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDelimiter(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, csverrors.ErrConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDialectValidate(t *testing.T) {
	t.Run("default is valid", func(t *testing.T) {
		assert.NoError(t, DefaultDialect().Validate())
	})

	t.Run("quote delimiter is rejected", func(t *testing.T) {
		d := DefaultDialect()
		d.Comma = '"'
		assert.ErrorIs(t, d.Validate(), csverrors.ErrConfig)
	})

	t.Run("known encoding is accepted", func(t *testing.T) {
		d := DefaultDialect()
		d.Encoding = "windows-1252"
		assert.NoError(t, d.Validate())
	})

	t.Run("unknown encoding is rejected", func(t *testing.T) {
		d := DefaultDialect()
		d.Encoding = "klingon-8"
		err := d.Validate()
		var cfgErr *csverrors.ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "encoding", cfgErr.Option)
	})
}

func TestTrimmedLen(t *testing.T) {
	assert.Equal(t, 0, TrimmedLen("   "))
	assert.Equal(t, 3, TrimmedLen("  abc \t"))
	assert.Equal(t, 5, TrimmedLen(" café "), "length is counted in bytes")
	assert.Equal(t, "a b", TrimField("\ta b\n"))
}
