package aligner

import (
	"testing"

	"github.com/erraggy/csvtools/csverrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProjection(t *testing.T) {
	columns := []string{"age", "id", "name"}

	tests := []struct {
		name        string
		header      []string
		wantPos     []int
		wantMissing []string
	}{
		{"all present reordered", []string{"name", "age", "id"}, []int{1, 2, 0}, nil},
		{"some absent", []string{"id", "name"}, []int{-1, 0, 1}, []string{"age"}},
		{"none present", []string{"x"}, []int{-1, -1, -1}, []string{"age", "id", "name"}},
		{"first duplicate wins", []string{"id", "id", "age"}, []int{2, 0, -1}, []string{"name"}},
		{"matching is case sensitive", []string{"ID", "Name"}, []int{-1, -1, -1}, []string{"age", "id", "name"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProjection(columns, tt.header)
			assert.Equal(t, tt.wantPos, p.Positions())
			assert.Equal(t, tt.wantMissing, p.Missing())
		})
	}
}

func TestProjection_Apply(t *testing.T) {
	p := NewProjection([]string{"age", "id", "name"}, []string{"id", "name"})

	t.Run("fills absent columns with empty fields", func(t *testing.T) {
		row, err := p.Apply([]string{"1", " Alice "}, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"", "1", " Alice "}, row, "data fields are copied verbatim")
	})

	t.Run("reuses destination storage", func(t *testing.T) {
		buf := make([]string, 0, 3)
		row, err := p.Apply([]string{"2", "Bob"}, buf)
		require.NoError(t, err)
		assert.Equal(t, []string{"", "2", "Bob"}, row)
		assert.Equal(t, 3, cap(row))
	})

	t.Run("extra fields are ignored", func(t *testing.T) {
		row, err := p.Apply([]string{"3", "Carol", "extra"}, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"", "3", "Carol"}, row)
	})

	t.Run("short record is a lookup error", func(t *testing.T) {
		_, err := p.Apply([]string{"4"}, nil)
		var lookupErr *csverrors.LookupError
		require.ErrorAs(t, err, &lookupErr)
		assert.Equal(t, "name", lookupErr.Column)
		assert.Equal(t, 1, lookupErr.Index)
		assert.Equal(t, 1, lookupErr.FieldCount)
	})
}
