package invoice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"weekday form", "Wed Aug 27, 2025", "2025-08-27", true},
		{"no weekday", "Aug 27, 2025", "2025-08-27", true},
		{"padded day", "Aug 03, 2025", "2025-08-03", true},
		{"us slashes", "08/27/2025", "2025-08-27", true},
		{"iso", "2025-08-27", "2025-08-27", true},
		{"garbage", "next Tuesday-ish", "", false},
		{"ambiguous european", "27.08.2025", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.input)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got.Format("2006-01-02"))
			}
		})
	}
}

func TestFindDate(t *testing.T) {
	t.Run("first parseable stamp wins", func(t *testing.T) {
		d := findDate("header noise Wed Aug 27, 2025 and later Thu Aug 28, 2025")
		require.NotNil(t, d)
		assert.Equal(t, "2025-08-27", d.Format("2006-01-02"))
	})

	t.Run("no stamp yields nil", func(t *testing.T) {
		assert.Nil(t, findDate("no dates in this block"))
	})
}
