package molfile

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cx-luo/molsave/molecule"
)

func TestFormatOccurrence(t *testing.T) {
	cases := []struct {
		name       string
		low, high  int
		want       string
	}{
		{"exact count", 2, 2, "2"},
		{"closed range", 2, 4, "2-4"},
		{"low or more", 2, 0xFFFF, ">1"},
		{"high or fewer", 0, 4, "<5"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			packed := molecule.PackOccurrence(c.low, c.high)
			require.Equal(t, c.want, formatOccurrence(packed))
		})
	}
}

func TestFormatOccurrenceList(t *testing.T) {
	packed := []int{
		molecule.PackOccurrence(2, 3),
		molecule.PackOccurrence(5, 5),
	}
	require.Equal(t, "2-3, 5", formatOccurrenceList(packed))
}
