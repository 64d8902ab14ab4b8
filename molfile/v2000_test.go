package molfile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cx-luo/molsave/ioutil"
	"github.com/cx-luo/molsave/molecule"
)

// TestWriteDataSGroupChunking is spec scenario E6: a 150-byte payload
// chunks into two 69-character M  SCD lines plus one M  SED remainder.
func TestWriteDataSGroupChunking(t *testing.T) {
	data := strings.Repeat("x", 150)
	d := &molecule.DataSGroup{Description: "T", Data: data}

	var buf bytes.Buffer
	sink := ioutil.NewSink(&buf)
	writeDataSGroup(sink, 1, d)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	var scd, sed int
	for _, l := range lines {
		switch {
		case strings.HasPrefix(l, "M  SCD"):
			scd++
			if got := len(strings.TrimPrefix(l, "M  SCD   1 ")); got != 69 {
				t.Errorf("M  SCD payload length = %d, want 69 (line: %q)", got, l)
			}
		case strings.HasPrefix(l, "M  SED"):
			sed++
			if got := len(strings.TrimPrefix(l, "M  SED   1 ")); got != 12 {
				t.Errorf("M  SED payload length = %d, want 12 (line: %q)", got, l)
			}
		}
	}
	if scd != 2 {
		t.Errorf("expected 2 M  SCD lines, got %d", scd)
	}
	if sed != 1 {
		t.Errorf("expected 1 M  SED line, got %d", sed)
	}
}
