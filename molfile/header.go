package molfile

import (
	"time"

	"github.com/cx-luo/molsave/ioutil"
)

// writeHeader emits the three §4.2 header lines: name, origin stamp, blank.
// now is passed in rather than read from time.Now() so callers (and tests)
// control the timestamp; the dispatcher is the only caller and supplies
// Options.FixedTimestamp when set, otherwise the real clock.
func writeHeader(sink *ioutil.Sink, name string, has3D bool, now time.Time) {
	sink.WriteStringCR(name)

	dim := "2D"
	if has3D {
		dim = "3D"
	}
	sink.PrintfCR("  -INDIGO-%02d%02d%02d%02d%02d%s",
		int(now.Month()), now.Day(), now.Year()%100, now.Hour(), now.Minute(), dim)

	sink.WriteCR()
}
