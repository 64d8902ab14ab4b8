package molfile

import "github.com/cx-luo/molsave/ioutil"

// v30LineWidth is the §4.5 payload column budget for one "M  V30 " line.
const v30LineWidth = 70

// writeV30 emits one logical V3000 record, wrapping the payload into
// v30LineWidth-character chunks with a "-" continuation marker on every
// non-terminal chunk (§4.5).
func writeV30(sink *ioutil.Sink, payload string) {
	if len(payload) <= v30LineWidth {
		sink.WriteString("M  V30 ")
		sink.WriteStringCR(payload)
		return
	}
	for len(payload) > 0 {
		n := v30LineWidth
		last := n >= len(payload)
		if last {
			n = len(payload)
		}
		chunk := payload[:n]
		payload = payload[n:]
		sink.WriteString("M  V30 ")
		sink.WriteString(chunk)
		if !last {
			sink.WriteString("-")
		}
		sink.WriteCR()
	}
}
