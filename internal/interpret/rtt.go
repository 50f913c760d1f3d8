package interpret

import (
	"regexp"
	"strconv"
)

// Linux/Mac: "time=XX.X ms"
// Windows: "time=XXms"
var rttPatterns = []*regexp.Regexp{
	regexp.MustCompile(`time=([0-9.]+)\s*ms`),
	regexp.MustCompile(`round-trip min/avg/max(?:/stddev)? = [0-9.]+/([0-9.]+)/`),
	regexp.MustCompile(`rtt min/avg/max/mdev = [0-9.]+/([0-9.]+)/`),
	regexp.MustCompile(`^\s*([0-9.]+)\s*(?:ms)?\s*$`), // bare token such as "23.4" or "15ms"
}

// RTT parses a round-trip time in milliseconds out of ping output or an
// extracted latency token.
func RTT(output string) (float64, bool) {
	for _, re := range rttPatterns {
		matches := re.FindStringSubmatch(output)
		if len(matches) > 1 {
			if rtt, err := strconv.ParseFloat(matches[1], 64); err == nil {
				return rtt, true
			}
		}
	}

	return 0, false
}
