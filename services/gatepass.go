package services

import (
	"fmt"
	"strconv"
	"strings"
)

const gatePassPrefix = "GP-"

// NextGatePassNumber derives the next pass in the GP-0001 sequence from the
// most recently issued one. An empty or unparseable predecessor restarts the
// sequence; the unique column on gate_entries backstops collisions.
func NextGatePassNumber(last string) string {
	seq := 1
	if strings.HasPrefix(last, gatePassPrefix) {
		if n, err := strconv.Atoi(last[len(gatePassPrefix):]); err == nil && n > 0 {
			seq = n + 1
		}
	}
	return fmt.Sprintf("%s%04d", gatePassPrefix, seq)
}
