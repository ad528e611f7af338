package samples

import (
	"fmt"
	"time"
)

// GenerateSampleID derives the short specimen code for an (order, test) pair:
// the last 3 characters of the order ID, the last 2 of the test ID and the
// last 6 digits of the millisecond timestamp, dash-separated.
//
// The timestamp component is taken from the argument, so two calls for the
// same pair at different instants yield different identifiers. Callers that
// need a stable code across reprints must generate once and persist the
// result; the label usecase does exactly that.
func GenerateSampleID(orderID, testID string, ts time.Time) string {
	millis := fmt.Sprintf("%d", ts.UnixMilli())
	return fmt.Sprintf("%s-%s-%s", lastN(orderID, 3), lastN(testID, 2), lastN(millis, 6))
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
