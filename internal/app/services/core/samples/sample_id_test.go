package samples

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSampleID(t *testing.T) {
	ts := time.UnixMilli(1756628465123)

	t.Run("Joins the three components with dashes", func(t *testing.T) {
		id := GenerateSampleID("ORD-2026-000451", "LT-0007", ts)

		millis := fmt.Sprintf("%d", ts.UnixMilli())
		expected := "451-07-" + millis[len(millis)-6:]
		assert.Equal(t, expected, id)
	})

	t.Run("Short inputs are used whole", func(t *testing.T) {
		id := GenerateSampleID("A1", "T", ts)

		millis := fmt.Sprintf("%d", ts.UnixMilli())
		assert.Equal(t, "A1-T-"+millis[len(millis)-6:], id)
	})

	t.Run("Distinct timestamps give distinct identifiers", func(t *testing.T) {
		first := GenerateSampleID("ORD-451", "LT-07", ts)
		second := GenerateSampleID("ORD-451", "LT-07", ts.Add(time.Millisecond))

		assert.NotEqual(t, first, second)
	})

	t.Run("Same instant is deterministic", func(t *testing.T) {
		first := GenerateSampleID("ORD-451", "LT-07", ts)
		second := GenerateSampleID("ORD-451", "LT-07", ts)

		assert.Equal(t, first, second)
	})
}
