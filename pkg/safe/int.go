// Package safe provides checked numeric conversions.
package safe

import (
	"fmt"
	"math"
)

// Int32 converts wider signed integers to int32 with range validation. Chain
// heights travel as int64 through RPC but are int32 in the ledger domain.
func Int32[T ~int | ~int64](v T) (int32, error) {
	if int64(v) < math.MinInt32 || int64(v) > math.MaxInt32 {
		return 0, fmt.Errorf("value %d out of int32 range", v)
	}
	return int32(v), nil
}
