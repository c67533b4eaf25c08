package api

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// Count is a whole number read from the backend. SQLite columns are loosely
// typed, so an integer aggregate may arrive as 12.0; that is accepted and
// rounded instead of failing the whole payload.
type Count int

func (c *Count) UnmarshalJSON(b []byte) error {
	s := string(bytes.TrimSpace(b))
	if s == "null" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("invalid count %s", s)
	}
	*c = Count(math.Round(f))
	return nil
}

func (c Count) Int() int {
	return int(c)
}

// FloatPtr widens an optional request integer to the response representation.
func FloatPtr(i *int) *float64 {
	if i == nil {
		return nil
	}
	f := float64(*i)
	return &f
}
