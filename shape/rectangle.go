// Package shape holds simple geometric records.
package shape

import (
	"encoding/json"
	"fmt"
)

// Rectangle is an axis aligned rectangle with its area precomputed.
type Rectangle struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Area   float64 `json:"area"`
}

// NewRectangle returns a rectangle with Area derived from its sides.
func NewRectangle(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height, Area: width * height}
}

// UnmarshalJSON reads the sides and rebuilds the rectangle through
// NewRectangle, any "area" present in the input is ignored.
func (r *Rectangle) UnmarshalJSON(data []byte) error {
	var raw struct {
		Width  *float64 `json:"width"`
		Height *float64 `json:"height"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Width == nil || raw.Height == nil {
		return fmt.Errorf("rectangle requires both width and height: %s", data)
	}
	*r = NewRectangle(*raw.Width, *raw.Height)
	return nil
}
