// internal/game/picker.go
//
// Secret number selection for rounds.
// Responsibilities:
//   - Define the Picker seam so rounds can be made deterministic.
//   - Provide DefaultPicker, a uniform draw from crypto/rand.
//
// Notes:
//   - Pickers return values in [1, upper]; New rejects anything else.
package game

import (
	"crypto/rand"
	"io"
	"math/big"
)

// Picker draws a secret number uniformly from [1, upper].
// Implementations may assume upper >= 1.
type Picker interface {
	Pick(upper uint32) uint32
}

// PickerFunc adapts a plain function to the Picker interface.
type PickerFunc func(upper uint32) uint32

// Pick calls f(upper).
func (f PickerFunc) Pick(upper uint32) uint32 { return f(upper) }

// FixedPicker always returns n. Used to make rounds deterministic.
func FixedPicker(n uint32) Picker {
	return PickerFunc(func(uint32) uint32 { return n })
}

// DefaultPicker draws uniformly from crypto/rand.
var DefaultPicker Picker = PickerFunc(func(upper uint32) uint32 {
	return pickFrom(rand.Reader, upper)
})

// pickFrom draws a value in [1, upper] from src. If src fails it returns
// upper/2+1 so a round can still start; that draw is not uniform.
func pickFrom(src io.Reader, upper uint32) uint32 {
	nBig, err := rand.Int(src, big.NewInt(int64(upper)))
	if err != nil {
		return upper/2 + 1
	}
	return uint32(nBig.Int64()) + 1
}
