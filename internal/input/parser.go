// internal/input/parser.go
//
// Line parsing for every prompt in the game.
//
// Rules (applied to the line after trimming surrounding whitespace):
//   • A base-10 unsigned 32-bit integer, optionally with one leading '+'
//     → KindNumber.
//   • Exactly "quit" (case-sensitive) → KindQuit. Nothing is printed; the
//     caller that receives the quit prints the farewell.
//   • Anything else → KindInvalid, after writing "Invalid number: <text>".

package input

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// QuitKeyword aborts the current prompt chain.
const QuitKeyword = "quit"

// Kind tags the result of parsing one line.
type Kind int

const (
	KindInvalid Kind = iota
	KindNumber
	KindQuit
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindQuit:
		return "quit"
	default:
		return "invalid"
	}
}

// Outcome is the parsed form of a line. Value is only meaningful for KindNumber.
type Outcome struct {
	Kind  Kind
	Value uint32
}

// Parse interprets line and reports invalid input on w.
func Parse(line string, w io.Writer) Outcome {
	text := strings.TrimSpace(line)
	if n, err := strconv.ParseUint(strings.TrimPrefix(text, "+"), 10, 32); err == nil {
		return Outcome{Kind: KindNumber, Value: uint32(n)}
	}
	if text == QuitKeyword {
		return Outcome{Kind: KindQuit}
	}
	_, _ = fmt.Fprintf(w, "Invalid number: %s\n", text)
	return Outcome{Kind: KindInvalid}
}
