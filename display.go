package prelude

import (
	"io"
	"os"
)

// displayWriter receives the output of the display primitive. The host may
// redirect it before installing the bindings.
var displayWriter io.Writer = os.Stdout

// SetDisplayWriter redirects display output and returns the previous writer.
func SetDisplayWriter(w io.Writer) io.Writer {
	old := displayWriter
	displayWriter = w
	return old
}

// Display writes the textual representation of each argument. Strings are
// written raw, without quoting.
func Display(args Vector) Value {
	for _, v := range args {
		Encode(displayWriter, v)
	}
	return nil
}

func Repr(args Vector) Value {
	if len(args) != 1 {
		panic("repr expects 1 argument")
	}
	return String(EncodeToString(args[0]))
}
