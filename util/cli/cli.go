package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var (
	Out io.Writer = os.Stdout
)

func Printlnf(pat string, args ...any) {
	fmt.Fprintf(Out, pat+"\n", args...)
}

func DebugPrintlnf(debug bool, pat string, args ...any) {
	if debug {
		fmt.Fprintf(Out, "[DEBUG] "+pat+"\n", args...)
	}
}

func ErrorPrintlnf(pat string, args ...any) {
	fmt.Fprintf(Out, "[ERROR] "+pat+"\n", args...)
}

// Print each row as key and value, keys are padded to the same width.
func PrintKeyVals(rows [][2]string) {
	width := 0
	for _, r := range rows {
		width = max(width, len(r[0]))
	}
	for _, r := range rows {
		Printlnf("%s%s  %s", r[0], strings.Repeat(" ", width-len(r[0])), r[1])
	}
}
