package position

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"github.com/maruel/panicparse/v2/stack"
)

// CallAndRecover runs f and turns a panic of type E into a normal error
// return. A panic of any other type is a genuine bug rather than a
// reported parse failure, so it is re-panicked after a readable stack
// dump — adapted from well/erroring.CallAndRecover, generalized from a
// single hardcoded error type to any error type E.
func CallAndRecover[E error, T any](f func() T) (result T, retErr error) {
	defer func() {
		var r = recover()
		switch r := r.(type) {
		case nil:
			return
		case E:
			retErr = r
		default:
			PrintTrace()
			panic(r)
		}
	}()
	result = f()
	return
}

// PrintTrace renders the current panic's goroutine stack through
// panicparse, filtered down to frames inside this module, so an
// internal-error panic (residual tokens, an unhandled node kind — a bug
// in the builder, not a rejected input) is debuggable without wading
// through runtime noise. Adapted from well/erroring/panicparse.go,
// generalized from the well import path to this module's.
func PrintTrace() {
	var stream = bytes.NewReader(debug.Stack())

	var s, suffix, err = stack.ScanSnapshot(stream, os.Stderr, stack.DefaultOpts())
	if err != nil && err != io.EOF {
		fmt.Fprintf(os.Stderr, "internal error: panicparse failed: %s\n", err)
		return
	}

	var buckets = s.Aggregate(stack.AnyValue).Buckets

	var colLen = 0
	for _, bucket := range buckets {
		for _, line := range filterCalls(bucket.Signature.Stack.Calls) {
			if l := len(formatFilename(line)); l > colLen {
				colLen = l
			}
		}
	}

	for _, bucket := range buckets {
		var extra = ""
		if sleep := bucket.SleepString(); sleep != "" {
			extra += " [" + sleep + "]"
		}
		if bucket.Locked {
			extra += " [locked]"
		}
		fmt.Fprintf(os.Stderr, "%d: %s%s\n", len(bucket.IDs), bucket.State, extra)

		for _, line := range filterCalls(bucket.Signature.Stack.Calls) {
			fmt.Fprintln(os.Stderr, formatCall(line, colLen))
		}
		if bucket.Stack.Elided {
			io.WriteString(os.Stderr, "    (...) (elided)\n")
		}
	}

	if len(suffix) != 0 {
		os.Stderr.Write(suffix)
	}
}

func filterCalls(lines []stack.Call) []stack.Call {
	var ret []stack.Call
	var sawStdlibPanic = false
	for _, line := range lines {
		if !sawStdlibPanic {
			if line.Func.DirName == "" && line.SrcName == "panic.go" {
				sawStdlibPanic = true
			}
			continue
		}
		if line.Func.IsPkgMain || strings.HasPrefix(line.ImportPath, "github.com/siadat/grapheme") {
			ret = append(ret, line)
		}
	}
	return ret
}

func formatCall(line stack.Call, colLen int) string {
	return fmt.Sprintf("    %-*s %s(...)", colLen, formatFilename(line), line.Func.Name)
}

func formatFilename(line stack.Call) string {
	return fmt.Sprintf("%s/%s:%d", line.Func.DirName, line.SrcName, line.Line)
}
