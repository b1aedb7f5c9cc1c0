package toml

import (
	"fmt"
	"os"
	"strconv"
)

// Parse tracing, off unless TOML2JSON_DEBUG_PARSE is set. Trace output
// goes to stderr so the serialized document on stdout stays clean.
var debugParse = boolEnv("TOML2JSON_DEBUG_PARSE")

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func debugf(format string, args ...any) {
	if !debugParse {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
