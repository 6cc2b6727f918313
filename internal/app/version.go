package app

import (
	"fmt"
	"io"
	"runtime"
)

// Version is the application version, overridable at build time:
//
//	go build -ldflags "-X github.com/agbru/datakit/internal/app.Version=v1.2.3"
var Version = "dev"

// HasVersionFlag reports whether args contain a version flag.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-version", "--version":
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "datakit %s (%s)\n", Version, runtime.Version())
}
