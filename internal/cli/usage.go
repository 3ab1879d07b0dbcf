package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// Usage text for the standalone binaries.
const (
	AnalyzeMeshUsage = `Usage: analyze_mesh [flags] <mesh_file.json>
       analyze_mesh data/models/bunny.json`
	AnalyzeBunnyUsage = `Usage: analyze_bunny [flags]`
	ConvertOBJUsage   = `Usage: convert_obj_to_json [flags]`
)

// UsageError reports a flag parsing error and prints usage. Help requests
// print usage only. The returned exit code is always 1.
func UsageError(err error, usage string, stdout, stderr io.Writer) int {
	if !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	fmt.Fprintln(stdout, usage)
	return 1
}
