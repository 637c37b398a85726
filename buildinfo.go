package geoharmonize

import (
	"fmt"
	"os"
	"runtime/debug"
)

// BuildStamp summarizes the binary's provenance from the embedded module
// build info, so that output files can be traced back to a commit.
func BuildStamp() string {
	z, ok := debug.ReadBuildInfo()
	if !ok {
		return "built without module build info"
	}

	commit, commitTime, modified := "unknown", "unknown", ""
	for _, s := range z.Settings {
		switch s.Key {
		case "vcs.revision":
			commit = s.Value
		case "vcs.time":
			commitTime = s.Value
		case "vcs.modified":
			if s.Value == "true" {
				modified = " Files in the repo were modified after that commit."
			}
		}
	}

	return fmt.Sprintf("This %s binary was built with %s at commit %s at time %s.%s", z.Path, z.GoVersion, commit, commitTime, modified)
}

// PrintBuildStamp writes the build stamp to stderr.
func PrintBuildStamp() {
	fmt.Fprintf(os.Stderr, "%s\n", BuildStamp())
}
