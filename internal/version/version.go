package version

import "fmt"

// Set at build time with -ldflags "-X github.com/itsmostafa/spidershell/internal/version.Version=..."
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Engine is the scripting engine release the shell reports.
const Engine = "SpiderMonkey 128.0.0"

func String() string {
	return fmt.Sprintf("%s (engine: %s, commit: %s, built: %s)", Version, Engine, Commit, BuildDate)
}
