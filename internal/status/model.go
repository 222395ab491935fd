package status

// SegmentInfo summarizes how one line position is completed.
type SegmentInfo struct {
	Kind   string // words, binaries, files, none
	Detail string // word count, search path, root directory
}

// Data contains all the information to display in status
type Data struct {
	// Header
	WorkingDir string
	Version    string

	// Configuration
	ConfigPath string // empty when running on defaults
	Valid      bool
	Errors     []string

	Separator string
	Matcher   string
	Command   SegmentInfo
	Arguments SegmentInfo

	// Environment
	Home     string
	PathDirs int
}
