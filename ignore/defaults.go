package ignore

// defaultSkipDirs are directory names that never contain project resources
// and are pruned from every scan regardless of ignore files.
var defaultSkipDirs = map[string]bool{
	// Version control
	".git": true,
	".svn": true,
	".hg":  true,

	// Dependencies and build output
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"target":       true,

	// IDE / editor state
	".idea":   true,
	".vscode": true,
	".vs":     true,

	// Caches
	"__pycache__": true,
	".cache":      true,
	".venv":       true,
	"venv":        true,
}
