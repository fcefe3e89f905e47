package curvedit

import _ "embed"

// Version is the release of the curvedit module, read from the VERSION file.
//
//go:embed VERSION
var Version string
