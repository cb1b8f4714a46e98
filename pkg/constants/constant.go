package constants

import (
	"path/filepath"
)

var AppDir string = "apps"
var DriverDir string = "drivers"
var LibraryDir string = "libraries"

var DefaultOutputDir string = filepath.Join("full", "bundle")

// Default values for project creation
const (
	DefaultTargetName = "DEFAULT"
	DefaultAppFile    = "app.groovy"
)
