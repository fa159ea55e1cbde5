package config

// Version identifies this module's semantic-core release.
var Version = "0.1.0"

// IsTestMode indicates that checkers are running under a test harness
// (suppresses the driver's progress logging entirely).
var IsTestMode = false
