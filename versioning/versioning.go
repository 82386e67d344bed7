package versioning

// Set at build time via -ldflags.
var (
	Version   = "dev"
	Commit    = ""
	Branch    = ""
	BuildTime = ""
)
