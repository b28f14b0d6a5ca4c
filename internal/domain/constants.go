package domain

const (
	SupportedGOOS        = "windows"
	DefaultNetshCommand  = "netsh"
	DefaultOutputDir     = "."
	DefaultLogLevel      = "error"
	DefaultOutputMode    = OutputCLI
	ExportFileBase       = "wlan_profiles"
	ProfileColumnWidth   = 30
	SkippedProfileMarker = "ENCODING ERROR"
	EmptyStoreText       = "no wireless profiles stored"
)
