package common

// RuneVersion is the current Rune version as a string.
const RuneVersion string = "0.1.0"

// RuneModuleFileName is the name for Rune module manifest files.
const RuneModuleFileName string = "rune-mod.toml"

// RuneFileExt is the file extension for a Rune source file.
const RuneFileExt string = ".rn"
