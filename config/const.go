package config

import "strings"

// AppVersion is the version of the application.
var AppVersion string // Set with -ldflags "-X .../config.AppVersion=..." at build time

// AppName is the name of the application.
const AppName = "Cropper"

// ServiceName is used for the per-user data directory.
const ServiceName = AppName

// LogWinSubDir is the sub directory for the log files on windows.
var LogWinSubDir = AppName

// LogSubDir is the sub directory for the log files.
var LogSubDir = "." + strings.ToLower(AppName)

// LogExt is the extension for the log files.
var LogExt = ".log"
