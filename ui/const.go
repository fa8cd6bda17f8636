package ui

// labelFraction is the share of a settings row given to its label
const labelFraction = 1.0 / 3

// sidebarWidth is the fixed width of the control column
const sidebarWidth = 200

// nudgeStep and nudgeStepLarge are arrow key moves in media pixels
const (
	nudgeStep      = 1
	nudgeStepLarge = 10
)

// noNextVideoMessage is shown when "Overwrite & Next" reaches the last video
const noNextVideoMessage = "Video saved!\n(No next video found in directory)"
