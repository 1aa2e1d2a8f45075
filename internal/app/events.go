package app

// Event names for frontend communication.
const (
	EventRecentFolders = "recent-folders-changed"
)
