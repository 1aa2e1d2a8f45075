// Package types provides shared type definitions for the application.
package types

// RecentFolder is a workspace folder previously picked by the user.
type RecentFolder struct {
	Path       string `json:"path"`
	Name       string `json:"name"` // last path element, for display
	SelectedAt int64  `json:"selectedAt"` // Unix milliseconds
}

// Settings is the user-visible configuration returned to the frontend.
type Settings struct {
	Language         string `json:"language"`         // "auto", "zh" or "en"
	ResolvedLanguage string `json:"resolvedLanguage"` // language actually in use
	RecentLimit      int    `json:"recentLimit"`
}

// OpenExternalArgs are the arguments of the open_external command.
type OpenExternalArgs struct {
	URL string `json:"url"`
}

// PathArgs carries a single folder path.
type PathArgs struct {
	Path string `json:"path"`
}

// LanguageArgs are the arguments of the set_language command.
type LanguageArgs struct {
	Language string `json:"language"`
}
