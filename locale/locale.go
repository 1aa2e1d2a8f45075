// Package locale picks the UI language for native surfaces (tray menu,
// dialog titles) that the front-end cannot translate itself.
package locale

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Supported language settings.
const (
	Auto    = "auto"
	Chinese = "zh"
	English = "en"
)

// Fallback language when nothing matches.
const Default = Chinese

var matcher = language.NewMatcher([]language.Tag{
	language.Chinese, // first entry is the matcher's fallback
	language.English,
})

// Valid reports whether setting is an accepted language setting.
func Valid(setting string) bool {
	switch setting {
	case Auto, Chinese, English:
		return true
	}
	return false
}

// Resolve turns a language setting into a concrete language. For Auto
// the given locale strings are matched in order; POSIX forms such as
// "zh_CN.UTF-8" are accepted.
func Resolve(setting string, locales ...string) string {
	switch setting {
	case Chinese, English:
		return setting
	}

	var prefs []string
	for _, l := range locales {
		if tag := normalize(l); tag != "" {
			prefs = append(prefs, tag)
		}
	}
	if len(prefs) == 0 {
		return Default
	}

	tag, _ := language.MatchStrings(matcher, prefs...)
	base, _ := tag.Base()
	if base.String() == English {
		return English
	}
	return Chinese
}

// SystemLocales returns the OS locale environment in POSIX precedence order.
func SystemLocales() []string {
	var out []string
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func normalize(posix string) string {
	s, _, _ := strings.Cut(posix, ".")
	s, _, _ = strings.Cut(s, "@")
	if s == "" || s == "C" || s == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(s, "_", "-")
}

// Labels are the localized strings of the native surfaces.
type Labels struct {
	Show        string
	Quit        string
	Tooltip     string
	FolderTitle string
}

// For returns the labels for a resolved language.
func For(lang string) Labels {
	if lang == English {
		return Labels{
			Show:        "Show",
			Quit:        "Quit",
			Tooltip:     "Code Ark",
			FolderTitle: "Select workspace folder",
		}
	}
	return Labels{
		Show:        "显示主界面",
		Quit:        "退出",
		Tooltip:     "Code Ark",
		FolderTitle: "选择工作区文件夹",
	}
}
