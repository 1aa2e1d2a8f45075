package app

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/tutu/codeark/internal/types"
)

// Command names accepted by Invoke.
const (
	CmdOpenExternal  = "open_external"
	CmdSelectFolder  = "select_folder"
	CmdRecentFolders = "recent_folders"
	CmdForgetFolder  = "forget_folder"
	CmdGetSettings   = "get_settings"
	CmdSetLanguage   = "set_language"
)

type command func(s *Service, args json.RawMessage) (any, error)

var commands = map[string]command{
	CmdOpenExternal: func(s *Service, raw json.RawMessage) (any, error) {
		var args types.OpenExternalArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return nil, s.OpenExternal(args.URL)
	},
	CmdSelectFolder: func(s *Service, _ json.RawMessage) (any, error) {
		return s.SelectFolder()
	},
	CmdRecentFolders: func(s *Service, _ json.RawMessage) (any, error) {
		return s.RecentFolders()
	},
	CmdForgetFolder: func(s *Service, raw json.RawMessage) (any, error) {
		var args types.PathArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return nil, s.ForgetFolder(args.Path)
	},
	CmdGetSettings: func(s *Service, _ json.RawMessage) (any, error) {
		return s.GetSettings(), nil
	},
	CmdSetLanguage: func(s *Service, raw json.RawMessage) (any, error) {
		var args types.LanguageArgs
		if err := decodeArgs(raw, &args); err != nil {
			return nil, err
		}
		return nil, s.SetLanguage(args.Language)
	},
}

// Commands returns the names Invoke accepts, sorted.
func Commands() []string {
	return slices.Sorted(maps.Keys(commands))
}

// Invoke runs the named command with JSON object arguments. It lets the
// frontend call commands by their wire names.
func (s *Service) Invoke(name string, args json.RawMessage) (any, error) {
	cmd, ok := commands[name]
	if !ok {
		return nil, fmt.Errorf("unknown command: %s", name)
	}
	return cmd(s, args)
}

func decodeArgs(raw json.RawMessage, v any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode arguments: %w", err)
	}
	return nil
}
