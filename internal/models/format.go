package models

import "fmt"

// Format selects the changelog output representation.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatSimple   Format = "simple"
	FormatJSON     Format = "json"
)

// Formats lists the accepted values in help order.
func Formats() []Format {
	return []Format{FormatMarkdown, FormatSimple, FormatJSON}
}

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatMarkdown, FormatSimple, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q", s)
	}
}

// Backend selects how the git log is read.
type Backend string

const (
	BackendCLI   Backend = "cli"
	BackendGoGit Backend = "gogit"
)

func ParseBackend(s string) (Backend, error) {
	switch b := Backend(s); b {
	case BackendCLI, BackendGoGit:
		return b, nil
	default:
		return "", fmt.Errorf("unknown backend %q", s)
	}
}
