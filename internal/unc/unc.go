// Package unc parses network share paths and converts them to local
// POSIX paths through a mapping table.
package unc

import (
	"regexp"
	"strings"

	"github.com/rjdinis/uncpath/internal/mapping"
	"github.com/rjdinis/uncpath/internal/types"
	"github.com/rjdinis/uncpath/internal/validation"
	"github.com/rjdinis/uncpath/pkg/utils"
)

// Syntax identifies the notation a path was written in
type Syntax int

const (
	SyntaxUnknown Syntax = iota
	SyntaxWindows        // \\host\share\path
	SyntaxUnix           // //host/share/path
	SyntaxSMB            // smb://host/share/path
)

func (s Syntax) String() string {
	switch s {
	case SyntaxWindows:
		return "windows"
	case SyntaxUnix:
		return "unix"
	case SyntaxSMB:
		return "smb"
	default:
		return "unknown"
	}
}

const smbScheme = "smb://"

var (
	windowsPattern = regexp.MustCompile(`^\\\\([^\\]+)\\([^\\]+)(.*)$`)
	smbPattern     = regexp.MustCompile(`^smb://([^/]+)/([^/]+)(.*)$`)
	unixPattern    = regexp.MustCompile(`^//([^/]+)/([^/]+)(.*)$`)
)

const formatHelp = `Supported formats:
  \\host\share\path
  //host/share/path
  smb://host/share/path`

// Ref is a parsed network path. Path is relative to the share, uses
// forward slashes, and is empty when the input names the share itself.
type Ref struct {
	Syntax Syntax
	Host   string
	Share  string
	Path   string
}

// Parse splits raw into host, share and share-relative path.
func Parse(raw string) (Ref, error) {
	input := strings.TrimSpace(raw)

	var (
		syntax  Syntax
		pattern *regexp.Regexp
	)
	switch {
	case strings.HasPrefix(input, `\\`):
		syntax, pattern = SyntaxWindows, windowsPattern
	case strings.HasPrefix(input, smbScheme):
		syntax, pattern = SyntaxSMB, smbPattern
	case strings.HasPrefix(input, "//"):
		syntax, pattern = SyntaxUnix, unixPattern
	default:
		return Ref{}, unrecognized(raw)
	}

	m := pattern.FindStringSubmatch(input)
	if m == nil {
		return Ref{}, unrecognized(raw)
	}

	path := m[3]
	if syntax == SyntaxWindows {
		path = utils.ToSlash(path)
	}
	return Ref{Syntax: syntax, Host: m[1], Share: m[2], Path: path}, nil
}

// Resolve maps ref onto its mount point.
func Resolve(ref Ref, table *mapping.Table) (string, error) {
	mp, ok := table.Lookup(ref.Host, ref.Share)
	if !ok {
		return "", types.NewPathError("convert", ref.Host+"/"+ref.Share, types.ErrUnknownMapping,
			"Add one with --mapping "+ref.Host+":"+ref.Share+":/mount/point or list mappings with --list")
	}
	return utils.JoinMountPath(mp.MountPoint, ref.Path), nil
}

// Convert parses raw and resolves it against table.
func Convert(raw string, table *mapping.Table) (string, error) {
	ref, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return Resolve(ref, table)
}

func unrecognized(raw string) error {
	return types.NewPathError("convert", validation.SanitizeString(raw), types.ErrUnrecognizedFormat, formatHelp)
}
