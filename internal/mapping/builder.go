package mapping

import (
	"errors"

	"github.com/rjdinis/uncpath/internal/config"
	"github.com/rjdinis/uncpath/internal/logging"
	"github.com/rjdinis/uncpath/internal/types"
	"github.com/rjdinis/uncpath/internal/validation"
)

// Defaults are the built-in mappings applied unless suppressed.
var Defaults = []types.Mapping{
	{Host: "server", Share: "shared", MountPoint: "/mnt/shared", Source: types.SourceDefault},
	{Host: "nas", Share: "data", MountPoint: "/mnt/nas", Source: types.SourceDefault},
}

// Sources lists the inputs merged into a table, lowest priority first:
// defaults, EnvJSON, File, CLI.
type Sources struct {
	NoDefaults bool
	EnvJSON    string
	File       string
	CLI        []string
}

// Builder assembles a Table from Sources
type Builder struct {
	log *logging.Logger
}

// NewBuilder creates a Builder. A nil logger discards output.
func NewBuilder(log *logging.Logger) *Builder {
	if log == nil {
		log = logging.Discard()
	}
	return &Builder{log: log}
}

// Build merges every source into a new table.
func (b *Builder) Build(src Sources) (*Table, error) {
	t := NewTable()

	if src.NoDefaults {
		b.log.Debug("Skipping default mappings")
	} else {
		b.merge(t, "defaults", Defaults)
	}

	if src.EnvJSON != "" {
		ms, err := ParseJSON([]byte(src.EnvJSON), config.MappingsEnvVar, types.SourceEnv)
		if err != nil {
			return nil, err
		}
		b.merge(t, config.MappingsEnvVar, ms)
	}

	if src.File != "" {
		ms, err := LoadFile(src.File)
		if err != nil {
			return nil, err
		}
		b.merge(t, src.File, ms)
	}

	for _, arg := range src.CLI {
		m, err := ParseCLI(arg)
		if err != nil {
			return nil, err
		}
		b.merge(t, "--mapping", []types.Mapping{m})
	}

	b.log.Debug("Mapping table has %d entries", t.Len())
	return t, nil
}

func (b *Builder) merge(t *Table, name string, ms []types.Mapping) {
	b.log.Debug("Loading %d mapping(s) from %s", len(ms), name)
	for _, m := range ms {
		if errors.Is(validation.ValidateMountPoint(m.MountPoint), validation.ErrRelativeMountPoint) {
			b.log.Warn("Mount point for \\\\%s\\%s is not absolute: %s", m.Host, m.Share, m.MountPoint)
		}
		if t.Add(m) {
			b.log.Debug("Overriding \\\\%s\\%s -> %s (%s)", m.Host, m.Share, m.MountPoint, name)
		}
	}
}

// Build merges src into a table without logging.
func Build(src Sources) (*Table, error) {
	return NewBuilder(nil).Build(src)
}
