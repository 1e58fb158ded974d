package mapping

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/rjdinis/uncpath/internal/types"
	"github.com/rjdinis/uncpath/internal/validation"
)

const entryHelp = `Each mapping needs "host", "share" and "mount_point", e.g.
  [{"host": "server", "share": "shared", "mount_point": "/mnt/shared"}]`

// rawMapping keeps pointer fields so that missing keys can be told apart
// from empty ones.
type rawMapping struct {
	Host       *string `json:"host" yaml:"host"`
	Share      *string `json:"share" yaml:"share"`
	MountPoint *string `json:"mount_point" yaml:"mount_point"`
}

// ParseJSON decodes a JSON array of mappings. name identifies the source in errors.
func ParseJSON(data []byte, name string, src types.Source) ([]types.Mapping, error) {
	var raw []rawMapping
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, types.NewConfigError(name, "", fmt.Errorf("JSON parsing error: %w", err), entryHelp)
	}
	return convertRaw(raw, name, src)
}

// ParseYAML decodes a YAML sequence of mappings.
func ParseYAML(data []byte, name string, src types.Source) ([]types.Mapping, error) {
	var raw []rawMapping
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, types.NewConfigError(name, "", fmt.Errorf("YAML parsing error: %w", err), entryHelp)
	}
	return convertRaw(raw, name, src)
}

// LoadFile reads mappings from path. Files ending in .yaml or .yml are
// decoded as YAML, everything else as JSON.
func LoadFile(path string) ([]types.Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.NewConfigError(path, "", fmt.Errorf("failed to read mapping file: %w", err), "")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data, path, types.SourceFile)
	default:
		return ParseJSON(data, path, types.SourceFile)
	}
}

// ParseCLI parses a host:share:mount_point argument.
func ParseCLI(arg string) (types.Mapping, error) {
	host, share, mountPoint, err := validation.SplitMappingArg(arg)
	if err != nil {
		return types.Mapping{}, types.NewConfigError("--mapping", arg, err,
			"Example: --mapping server:shared:/mnt/shared")
	}
	m := types.Mapping{Host: host, Share: share, MountPoint: mountPoint, Source: types.SourceCLI}
	if err := validateEntry(m); err != nil {
		return types.Mapping{}, types.NewConfigError("--mapping", arg, err, "")
	}
	return m, nil
}

func convertRaw(raw []rawMapping, name string, src types.Source) ([]types.Mapping, error) {
	var result *multierror.Error
	out := make([]types.Mapping, 0, len(raw))

	for i, r := range raw {
		var missing []string
		if r.Host == nil {
			missing = append(missing, "host")
		}
		if r.Share == nil {
			missing = append(missing, "share")
		}
		if r.MountPoint == nil {
			missing = append(missing, "mount_point")
		}
		if len(missing) > 0 {
			result = multierror.Append(result, fmt.Errorf("entry %d: missing field %s", i, strings.Join(missing, ", ")))
			continue
		}

		m := types.Mapping{Host: *r.Host, Share: *r.Share, MountPoint: *r.MountPoint, Source: src}
		if err := validateEntry(m); err != nil {
			result = multierror.Append(result, fmt.Errorf("entry %d: %w", i, err))
			continue
		}
		out = append(out, m)
	}

	if result != nil {
		result.ErrorFormat = entryErrorFormat
		return nil, types.NewConfigError(name, "", result, entryHelp)
	}
	return out, nil
}

func validateEntry(m types.Mapping) error {
	if err := validation.ValidateHost(m.Host); err != nil {
		return fmt.Errorf("host %q: %w", m.Host, err)
	}
	if err := validation.ValidateShare(m.Share); err != nil {
		return fmt.Errorf("share %q: %w", m.Share, err)
	}
	if err := validation.ValidateMountPoint(m.MountPoint); err != nil && !errors.Is(err, validation.ErrRelativeMountPoint) {
		return fmt.Errorf("mount_point %q: %w", m.MountPoint, err)
	}
	return nil
}

func entryErrorFormat(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}
