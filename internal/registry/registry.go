package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry describes one member school in the registry.
type Entry struct {
	// Name is the official display name, e.g. "Alcorn State University".
	Name string `json:"name" yaml:"name"`
	// OrgNumber is the human-meaningful association number shown in
	// announcements, independent of the canonical id.
	OrgNumber int `json:"org_number" yaml:"org_number"`
	// Aliases holds named groups of alternate names (nicknames, athletic
	// brands, abbreviations) that should resolve to this school.
	Aliases map[string][]string `json:"aliases" yaml:"aliases"`
	// TeamIDs are the scoreboard provider's identifiers for this school.
	TeamIDs []string `json:"team_ids" yaml:"team_ids"`
}

// Registry maps canonical school ids to their entries.
type Registry map[string]Entry

// Load reads a registry document from path. The format is chosen by file
// extension: .yaml/.yml is parsed as YAML, anything else as JSON.
// A missing or unparsable file is an error; there is no partial or
// default registry.
func Load(path string) (Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading registry: %w", err)
	}

	var reg Registry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &reg); err != nil {
			return nil, fmt.Errorf("parsing registry YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &reg); err != nil {
			return nil, fmt.Errorf("parsing registry JSON: %w", err)
		}
	}

	if len(reg) == 0 {
		return nil, fmt.Errorf("registry %s contains no entries", path)
	}

	for id, entry := range reg {
		if entry.Name == "" {
			return nil, fmt.Errorf("registry entry %q has no name", id)
		}
	}

	return reg, nil
}
