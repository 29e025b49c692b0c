package content

import (
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadData reads a YAML data document into a generic mapping. Absence is not
// an error: a missing, unreadable, or malformed file yields nil so callers
// render "no configuration" instead of failing the page. The file is re-read
// on every call; content volumes make caching pointless.
func LoadData(path string) map[string]any {
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("unreadable data document", "path", path, "error", err)
		}
		return nil
	}
	var data map[string]any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		slog.Warn("malformed data document", "path", path, "error", err)
		return nil
	}
	return data
}

// ActiveSponsors extracts the sponsor list from a loaded sponsor document,
// keeping only entries whose "active" flag is unset or true.
func ActiveSponsors(data map[string]any) []map[string]any {
	if data == nil {
		return nil
	}
	items, ok := data["sponsors"].([]any)
	if !ok {
		return nil
	}
	var out []map[string]any
	for _, item := range items {
		sponsor, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if active, ok := sponsor["active"].(bool); ok && !active {
			continue
		}
		out = append(out, sponsor)
	}
	return out
}
