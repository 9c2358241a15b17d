package config

import "maps"

// ChangedSections lists the top-level sections that differ between prev and
// next, in file order. A nil prev counts as every section changed.
func ChangedSections(prev, next *Config) []string {
	if next == nil {
		return nil
	}
	if prev == nil {
		return []string{"logging", "bridge", "journal", "metrics", "tui", "script"}
	}

	var changed []string
	if prev.Logging != next.Logging {
		changed = append(changed, "logging")
	}
	if prev.Bridge != next.Bridge {
		changed = append(changed, "bridge")
	}
	if prev.Journal != next.Journal {
		changed = append(changed, "journal")
	}
	if prev.Metrics != next.Metrics {
		changed = append(changed, "metrics")
	}
	if prev.TUI.Title != next.TUI.Title || !maps.Equal(prev.TUI.Bindings, next.TUI.Bindings) {
		changed = append(changed, "tui")
	}
	if prev.Script != next.Script {
		changed = append(changed, "script")
	}
	return changed
}
