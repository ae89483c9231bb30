package router

// HistoryMode selects how the navigable location is represented
type HistoryMode int

const (
	// WebHistory uses the browser address bar with plain paths, no hash fragment.
	// The hosting server has to answer every declared path with the app shell.
	WebHistory HistoryMode = iota
	// MemoryHistory keeps the location in memory only
	MemoryHistory
)

func (m HistoryMode) String() string {
	switch m {
	case WebHistory:
		return "web"
	case MemoryHistory:
		return "memory"
	default:
		return "unknown"
	}
}

// ParseHistoryMode maps a config value to a mode, defaulting to WebHistory
func ParseHistoryMode(s string) HistoryMode {
	switch s {
	case "memory", "Memory":
		return MemoryHistory
	default:
		return WebHistory
	}
}
