package tui

// CallView represents one call to an exported function.
type CallView struct {
	Module   string `json:"module"`
	Function string `json:"function"`
	Args     []any  `json:"args"`
	Result   any    `json:"result"`
}

// ExportsView represents a module's export table.
type ExportsView struct {
	Module    string   `json:"module"`
	Functions []string `json:"functions"`
}

// VerifyView represents a comparison of an expected digest with a computed one.
type VerifyView struct {
	Function string `json:"function"`
	Input    string `json:"input"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
	Match    bool   `json:"match"`
	// Diff is a unified diff of expected vs actual, empty on match.
	Diff string `json:"diff,omitempty"`
}

// ConfigView represents configuration display data.
type ConfigView struct {
	Location string         `json:"location"`
	Values   map[string]any `json:"values"`
}
