package rules

// Rule describes one empty-state block to rewrite.
type Rule struct {
	// Name identifies the rule in diagnostics. Defaults to Collection.
	Name string `yaml:"name,omitempty" toml:"name,omitempty"`
	// Collection is the array whose length guards the block, e.g. "pendingItems".
	Collection string `yaml:"collection" toml:"collection"`
	// Message is the literal empty-state text, e.g. "No pending items".
	Message string `yaml:"message" toml:"message"`
	// Columns references the column list, e.g. "config.pendingColumns".
	// The generated cell spans Columns.length + 1.
	Columns string `yaml:"columns" toml:"columns"`
}

// RuleSet is the root structure of a rules file.
type RuleSet struct {
	Version string `yaml:"version" toml:"version"`
	Rules   []Rule `yaml:"rules" toml:"rules"`
}

// Default returns the built-in pending and history rules.
func Default() *RuleSet {
	return &RuleSet{
		Version: "1",
		Rules: []Rule{
			{
				Name:       "pending",
				Collection: "pendingItems",
				Message:    "No pending items",
				Columns:    "config.pendingColumns",
			},
			{
				Name:       "history",
				Collection: "historyItems",
				Message:    "No history items",
				Columns:    "config.historyColumns",
			},
		},
	}
}

// Names returns the rule names in application order.
func (s *RuleSet) Names() []string {
	names := make([]string, 0, len(s.Rules))
	for _, r := range s.Rules {
		names = append(names, r.Name)
	}

	return names
}
