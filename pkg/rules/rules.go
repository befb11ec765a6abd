// pkg/rules/rules.go
package rules

import (
	"encoding/json"
	"os"
)

func LoadRuleSet(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rs RuleSet
	err = json.Unmarshal(data, &rs)
	return &rs, err
}

// Default returns the built-in rule set used when no registry file is
// configured. Weights come from the scoring configuration.
func Default(chainWeight, premiumWeight, locationWeight int) *RuleSet {
	return &RuleSet{
		Version: "builtin",
		Classes: []IndicatorClass{
			{
				Name:   "chain",
				Target: TargetName,
				Weight: chainWeight,
				Patterns: []string{
					"national", "franchise", "fitness", "anytime", "planet",
					"gold's", "24 hour", "la fitness", "crunch", "orangetheory",
					"snap fitness", "ymca",
				},
			},
			{
				Name:   "premium",
				Target: TargetName,
				Weight: premiumWeight,
				Patterns: []string{
					"premium", "elite", "luxury", "exclusive", "platinum",
					"signature", "club", "spa",
				},
			},
			{
				Name:   "location",
				Target: TargetAddress,
				Weight: locationWeight,
				Patterns: []string{
					"suite", "plaza", "tower", "galleria", "uptown",
					"highland park", "75205", "75225", "90210",
				},
			},
		},
	}
}
