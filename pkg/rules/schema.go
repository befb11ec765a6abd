// pkg/rules/schema.go
package rules

// Target selects which lead field an indicator class is matched against.
const (
	TargetName    = "name"
	TargetAddress = "address"
)

// IndicatorClass is one classification rule: a set of case-insensitive
// substring patterns matched against a lead field, contributing a fixed
// point value when any pattern hits.
type IndicatorClass struct {
	Name     string   `json:"name"`
	Target   string   `json:"target"`
	Weight   int      `json:"weight"`
	Patterns []string `json:"patterns"`
}

// RuleSet is the immutable indicator-rule registry loaded once at process
// start. Rule sets can be swapped without touching scorer logic.
type RuleSet struct {
	Version     string           `json:"version"`
	LastUpdated string           `json:"lastUpdated"`
	Classes     []IndicatorClass `json:"classes"`
}

// Class returns the class with the given name, or nil.
func (r *RuleSet) Class(name string) *IndicatorClass {
	for i := range r.Classes {
		if r.Classes[i].Name == name {
			return &r.Classes[i]
		}
	}
	return nil
}
