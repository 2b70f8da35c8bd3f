package report

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/sysvitals/eventscope/pkg/stats"
)

var (
	//go:embed data/rules.yaml
	rulesData []byte
)

// Rule fires a recommendation when a category counter exceeds a threshold.
type Rule struct {
	ID             string `yaml:"id"`
	Category       string `yaml:"category"`
	Threshold      int    `yaml:"threshold"`
	Recommendation string `yaml:"recommendation"`
}

type ruleSet struct {
	Rules    []Rule `yaml:"rules"`
	Fallback string `yaml:"fallback"`
}

var rules = mustLoadRules()

func mustLoadRules() ruleSet {
	var rs ruleSet
	if err := yaml.Unmarshal(rulesData, &rs); err != nil {
		panic(fmt.Sprintf("invalid embedded rules data: %v", err))
	}
	return rs
}

// BuildRecommendations applies the threshold rules to the run totals, in
// rule order. When no category produced events the fallback recommendation
// is returned instead of silence.
func BuildRecommendations(t stats.Totals) []string {
	var out []string
	for _, r := range rules.Rules {
		if t.Categories[r.Category] > r.Threshold {
			out = append(out, r.Recommendation)
		}
	}
	if len(out) == 0 && t.TotalEvents() == 0 {
		out = append(out, rules.Fallback)
	}
	return out
}
