package summarize

import "regexp"

// Label is a fixed-vocabulary category tag assigned by pattern match.
type Label string

const (
	LabelDelay    Label = "Delay"
	LabelSafety   Label = "Safety"
	LabelDelivery Label = "Delivery"
)

// labelRule binds a label to its detection pattern. Matching is
// case-insensitive substring matching against the raw notes text.
type labelRule struct {
	label   Label
	pattern *regexp.Regexp
}

// labelRules are evaluated in order; the output label sequence is always
// Delay, Safety, Delivery filtered to matched categories, regardless of
// where the matches occur in the text.
var labelRules = []labelRule{
	{LabelDelay, regexp.MustCompile(`(?i)delay|delayed|late`)},
	{LabelSafety, regexp.MustCompile(`(?i)safety|incident|injury`)},
	{LabelDelivery, regexp.MustCompile(`(?i)delivery|delivered|received`)},
}

// DetectLabels classifies the raw notes text into category labels.
// Multiple labels may co-occur; no match yields an empty (non-nil) slice.
func DetectLabels(text string) []string {
	labels := make([]string, 0, len(labelRules))
	for _, rule := range labelRules {
		if rule.pattern.MatchString(text) {
			labels = append(labels, string(rule.label))
		}
	}
	return labels
}
