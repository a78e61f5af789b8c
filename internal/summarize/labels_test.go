package summarize

import (
	"reflect"
	"testing"
)

func TestDetectLabels(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "delay keyword",
			text:     "Concrete pour was delayed by rain",
			expected: []string{"Delay"},
		},
		{
			name:     "late keyword",
			text:     "Subcontractor arrived late to the site",
			expected: []string{"Delay"},
		},
		{
			name:     "safety keyword",
			text:     "Minor injury reported near the scaffold",
			expected: []string{"Safety"},
		},
		{
			name:     "incident keyword",
			text:     "Filed an incident report at noon",
			expected: []string{"Safety"},
		},
		{
			name:     "delivery keyword",
			text:     "Steel beams were delivered this morning",
			expected: []string{"Delivery"},
		},
		{
			name:     "received keyword",
			text:     "Received the rebar shipment",
			expected: []string{"Delivery"},
		},
		{
			name:     "mixed case",
			text:     "DELAYED start, SAFETY briefing held",
			expected: []string{"Delay", "Safety"},
		},
		{
			name:     "all three categories",
			text:     "Crew reported a safety incident and a delivery delay today",
			expected: []string{"Delay", "Safety", "Delivery"},
		},
		{
			name:     "fixed order regardless of text order",
			text:     "delivery first, then safety, then delay",
			expected: []string{"Delay", "Safety", "Delivery"},
		},
		{
			name:     "no match",
			text:     "Routine formwork on level 3",
			expected: []string{},
		},
		{
			name:     "empty text",
			text:     "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DetectLabels(tt.text)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("DetectLabels(%q) = %v, want %v", tt.text, result, tt.expected)
			}
		})
	}
}

func TestDetectLabelsNeverNil(t *testing.T) {
	if DetectLabels("nothing to see here") == nil {
		t.Error("DetectLabels returned nil, want empty slice")
	}
}
