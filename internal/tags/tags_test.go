package tags

import (
	"reflect"
	"testing"

	"github.com/julienpequegnot/curator/internal/record"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"tips,shortcut", []string{"tips", "shortcut"}},
		{" tips , shortcut ,tips", []string{"tips", "shortcut"}},
		{"", []string{}},
		{",,", []string{}},
		{"技巧,快捷键", []string{"技巧", "快捷键"}},
	}

	for _, tt := range tests {
		got := Parse(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestJoin(t *testing.T) {
	if got := Join([]string{"tips", "shortcut"}); got != "tips, shortcut" {
		t.Errorf("unexpected join %q", got)
	}
	if got := Join(nil); got != "" {
		t.Errorf("expected empty join, got %q", got)
	}
}

func TestSummarize(t *testing.T) {
	records := []record.Record{
		{ID: 1, Tags: []string{"tips", "shortcut"}, Status: record.StatusPublished},
		{ID: 2, Tags: []string{"tips"}},
		{ID: 3, Tags: []string{"agent"}},
		{ID: 4, Tags: []string{}},
	}

	counts := Summarize(records)
	if len(counts) != 3 {
		t.Fatalf("expected 3 tags, got %d", len(counts))
	}

	if counts[0].Tag != "tips" || counts[0].Records != 2 || counts[0].Published != 1 {
		t.Errorf("unexpected top tag %+v", counts[0])
	}
	// agent and shortcut both appear once; agent was used more recently.
	if counts[1].Tag != "agent" || counts[2].Tag != "shortcut" {
		t.Errorf("unexpected order %v", counts)
	}
}
