package tags

import (
	"sort"
	"strings"

	"github.com/julienpequegnot/curator/internal/record"
)

const Separator = ","

// Parse splits a comma-separated tag list. Labels are trimmed, empty labels
// dropped and repeats collapsed, keeping first-seen order.
func Parse(s string) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, tag := range strings.Split(s, Separator) {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

// Join formats tags for display.
func Join(tags []string) string {
	return strings.Join(tags, ", ")
}

type Count struct {
	Tag       string
	Records   int
	LatestID  int
	Published int
}

// Summarize counts how many records carry each tag, most used first.
// Ties break on the most recent record, then alphabetically.
func Summarize(records []record.Record) []Count {
	byTag := make(map[string]*Count)
	for _, r := range records {
		for _, tag := range r.Tags {
			c, ok := byTag[tag]
			if !ok {
				c = &Count{Tag: tag}
				byTag[tag] = c
			}
			c.Records++
			if r.ID > c.LatestID {
				c.LatestID = r.ID
			}
			if r.Status == record.StatusPublished {
				c.Published++
			}
		}
	}

	counts := make([]Count, 0, len(byTag))
	for _, c := range byTag {
		counts = append(counts, *c)
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Records != counts[j].Records {
			return counts[i].Records > counts[j].Records
		}
		if counts[i].LatestID != counts[j].LatestID {
			return counts[i].LatestID > counts[j].LatestID
		}
		return counts[i].Tag < counts[j].Tag
	})

	return counts
}
