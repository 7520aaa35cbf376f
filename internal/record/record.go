package record

import (
	"fmt"
	"strconv"
	"time"
)

type Status string

const (
	StatusRaw       Status = "raw"
	StatusProcessed Status = "processed"
	StatusPublished Status = "published"
)

// Statuses lists every workflow status in lifecycle order.
var Statuses = []Status{StatusRaw, StatusProcessed, StatusPublished}

func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.Valid() {
		return "", fmt.Errorf("unknown status %q (want raw, processed or published)", s)
	}
	return status, nil
}

type Record struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Source    string    `json:"source"`
	URL       string    `json:"url"`
	Tags      []string  `json:"tags"`
	DateAdded Timestamp `json:"date_added"`
	Status    Status    `json:"status"`
}

// Document is the whole on-disk store: every record plus the time of the last save.
type Document struct {
	Contents   []Record   `json:"contents"`
	LastUpdate *Timestamp `json:"last_update"`
}

func NewDocument() *Document {
	return &Document{Contents: []Record{}}
}

// NextID returns the id the next appended record receives.
func (d *Document) NextID() int {
	return len(d.Contents) + 1
}

func (d *Document) Find(id int) (Record, bool) {
	for _, r := range d.Contents {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// Filter returns the records with the given status in insertion order.
// An empty status matches every record.
func (d *Document) Filter(status Status) []Record {
	out := make([]Record, 0, len(d.Contents))
	for _, r := range d.Contents {
		if status == "" || r.Status == status {
			out = append(out, r)
		}
	}
	return out
}

// Normalize replaces null slices left by hand-edited files so they encode as [].
func (d *Document) Normalize() {
	if d.Contents == nil {
		d.Contents = []Record{}
	}
	for i := range d.Contents {
		if d.Contents[i].Tags == nil {
			d.Contents[i].Tags = []string{}
		}
	}
}

// Tail returns at most the last n records.
func Tail(records []Record, n int) []Record {
	if n <= 0 || len(records) <= n {
		return records
	}
	return records[len(records)-n:]
}

// legacyLayout is the zone-less isoformat() output found in older data files.
const legacyLayout = "2006-01-02T15:04:05.999999999"

// Timestamp is an ISO-8601 instant. It always encodes as RFC 3339 and also
// decodes local times written without a zone offset.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.Round(0)}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.Format(time.RFC3339Nano))), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("invalid timestamp %s: %w", data, err)
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		parsed, err = time.ParseInLocation(legacyLayout, s, time.Local)
		if err != nil {
			return fmt.Errorf("invalid timestamp %q: %w", s, err)
		}
	}
	t.Time = parsed
	return nil
}
