package search

import (
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/julienpequegnot/curator/internal/database"
	"github.com/julienpequegnot/curator/internal/record"
	"github.com/julienpequegnot/curator/internal/tags"
)

type SearchResult struct {
	RecordID int
	Title    string
	Source   string
	Status   record.Status
	Snippet  string
}

type Repository struct {
	db  *database.DB
	log *zap.Logger
}

func NewRepository(db *database.DB, log *zap.Logger) *Repository {
	if log == nil {
		log = zap.NewNop()
	}
	return &Repository{db: db, log: log}
}

// Sync replaces the indexed records with the given ones in one transaction.
func (r *Repository) Sync(records []record.Record) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin sync: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM records`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to clear index: %w", err)
	}

	for _, rec := range records {
		_, err := tx.Exec(
			`INSERT INTO records (id, title, content, source, url, tags, status, date_added) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			rec.ID, rec.Title, rec.Content, rec.Source, rec.URL, tags.Join(rec.Tags), string(rec.Status), rec.DateAdded.Time,
		)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to index record %d: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit sync: %w", err)
	}

	r.log.Debug("index synced", zap.Int("records", len(records)))
	return nil
}

// Search runs query against titles, content and tags, newest first. Queries
// holding Han characters are matched as plain substrings since the FTS
// tokenizer keeps a whole run of CJK text as a single token.
func (r *Repository) Search(query string, limit int) ([]SearchResult, error) {
	if containsHan(query) {
		return r.searchSubstring(strings.TrimSpace(query), limit)
	}

	rows, err := r.db.Query(`
		SELECT
			r.id,
			r.title,
			COALESCE(r.source, ''),
			r.status,
			snippet(records_fts, '<b>', '</b>', '...', -1, 16) as snippet
		FROM records_fts
		JOIN records r ON records_fts.rowid = r.id
		WHERE records_fts MATCH ?
		ORDER BY r.id DESC
		LIMIT ?
	`, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var sr SearchResult
		var status string
		if err := rows.Scan(&sr.RecordID, &sr.Title, &sr.Source, &status, &sr.Snippet); err != nil {
			return nil, err
		}
		sr.Status = record.Status(status)
		results = append(results, sr)
	}
	return results, rows.Err()
}

func (r *Repository) searchSubstring(term string, limit int) ([]SearchResult, error) {
	pattern := "%" + likeEscaper.Replace(term) + "%"
	rows, err := r.db.Query(`
		SELECT id, title, COALESCE(source, ''), status, COALESCE(content, ''), COALESCE(tags, '')
		FROM records
		WHERE title LIKE ? ESCAPE '\'
			OR content LIKE ? ESCAPE '\'
			OR tags LIKE ? ESCAPE '\'
		ORDER BY id DESC
		LIMIT ?
	`, pattern, pattern, pattern, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var sr SearchResult
		var status, content, tagList string
		if err := rows.Scan(&sr.RecordID, &sr.Title, &sr.Source, &status, &content, &tagList); err != nil {
			return nil, err
		}
		sr.Status = record.Status(status)
		for _, field := range []string{content, sr.Title, tagList} {
			if sr.Snippet = excerpt(field, term, 16); sr.Snippet != "" {
				break
			}
		}
		results = append(results, sr)
	}

	r.log.Debug("substring search", zap.String("term", term), zap.Int("results", len(results)))
	return results, rows.Err()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func containsHan(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}

// excerpt returns up to width runes either side of the first match of term in
// text, with the match wrapped the same way as the FTS snippet.
func excerpt(text, term string, width int) string {
	i := strings.Index(text, term)
	if i < 0 || term == "" {
		return ""
	}

	before := []rune(text[:i])
	after := []rune(text[i+len(term):])

	prefix := ""
	if len(before) > width {
		before = before[len(before)-width:]
		prefix = "..."
	}
	suffix := ""
	if len(after) > width {
		after = after[:width]
		suffix = "..."
	}
	return prefix + string(before) + "<b>" + term + "</b>" + string(after) + suffix
}

func (r *Repository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM records`).Scan(&count)
	return count, err
}

func (r *Repository) RebuildIndex() error {
	// Delete all existing FTS entries
	_, err := r.db.Exec("DELETE FROM records_fts")
	if err != nil {
		return err
	}

	// Insert all records into FTS index
	_, err = r.db.Exec(`
		INSERT INTO records_fts(rowid, title, content, tags)
		SELECT id, title, COALESCE(content, ''), COALESCE(tags, '') FROM records
	`)
	return err
}
