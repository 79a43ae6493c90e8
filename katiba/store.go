// CLAUDE:SUMMARY Constitution persistence — JSON artifact and SQLite export.
package katiba

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mwangaza-lab/auditpipe/dbopen"
)

// ConstitutionArtifact is the JSON file name consumers look for.
const ConstitutionArtifact = "constitution_extracted.json"

// ExportJSON writes the structured constitution to path.
func ExportJSON(con *Constitution, path string) error {
	data, err := json.MarshalIndent(con, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal constitution: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write constitution: %w", err)
	}
	return os.Rename(tmp, path)
}

// LoadJSON reads a previously exported constitution.
func LoadJSON(path string) (*Constitution, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read constitution: %w", err)
	}
	var con Constitution
	if err := json.Unmarshal(data, &con); err != nil {
		return nil, fmt.Errorf("parse constitution: %w", err)
	}
	return &con, nil
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS articles (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	article_number TEXT UNIQUE,
	title TEXT,
	full_text TEXT,
	chapter TEXT,
	part TEXT,
	page_number INTEGER,
	simplified_summary TEXT
);
CREATE TABLE IF NOT EXISTS rights (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	article_number TEXT,
	right_text TEXT,
	FOREIGN KEY (article_number) REFERENCES articles (article_number)
);
CREATE TABLE IF NOT EXISTS obligations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	article_number TEXT,
	obligation_text TEXT,
	FOREIGN KEY (article_number) REFERENCES articles (article_number)
);`

// ExportSQLite writes articles with their rights and obligations to an
// SQLite database at dbPath, replacing existing rows for the same article.
func ExportSQLite(ctx context.Context, con *Constitution, dbPath string) error {
	db, err := dbopen.Open(dbPath, dbopen.WithMkdirAll(), dbopen.WithSchema(sqliteSchema))
	if err != nil {
		return fmt.Errorf("open constitution db: %w", err)
	}
	defer db.Close()

	return ExportSQLiteDB(ctx, con, db)
}

// ExportSQLiteDB writes into an already-open database. Split out so tests
// can run against an in-memory handle.
func ExportSQLiteDB(ctx context.Context, con *Constitution, db *sql.DB) error {
	return dbopen.RunTx(ctx, db, func(tx *sql.Tx) error {
		insertArticle, err := tx.PrepareContext(ctx, `
			INSERT OR REPLACE INTO articles
			(article_number, title, full_text, chapter, part, page_number, simplified_summary)
			VALUES (?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer insertArticle.Close()

		insertRight, err := tx.PrepareContext(ctx,
			`INSERT INTO rights (article_number, right_text) VALUES (?, ?)`)
		if err != nil {
			return err
		}
		defer insertRight.Close()

		insertObligation, err := tx.PrepareContext(ctx,
			`INSERT INTO obligations (article_number, obligation_text) VALUES (?, ?)`)
		if err != nil {
			return err
		}
		defer insertObligation.Close()

		for _, a := range con.Articles {
			if _, err := insertArticle.ExecContext(ctx,
				a.Number, a.Title, a.FullText, a.Chapter, a.Part, a.Page, a.Summary); err != nil {
				return fmt.Errorf("insert article %s: %w", a.Number, err)
			}
			for _, r := range a.Rights {
				if _, err := insertRight.ExecContext(ctx, a.Number, r); err != nil {
					return fmt.Errorf("insert right for article %s: %w", a.Number, err)
				}
			}
			for _, o := range a.Obligations {
				if _, err := insertObligation.ExecContext(ctx, a.Number, o); err != nil {
					return fmt.Errorf("insert obligation for article %s: %w", a.Number, err)
				}
			}
		}
		return nil
	})
}
