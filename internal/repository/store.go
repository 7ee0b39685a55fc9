// Package repository persists extraction results to SQLite so batch runs
// and the watcher daemon leave an inspectable history.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/invoicelens/invoicelens/constants"
	"github.com/invoicelens/invoicelens/internal/common"
	"github.com/invoicelens/invoicelens/internal/extract"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	id          TEXT PRIMARY KEY,
	source_path TEXT NOT NULL,
	status      TEXT NOT NULL,
	created_at  TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS extractions (
	id            TEXT PRIMARY KEY,
	document_id   TEXT NOT NULL REFERENCES documents(id),
	party_name    TEXT NOT NULL DEFAULT '',
	invoice_date  TEXT NOT NULL DEFAULT '',
	invoice_no    TEXT NOT NULL DEFAULT '',
	amount        TEXT NOT NULL DEFAULT '',
	phone_number  TEXT NOT NULL DEFAULT '',
	bank_name     TEXT NOT NULL DEFAULT '',
	account_no    TEXT NOT NULL DEFAULT '',
	ifsc_code     TEXT NOT NULL DEFAULT '',
	tax_id        TEXT NOT NULL DEFAULT '',
	created_at    TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS warnings (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	document_id TEXT NOT NULL REFERENCES documents(id),
	position    INTEGER NOT NULL,
	message     TEXT NOT NULL
);
`

// Store wraps the SQLite handle.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (creating if needed) the store at path. Use ":memory:" for
// throwaway runs.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path+"?_foreign_keys=on")
	if err != nil {
		return nil, common.WrapError(err, "open store")
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, common.WrapError(err, "ping store")
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, common.WrapError(err, "migrate store")
	}
	logger.Info("store.open", "path", path)
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveResult records one processed document, its extracted fields (when a
// record exists), and its warnings in order. Returns the document ID.
func (s *Store) SaveResult(ctx context.Context, sourcePath string, status constants.DocStatus, rec *extract.Record, warnings []string) (uuid.UUID, error) {
	docID := uuid.New()
	now := time.Now().UTC().Format(time.RFC3339)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, common.WrapError(err, "begin tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO documents (id, source_path, status, created_at) VALUES (?, ?, ?, ?)`,
		docID.String(), sourcePath, string(status), now,
	); err != nil {
		return uuid.Nil, common.WrapError(err, "insert document")
	}

	if rec != nil {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO extractions (id, document_id, party_name, invoice_date, invoice_no, amount,
				phone_number, bank_name, account_no, ifsc_code, tax_id, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), docID.String(),
			rec.PartyName, rec.InvoiceDate, rec.InvoiceNo, rec.Amount,
			rec.PhoneNumber, rec.BankName, rec.AccountNo, rec.IFSCCode, rec.TaxID,
			now,
		); err != nil {
			return uuid.Nil, common.WrapError(err, "insert extraction")
		}
	}

	for i, msg := range warnings {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO warnings (document_id, position, message) VALUES (?, ?, ?)`,
			docID.String(), i, msg,
		); err != nil {
			return uuid.Nil, common.WrapError(err, "insert warning")
		}
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, common.WrapError(err, "commit")
	}
	return docID, nil
}

// CountDocuments returns how many documents carry the given status, or all
// documents when status is empty.
func (s *Store) CountDocuments(ctx context.Context, status constants.DocStatus) (int, error) {
	var (
		n   int
		err error
	)
	if status == "" {
		err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents`).Scan(&n)
	} else {
		err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM documents WHERE status = ?`, string(status)).Scan(&n)
	}
	if err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return n, nil
}
