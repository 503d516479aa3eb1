package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mbolis/form-builder/database"
	"github.com/mbolis/form-builder/model"
)

// SQLiteStore persists forms and responses in SQLite. Questions and
// answers travel as JSON text columns: a form is always replaced
// wholesale, never patched per question.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLite(url string) (*SQLiteStore, error) {
	db, err := database.Open(url)
	if err != nil {
		return nil, fmt.Errorf("storage: open sqlite: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) LoadForms(ctx context.Context) ([]model.Form, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, ord, created_at, is_active, questions
		FROM form
		ORDER BY ord, created_at`)
	if err != nil {
		return nil, fmt.Errorf("storage: query forms: %w", err)
	}
	defer rows.Close()

	forms := []model.Form{}
	for rows.Next() {
		form, err := scanForm(rows)
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}
	return forms, rows.Err()
}

func (s *SQLiteStore) LoadForm(ctx context.Context, id string) (*model.Form, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, description, ord, created_at, is_active, questions
		FROM form
		WHERE id = ?`,
		id,
	)
	form, err := scanForm(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &form, nil
}

func (s *SQLiteStore) SaveForm(ctx context.Context, form model.Form) error {
	questions, err := json.Marshal(form.Questions)
	if err != nil {
		return fmt.Errorf("storage: encode questions: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO form (id, title, description, ord, created_at, is_active, questions)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			ord = excluded.ord,
			created_at = excluded.created_at,
			is_active = excluded.is_active,
			questions = excluded.questions`,
		form.ID,
		form.Title,
		form.Description,
		form.Order,
		form.CreatedAt,
		form.IsActive,
		string(questions),
	)
	if err != nil {
		return fmt.Errorf("storage: upsert form: %w", err)
	}
	return nil
}

func (s *SQLiteStore) DeleteForm(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage: begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `DELETE FROM response WHERE form_id = ?`, id)
	if err != nil {
		return fmt.Errorf("storage: delete responses: %w", err)
	}
	_, err = tx.ExecContext(ctx, `DELETE FROM form WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("storage: delete form: %w", err)
	}
	return tx.Commit()
}

func (s *SQLiteStore) LoadResponses(ctx context.Context, formID string) ([]model.FormResponse, error) {
	query := `
		SELECT id, form_id, submitted_at, answers
		FROM response`
	args := []any{}
	if formID != "" {
		query += ` WHERE form_id = ?`
		args = append(args, formID)
	}
	query += ` ORDER BY submitted_at`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: query responses: %w", err)
	}
	defer rows.Close()

	responses := []model.FormResponse{}
	for rows.Next() {
		r := model.FormResponse{}
		var answers string
		err = rows.Scan(&r.ID, &r.FormID, &r.SubmittedAt, &answers)
		if err != nil {
			return nil, fmt.Errorf("storage: scan response: %w", err)
		}
		err = json.Unmarshal([]byte(answers), &r.Answers)
		if err != nil {
			return nil, fmt.Errorf("storage: parse answers: %w", err)
		}
		responses = append(responses, r)
	}
	return responses, rows.Err()
}

func (s *SQLiteStore) SaveResponse(ctx context.Context, response model.FormResponse) error {
	answers, err := json.Marshal(response.Answers)
	if err != nil {
		return fmt.Errorf("storage: encode answers: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO response (id, form_id, submitted_at, answers)
		VALUES (?, ?, ?, ?)`,
		response.ID,
		response.FormID,
		response.SubmittedAt,
		string(answers),
	)
	if err != nil {
		return fmt.Errorf("storage: insert response: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanForm(row scanner) (form model.Form, err error) {
	var questions string
	err = row.Scan(
		&form.ID, &form.Title, &form.Description, &form.Order,
		&form.CreatedAt, &form.IsActive, &questions,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return form, err
		}
		return form, fmt.Errorf("storage: scan form: %w", err)
	}

	err = json.Unmarshal([]byte(questions), &form.Questions)
	if err != nil {
		return form, fmt.Errorf("storage: parse questions: %w", err)
	}
	return form, nil
}
