package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"themeforge/internal/theme"
)

// ThemeRepository persists custom and imported themes. Built-in themes are
// compiled in and never stored here.
type ThemeRepository struct {
	db *DB
}

func NewThemeRepository(db *DB) *ThemeRepository {
	return &ThemeRepository{db: db}
}

type dbTheme struct {
	ID                     string         `db:"id"`
	Name                   string         `db:"name"`
	Description            sql.NullString `db:"description"`
	Tokens                 string         `db:"tokens"`
	ContrastRatio          float64        `db:"contrast_ratio"`
	ColorBlindnessFriendly bool           `db:"color_blindness_friendly"`
	ReducedMotion          bool           `db:"reduced_motion"`
	CreatedAt              time.Time      `db:"created_at"`
	UpdatedAt              time.Time      `db:"updated_at"`
}

func (dt *dbTheme) toTheme() (*theme.Theme, error) {
	t := &theme.Theme{
		ID:   dt.ID,
		Name: dt.Name,
		Accessibility: theme.Accessibility{
			ContrastRatio:          dt.ContrastRatio,
			ColorBlindnessFriendly: dt.ColorBlindnessFriendly,
			ReducedMotion:          dt.ReducedMotion,
		},
	}

	if dt.Description.Valid {
		t.Description = dt.Description.String
	}

	if err := json.Unmarshal([]byte(dt.Tokens), &t.Tokens); err != nil {
		return nil, fmt.Errorf("failed to unmarshal theme tokens: %w", err)
	}

	return t, nil
}

func (r *ThemeRepository) Save(ctx context.Context, t *theme.Theme) error {
	if t.ID == "" {
		return theme.ErrMissingID
	}

	tokensJSON, err := json.Marshal(t.Tokens)
	if err != nil {
		return fmt.Errorf("failed to marshal theme tokens: %w", err)
	}

	now := time.Now()
	query := `
		INSERT INTO themes (id, name, description, tokens, contrast_ratio, color_blindness_friendly, reduced_motion, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			tokens = excluded.tokens,
			contrast_ratio = excluded.contrast_ratio,
			color_blindness_friendly = excluded.color_blindness_friendly,
			reduced_motion = excluded.reduced_motion,
			updated_at = excluded.updated_at
	`

	_, err = r.db.ExecContext(ctx, query,
		t.ID, t.Name, t.Description, string(tokensJSON),
		t.Accessibility.ContrastRatio, t.Accessibility.ColorBlindnessFriendly, t.Accessibility.ReducedMotion,
		now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}

	return nil
}

func (r *ThemeRepository) GetByID(ctx context.Context, id string) (*theme.Theme, error) {
	var dt dbTheme
	query := `SELECT * FROM themes WHERE id = ?`

	if err := r.db.GetContext(ctx, &dt, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", theme.ErrThemeNotFound, id)
		}
		return nil, fmt.Errorf("failed to get theme: %w", err)
	}

	return dt.toTheme()
}

func (r *ThemeRepository) List(ctx context.Context) ([]*theme.Theme, error) {
	var rows []dbTheme
	query := `SELECT * FROM themes ORDER BY created_at ASC`

	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list themes: %w", err)
	}

	themes := make([]*theme.Theme, 0, len(rows))
	for i := range rows {
		t, err := rows[i].toTheme()
		if err != nil {
			return nil, err
		}
		themes = append(themes, t)
	}

	return themes, nil
}

// ListThemes and SaveTheme satisfy the manager's CustomStore interface.

func (r *ThemeRepository) ListThemes() ([]*theme.Theme, error) {
	return r.List(context.Background())
}

func (r *ThemeRepository) SaveTheme(t *theme.Theme) error {
	return r.Save(context.Background(), t)
}
