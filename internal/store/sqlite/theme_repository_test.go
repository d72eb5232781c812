package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"themeforge/internal/theme"
)

func setupTestRepo(t *testing.T) *ThemeRepository {
	t.Helper()

	db, err := NewDB(Config{Path: filepath.Join(t.TempDir(), "themes.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewThemeRepository(db)
}

func TestSaveAndGetTheme(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	in := &theme.Theme{
		ID:          "ocean",
		Name:        "Ocean",
		Description: "deep blues",
		Tokens: map[string]string{
			"colors.brand.primary":      "#006994",
			"colors.background.primary": "#02121B",
		},
		Accessibility: theme.Accessibility{
			ContrastRatio:          4.5,
			ColorBlindnessFriendly: true,
		},
	}

	require.NoError(t, repo.Save(ctx, in))

	got, err := repo.GetByID(ctx, "ocean")
	require.NoError(t, err)

	assert.Equal(t, in.ID, got.ID)
	assert.Equal(t, in.Name, got.Name)
	assert.Equal(t, in.Description, got.Description)
	assert.Equal(t, in.Tokens, got.Tokens)
	assert.Equal(t, in.Accessibility, got.Accessibility)
}

func TestSaveUpserts(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	first := &theme.Theme{ID: "ocean", Name: "Ocean", Tokens: map[string]string{"a": "1"}}
	require.NoError(t, repo.Save(ctx, first))

	second := &theme.Theme{ID: "ocean", Name: "Ocean v2", Tokens: map[string]string{"a": "2"}}
	require.NoError(t, repo.Save(ctx, second))

	themes, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, themes, 1)
	assert.Equal(t, "Ocean v2", themes[0].Name)
	assert.Equal(t, "2", themes[0].Tokens["a"])
}

func TestSaveRejectsMissingID(t *testing.T) {
	repo := setupTestRepo(t)

	err := repo.Save(context.Background(), &theme.Theme{Name: "anonymous"})
	require.Error(t, err)
	assert.ErrorIs(t, err, theme.ErrMissingID)
}

func TestGetUnknownTheme(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.ErrorIs(t, err, theme.ErrThemeNotFound)
}

func TestListEmpty(t *testing.T) {
	repo := setupTestRepo(t)

	themes, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, themes)
}

func TestCustomStoreInterface(t *testing.T) {
	repo := setupTestRepo(t)

	// the repository doubles as the manager's CustomStore
	var store theme.CustomStore = repo

	require.NoError(t, store.SaveTheme(&theme.Theme{ID: "forest", Name: "Forest", Tokens: map[string]string{}}))

	themes, err := store.ListThemes()
	require.NoError(t, err)
	require.Len(t, themes, 1)
	assert.Equal(t, "forest", themes[0].ID)
}
