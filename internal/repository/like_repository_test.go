package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bookshelf/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a pooled second connection would see its own empty in-memory db
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Like{}))
	return db
}

func TestLikeRepository_Toggle_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	// like, unlike, like again against the real store
	for i, expected := range []bool{true, false, true} {
		liked, err := repo.Toggle(ctx, userID, "Dune", "SciFi")
		require.NoError(t, err)
		assert.Equal(t, expected, liked, "toggle %d", i+1)

		count, err := repo.CountForBook(ctx, "Dune", "SciFi")
		require.NoError(t, err)
		if expected {
			assert.Equal(t, int64(1), count)
		} else {
			assert.Equal(t, int64(0), count)
		}

		exists, err := repo.Exists(ctx, userID, "Dune", "SciFi")
		require.NoError(t, err)
		assert.Equal(t, expected, exists)
	}
}

func TestLikeRepository_Toggle_ScopedToTriple(t *testing.T) {
	db := newTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()
	alice := uuid.New()
	bob := uuid.New()

	_, err := repo.Toggle(ctx, alice, "Dune", "SciFi")
	require.NoError(t, err)
	_, err = repo.Toggle(ctx, bob, "Dune", "SciFi")
	require.NoError(t, err)
	_, err = repo.Toggle(ctx, alice, "Dune", "Fantasy")
	require.NoError(t, err)

	// count is per (title, category), one row per user
	count, err := repo.CountForBook(ctx, "Dune", "SciFi")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// alice toggling off only removes her own like
	liked, err := repo.Toggle(ctx, alice, "Dune", "SciFi")
	require.NoError(t, err)
	assert.False(t, liked)

	count, err = repo.CountForBook(ctx, "Dune", "SciFi")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	exists, err := repo.Exists(ctx, bob, "Dune", "SciFi")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLikeRepository_UniqueConstraint(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()

	require.NoError(t, db.Create(&model.Like{UserID: userID, BookTitle: "Dune", BookCategory: "SciFi"}).Error)

	// second row for the same triple must be rejected by the index
	err := db.Create(&model.Like{UserID: userID, BookTitle: "Dune", BookCategory: "SciFi"}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestLikeRepository_Toggle_LostInsertRace(t *testing.T) {
	db := newTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	// Sneak a row for the triple in after Toggle's delete has already
	// seen nothing, so its insert hits the unique index the way a
	// concurrent toggle would.
	injected := false
	err := db.Callback().Create().Before("gorm:create").Register("inject_conflict", func(d *gorm.DB) {
		if injected {
			return
		}
		injected = true
		d.Session(&gorm.Session{NewDB: true}).Exec(
			"INSERT INTO likes (id, user_id, book_title, book_category) VALUES (?, ?, ?, ?)",
			uuid.New().String(), userID.String(), "Dune", "SciFi",
		)
	})
	require.NoError(t, err)
	defer func() {
		_ = db.Callback().Create().Remove("inject_conflict")
	}()

	liked, err := repo.Toggle(ctx, userID, "Dune", "SciFi")
	require.NoError(t, err)
	assert.True(t, liked)

	// the winning insert stands; no duplicate row was created
	count, err := repo.CountForBook(ctx, "Dune", "SciFi")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
