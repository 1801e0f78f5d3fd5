package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"wordbook/internal/domain"
)

const wordColumns = `id, english, meaning, turkish_meaning, example_usage, difficulty_level, added_date, user_id`

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// Create inserts a word and sets its ID
func (r *WordRepo) Create(ctx context.Context, w *domain.Word) error {
	query := `
		INSERT INTO words (english, meaning, turkish_meaning, example_usage, difficulty_level, added_date, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.db.QueryRowContext(ctx, query,
		w.English, w.Meaning, w.TurkishMeaning, w.ExampleUsage,
		nullString(w.DifficultyLevel), w.AddedDate, nullInt64(w.UserID),
	).Scan(&w.ID)
}

// GetByID returns the word with the given ID
func (r *WordRepo) GetByID(ctx context.Context, id int64) (*domain.Word, error) {
	query := `SELECT ` + wordColumns + ` FROM words WHERE id = $1`
	w, err := scanWord(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, domain.NotFound("word not found")
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Update replaces the editable fields of a word
func (r *WordRepo) Update(ctx context.Context, w *domain.Word) error {
	query := `
		UPDATE words
		SET english = $1, meaning = $2, turkish_meaning = $3, example_usage = $4,
			difficulty_level = $5, added_date = $6
		WHERE id = $7
	`
	res, err := r.db.ExecContext(ctx, query,
		w.English, w.Meaning, w.TurkishMeaning, w.ExampleUsage,
		nullString(w.DifficultyLevel), w.AddedDate, w.ID,
	)
	if err != nil {
		return err
	}
	return expectAffected(res, "word not found")
}

// Delete removes a word
func (r *WordRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM words WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectAffected(res, "word not found")
}

// ExistsForUser checks case-insensitively if english is already stored for the user.
// A nil userID checks words without an owner.
func (r *WordRepo) ExistsForUser(ctx context.Context, english string, userID *int64) (bool, error) {
	var exists bool
	var err error
	if userID == nil {
		query := `SELECT EXISTS(SELECT 1 FROM words WHERE LOWER(english) = LOWER($1) AND user_id IS NULL)`
		err = r.db.QueryRowContext(ctx, query, english).Scan(&exists)
	} else {
		query := `SELECT EXISTS(SELECT 1 FROM words WHERE LOWER(english) = LOWER($1) AND user_id = $2)`
		err = r.db.QueryRowContext(ctx, query, english, *userID).Scan(&exists)
	}
	return exists, err
}

// List returns the words in scope, newest first when requested
func (r *WordRepo) List(ctx context.Context, scope domain.Scope, newestFirst bool) ([]domain.Word, error) {
	where, args := scopeFilter(scope, nil, nil)
	order := "id"
	if newestFirst {
		order = "added_date DESC, id DESC"
	}
	return r.queryWords(ctx, `SELECT `+wordColumns+` FROM words`+where+` ORDER BY `+order, args...)
}

// ListRecent returns at most limit words in scope, newest first
func (r *WordRepo) ListRecent(ctx context.Context, scope domain.Scope, limit int) ([]domain.Word, error) {
	where, args := scopeFilter(scope, nil, nil)
	args = append(args, limit)
	query := fmt.Sprintf(`SELECT %s FROM words%s ORDER BY added_date DESC, id DESC LIMIT $%d`, wordColumns, where, len(args))
	return r.queryWords(ctx, query, args...)
}

// ListSince returns the words in scope added at or after since, oldest first
func (r *WordRepo) ListSince(ctx context.Context, scope domain.Scope, since time.Time) ([]domain.Word, error) {
	where, args := scopeFilter(scope, []string{"added_date >= $1"}, []any{since})
	return r.queryWords(ctx, `SELECT `+wordColumns+` FROM words`+where+` ORDER BY added_date, id`, args...)
}

// Search returns words whose english term or meaning contains query, ignoring case
func (r *WordRepo) Search(ctx context.Context, scope domain.Scope, query string) ([]domain.Word, error) {
	args := []any{escapeLike(query)}
	where, args := scopeFilter(scope, []string{
		`(english ILIKE '%' || $1 || '%' OR meaning ILIKE '%' || $1 || '%')`,
	}, args)
	return r.queryWords(ctx, `SELECT `+wordColumns+` FROM words`+where+` ORDER BY id`, args...)
}

// ListByDifficulty returns words with exactly the given level, newest first
func (r *WordRepo) ListByDifficulty(ctx context.Context, scope domain.Scope, level string) ([]domain.Word, error) {
	where, args := scopeFilter(scope, []string{"difficulty_level = $1"}, []any{level})
	return r.queryWords(ctx, `SELECT `+wordColumns+` FROM words`+where+` ORDER BY added_date DESC, id DESC`, args...)
}

// Count returns the number of words in scope
func (r *WordRepo) Count(ctx context.Context, scope domain.Scope) (int64, error) {
	where, args := scopeFilter(scope, nil, nil)
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM words`+where, args...).Scan(&count)
	return count, err
}

// CountSince returns the number of words in scope added after since
// (or at since, when inclusive)
func (r *WordRepo) CountSince(ctx context.Context, scope domain.Scope, since time.Time, inclusive bool) (int64, error) {
	op := ">"
	if inclusive {
		op = ">="
	}
	where, args := scopeFilter(scope, []string{"added_date " + op + " $1"}, []any{since})
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM words`+where, args...).Scan(&count)
	return count, err
}

func (r *WordRepo) queryWords(ctx context.Context, query string, args ...any) ([]domain.Word, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	words := []domain.Word{}
	for rows.Next() {
		w, err := scanWord(rows)
		if err != nil {
			return nil, err
		}
		words = append(words, *w)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWord(row rowScanner) (*domain.Word, error) {
	var w domain.Word
	var meaning, turkish, example, difficulty sql.NullString
	var userID sql.NullInt64
	if err := row.Scan(&w.ID, &w.English, &meaning, &turkish, &example, &difficulty, &w.AddedDate, &userID); err != nil {
		return nil, err
	}
	w.Meaning = meaning.String
	w.TurkishMeaning = turkish.String
	w.ExampleUsage = example.String
	w.DifficultyLevel = difficulty.String
	if userID.Valid {
		id := userID.Int64
		w.UserID = &id
	}
	return &w, nil
}

// scopeFilter appends the owner condition for scope to conds and renders a WHERE clause
func scopeFilter(scope domain.Scope, conds []string, args []any) (string, []any) {
	if !scope.IsAll() {
		args = append(args, *scope.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// escapeLike escapes LIKE wildcards so query matches literally
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
