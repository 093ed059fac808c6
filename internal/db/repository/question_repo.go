package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sahanavr/trivia-api/internal/question"
)

const questionColumns = "id, question, answer, category, difficulty"

// QuestionRepository provides Postgres-backed access to the question bank.
// It satisfies both question.Store and quiz.Store.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

// ListAll returns every question ordered by ascending id.
func (r *QuestionRepository) ListAll(ctx context.Context) ([]question.Question, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+questionColumns+" FROM questions ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return scanQuestions(rows)
}

// Search returns questions whose text contains term as a case-insensitive
// substring, ordered by ascending id. An empty term matches everything.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]question.Question, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE question ILIKE '%' || $1 || '%' ORDER BY id",
		term)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return scanQuestions(rows)
}

// ByCategory returns questions with an exact category match, ordered by
// ascending id.
func (r *QuestionRepository) ByCategory(ctx context.Context, categoryID int) ([]question.Question, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+questionColumns+" FROM questions WHERE category = $1 ORDER BY id",
		categoryID)
	if err != nil {
		return nil, fmt.Errorf("questions by category: %w", err)
	}
	return scanQuestions(rows)
}

// ListEligible returns questions outside the exclusion set, narrowed to
// one category when categoryID is non-zero.
func (r *QuestionRepository) ListEligible(ctx context.Context, excludedIDs []int, categoryID int) ([]question.Question, error) {
	sql, args := eligibleQuery(excludedIDs, categoryID)
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("eligible questions: %w", err)
	}
	return scanQuestions(rows)
}

// Insert stores a new question and returns it with its assigned id. The
// category is stored as-is with no referential check against categories.
func (r *QuestionRepository) Insert(ctx context.Context, params question.CreateParams) (question.Question, error) {
	var q question.Question
	err := r.pool.QueryRow(ctx,
		"INSERT INTO questions (question, answer, category, difficulty) VALUES ($1, $2, $3, $4) RETURNING "+questionColumns,
		params.Question, params.Answer, params.Category, params.Difficulty,
	).Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	if err != nil {
		return question.Question{}, fmt.Errorf("insert question: %w", err)
	}
	return q, nil
}

// Delete removes a question by id and returns the removed record.
// Returns question.ErrNotFound when no row matches.
func (r *QuestionRepository) Delete(ctx context.Context, id int) (question.Question, error) {
	var q question.Question
	err := r.pool.QueryRow(ctx,
		"DELETE FROM questions WHERE id = $1 RETURNING "+questionColumns,
		id,
	).Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return question.Question{}, question.ErrNotFound
		}
		return question.Question{}, fmt.Errorf("delete question: %w", err)
	}
	return q, nil
}

// eligibleQuery assembles the eligible-set query. Kept as a pure function
// so the predicate assembly is unit-testable without a database.
func eligibleQuery(excludedIDs []int, categoryID int) (string, []any) {
	sql := "SELECT " + questionColumns + " FROM questions"

	var conds []string
	var args []any
	if len(excludedIDs) > 0 {
		args = append(args, excludedIDs)
		conds = append(conds, fmt.Sprintf("id <> ALL($%d)", len(args)))
	}
	if categoryID != 0 {
		args = append(args, categoryID)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if len(conds) > 0 {
		sql += " WHERE " + strings.Join(conds, " AND ")
	}
	sql += " ORDER BY id"
	return sql, args
}

func scanQuestions(rows pgx.Rows) ([]question.Question, error) {
	defer rows.Close()

	var out []question.Question
	for rows.Next() {
		var q question.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}
	return out, nil
}
