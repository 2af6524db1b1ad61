package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"lumen/internal/domain"
	"lumen/internal/domain/models"
	"lumen/internal/domain/repositories"
)

// PostgresPostRepository implements the PostRepository interface
type PostgresPostRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewPostRepository creates a new post repository
func NewPostRepository(config *RepositoryConfig) repositories.PostRepository {
	return &PostgresPostRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create persists a new post
func (r *PostgresPostRepository) Create(ctx context.Context, post *models.Post) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (title, slug, excerpt, content, cover_image, published, published_at, author_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, r.tables.Posts)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		post.Title,
		post.Slug,
		post.Excerpt,
		post.Content,
		post.CoverImage,
		post.Published,
		post.PublishedAt,
		post.AuthorID,
	).Scan(&post.ID, &post.CreatedAt)

	if err != nil {
		if isPgDuplicateError(err) {
			return fmt.Errorf("post slug '%s' is already taken: %w", post.Slug, domain.ErrConflict)
		}
		if isPgForeignKeyError(err) {
			return fmt.Errorf("author %s does not exist: %w", post.AuthorID, domain.ErrValidation)
		}
		return fmt.Errorf("create post: %w", err)
	}

	return nil
}

// GetByID retrieves a post by ID regardless of publish state
func (r *PostgresPostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	query := fmt.Sprintf(`
		SELECT id, title, slug, excerpt, content, cover_image, published, published_at, author_id, created_at
		FROM %s
		WHERE id = $1
	`, r.tables.Posts)

	executor := GetExecutor(ctx, r.pool)
	var post models.Post
	err := executor.QueryRow(ctx, query, id).Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Excerpt,
		&post.Content,
		&post.CoverImage,
		&post.Published,
		&post.PublishedAt,
		&post.AuthorID,
		&post.CreatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get post: %w", err)
	}

	return &post, nil
}

// GetPublishedBySlug retrieves a published post by slug with author identity
func (r *PostgresPostRepository) GetPublishedBySlug(ctx context.Context, slug string) (*models.PublishedPost, error) {
	query := fmt.Sprintf(`
		SELECT p.id, p.title, p.slug, p.excerpt, p.content, p.cover_image,
		       p.published, p.published_at, p.author_id, p.created_at,
		       pr.full_name, pr.avatar_url
		FROM %s p
		LEFT JOIN %s pr ON pr.id = p.author_id
		WHERE p.slug = $1 AND p.published = true
	`, r.tables.Posts, r.tables.Profiles)

	executor := GetExecutor(ctx, r.pool)
	var post models.PublishedPost
	err := executor.QueryRow(ctx, query, slug).Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Excerpt,
		&post.Content,
		&post.CoverImage,
		&post.Published,
		&post.PublishedAt,
		&post.AuthorID,
		&post.CreatedAt,
		&post.AuthorName,
		&post.AuthorAvatar,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("post %s: %w", slug, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get published post: %w", err)
	}

	return &post, nil
}

// ListByAuthor retrieves post summaries for one author, newest first
func (r *PostgresPostRepository) ListByAuthor(ctx context.Context, authorID string) ([]models.PostSummary, error) {
	query := fmt.Sprintf(`
		SELECT id, title, slug, published, published_at, created_at
		FROM %s
		WHERE author_id = $1
		ORDER BY created_at DESC
	`, r.tables.Posts)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	return scanRows(rows, func(row pgx.Rows) (models.PostSummary, error) {
		var s models.PostSummary
		err := row.Scan(&s.ID, &s.Title, &s.Slug, &s.Published, &s.PublishedAt, &s.CreatedAt)
		return s, err
	})
}

// ListPublished retrieves all published posts with author identity,
// most recently published first
func (r *PostgresPostRepository) ListPublished(ctx context.Context) ([]models.PublishedPost, error) {
	query := fmt.Sprintf(`
		SELECT p.id, p.title, p.slug, p.excerpt, p.content, p.cover_image,
		       p.published, p.published_at, p.author_id, p.created_at,
		       pr.full_name, pr.avatar_url
		FROM %s p
		LEFT JOIN %s pr ON pr.id = p.author_id
		WHERE p.published = true
		ORDER BY p.published_at DESC
	`, r.tables.Posts, r.tables.Profiles)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list published posts: %w", err)
	}
	defer rows.Close()

	return scanRows(rows, func(row pgx.Rows) (models.PublishedPost, error) {
		var p models.PublishedPost
		err := row.Scan(
			&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.CoverImage,
			&p.Published, &p.PublishedAt, &p.AuthorID, &p.CreatedAt,
			&p.AuthorName, &p.AuthorAvatar,
		)
		return p, err
	})
}

// Update rewrites the editable fields of an existing post
func (r *PostgresPostRepository) Update(ctx context.Context, post *models.Post) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, slug = $2, excerpt = $3, content = $4, cover_image = $5,
		    published = $6, published_at = $7
		WHERE id = $8
	`, r.tables.Posts)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		post.Title,
		post.Slug,
		post.Excerpt,
		post.Content,
		post.CoverImage,
		post.Published,
		post.PublishedAt,
		post.ID,
	)

	if err != nil {
		if isPgDuplicateError(err) {
			return fmt.Errorf("post slug '%s' is already taken: %w", post.Slug, domain.ErrConflict)
		}
		return fmt.Errorf("update post: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("post %s: %w", post.ID, domain.ErrNotFound)
	}

	return nil
}

// UpdatePublishState patches only published and published_at
func (r *PostgresPostRepository) UpdatePublishState(ctx context.Context, id string, published bool, publishedAt *time.Time) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET published = $1, published_at = $2
		WHERE id = $3
	`, r.tables.Posts)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, published, publishedAt, id)
	if err != nil {
		return fmt.Errorf("update publish state: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a post by ID
func (r *PostgresPostRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
	`, r.tables.Posts)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// scanRows collects all rows using the given scan function
func scanRows[T any](rows pgx.Rows, scan func(pgx.Rows) (T, error)) ([]T, error) {
	var items []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return items, nil
}
