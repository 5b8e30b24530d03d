// filepath: internal/repository/content_repo.go
package repository

import (
	"database/sql"
	"errors"

	"hcsl_site/internal/models"
	"hcsl_site/internal/shared"

	"github.com/Masterminds/squirrel"
)

// contentColumns is the select list shared by the content queries. The
// registration_count subquery is cheap for non-events (no matching rows).
var contentColumns = []string{
	"c.id", "c.type", "c.title", "c.slug", "c.summary", "c.content",
	"c.image_url", "c.published_date", "c.category", "c.status", "c.created_at",
	"(SELECT COUNT(*) FROM event_registrations WHERE event_id = c.id) AS registration_count",
}

func scanContentItem(row squirrel.RowScanner) (models.ContentItem, error) {
	var item models.ContentItem
	var summary, content, imageURL, publishedDate, category, status sql.NullString
	err := row.Scan(
		&item.ID, &item.Type, &item.Title, &item.Slug, &summary, &content,
		&imageURL, &publishedDate, &category, &status, &item.CreatedAt,
		&item.RegistrationCount,
	)
	if err != nil {
		return models.ContentItem{}, err
	}
	item.Summary = text(summary)
	item.Content = text(content)
	item.ImageURL = text(imageURL)
	item.PublishedDate = text(publishedDate)
	item.Category = text(category)
	item.Status = text(status)
	return item, nil
}

// GetItems returns items of one type ordered by published_date descending,
// paginated by limit/page. A filterYear other than "" or "all" restricts the
// result to items published in that 4-digit year.
func (s *Repository) GetItems(itemType string, limit, page int, filterYear string) ([]models.ContentItem, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	q := s.Builder.Select(contentColumns...).
		From("content_items c").
		Where(squirrel.Eq{"c.type": itemType})

	if filterYear != "" && filterYear != "all" {
		q = q.Where("strftime('%Y', c.published_date) = ?", filterYear)
	}

	q = q.OrderBy("c.published_date DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.ContentItem, 0)
	for rows.Next() {
		item, err := scanContentItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetItemBySlug returns a single item by slug, optionally restricted to one
// type. Returns shared.ErrContentNotFound when no row matches.
func (s *Repository) GetItemBySlug(slug, itemType string) (*models.ContentItem, error) {
	q := s.Builder.Select(contentColumns...).
		From("content_items c").
		Where(squirrel.Eq{"c.slug": slug})
	if itemType != "" {
		q = q.Where(squirrel.Eq{"c.type": itemType})
	}

	query, args, err := q.Limit(1).ToSql()
	if err != nil {
		return nil, err
	}

	item, err := scanContentItem(s.DB.QueryRow(query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrContentNotFound
		}
		return nil, err
	}
	return &item, nil
}

// GetYears returns the distinct publication years present for a type,
// newest first. NULL dates are skipped.
func (s *Repository) GetYears(itemType string) ([]string, error) {
	rows, err := s.DB.Query(
		"SELECT DISTINCT strftime('%Y', published_date) AS year FROM content_items WHERE type = ? ORDER BY year DESC",
		itemType,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	years := make([]string, 0)
	for rows.Next() {
		var year sql.NullString
		if err := rows.Scan(&year); err != nil {
			return nil, err
		}
		if year.String != "" {
			years = append(years, year.String)
		}
	}
	return years, rows.Err()
}

// CreateItem inserts a new content item and returns its generated ID.
// A duplicate slug fails at the storage layer via the UNIQUE constraint.
func (s *Repository) CreateItem(data models.ContentItemCreate) (string, error) {
	id := s.NewID()
	status := data.Status
	if status == "" {
		status = models.EventStatusOpen
	}

	_, err := s.DB.Exec(
		`INSERT INTO content_items (id, type, title, slug, summary, content, image_url, published_date, category, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, data.Type, data.Title, data.Slug, data.Summary, data.Content,
		data.ImageURL, data.PublishedDate, nullIfEmpty(data.Category), status,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// UpdateItem writes only the supplied fields. A payload with no fields set
// is a no-op.
func (s *Repository) UpdateItem(id string, data models.ContentItemUpdate) error {
	q := s.Builder.Update("content_items")
	changed := false

	set := func(col string, v *string) {
		if v != nil {
			q = q.Set(col, *v)
			changed = true
		}
	}
	set("title", data.Title)
	set("slug", data.Slug)
	set("summary", data.Summary)
	set("content", data.Content)
	set("image_url", data.ImageURL)
	set("published_date", data.PublishedDate)
	set("category", data.Category)
	set("status", data.Status)

	if !changed {
		return nil
	}

	query, args, err := q.Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(query, args...)
	return err
}

// DeleteItem hard-deletes a content item.
func (s *Repository) DeleteItem(id string) error {
	_, err := s.DB.Exec("DELETE FROM content_items WHERE id = ?", id)
	return err
}
