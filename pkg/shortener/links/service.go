package links

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/tomwray13/url-shortener/pkg/shortener/cache"
	"github.com/tomwray13/url-shortener/pkg/shortener/models"
	"github.com/tomwray13/url-shortener/pkg/shortener/uid"
)

const (
	// CodeLength is the number of characters in a generated short code.
	CodeLength = 10

	// maxCreateAttempts bounds how many fresh codes Create tries when a
	// generated code collides with an existing short URL. With a 64^10 code
	// space a second collision in a row already means something is wrong.
	maxCreateAttempts = 3

	DefaultPage  = 1
	DefaultLimit = 10
)

var (
	// ErrNotFound signals that no link exists for the given id.
	ErrNotFound = errors.New("link not found")

	// ErrCodeSpaceExhausted signals that every generated code collided.
	ErrCodeSpaceExhausted = errors.New("could not generate a unique short code")
)

// CreateInput carries the caller-supplied fields for a new link.
// Validation of shape (non-empty title, absolute redirect URL) happens at
// the HTTP boundary; the service assumes pre-validated input.
type CreateInput struct {
	Title       string
	Redirect    string
	Description *string
}

// UpdateInput lists the mutable fields of a link. A nil field is left
// unchanged; id and shortUrl are not updatable by design.
type UpdateInput struct {
	Title       *string
	Description *string
	Redirect    *string
}

// Meta describes the position of a page within the filtered result set.
type Meta struct {
	TotalCount      int64 `json:"totalCount"`
	CurrentPage     int   `json:"currentPage"`
	PerPage         int   `json:"perPage"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// Page is one window of the listing plus its metadata.
type Page struct {
	Data []models.Link
	Meta Meta
}

// Service implements the link lifecycle: code generation, persistence,
// lookup, partial update, removal and the paginated listing. The host
// prefix is fixed at construction and never mutated afterwards, so the
// service is safe for concurrent use.
type Service struct {
	db    *gorm.DB
	cache *cache.Cache
	host  string

	// generate is swappable in tests to force collisions.
	generate func(length int) (string, error)
}

// NewService creates a link service. cache may be nil to disable caching.
func NewService(db *gorm.DB, c *cache.Cache, host string) *Service {
	return &Service{
		db:       db,
		cache:    c,
		host:     strings.TrimRight(host, "/"),
		generate: uid.Generate,
	}
}

// Create generates a short code, composes the short URL and inserts the
// link. Uniqueness is enforced by the unique index on short_url; when the
// insert reports a duplicate key the code is regenerated and the insert
// retried, up to maxCreateAttempts times.
func (s *Service) Create(ctx context.Context, in CreateInput) (*models.Link, error) {
	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		code, err := s.generate(CodeLength)
		if err != nil {
			return nil, err
		}

		link := models.Link{
			Title:       in.Title,
			Description: in.Description,
			Redirect:    in.Redirect,
			ShortURL:    s.host + "/" + code,
		}

		err = s.db.WithContext(ctx).Create(&link).Error
		if err == nil {
			s.cache.SetLink(ctx, code, &link)
			return &link, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}
	return nil, ErrCodeSpaceExhausted
}

// FindAll returns one page of links matching the optional free-text filter,
// ordered by id ascending. The filter matches when any of title,
// description, redirect or shortUrl contains the text; matching is
// case-insensitive for ASCII (SQLite LIKE semantics).
//
// Non-positive page or limit fall back to the defaults; the HTTP boundary
// rejects them before they reach here, the fallback just keeps the service
// safe to call directly.
func (s *Service) FindAll(ctx context.Context, page, limit int, filter string) (*Page, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	skip := (page - 1) * limit

	var total int64
	if err := s.filtered(ctx, filter).Count(&total).Error; err != nil {
		return nil, err
	}

	data := make([]models.Link, 0, limit)
	if err := s.filtered(ctx, filter).
		Order("id ASC").
		Limit(limit).
		Offset(skip).
		Find(&data).Error; err != nil {
		return nil, err
	}

	return &Page{
		Data: data,
		Meta: Meta{
			TotalCount:      total,
			CurrentPage:     page,
			PerPage:         limit,
			TotalPages:      int((total + int64(limit) - 1) / int64(limit)),
			HasNextPage:     int64(skip+limit) < total,
			HasPreviousPage: skip > 0 && page > 1,
		},
	}, nil
}

// filtered builds a fresh query over links constrained by the free-text
// filter. Count and the page fetch each call this separately so the two
// queries run over the same predicate without sharing gorm state.
func (s *Service) filtered(ctx context.Context, filter string) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&models.Link{})
	if filter == "" {
		return q
	}
	pattern := "%" + filter + "%"
	return q.Where(
		"title LIKE ? OR description LIKE ? OR redirect LIKE ? OR short_url LIKE ?",
		pattern, pattern, pattern, pattern,
	)
}

// FindOne looks up a link by its short code. Absence is not an error: a
// (nil, nil) return means no link carries that code.
func (s *Service) FindOne(ctx context.Context, code string) (*models.Link, error) {
	if link, ok := s.cache.GetLink(ctx, code); ok {
		return link, nil
	}

	var link models.Link
	err := s.db.WithContext(ctx).Where("short_url = ?", s.host+"/"+code).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	s.cache.SetLink(ctx, code, &link)
	return &link, nil
}

// Update applies a partial update to the mutable fields of the link with
// the given id and returns the updated record. Returns ErrNotFound when the
// id does not exist.
func (s *Service) Update(ctx context.Context, id uint, upd UpdateInput) (*models.Link, error) {
	var link models.Link
	err := s.db.WithContext(ctx).First(&link, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if upd.Title != nil {
		updates["title"] = *upd.Title
	}
	if upd.Description != nil {
		updates["description"] = *upd.Description
	}
	if upd.Redirect != nil {
		updates["redirect"] = *upd.Redirect
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&link).Updates(updates).Error; err != nil {
			return nil, err
		}
		s.cache.DeleteLink(ctx, s.codeOf(link.ShortURL))
	}
	return &link, nil
}

// Remove hard-deletes the link with the given id and returns its prior
// state. Returns ErrNotFound when the id does not exist.
func (s *Service) Remove(ctx context.Context, id uint) (*models.Link, error) {
	var link models.Link
	err := s.db.WithContext(ctx).First(&link, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Delete(&link).Error; err != nil {
		return nil, err
	}

	s.cache.DeleteLink(ctx, s.codeOf(link.ShortURL))
	return &link, nil
}

func (s *Service) codeOf(shortURL string) string {
	return strings.TrimPrefix(shortURL, s.host+"/")
}
