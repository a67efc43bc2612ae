package posts

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stanislav-shchetinin/security-web/internal/auth"
	"github.com/stanislav-shchetinin/security-web/internal/users"
)

// Response is the post shape exposed over the API. Password hashes live on
// the author record and never appear here.
type Response struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	AuthorUsername string    `json:"authorUsername"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type Service struct {
	posts Store
	users users.Store
}

func NewService(posts Store, userStore users.Store) *Service {
	return &Service{posts: posts, users: userStore}
}

// ListAll returns every post, newest first.
func (s *Service) ListAll() ([]Response, error) {
	list, err := s.posts.ListAll()
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return toResponses(list), nil
}

// Create stores a post attributed to the caller. The caller's username comes
// from the authorization gate, so failing to resolve it means the identity
// context is broken rather than a routine miss.
func (s *Service) Create(ident auth.Identity, title, content string) (*Response, error) {
	author, err := s.users.FindByUsername(ident.Username)
	if err != nil {
		return nil, fmt.Errorf("resolve author %q: %w", ident.Username, err)
	}

	post := &Post{
		Title:    title,
		Content:  content,
		AuthorID: author.ID,
	}
	if err := s.posts.Create(post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	res := toResponse(*post)
	res.AuthorUsername = author.Username
	return &res, nil
}

// ListMine returns the caller's posts, newest first.
func (s *Service) ListMine(ident auth.Identity) ([]Response, error) {
	author, err := s.users.FindByUsername(ident.Username)
	if err != nil {
		return nil, fmt.Errorf("resolve author %q: %w", ident.Username, err)
	}
	list, err := s.posts.ListByAuthor(author.ID)
	if err != nil {
		return nil, fmt.Errorf("list posts by author: %w", err)
	}
	return toResponses(list), nil
}

func toResponse(p Post) Response {
	return Response{
		ID:             p.ID,
		Title:          p.Title,
		Content:        p.Content,
		AuthorUsername: p.Author.Username,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toResponses(list []Post) []Response {
	out := make([]Response, 0, len(list))
	for _, p := range list {
		out = append(out, toResponse(p))
	}
	return out
}
