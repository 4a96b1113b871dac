package postService

import (
	"github.com/blinky-z/postboard/models"
	"sync"
)

// PostDate - date every post is stamped with
const PostDate = "2024-01-15"

// ValidationError - returned when a post can not be saved because of the caller input
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ErrValidation - title or article is empty
var ErrValidation = &ValidationError{Message: "Title and article are required"}

// Store - in-memory ordered collection of posts
// Posts are never removed, so post ID always equals its index in 'posts'
type Store struct {
	mu    sync.Mutex
	posts []models.Post
}

// NewStore - creates an empty store
func NewStore() *Store {
	return &Store{
		posts: make([]models.Post, 0),
	}
}

// Validate - checks that request has both title and article
func Validate(request *SaveRequest) error {
	if request == nil || request.Title == "" || request.Article == "" {
		return ErrValidation
	}
	return nil
}

// Append - saves a new post at the end of the store
// returns a copy of the stored post and error
func (s *Store) Append(request *SaveRequest) (models.Post, error) {
	if err := Validate(request); err != nil {
		return models.Post{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	createdPost := models.Post{
		ID:      len(s.posts),
		Title:   request.Title,
		Date:    PostDate,
		Article: request.Article,
	}
	s.posts = append(s.posts, createdPost)

	return createdPost, nil
}

// List - returns a snapshot of all posts in insertion order
func (s *Store) List() []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := make([]models.Post, len(s.posts))
	copy(posts, s.posts)
	return posts
}

// Len - returns amount of posts in the store
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.posts)
}
