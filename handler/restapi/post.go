package restapi

import (
	"encoding/json"
	"errors"
	"github.com/blinky-z/postboard/models"
	"github.com/blinky-z/postboard/service/postService"
	"go.uber.org/zap"
	"io"
	"net/http"
)

// PostAPIHandler - used for dependency injection
type PostAPIHandler struct {
	store *postService.Store
	log   *zap.SugaredLogger
}

// NewPostAPIHandler - creates handler serving posts of the given store
func NewPostAPIHandler(store *postService.Store, log *zap.SugaredLogger) *PostAPIHandler {
	return &PostAPIHandler{
		store: store,
		log:   log,
	}
}

func decodeCreatePostRequest(r *http.Request, request *models.CreatePostRequest) error {
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(request); err != nil {
		return err
	}
	// body must hold exactly one JSON value
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return errors.New("unexpected data after request body")
	}
	return nil
}

// CreatePostHandler - this handler serves post creation requests
func (api *PostAPIHandler) CreatePostHandler() http.Handler {
	log := api.log
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		request := models.CreatePostRequest{}
		if err := decodeCreatePostRequest(r, &request); err != nil {
			RespondWithText(w, http.StatusBadRequest, postService.ErrValidation.Error(), log)
			return
		}

		createdPost, err := api.store.Append(&postService.SaveRequest{
			Title:   request.Title,
			Article: request.Article,
		})
		if err != nil {
			RespondWithText(w, http.StatusBadRequest, err.Error(), log)
			return
		}

		log.Infow("Post saved", "id", createdPost.ID, "title", createdPost.Title)
		RespondWithBody(w, http.StatusOK, createdPost, log)
	})
}

// GetPostsHandler - this handler serves GET request for all posts
func (api *PostAPIHandler) GetPostsHandler() http.Handler {
	log := api.log
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		posts := api.store.List()
		log.Debugw("Posts retrieved", "count", len(posts))
		RespondWithBody(w, http.StatusOK, posts, log)
	})
}
