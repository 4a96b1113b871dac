package models

// Post - represents blog post
// @ID - position of the post in the store, assigned on creation
// @Title - title
// @Date - publication date
// @Article - post body
type Post struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Date    string `json:"date"`
	Article string `json:"article"`
}

//CreatePostRequest - represents post creation request
type CreatePostRequest struct {
	Title   string `json:"title"`
	Article string `json:"article"`
}
