package server

import (
	"Inkwell/handler"
)

type Handlers struct {
	Auth      *handler.Auth
	Session   *handler.Session
	Posts     *handler.PostsHandler
	Comments  *handler.CommentsHandler
	Reactions *handler.ReactionsHandler
	Search    *handler.SearchHandler
}
