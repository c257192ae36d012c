package domain

import "errors"

var (
	MessageSuccessAddMovie    = "movie added successfully"
	MessageSuccessDeleteMovie = "movie removed successfully"

	ErrMovieNotFound = errors.New("movie not found")
	ErrBlankMovie    = errors.New("movie name must not be blank")
)

type AddMovieRequest struct {
	Name string `json:"name" validate:"required"`
}
