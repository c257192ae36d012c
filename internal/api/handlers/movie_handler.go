package handlers

import (
	"strconv"

	"github.com/Naamee/distance-backend/domain"
	"github.com/Naamee/distance-backend/internal/api/presenters"
	"github.com/Naamee/distance-backend/pkg/movie"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MovieHandler interface {
		AddMovie(c *fiber.Ctx) error
		ListMovies(c *fiber.Ctx) error
		DeleteMovie(c *fiber.Ctx) error
	}

	movieHandler struct {
		movieService movie.MovieService
		validator    *validator.Validate
	}
)

func NewMovieHandler(movieService movie.MovieService, validator *validator.Validate) MovieHandler {
	return &movieHandler{
		movieService: movieService,
		validator:    validator,
	}
}

func (h *movieHandler) AddMovie(c *fiber.Ctx) error {
	req := new(domain.AddMovieRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.MessageResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, domain.ErrBlankMovie)
	}

	created, err := h.movieService.AddMovie(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusCreated, created)
}

func (h *movieHandler) ListMovies(c *fiber.Ctx) error {
	movies, err := h.movieService.ListMovies(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}
	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{"data": movies})
}

func (h *movieHandler) DeleteMovie(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return presenters.ErrorResponse(c, domain.ErrMovieNotFound)
	}

	if err := h.movieService.DeleteMovie(c.Context(), uint(id)); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.MessageResponse(c, fiber.StatusOK, domain.MessageSuccessDeleteMovie)
}
