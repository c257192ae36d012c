package movie

import (
	"context"
	"errors"
	"strings"

	"github.com/Naamee/distance-backend/domain"
	"github.com/Naamee/distance-backend/entities"
	"gorm.io/gorm"
)

type (
	MovieService interface {
		AddMovie(ctx context.Context, req domain.AddMovieRequest) (*entities.Movie, error)
		ListMovies(ctx context.Context) ([]*entities.Movie, error)
		DeleteMovie(ctx context.Context, id uint) error
	}

	movieService struct {
		movieRepository MovieRepository
	}
)

func NewMovieService(movieRepository MovieRepository) MovieService {
	return &movieService{movieRepository: movieRepository}
}

func (s *movieService) AddMovie(ctx context.Context, req domain.AddMovieRequest) (*entities.Movie, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrBlankMovie
	}

	movie := &entities.Movie{Name: name}
	if err := s.movieRepository.CreateMovie(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

func (s *movieService) ListMovies(ctx context.Context) ([]*entities.Movie, error) {
	return s.movieRepository.GetMovies(ctx)
}

func (s *movieService) DeleteMovie(ctx context.Context, id uint) error {
	movie, err := s.movieRepository.GetMovieByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMovieNotFound
		}
		return err
	}
	return s.movieRepository.DeleteMovie(ctx, movie)
}
