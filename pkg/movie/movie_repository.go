package movie

import (
	"context"

	"github.com/Naamee/distance-backend/entities"
	"gorm.io/gorm"
)

type (
	MovieRepository interface {
		CreateMovie(ctx context.Context, movie *entities.Movie) error
		GetMovieByID(ctx context.Context, id uint) (*entities.Movie, error)
		GetMovies(ctx context.Context) ([]*entities.Movie, error)
		DeleteMovie(ctx context.Context, movie *entities.Movie) error
	}

	movieRepository struct {
		db *gorm.DB
	}
)

func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &movieRepository{db: db}
}

func (r *movieRepository) CreateMovie(ctx context.Context, movie *entities.Movie) error {
	return r.db.WithContext(ctx).Create(movie).Error
}

func (r *movieRepository) GetMovieByID(ctx context.Context, id uint) (*entities.Movie, error) {
	var movie entities.Movie
	if err := r.db.WithContext(ctx).First(&movie, id).Error; err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) GetMovies(ctx context.Context) ([]*entities.Movie, error) {
	var movies []*entities.Movie
	if err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *movieRepository) DeleteMovie(ctx context.Context, movie *entities.Movie) error {
	return r.db.WithContext(ctx).Delete(movie).Error
}
