package app

import (
	"net/http"

	"github.com/cinetick/cinetick/api"
	"github.com/cinetick/cinetick/internal/domain"
)

func (app *Application) ListMoviesHandler(w http.ResponseWriter, r *http.Request) {
	movies, err := app.movieRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	summaries := make([]api.Movie, len(movies))
	for i, movie := range movies {
		summaries[i] = toApiMovie(movie)
	}

	resp := api.MovieListResponse{
		Movies: summaries,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// ListMoviesByCinemaHandler returns the movies screening at a cinema, with
// that cinema's shows nested under each movie.
func (app *Application) ListMoviesByCinemaHandler(w http.ResponseWriter, r *http.Request) {
	cinemaID, err := readIDParam(r, "cinemaId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	movieShows, err := app.movieRepo.GetByCinema(r.Context(), cinemaID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	movies := make([]api.MovieShowtimes, len(movieShows))
	for i, v := range movieShows {
		movies[i] = api.MovieShowtimes{
			Movie: toApiMovie(v.Movie),
			Shows: toApiShows(v.Shows),
		}
	}

	resp := api.CinemaMoviesResponse{
		Movies: movies,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiMovie(movie domain.Movie) api.Movie {
	return api.Movie{
		ID:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		Duration:    movie.Duration,
		Genre:       movie.Genre,
		Rating:      movie.Rating,
		PosterURL:   movie.PosterURL,
		Language:    movie.Language,
	}
}
