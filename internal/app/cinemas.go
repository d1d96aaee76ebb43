package app

import (
	"net/http"
	"sort"

	"github.com/cinetick/cinetick/api"
	"github.com/cinetick/cinetick/internal/domain"
	"github.com/go-chi/chi/v5"
)

func (app *Application) ListCinemasHandler(w http.ResponseWriter, r *http.Request) {
	cinemas, err := app.cinemaRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.CinemaListResponse{
		Cinemas: toApiCinemas(cinemas),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// ListCitiesHandler groups all cinemas by the city segment of their location.
func (app *Application) ListCitiesHandler(w http.ResponseWriter, r *http.Request) {
	cinemas, err := app.cinemaRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	grouped := make(map[string][]api.Cinema)
	for _, cinema := range cinemas {
		city := cinema.City()
		grouped[city] = append(grouped[city], toApiCinema(cinema))
	}

	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)

	cities := make([]api.City, 0, len(names))
	for _, name := range names {
		cities = append(cities, api.City{
			Name:        name,
			CinemaCount: len(grouped[name]),
			Cinemas:     grouped[name],
		})
	}

	resp := api.CityListResponse{
		Cities: cities,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListCinemasByCityHandler(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")

	cinemas, err := app.cinemaRepo.GetByCity(r.Context(), city)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.CinemaListResponse{
		Cinemas: toApiCinemas(cinemas),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// ListCinemasByMovieHandler returns the cinemas screening a movie, with the
// movie's shows nested under each cinema.
func (app *Application) ListCinemasByMovieHandler(w http.ResponseWriter, r *http.Request) {
	movieID, err := readIDParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	cinemaShows, err := app.cinemaRepo.GetByMovie(r.Context(), movieID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	cinemas := make([]api.CinemaShowtimes, len(cinemaShows))
	for i, v := range cinemaShows {
		cinemas[i] = api.CinemaShowtimes{
			Cinema: toApiCinema(v.Cinema),
			Shows:  toApiShows(v.Shows),
		}
	}

	resp := api.MovieCinemasResponse{
		Cinemas: cinemas,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiCinema(cinema domain.Cinema) api.Cinema {
	return api.Cinema{
		ID:       cinema.ID,
		Name:     cinema.Name,
		Location: cinema.Location,
	}
}

func toApiCinemas(cinemas []domain.Cinema) []api.Cinema {
	result := make([]api.Cinema, len(cinemas))
	for i, cinema := range cinemas {
		result[i] = toApiCinema(cinema)
	}

	return result
}

func toApiShows(shows []domain.ShowListing) []api.Show {
	result := make([]api.Show, len(shows))
	for i, show := range shows {
		result[i] = api.Show{
			ID:         show.ID,
			StartTime:  show.StartTime,
			Price:      show.Price,
			ScreenName: show.ScreenName,
		}
	}

	return result
}
