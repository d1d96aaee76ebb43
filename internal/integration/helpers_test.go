package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t testing.TB, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore nondeterministic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		return k == "timestamp" || k == "requestId" || k == "createdAt" || k == "reference"
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func createBooking(t testing.TB, app *TestApp, userID, showID int, seats []string) {
	body, err := json.Marshal(map[string]any{
		"userId": userID,
		"showId": showID,
		"seats":  seats,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
}

func resetDatabase(t testing.TB, app *TestApp) {
	ctx := context.Background()

	_, err := app.DB.Exec(ctx,
		"TRUNCATE booking_seats, bookings, shows, movies, screens, cinemas, users RESTART IDENTITY CASCADE")
	require.NoError(t, err)

	require.NoError(t, app.Redis.FlushAll(ctx).Err())
}

// seedCatalog loads the deterministic fixture catalog every scenario runs
// against: one user, two cinemas in different cities, two movies and three
// shows.
func seedCatalog(t testing.TB, app *TestApp) {
	ctx := context.Background()

	stmts := []string{
		`INSERT INTO users (name, email) VALUES ('John Doe', 'john@example.com')`,

		`INSERT INTO cinemas (name, location) VALUES
			('PVR Juhu', 'Juhu Beach Road, Mumbai'),
			('PVR Forum Mall', 'Koramangala, Bangalore')`,

		`INSERT INTO screens (cinema_id, name) VALUES
			(1, 'Screen 1'),
			(2, 'Screen 1')`,

		`INSERT INTO movies (title, description, duration, genre, rating, poster_url, language) VALUES
			('Dune', 'Paul Atreides leads a rebellion to restore his family reign on the planet Arrakis.', 155, 'Sci-Fi/Adventure', 8.0, 'https://example.com/dune.jpg', 'English'),
			('The Lion King', 'A young lion prince flees his kingdom only to learn the true meaning of responsibility and bravery.', 118, 'Animation/Adventure', 7.1, 'https://example.com/lion-king.jpg', 'English')`,

		`INSERT INTO shows (movie_id, screen_id, start_time, price) VALUES
			(1, 1, '2026-09-15 18:00:00+00', 350),
			(1, 2, '2026-09-15 20:00:00+00', 300),
			(2, 1, '2026-09-16 10:00:00+00', 200)`,
	}

	for _, stmt := range stmts {
		_, err := app.DB.Exec(ctx, stmt)
		require.NoError(t, err)
	}
}
