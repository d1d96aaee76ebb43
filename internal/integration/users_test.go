package integration_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type UserTestSuite struct {
	BaseSuite
}

func TestUserSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	suite.Run(t, new(UserTestSuite))
}

func (s *UserTestSuite) TestUpsertUser() {
	scenarios := []Scenario{
		{
			Name:           "creates a new user",
			Method:         "POST",
			URL:            "/users",
			Body:           strings.NewReader(`{"name": "Jane Doe", "email": "jane@example.com"}`),
			ExpectedStatus: http.StatusCreated,
			ExpectedResponse: `{
				"id": 2,
				"name": "Jane Doe",
				"email": "jane@example.com"
			}`,
		},
		{
			Name:           "returns the existing user and refreshes the name",
			Method:         "POST",
			URL:            "/users",
			Body:           strings.NewReader(`{"name": "Johnny Doe", "email": "john@example.com"}`),
			ExpectedStatus: http.StatusOK,
			ExpectedResponse: `{
				"id": 1,
				"name": "Johnny Doe",
				"email": "john@example.com"
			}`,
		},
		{
			Name:           "returns 422 for an invalid email",
			Method:         "POST",
			URL:            "/users",
			Body:           strings.NewReader(`{"name": "Jane Doe", "email": "not-an-email"}`),
			ExpectedStatus: http.StatusUnprocessableEntity,
			ExpectedResponse: `{
				"code": "INVALID_REQUEST",
				"message": "The request contains invalid fields",
				"validationErrors": [
					{"field": "Email", "issue": "must be a valid email address"}
				]
			}`,
		},
		{
			Name:           "returns 400 for a malformed body",
			Method:         "POST",
			URL:            "/users",
			Body:           strings.NewReader(`{"name": `),
			ExpectedStatus: http.StatusBadRequest,
			ExpectedResponse: `{
				"code": "INVALID_REQUEST",
				"message": "body contains badly-formed JSON"
			}`,
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}

func (s *UserTestSuite) TestGetUserBookings() {
	scenarios := []Scenario{
		{
			Name:           "returns an empty list for a user without bookings",
			Method:         "GET",
			URL:            "/users/1/bookings",
			ExpectedStatus: http.StatusOK,
			ExpectedResponse: `{
				"bookings": []
			}`,
		},
		{
			Name:           "returns the booking history",
			Method:         "GET",
			URL:            "/users/1/bookings",
			ExpectedStatus: http.StatusOK,
			ExpectedResponse: `{
				"bookings": [
					{
						"bookingId": 1,
						"movieTitle": "Dune",
						"cinemaName": "PVR Juhu",
						"screenName": "Screen 1",
						"showTime": "2026-09-15T18:00:00Z",
						"seats": ["B5", "B6"],
						"totalAmount": "700"
					}
				]
			}`,
			BeforeTestFunc: func(t testing.TB, app *TestApp) {
				createBooking(t, app, 1, 1, []string{"B5", "B6"})
			},
		},
		{
			Name:           "returns 404 for an unknown user",
			Method:         "GET",
			URL:            "/users/999/bookings",
			ExpectedStatus: http.StatusNotFound,
			ExpectedResponse: `{
				"code": "NOT_FOUND",
				"message": "The requested resource not found"
			}`,
		},
	}

	for _, scenario := range scenarios {
		scenario.Run(s.T(), s.app)
	}
}
