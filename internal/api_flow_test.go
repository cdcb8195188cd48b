//go:build integration_test || all_tests

package internal

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"

	"github.com/iquadra-Harsh/wellness-wizard/internal/auth"
	"github.com/iquadra-Harsh/wellness-wizard/internal/meals"
	"github.com/iquadra-Harsh/wellness-wizard/internal/stats"
	"github.com/iquadra-Harsh/wellness-wizard/internal/users"
	"github.com/iquadra-Harsh/wellness-wizard/internal/workouts"
	"github.com/iquadra-Harsh/wellness-wizard/pkg"
)

func (s *IntegrationTestSuite) doJSON(method, path, token string, body any) (int, []byte) {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		s.Require().NoError(err)
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, suiteServerEndpoint+path, reqBody)
	s.Require().NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(auth.TokenHeader, token)
	}

	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, respBody
}

// registerAndLogin creates a fresh account and returns its session token.
func (s *IntegrationTestSuite) registerAndLogin() (string, int) {
	reg := users.Registration{
		Username: gofakeit.Username() + gofakeit.DigitN(4),
		Email:    gofakeit.Email(),
		Name:     gofakeit.Name(),
		Password: gofakeit.Password(true, true, true, false, false, 12),
	}

	status, body := s.doJSON(http.MethodPost, "/a/register", "", reg)
	s.Require().Equal(http.StatusCreated, status, string(body))

	var user users.User
	s.Require().NoError(json.Unmarshal(body, &user))
	s.Require().NotZero(user.ID)
	s.Require().NotContains(string(body), "password")

	status, body = s.doJSON(http.MethodPost, "/a/login", "", auth.Credentials{
		Username: reg.Username,
		Password: reg.Password,
	})
	s.Require().Equal(http.StatusOK, status, string(body))

	var loginResp auth.LoginResponse
	s.Require().NoError(json.Unmarshal(body, &loginResp))
	s.Require().NotEmpty(loginResp.Token)
	s.Require().Equal(user.ID, loginResp.UserID)

	return loginResp.Token, user.ID
}

func (s *IntegrationTestSuite) TestRegisterLoginLogout() {
	token, _ := s.registerAndLogin()

	status, _ := s.doJSON(http.MethodGet, "/workouts", token, nil)
	s.Equal(http.StatusOK, status)

	status, body := s.doJSON(http.MethodGet, "/a/logout", token, nil)
	s.Require().Equal(http.StatusOK, status)
	s.Equal("logged-out", string(body))

	status, _ = s.doJSON(http.MethodGet, "/workouts", token, nil)
	s.Equal(http.StatusUnauthorized, status)

	status, _ = s.doJSON(http.MethodGet, "/a/logout", token, nil)
	s.Equal(http.StatusUnauthorized, status)
}

func (s *IntegrationTestSuite) TestRegister_duplicateUsername() {
	reg := users.Registration{
		Username: "dup-" + gofakeit.DigitN(6),
		Email:    gofakeit.Email(),
		Password: "secret-pass",
	}
	status, _ := s.doJSON(http.MethodPost, "/a/register", "", reg)
	s.Require().Equal(http.StatusCreated, status)

	reg.Email = gofakeit.Email()
	status, _ = s.doJSON(http.MethodPost, "/a/register", "", reg)
	s.Equal(http.StatusConflict, status)
}

func (s *IntegrationTestSuite) TestLogin_wrongPassword() {
	status, _ := s.doJSON(http.MethodPost, "/a/login", "", auth.Credentials{
		Username: "nobody-" + gofakeit.DigitN(6),
		Password: "whatever",
	})
	s.Equal(http.StatusUnauthorized, status)
}

func (s *IntegrationTestSuite) TestWorkoutsAndStats() {
	token, userID := s.registerAndLogin()
	t := s.T()

	strength := workouts.WorkoutInput{
		Type:        "Upper body",
		WorkoutType: workouts.WorkoutTypeStrength,
		Duration:    45,
		Notes:       "bench day",
		Date:        time.Now().Add(-time.Hour),
		Exercises: []workouts.ExerciseInput{
			{
				Name: "Bench Press",
				Sets: []workouts.SetInput{
					{Reps: 8, Weight: pkg.Ptr(60.0)},
					{Reps: 6, Weight: pkg.Ptr(65.0)},
				},
			},
		},
	}
	status, body := s.doJSON(http.MethodPost, "/workouts", token, strength)
	require.Equal(t, http.StatusCreated, status, string(body))

	var created workouts.Workout
	require.NoError(t, json.Unmarshal(body, &created))
	s.Equal(userID, created.UserID)
	s.Require().Len(created.Exercises, 1)
	s.Require().Len(created.Exercises[0].Sets, 2)
	s.Equal(1, created.Exercises[0].Sets[0].SetNumber)
	s.Equal(2, created.Exercises[0].Sets[1].SetNumber)

	cardio := workouts.WorkoutInput{
		Type:           "Run",
		WorkoutType:    workouts.WorkoutTypeCardio,
		Duration:       30,
		Distance:       pkg.Ptr(5.2),
		CaloriesBurned: pkg.Ptr(320),
		Date:           time.Now().Add(-2 * time.Hour),
	}
	status, body = s.doJSON(http.MethodPost, "/workouts", token, cardio)
	require.Equal(t, http.StatusCreated, status, string(body))

	status, body = s.doJSON(http.MethodGet, "/workouts", token, nil)
	require.Equal(t, http.StatusOK, status)
	var list workouts.ListResponse
	require.NoError(t, json.Unmarshal(body, &list))
	s.Equal(2, list.Total)
	s.Equal("Upper body", list.Workouts[0].Type)

	status, body = s.doJSON(http.MethodGet, "/stats/workouts?days=7", token, nil)
	require.Equal(t, http.StatusOK, status)
	var workoutStats stats.WorkoutStats
	require.NoError(t, json.Unmarshal(body, &workoutStats))
	s.Equal(2, workoutStats.TotalWorkouts)
	s.Equal(75, workoutStats.TotalDuration)
	s.Equal(320, workoutStats.TotalCalories)
	s.Equal(38, workoutStats.AvgDuration)

	// another user sees none of it
	otherToken, _ := s.registerAndLogin()
	status, body = s.doJSON(http.MethodGet, "/workouts/"+strconv.Itoa(created.ID), otherToken, nil)
	s.Equal(http.StatusNotFound, status, string(body))
}

func (s *IntegrationTestSuite) TestMealsAndStats() {
	token, _ := s.registerAndLogin()
	t := s.T()

	for _, in := range []meals.MealInput{
		{Type: "breakfast", FoodItems: "oats, banana", Calories: 400, Protein: pkg.Ptr(15.0), Carbs: pkg.Ptr(70.0), Fat: pkg.Ptr(15.0), Date: time.Now()},
		{Type: "lunch", FoodItems: "chicken, rice", Calories: 600, Protein: pkg.Ptr(45.0), Carbs: pkg.Ptr(30.0), Fat: pkg.Ptr(25.0), Date: time.Now()},
	} {
		status, body := s.doJSON(http.MethodPost, "/meals", token, in)
		require.Equal(t, http.StatusCreated, status, string(body))
	}

	status, body := s.doJSON(http.MethodGet, "/stats/meals", token, nil)
	require.Equal(t, http.StatusOK, status)
	var mealStats stats.MealStats
	require.NoError(t, json.Unmarshal(body, &mealStats))
	s.Equal(2, mealStats.TotalMeals)
	s.Equal(1000, mealStats.TotalCalories)
	s.Equal(500, mealStats.AvgCalories)
	s.Equal(stats.MacroBreakdown{Protein: 30, Carbs: 50, Fat: 20}, mealStats.MacroBreakdown)
}

func (s *IntegrationTestSuite) TestInsightsGenerate_disabledWithoutKey() {
	token, _ := s.registerAndLogin()

	status, _ := s.doJSON(http.MethodPost, "/insights/generate", token, nil)
	s.Equal(http.StatusServiceUnavailable, status)

	status, body := s.doJSON(http.MethodGet, "/insights", token, nil)
	s.Equal(http.StatusOK, status)
	s.JSONEq("[]", string(body))
}

func (s *IntegrationTestSuite) TestMCP_requiresSecret() {
	req, err := http.NewRequest(http.MethodPost, suiteServerEndpoint+"/mcp", bytes.NewBufferString("{}"))
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-MCP-Secret", "wrong")

	resp, err := s.httpClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestHealth() {
	status, body := s.doJSON(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, status, string(body))
	s.Contains(string(body), `"postgres":"ok"`)
}
