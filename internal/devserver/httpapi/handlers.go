package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/gymbro/internal/client/models"
)

func bind(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return newHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	return nil
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) signup(c echo.Context) error {
	var req models.SignupRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	token, user, err := s.users.Signup(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, models.AuthResponse{Token: token, User: user.Public()})
}

func (s *Server) login(c echo.Context) error {
	var req models.LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	token, user, err := s.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.AuthResponse{Token: token, User: user.Public()})
}

func (s *Server) profile(c echo.Context) error {
	user, err := s.users.Get(c.Request().Context(), currentUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.UserResponse{User: user.Public()})
}

func (s *Server) updateProfile(c echo.Context) error {
	var req models.ProfileUpdate
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := s.users.UpdateProfile(c.Request().Context(), currentUserID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.UserResponse{User: user.Public()})
}

func (s *Server) updateGoals(c echo.Context) error {
	var req models.Goals
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := s.users.UpdateGoals(c.Request().Context(), currentUserID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.UserResponse{User: user.Public()})
}

func (s *Server) progress(c echo.Context) error {
	ctx := c.Request().Context()
	id := currentUserID(c)

	user, err := s.users.Get(ctx, id)
	if err != nil {
		return err
	}
	p, err := s.activity.Progress(ctx, id, user.Goals)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.ProgressResponse{Progress: p})
}

func (s *Server) streaks(c echo.Context) error {
	st, err := s.activity.Streaks(c.Request().Context(), currentUserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.StreaksResponse{Streaks: st})
}

func logged(c echo.Context, what string) error {
	return c.JSON(http.StatusCreated, models.MessageResponse{Message: what + " logged"})
}

func (s *Server) trackFood(c echo.Context) error {
	var req models.FoodEntry
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := s.activity.TrackFood(c.Request().Context(), currentUserID(c), req); err != nil {
		return err
	}
	return logged(c, "Food")
}

func (s *Server) trackWater(c echo.Context) error {
	var req models.WaterEntry
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := s.activity.TrackWater(c.Request().Context(), currentUserID(c), req); err != nil {
		return err
	}
	return logged(c, "Water")
}

func (s *Server) trackSleep(c echo.Context) error {
	var req models.SleepEntry
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := s.activity.TrackSleep(c.Request().Context(), currentUserID(c), req); err != nil {
		return err
	}
	return logged(c, "Sleep")
}

func (s *Server) trackWorkout(c echo.Context) error {
	var req models.WorkoutEntry
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := s.activity.TrackWorkout(c.Request().Context(), currentUserID(c), req); err != nil {
		return err
	}
	return logged(c, "Workout")
}

func (s *Server) trackJunk(c echo.Context) error {
	var req models.JunkEntry
	if err := bind(c, &req); err != nil {
		return err
	}
	if err := s.activity.TrackJunk(c.Request().Context(), currentUserID(c), req); err != nil {
		return err
	}
	return logged(c, "Junk food")
}
