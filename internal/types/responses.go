package types

import (
	"time"

	"github.com/trainlog-dev/trainlog/internal/models"
)

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type PlanResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Date         time.Time `json:"date"`
	Distance     float64   `json:"distance"`
	DistanceUnit string    `json:"distance_unit"`
}

type MemberResponse struct {
	User UserResponse `json:"user"`
	Tier models.Tier  `json:"tier"`
}

type EventResponse struct {
	ID           string    `json:"id"`
	PlanID       string    `json:"plan_id"`
	Name         string    `json:"name"`
	Date         time.Time `json:"date"`
	Distance     float64   `json:"distance"`
	DistanceUnit string    `json:"distance_unit"`
}

type RunResponse struct {
	ID      string    `json:"id"`
	EventID string    `json:"event_id"`
	UserID  *string   `json:"user_id"`
	Date    time.Time `json:"date"`
	Status  string    `json:"status"`
}

func NewUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

func NewPlanResponse(plan models.Plan) PlanResponse {
	return PlanResponse{
		ID:           plan.ID,
		Name:         plan.Name,
		Description:  plan.Description,
		Date:         plan.Date,
		Distance:     plan.Distance,
		DistanceUnit: plan.DistanceUnit,
	}
}

func NewEventResponse(event models.Event) EventResponse {
	return EventResponse{
		ID:           event.ID,
		PlanID:       event.PlanID,
		Name:         event.Name,
		Date:         event.Date,
		Distance:     event.Distance,
		DistanceUnit: event.DistanceUnit,
	}
}

func NewRunResponse(run models.Run) RunResponse {
	return RunResponse{
		ID:      run.ID,
		EventID: run.EventID,
		UserID:  run.UserID,
		Date:    run.Date,
		Status:  run.Status,
	}
}
