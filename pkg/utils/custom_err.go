package utils

import "errors"

var (
	ErrItineraryNotFound  = errors.New("itinerary not found")
	ErrTouristNotFound    = errors.New("tourist not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrContactNotFound    = errors.New("emergency contact not found")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrForbidden          = errors.New("forbidden")
	ErrPlannerFailure     = errors.New("planner request failed")
	ErrPlanNotJSON        = errors.New("planner response is not valid JSON")
	ErrIncompletePlan     = errors.New("planner returned an incomplete plan")
	ErrDatabaseError      = errors.New("database error")
)
