package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"taskflow-api/internal/response"
)

func notFound(entity string) error {
	return response.NewNotFoundError(entity+" not found", "")
}

func internalError(message string, err error) error {
	return response.NewInternalError(message, err.Error())
}

// lookupError maps a repository read error for entity to an AppError
func lookupError(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(entity)
	}
	return internalError("Failed to fetch "+strings.ToLower(entity), err)
}

// writeError maps a repository write error; a vanished row is NotFound
func writeError(err error, entity, action string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound(entity)
	}
	return internalError("Failed to "+action+" "+strings.ToLower(entity), err)
}

// passthrough keeps AppErrors raised inside a transaction and wraps anything else
func passthrough(err error, message string) error {
	var appErr *response.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return internalError(message, err)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
