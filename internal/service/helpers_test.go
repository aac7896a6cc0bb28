package service

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"taskflow-api/internal/response"
)

// errCode returns the AppError code of err, or "" when err is not an AppError
func errCode(err error) string {
	var appErr *response.AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

func assertErrCode(t *testing.T, op string, err error, want string) {
	t.Helper()
	if want == "" {
		if err != nil {
			t.Fatalf("%s() unexpected error = %v", op, err)
		}
		return
	}
	if err == nil {
		t.Fatalf("%s() error = nil, want %s", op, want)
	}
	if got := errCode(err); got != want {
		t.Fatalf("%s() error code = %v, want %v (err: %v)", op, got, want, err)
	}
}

func repositoryNotFound() error {
	return gorm.ErrRecordNotFound
}
