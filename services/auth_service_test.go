package services_test

import (
	"errors"
	"testing"

	"github.com/jyotsna-57/fitnesstracker/services"
	"github.com/jyotsna-57/fitnesstracker/utils"
)

const testSecret = "test-secret"

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := services.NewAuthService(db, testSecret)

	if err := svc.Register("alex", "hunter2", "Alex"); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, err := svc.Login("alex", "hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := utils.ParseUserID(token, testSecret); err != nil {
		t.Errorf("issued token does not parse: %v", err)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := services.NewAuthService(db, testSecret)

	if err := svc.Register("alex", "hunter2", "Alex"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.Register("alex", "other", "Other Alex"); !errors.Is(err, services.ErrUsernameTaken) {
		t.Fatalf("duplicate register: want ErrUsernameTaken, got %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	svc := services.NewAuthService(db, testSecret)

	if err := svc.Register("alex", "hunter2", "Alex"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login("alex", "wrong"); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Errorf("wrong password: want ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login("nobody", "hunter2"); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Errorf("unknown user: want ErrInvalidCredentials, got %v", err)
	}
}
