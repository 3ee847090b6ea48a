package keyring

import (
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestSetAndGetAppPassword(t *testing.T) {
	gokeyring.MockInit()

	err := SetAppPassword("hunter2")
	if err != nil {
		t.Fatalf("SetAppPassword() failed: %v", err)
	}

	got, err := GetAppPassword()
	if err != nil {
		t.Fatalf("GetAppPassword() failed: %v", err)
	}
	if got != "hunter2" {
		t.Errorf("GetAppPassword() = %q, want %q", got, "hunter2")
	}
}

func TestSetAppPasswordEmpty(t *testing.T) {
	gokeyring.MockInit()

	if err := SetAppPassword(""); err == nil {
		t.Error("SetAppPassword(\"\") should return an error")
	}
}

func TestGetAppPasswordNotFound(t *testing.T) {
	gokeyring.MockInit()

	_ = DeleteAppPassword()

	_, err := GetAppPassword()
	if err != ErrNotFound {
		t.Errorf("GetAppPassword() error = %v, want %v", err, ErrNotFound)
	}
}

func TestDeleteAppPassword(t *testing.T) {
	gokeyring.MockInit()

	if err := SetAppPassword("hunter2"); err != nil {
		t.Fatalf("SetAppPassword() failed: %v", err)
	}
	if err := DeleteAppPassword(); err != nil {
		t.Fatalf("DeleteAppPassword() failed: %v", err)
	}

	_, err := GetAppPassword()
	if err != ErrNotFound {
		t.Errorf("after delete, GetAppPassword() error = %v, want %v", err, ErrNotFound)
	}
}

func TestDeleteAppPasswordNotFound(t *testing.T) {
	gokeyring.MockInit()

	_ = DeleteAppPassword()

	if err := DeleteAppPassword(); err != ErrNotFound {
		t.Errorf("DeleteAppPassword() error = %v, want %v", err, ErrNotFound)
	}
}
