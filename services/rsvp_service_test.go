package services

import (
	"errors"
	"testing"

	"undangan.link/models"
)

func TestValidateSubmission_Valid(t *testing.T) {
	submission := RSVPSubmission{
		GuestName: "  Ahmad Fauzi  ",
		Status:    models.RSVPStatusAttending,
		Message:   " Selamat! ",
	}
	if err := ValidateSubmission(&submission); err != nil {
		t.Fatalf("valid submission rejected: %v", err)
	}
	if submission.GuestName != "Ahmad Fauzi" {
		t.Errorf("guest name not trimmed: %q", submission.GuestName)
	}
	if submission.Message != "Selamat!" {
		t.Errorf("message not trimmed: %q", submission.Message)
	}
	if submission.GuestCount != 1 {
		t.Errorf("guest count must default to 1, got %d", submission.GuestCount)
	}
}

func TestValidateSubmission_KeepsExplicitGuestCount(t *testing.T) {
	submission := RSVPSubmission{GuestName: "Ahmad", Status: models.RSVPStatusAttending, GuestCount: 4}
	if err := ValidateSubmission(&submission); err != nil {
		t.Fatal(err)
	}
	if submission.GuestCount != 4 {
		t.Errorf("guest count = %d, want 4", submission.GuestCount)
	}
}

func TestValidateSubmission_UnknownStatus(t *testing.T) {
	submission := RSVPSubmission{GuestName: "Ahmad", Status: models.RSVPStatus("perhaps")}
	err := ValidateSubmission(&submission)
	if !errors.Is(err, ErrRSVPInvalidInput) {
		t.Errorf("unknown status: err = %v, want ErrRSVPInvalidInput", err)
	}
}

func TestValidateSubmission_MissingName(t *testing.T) {
	submission := RSVPSubmission{GuestName: "   ", Status: models.RSVPStatusMaybe}
	err := ValidateSubmission(&submission)
	if !errors.Is(err, ErrRSVPInvalidInput) {
		t.Errorf("blank name: err = %v, want ErrRSVPInvalidInput", err)
	}
}

func TestValidateSubmission_GuestCountCeiling(t *testing.T) {
	submission := RSVPSubmission{GuestName: "Ahmad", Status: models.RSVPStatusAttending, GuestCount: 11}
	err := ValidateSubmission(&submission)
	if !errors.Is(err, ErrRSVPInvalidInput) {
		t.Errorf("oversized party: err = %v, want ErrRSVPInvalidInput", err)
	}
}
