package engine

import (
	"errors"
	"strings"
	"testing"
)

func TestStageErrorUnwrap(t *testing.T) {
	cause := errors.New("backend down")
	var err error = &StageError{Stage: "create", Err: cause}

	if !errors.Is(err, ErrStageExecution) {
		t.Error("StageError should match ErrStageExecution")
	}
	if !errors.Is(err, cause) {
		t.Error("StageError should match its cause")
	}
	if errors.Is(err, ErrExtraction) {
		t.Error("StageError should not match ErrExtraction")
	}
	want := "stage execution failed: create stage: backend down"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	var se *StageError
	if !errors.As(err, &se) || se.Stage != "create" {
		t.Errorf("errors.As StageError = %+v", se)
	}
}

func TestConfigError(t *testing.T) {
	err := ConfigError("unsupported platform %q", "TikTok")
	if !errors.Is(err, ErrConfiguration) {
		t.Fatal("ConfigError should wrap ErrConfiguration")
	}
	if !strings.Contains(err.Error(), `unsupported platform "TikTok"`) {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestVideoRecordFailed(t *testing.T) {
	if (VideoRecord{Transcript: "x"}).Failed() {
		t.Error("record without error should not be failed")
	}
	if !(VideoRecord{Error: "boom"}).Failed() {
		t.Error("record with error should be failed")
	}
}
