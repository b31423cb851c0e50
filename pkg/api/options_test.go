package api

import (
	"errors"
	"testing"

	"github.com/petrijr/guidepost/pkg/dom"
)

func TestValidateRejectsActionClickConflict(t *testing.T) {
	opts := StepOptions{
		Buttons: []Button{
			{Text: "Next", Action: func() {}, Events: map[string]dom.Listener{
				"click": func(dom.Event) {},
			}},
		},
	}
	err := opts.Validate()
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if !errors.Is(err, ErrButtonConflict) {
		t.Fatalf("error should wrap ErrButtonConflict, got %v", err)
	}
}

func TestValidateAllowsActionWithOtherEvents(t *testing.T) {
	opts := StepOptions{
		Buttons: []Button{
			{Text: "Next", Action: func() {}, Events: map[string]dom.Listener{
				"mouseover": func(dom.Event) {},
			}},
			{Text: "Back", Events: map[string]dom.Listener{
				"click": func(dom.Event) {},
			}},
		},
	}
	if err := opts.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateZeroOptions(t *testing.T) {
	if err := (StepOptions{}).Validate(); err != nil {
		t.Fatalf("zero options should validate, got %v", err)
	}
}
