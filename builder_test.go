package guidepost

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/petrijr/guidepost/pkg/dom"
)

func TestBuilderBuildsStepsInOrder(t *testing.T) {
	doc := dom.MustParse(`<html><body></body></html>`)

	tour, err := New("onboarding", doc).
		Step(StepOptions{ID: "first"}).
		Step(StepOptions{}). // gets a generated id
		Step(StepOptions{ID: "last"}).
		Build(WithTooltipFactory(NewHeadlessTooltipFactory()))
	require.NoError(t, err)
	require.Equal(t, "onboarding", tour.Name())

	steps := tour.Steps()
	require.Len(t, steps, 3)
	require.Equal(t, "first", steps[0].ID())
	require.Equal(t, "step-0", steps[1].ID())
	require.Equal(t, "last", steps[2].ID())
}

func TestBuilderRejectsDuplicateIDs(t *testing.T) {
	doc := dom.MustParse(`<html><body></body></html>`)

	_, err := New("onboarding", doc).
		Step(StepOptions{ID: "dup"}).
		Step(StepOptions{ID: "dup"}).
		Build()
	require.Error(t, err)
	require.Contains(t, err.Error(), `share id "dup"`)
}

func TestBuilderRejectsButtonConflict(t *testing.T) {
	doc := dom.MustParse(`<html><body></body></html>`)

	_, err := New("onboarding", doc).
		Step(StepOptions{Buttons: []Button{{
			Text:   "Next",
			Action: func() {},
			Events: map[string]dom.Listener{"click": func(dom.Event) {}},
		}}}).
		Build()
	require.ErrorIs(t, err, ErrButtonConflict)
}

func TestMustBuildPanicsOnError(t *testing.T) {
	doc := dom.MustParse(`<html><body></body></html>`)

	require.Panics(t, func() {
		New("onboarding", doc).
			Step(StepOptions{ID: "dup"}).
			Step(StepOptions{ID: "dup"}).
			MustBuild()
	})
}
