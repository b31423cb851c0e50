// example_test.go
package guidepost_test

import (
	"context"
	"fmt"
	"log"

	"github.com/petrijr/guidepost"
	"github.com/petrijr/guidepost/pkg/dom"
)

// ExampleTourBuilder shows how to define a tour, attach it to a document and
// walk through it with the headless positioning engine.
func ExampleTourBuilder() {
	doc := dom.MustParse(`<html><body>
		<nav class="sidebar"></nav>
	</body></html>`)

	tour, err := guidepost.New("onboarding", doc).
		Step(guidepost.StepOptions{
			ID:    "welcome",
			Title: "Welcome",
			Text:  guidepost.Text("Let's look around."),
		}).
		Step(guidepost.StepOptions{
			ID:       "sidebar",
			Text:     guidepost.Text("Navigation lives here."),
			AttachTo: guidepost.ParseAttach(".sidebar right"),
		}).
		Build(guidepost.WithTooltipFactory(guidepost.NewHeadlessTooltipFactory()))
	if err != nil {
		log.Fatal(err)
	}

	tour.On(guidepost.EventActive, func(ev guidepost.Event) {
		fmt.Println("active:", ev.StepID)
	})

	ctx := context.Background()
	if err := tour.Start(ctx); err != nil {
		log.Fatal(err)
	}
	if err := tour.Next(ctx); err != nil {
		log.Fatal(err)
	}
	tour.Complete()

	fmt.Println("done:", tour.Done())

	// Output:
	// active: welcome
	// active: sidebar
	// done: true
}

// ExampleParseAttach shows the "<selector> <placement>" shorthand.
func ExampleParseAttach() {
	spec := guidepost.ParseAttach(".sidebar right")
	fmt.Println(spec.Selector, spec.On)

	// Anything that does not match the grammar yields an empty descriptor
	// and the step renders centered.
	bad := guidepost.ParseAttach(".sidebar sideways")
	fmt.Println(bad.Kind == guidepost.AttachNone)

	// Output:
	// .sidebar right
	// true
}
