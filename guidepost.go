package guidepost

import (
	"database/sql"

	"github.com/petrijr/guidepost/internal/progress"
	"github.com/petrijr/guidepost/internal/tooltip"
	"github.com/petrijr/guidepost/pkg/api"
)

// Re-export key types so users don't need to dig into pkg/api.

type (
	Step                = api.Step
	StepOptions         = api.StepOptions
	Button              = api.Button
	AdvanceOn           = api.AdvanceOn
	AttachSpec          = api.AttachSpec
	AttachKind          = api.AttachKind
	ResolvedAttach      = api.ResolvedAttach
	TextSource          = api.TextSource
	Placement           = api.Placement
	Event               = api.Event
	EventType           = api.EventType
	Handler             = api.Handler
	Emitter             = api.Emitter
	Sequence            = api.Sequence
	TooltipHandle       = api.TooltipHandle
	TooltipFactory      = api.TooltipFactory
	TooltipOptions      = api.TooltipOptions
	TooltipState        = api.TooltipState
	ProgressStore       = api.ProgressStore
	ProgressRecord      = api.ProgressRecord
	ProgressFilter      = api.ProgressFilter
	LoggingSubscriber   = api.LoggingSubscriber
	TourMetrics         = api.TourMetrics
	TourMetricsSnapshot = api.TourMetricsSnapshot
)

// Re-export the tagged-variant constructors and the shorthand parser.

var (
	Text           = api.Text
	TextLines      = api.TextLines
	TextFragment   = api.TextFragment
	TextFunc       = api.TextFunc
	AttachElement  = api.AttachElement
	AttachSelector = api.AttachSelector
	AttachChain    = api.AttachChain
	ParseAttach    = api.ParseAttach
	ParsePlacement = api.ParsePlacement

	NewLoggingSubscriber = api.NewLoggingSubscriber
)

// Re-export placements and event types for convenience.

const (
	PlacementAuto   = api.PlacementAuto
	PlacementTop    = api.PlacementTop
	PlacementBottom = api.PlacementBottom
	PlacementLeft   = api.PlacementLeft
	PlacementRight  = api.PlacementRight

	EventBeforeShow = api.EventBeforeShow
	EventShow       = api.EventShow
	EventBeforeHide = api.EventBeforeHide
	EventHide       = api.EventHide
	EventDestroy    = api.EventDestroy
	EventCancel     = api.EventCancel
	EventComplete   = api.EventComplete
	EventStart      = api.EventStart
	EventActive     = api.EventActive

	AttachNone       = api.AttachNone
	AttachToElement  = api.AttachToElement
	AttachBySelector = api.AttachBySelector
	AttachByChain    = api.AttachByChain
)

// Re-export the sentinel errors callers are expected to test against.

var (
	ErrNoTooltipFactory = api.ErrNoTooltipFactory
	ErrButtonConflict   = api.ErrButtonConflict
	ErrStepNotFound     = api.ErrStepNotFound
	ErrTourDone         = api.ErrTourDone
)

// Constructors that wrap the internal packages so external callers never
// need to import them.

// NewHeadlessTooltipFactory returns the reference positioning engine: it
// tracks visibility and does no placement math. The default choice for
// tests and non-visual embedding.
func NewHeadlessTooltipFactory() TooltipFactory {
	return tooltip.Headless()
}

// NewMemoryProgressStore returns a ProgressStore kept entirely in memory.
func NewMemoryProgressStore() ProgressStore {
	return progress.NewMemoryStore()
}

// NewSQLiteProgressStore returns a ProgressStore that persists records in a
// SQLite database, initializing its schema on construction.
//
// Typical usage:
//
//	db, _ := sql.Open("sqlite", "file:guidepost.db")
//	store, err := guidepost.NewSQLiteProgressStore(db)
func NewSQLiteProgressStore(db *sql.DB) (ProgressStore, error) {
	return progress.NewSQLiteStore(db)
}
