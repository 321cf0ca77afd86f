// Package ocr reconstructs a workout from the labeled text fragments a
// text-detection service produces for a photographed workout summary.
package ocr

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/le-kalmique/ringfit-challenge/internal/parse"
	"github.com/le-kalmique/ringfit-challenge/internal/units"
)

// ErrExtractionFailed means a required fragment is missing or malformed.
// Extraction is all-or-nothing; there is no partial record.
var ErrExtractionFailed = errors.New("could not extract workout from photo")

// BoundingBox is the normalized geometry of a detected text span.
type BoundingBox struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Fragment is one recognized text span with its position.
type Fragment struct {
	Text string
	Box  BoundingBox
}

// Selector picks the fragment to use for a field when several candidates
// exist. The default takes the first match in the collection's given
// order; a geometry-aware strategy can replace it without touching the
// extractor.
type Selector interface {
	Select(fragments []Fragment, match func(text string) bool) (Fragment, bool)
}

// FirstMatch is the default Selector: first fragment in given order whose
// text satisfies the predicate.
type FirstMatch struct{}

func (FirstMatch) Select(fragments []Fragment, match func(text string) bool) (Fragment, bool) {
	for _, f := range fragments {
		if match(f.Text) {
			return f, true
		}
	}
	return Fragment{}, false
}

var (
	// The screen renders duration as "N hr. N min. N sec"; recognizers
	// regularly read the digit 0 as the letter O, fixed up before parsing.
	timeRx     = regexp.MustCompile(`(?i)(?:(\d+) ?hr\.? ?)?(?:(\d+) ?min\.? ?)?(?:(\d+) ?sec\.?)?`)
	caloriesRx = regexp.MustCompile(`(?i)^(\d+(?:\. ?\d+)?)\s*(?:Cal|kcal)$`)
	// RE2 has no lookahead; mi($|[^n]) keeps "mi" from matching "min".
	distanceRx = regexp.MustCompile(`(\d+(?:\. ?\d+)?)\s*(?:mi(?:$|[^n])\.?|km\.?)`)
	distUnitRx = regexp.MustCompile(`(?i)mi\.?|km\.?`)
)

// Extractor turns fragment sets into workout payloads.
type Extractor struct {
	selector Selector
}

// New returns an Extractor with the given fragment selector, defaulting
// to FirstMatch when nil.
func New(selector Selector) *Extractor {
	if selector == nil {
		selector = FirstMatch{}
	}
	return &Extractor{selector: selector}
}

// Extract reconstructs one workout from an unordered fragment set.
// The time fragment is the one containing "sec"; energy must fully match
// the calories pattern; distance is a number followed by mi or km. A
// missing fragment or a malformed value fails the whole extraction.
func (e *Extractor) Extract(fragments []Fragment) (parse.Workout, error) {
	timeFrag, ok := e.selector.Select(fragments, func(s string) bool {
		return strings.Contains(s, "sec")
	})
	if !ok {
		return parse.Workout{}, fmt.Errorf("%w: no time fragment", ErrExtractionFailed)
	}
	calFrag, ok := e.selector.Select(fragments, caloriesRx.MatchString)
	if !ok {
		return parse.Workout{}, fmt.Errorf("%w: no calories fragment", ErrExtractionFailed)
	}
	distFrag, ok := e.selector.Select(fragments, distanceRx.MatchString)
	if !ok {
		return parse.Workout{}, fmt.Errorf("%w: no distance fragment", ErrExtractionFailed)
	}

	var w parse.Workout

	fixed := strings.ReplaceAll(timeFrag.Text, "O", "0")
	tm := timeRx.FindStringSubmatch(fixed)
	if tm == nil {
		return parse.Workout{}, fmt.Errorf("%w: unreadable time %q", ErrExtractionFailed, timeFrag.Text)
	}
	var err error
	if w.Hours, err = optComponent(tm[1]); err != nil {
		return parse.Workout{}, fmt.Errorf("%w: unreadable hours %q", ErrExtractionFailed, tm[1])
	}
	if w.Minutes, err = optComponent(tm[2]); err != nil {
		return parse.Workout{}, fmt.Errorf("%w: unreadable minutes %q", ErrExtractionFailed, tm[2])
	}
	if w.Seconds, err = optComponent(tm[3]); err != nil {
		return parse.Workout{}, fmt.Errorf("%w: unreadable seconds %q", ErrExtractionFailed, tm[3])
	}

	cm := caloriesRx.FindStringSubmatch(calFrag.Text)
	kcal, err := strconv.ParseFloat(stripSpaces(cm[1]), 64)
	if err != nil {
		return parse.Workout{}, fmt.Errorf("%w: unreadable calories %q", ErrExtractionFailed, calFrag.Text)
	}
	w.EnergyKcal = kcal

	dm := distanceRx.FindStringSubmatch(distFrag.Text)
	dist, err := strconv.ParseFloat(stripSpaces(dm[1]), 64)
	if err != nil {
		return parse.Workout{}, fmt.Errorf("%w: unreadable distance %q", ErrExtractionFailed, distFrag.Text)
	}
	unit := distUnitRx.FindString(distFrag.Text)
	if strings.Contains(strings.ToLower(unit), "mi") {
		dist = units.MilesToKm(dist)
		w.Imperial = true
	}
	w.DistanceKm = units.Round2(dist)

	return w, nil
}

func optComponent(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}
