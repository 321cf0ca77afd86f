// Package parse turns a free-form /ringfit command into a workout payload.
package parse

import (
	"errors"
	"regexp"
	"strconv"

	"github.com/le-kalmique/ringfit-challenge/internal/units"
)

// ErrFormatInvalid means the text does not match the entry grammar.
// Nothing is stored; the user corrects and resubmits.
var ErrFormatInvalid = errors.New("invalid entry format")

// Workout is the parsed shape of one entry, before persistence. Duration
// keeps its h/m/s decomposition for confirmation messages; DistanceKm is
// already canonical and rounded.
type Workout struct {
	Hours      int
	Minutes    int
	Seconds    int
	EnergyKcal float64
	DistanceKm float64
	Imperial   bool // distance was given in miles
}

// TotalSeconds returns the normalized duration.
func (w Workout) TotalSeconds() int64 {
	return units.TotalSeconds(w.Hours, w.Minutes, w.Seconds)
}

// Grammar: optional h/m/s components, then a required energy value with a
// kcal/cal unit and a required distance value with a km/mi unit,
// comma/space separated.
var entryRx = regexp.MustCompile(
	`(?:(?P<hours>\d+)h)?\s?(?:(?P<minutes>\d+)m)?\s?(?:(?P<seconds>\d+)s)?,?\s?` +
		`(?P<energy>\d+(?:\.\d+)?)\s?(?P<energyUnit>kcal|cal),?\s?` +
		`(?P<distance>[\d.]+)\s?(?P<distanceUnit>km|mi)`)

var entryGroups = entryRx.SubexpNames()

// Command extracts one workout from a command string. All duration
// components are optional and default to zero; energy and distance are
// mandatory and their absence yields ErrFormatInvalid.
func Command(text string) (Workout, error) {
	m := entryRx.FindStringSubmatch(text)
	if m == nil {
		return Workout{}, ErrFormatInvalid
	}

	fields := make(map[string]string, len(entryGroups))
	for i, name := range entryGroups {
		if name != "" {
			fields[name] = m[i]
		}
	}

	var w Workout
	w.Hours = optInt(fields["hours"])
	w.Minutes = optInt(fields["minutes"])
	w.Seconds = optInt(fields["seconds"])

	kcal, err := strconv.ParseFloat(fields["energy"], 64)
	if err != nil {
		return Workout{}, ErrFormatInvalid
	}
	w.EnergyKcal = kcal

	dist, err := strconv.ParseFloat(fields["distance"], 64)
	if err != nil {
		return Workout{}, ErrFormatInvalid
	}
	if fields["distanceUnit"] == "mi" {
		dist = units.MilesToKm(dist)
		w.Imperial = true
	}
	w.DistanceKm = units.Round2(dist)

	return w, nil
}

func optInt(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}
