package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// SunTimesResult is the outcome of a sun times computation for one date at
// one location.
//
// It is either SunTimes, if the sun rises and sets on that date, or a
// PolarCondition, if it does not.
type SunTimesResult interface {
	isSunTimesResult()
}

// SunTimes represents the solar noon, nadir, sunrise and sunset times of a
// date, all in UTC.
type SunTimes struct {
	SolarNoon time.Time
	Nadir     time.Time
	Sunrise   time.Time
	Sunset    time.Time
}

// PolarKind is the kind of a polar condition.
type PolarKind string

const (
	// NeverRises means the sun stays below the horizon all day (polar night).
	NeverRises PolarKind = "never_rises"
	// NeverSets means the sun stays above the horizon all day (polar day).
	NeverSets PolarKind = "never_sets"
)

// PolarCondition is the result for a date on which the sun either never rises
// or never sets.
type PolarCondition struct {
	Kind PolarKind
}

func (SunTimes) isSunTimesResult()       {}
func (PolarCondition) isSunTimesResult() {}

func (c PolarCondition) String() string {
	return string(c.Kind)
}

// TimestampFormat is the format in which result timestamps are serialized:
// ISO-8601 in UTC, always with (zero) seconds and the 'Z' suffix.
const TimestampFormat = "2006-01-02T15:04:05Z"

// wireResult is the JSON form of a SunTimesResult.
// Timestamps are null for a polar condition, the error is only present for
// one.
type wireResult struct {
	SolarNoon *string `json:"solarNoon"`
	Nadir     *string `json:"nadir"`
	Sunrise   *string `json:"sunrise"`
	Sunset    *string `json:"sunset"`
	Error     string  `json:"error,omitempty"`
}

// MarshalResult returns the JSON encoding of the given result.
func MarshalResult(r SunTimesResult) ([]byte, error) {
	var w wireResult

	switch r := r.(type) {
	case SunTimes:
		w.SolarNoon = formatTimestamp(r.SolarNoon)
		w.Nadir = formatTimestamp(r.Nadir)
		w.Sunrise = formatTimestamp(r.Sunrise)
		w.Sunset = formatTimestamp(r.Sunset)
	case PolarCondition:
		w.Error = string(r.Kind)
	default:
		return nil, fmt.Errorf("unknown result type %T", r)
	}

	return json.Marshal(w)
}

// UnmarshalResult decodes a result previously encoded by MarshalResult.
func UnmarshalResult(data []byte) (SunTimesResult, error) {
	var w wireResult
	err := json.Unmarshal(data, &w)
	if err != nil {
		return nil, fmt.Errorf("error unmarshaling result (%w)", err)
	}

	if w.Error != "" {
		kind := PolarKind(w.Error)
		if kind != NeverRises && kind != NeverSets {
			return nil, fmt.Errorf("unknown polar condition '%s'", w.Error)
		}
		if w.SolarNoon != nil || w.Nadir != nil || w.Sunrise != nil || w.Sunset != nil {
			return nil, fmt.Errorf("polar condition '%s' with timestamps present", w.Error)
		}
		return PolarCondition{Kind: kind}, nil
	}

	var result SunTimes
	for _, field := range []struct {
		name string
		src  *string
		dst  *time.Time
	}{
		{"solarNoon", w.SolarNoon, &result.SolarNoon},
		{"nadir", w.Nadir, &result.Nadir},
		{"sunrise", w.Sunrise, &result.Sunrise},
		{"sunset", w.Sunset, &result.Sunset},
	} {
		if field.src == nil {
			return nil, fmt.Errorf("field '%s' missing", field.name)
		}
		t, err := time.Parse(TimestampFormat, *field.src)
		if err != nil {
			return nil, fmt.Errorf("field '%s' malformed (%w)", field.name, err)
		}
		*field.dst = t
	}
	return result, nil
}

func formatTimestamp(t time.Time) *string {
	s := t.UTC().Format(TimestampFormat)
	return &s
}
