package reference

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/ja-he/suntimes/internal/model"
	"github.com/ja-he/suntimes/internal/solar"
)

// Deviation is the difference of a reference provider's times from the
// calculated ones (reference minus calculated).
type Deviation struct {
	SolarNoon time.Duration
	Sunrise   time.Duration
	Sunset    time.Duration
}

// Max returns the largest absolute deviation.
func (d Deviation) Max() time.Duration {
	max := time.Duration(0)
	for _, v := range []time.Duration{d.SolarNoon, d.Sunrise, d.Sunset} {
		if v < 0 {
			v = -v
		}
		if v > max {
			max = v
		}
	}
	return max
}

// Entry is the result of a single reference provider.
type Entry struct {
	Provider string
	Result   model.SunTimesResult

	// Deviation is only set if both the calculated and the reference result
	// are sun times.
	Deviation *Deviation
	// Agrees is whether the reference reports the same kind of result as the
	// calculation (both sun times, or the same polar condition).
	Agrees bool
}

// Comparison is the calculated result for a location and date alongside the
// results of reference providers.
type Comparison struct {
	Latitude, Longitude float64
	Date                model.Date

	Calculated model.SunTimesResult
	Geometry   solar.Geometry
	Position   EquatorialPosition

	Entries []Entry
}

// Compare computes the sun times for the given location and date and
// compares them to the results of the given providers, which are queried
// concurrently.
func Compare(ctx context.Context, providers []Provider, latitude, longitude float64, date model.Date) (*Comparison, error) {
	calculated, err := solar.Compute(latitude, longitude, date)
	if err != nil {
		return nil, fmt.Errorf("could not calculate sun times (%w)", err)
	}

	c := &Comparison{
		Latitude:   latitude,
		Longitude:  longitude,
		Date:       date,
		Calculated: calculated,
		Geometry:   solar.GeometryAt(solar.JulianCentury(date)),
		Position:   Meeus(date),
		Entries:    make([]Entry, len(providers)),
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, provider := range providers {
		i, provider := i, provider
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			result, err := provider.SunTimes(latitude, longitude, date)
			if err != nil {
				return fmt.Errorf("provider '%s' failed (%w)", provider.Name(), err)
			}
			log.Debug().
				Str("provider", provider.Name()).
				Dur("took", time.Since(start)).
				Msg("queried reference provider")

			c.Entries[i] = compareEntry(provider.Name(), calculated, result)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return c, nil
}

func compareEntry(name string, calculated, reference model.SunTimesResult) Entry {
	e := Entry{Provider: name, Result: reference}

	switch calc := calculated.(type) {
	case model.SunTimes:
		ref, ok := reference.(model.SunTimes)
		if !ok {
			return e
		}
		e.Agrees = true
		e.Deviation = &Deviation{
			SolarNoon: ref.SolarNoon.Sub(calc.SolarNoon),
			Sunrise:   ref.Sunrise.Sub(calc.Sunrise),
			Sunset:    ref.Sunset.Sub(calc.Sunset),
		}
	case model.PolarCondition:
		ref, ok := reference.(model.PolarCondition)
		e.Agrees = ok && ref.Kind == calc.Kind
	}

	return e
}
