// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"time"

	"github.com/aclements/go-plotlayout/span"
)

// DateTimeBreaks places breaks at calendar-aligned instants. Values
// are seconds since the Unix epoch.
type DateTimeBreaks struct {
	// Location is the time zone breaks are aligned in. nil means
	// UTC.
	Location *time.Location
}

type timeStep struct {
	d      time.Duration // fixed-length steps
	months int           // calendar steps
	layout string
}

const (
	day  = 24 * time.Hour
	week = 7 * day
)

var timeSteps = []timeStep{
	{time.Second, 0, "15:04:05"},
	{2 * time.Second, 0, "15:04:05"},
	{5 * time.Second, 0, "15:04:05"},
	{10 * time.Second, 0, "15:04:05"},
	{15 * time.Second, 0, "15:04:05"},
	{30 * time.Second, 0, "15:04:05"},
	{time.Minute, 0, "15:04"},
	{2 * time.Minute, 0, "15:04"},
	{5 * time.Minute, 0, "15:04"},
	{10 * time.Minute, 0, "15:04"},
	{15 * time.Minute, 0, "15:04"},
	{30 * time.Minute, 0, "15:04"},
	{time.Hour, 0, "15:04"},
	{3 * time.Hour, 0, "15:04"},
	{6 * time.Hour, 0, "15:04"},
	{12 * time.Hour, 0, "Jan 2 15:04"},
	{day, 0, "Jan 2"},
	{2 * day, 0, "Jan 2"},
	{week, 0, "Jan 2"},
	{0, 1, "Jan 2006"},
	{0, 3, "Jan 2006"},
	{0, 6, "Jan 2006"},
	{0, 12, "2006"},
	{0, 24, "2006"},
	{0, 60, "2006"},
	{0, 120, "2006"},
	{0, 240, "2006"},
	{0, 600, "2006"},
	{0, 1200, "2006"},
}

// seconds returns the approximate length of s in seconds.
func (s timeStep) seconds() float64 {
	if s.months > 0 {
		return float64(s.months) * 30.436875 * 86400
	}
	return s.d.Seconds()
}

func (g DateTimeBreaks) loc() *time.Location {
	if g.Location == nil {
		return time.UTC
	}
	return g.Location
}

func (g DateTimeBreaks) GenerateBreaks(domain span.Span, targetCount int) Breaks {
	if targetCount < 1 {
		targetCount = 1
	}
	var step *timeStep
	for i := range timeSteps {
		if domain.Len()/timeSteps[i].seconds() < float64(targetCount) {
			step = &timeSteps[i]
			break
		}
	}
	if step == nil || domain.Len() < float64(targetCount) {
		// Too long or too short for calendar steps.
		b := LinearBreaks{}.GenerateBreaks(domain, targetCount)
		for i, v := range b.Domain {
			b.Labels[i] = g.Format(v)
		}
		return b
	}

	var b Breaks
	for _, t := range g.instants(domain, *step) {
		v := float64(t.Unix()) + float64(t.Nanosecond())/1e9
		b.add(v, v, t.Format(step.layout))
	}
	return b
}

// instants returns the instants of step within domain.
func (g DateTimeBreaks) instants(domain span.Span, step timeStep) []time.Time {
	loc := g.loc()
	sec, frac := math.Modf(domain.Lo)
	lo := time.Unix(int64(sec), int64(frac*1e9)).In(loc)
	hi := domain.Hi
	in := func(t time.Time) bool {
		v := float64(t.Unix()) + float64(t.Nanosecond())/1e9
		return v <= hi
	}
	dayStart := time.Date(lo.Year(), lo.Month(), lo.Day(), 0, 0, 0, 0, loc)

	var res []time.Time
	switch {
	case step.months > 0:
		idx := lo.Year()*12 + int(lo.Month()) - 1
		if r := idx % step.months; r != 0 {
			idx += step.months - r
		}
		for ; ; idx += step.months {
			t := time.Date(idx/12, time.Month(idx%12+1), 1, 0, 0, 0, 0, loc)
			if t.Before(lo) {
				continue
			}
			if !in(t) {
				break
			}
			res = append(res, t)
		}
	case step.d >= day:
		t := dayStart
		if step.d == week {
			// Weeks start on Monday.
			t = t.AddDate(0, 0, -((int(t.Weekday()) + 6) % 7))
		}
		days := int(step.d / day)
		for ; in(t); t = t.AddDate(0, 0, days) {
			if !t.Before(lo) {
				res = append(res, t)
			}
		}
	default:
		off := lo.Sub(dayStart)
		t := dayStart.Add((off + step.d - 1) / step.d * step.d)
		for ; in(t); t = t.Add(step.d) {
			res = append(res, t)
		}
	}
	return res
}

func (g DateTimeBreaks) Format(v float64) string {
	sec, frac := math.Modf(v)
	return time.Unix(int64(sec), int64(frac*1e9)).In(g.loc()).Format("2006-01-02 15:04:05")
}
