package timeseries

import (
	"sort"
	"time"
)

// Point is a single dated observation.
type Point struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// Series is an ordered sequence of dated observations. Dates are strictly
// increasing with no duplicates; gaps are allowed. An empty Series is the
// explicit "no data" state and is valid input everywhere.
type Series []Point

// Day truncates a timestamp to its UTC calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Normalize returns a copy with dates truncated to UTC days, sorted
// ascending, keeping the last observation for a duplicated day.
func Normalize(points []Point) Series {
	if len(points) == 0 {
		return nil
	}
	cp := make([]Point, len(points))
	for i, p := range points {
		cp[i] = Point{Date: Day(p.Date), Value: p.Value}
	}
	sort.SliceStable(cp, func(i, j int) bool { return cp[i].Date.Before(cp[j].Date) })

	out := cp[:0]
	for _, p := range cp {
		if len(out) > 0 && out[len(out)-1].Date.Equal(p.Date) {
			out[len(out)-1] = p
			continue
		}
		out = append(out, p)
	}
	return Series(out)
}

// IsEmpty reports whether the series carries no observations.
func (s Series) IsEmpty() bool { return len(s) == 0 }

// Len returns the number of observations.
func (s Series) Len() int { return len(s) }

// Last returns the most recent observation.
func (s Series) Last() (Point, bool) {
	if len(s) == 0 {
		return Point{}, false
	}
	return s[len(s)-1], true
}

// LastValue returns the most recent value.
func (s Series) LastValue() (float64, bool) {
	p, ok := s.Last()
	return p.Value, ok
}

// ValueAgo returns the value n observations before the last. When the series
// holds fewer than n+1 points it falls back to the first observation instead
// of failing, so short histories still produce a trend reading.
func (s Series) ValueAgo(n int) (float64, bool) {
	if len(s) == 0 {
		return 0, false
	}
	idx := len(s) - 1 - n
	if idx < 0 {
		idx = 0
	}
	return s[idx].Value, true
}

// ChangeOver returns the absolute change between the latest value and the
// value n observations back.
func (s Series) ChangeOver(n int) (float64, bool) {
	cur, ok := s.LastValue()
	if !ok {
		return 0, false
	}
	prev, _ := s.ValueAgo(n)
	return cur - prev, true
}

// PctChangeOver returns the percent change between the latest value and the
// value n observations back. Undefined when the reference value is zero.
func (s Series) PctChangeOver(n int) (float64, bool) {
	cur, ok := s.LastValue()
	if !ok {
		return 0, false
	}
	prev, _ := s.ValueAgo(n)
	if prev == 0 {
		return 0, false
	}
	return (cur - prev) / prev * 100, true
}

// Tail returns the last n observations (or the whole series when shorter).
func (s Series) Tail(n int) Series {
	if n >= len(s) {
		return s
	}
	return s[len(s)-n:]
}

// ResampleDaily projects the series onto a contiguous daily grid between its
// first and last observation, forward-filling gaps: a value observed on day D
// persists until the next observation replaces it. No interpolation, no
// backward fill.
func (s Series) ResampleDaily() Series {
	if len(s) == 0 {
		return nil
	}
	norm := Normalize(s)
	first, last := norm[0].Date, norm[len(norm)-1].Date

	out := make(Series, 0, int(last.Sub(first).Hours()/24)+1)
	idx := 0
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		for idx+1 < len(norm) && !norm[idx+1].Date.After(d) {
			idx++
		}
		out = append(out, Point{Date: d, Value: norm[idx].Value})
	}
	return out
}

// PctChangeLag computes the percent change of each observation against the
// observation `lag` positions earlier. Meant for daily-resampled series where
// positions correspond to calendar days. Entries without a reference point or
// with a zero base are dropped.
func (s Series) PctChangeLag(lag int) Series {
	if lag <= 0 || len(s) <= lag {
		return nil
	}
	out := make(Series, 0, len(s)-lag)
	for i := lag; i < len(s); i++ {
		base := s[i-lag].Value
		if base == 0 {
			continue
		}
		out = append(out, Point{Date: s[i].Date, Value: (s[i].Value - base) / base * 100})
	}
	return out
}

// Scale returns a copy with every value multiplied by f.
func (s Series) Scale(f float64) Series {
	if len(s) == 0 {
		return nil
	}
	out := make(Series, len(s))
	for i, p := range s {
		out[i] = Point{Date: p.Date, Value: p.Value * f}
	}
	return out
}

// Values returns the raw value column.
func (s Series) Values() []float64 {
	if len(s) == 0 {
		return nil
	}
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Value
	}
	return out
}
