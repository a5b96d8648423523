package timeseries

import "time"

// Joined holds two series inner-joined onto a shared date grid: only dates
// present in both inputs survive.
type Joined struct {
	Dates []time.Time
	Left  []float64
	Right []float64
}

// Len returns the number of joined rows.
func (j Joined) Len() int { return len(j.Dates) }

// Tail returns the last n joined rows.
func (j Joined) Tail(n int) Joined {
	if n >= len(j.Dates) {
		return j
	}
	off := len(j.Dates) - n
	return Joined{Dates: j.Dates[off:], Left: j.Left[off:], Right: j.Right[off:]}
}

// Join inner-joins two series on their (day-normalized) dates without any
// resampling: rows exist only where both series observed the same day.
func Join(a, b Series) Joined {
	if a.IsEmpty() || b.IsEmpty() {
		return Joined{}
	}
	na, nb := Normalize(a), Normalize(b)

	var j Joined
	ia, ib := 0, 0
	for ia < len(na) && ib < len(nb) {
		da, db := na[ia].Date, nb[ib].Date
		switch {
		case da.Before(db):
			ia++
		case db.Before(da):
			ib++
		default:
			j.Dates = append(j.Dates, da)
			j.Left = append(j.Left, na[ia].Value)
			j.Right = append(j.Right, nb[ib].Value)
			ia++
			ib++
		}
	}
	return j
}

// AlignDaily resamples both series to a daily forward-filled grid and then
// inner-joins them. This is the alignment used for cross-series math between
// series reported at different cadences (e.g. daily market prices against
// monthly macro releases).
func AlignDaily(a, b Series) Joined {
	return Join(a.ResampleDaily(), b.ResampleDaily())
}

// Map builds a derived series by applying f to each joined row.
func (j Joined) Map(f func(left, right float64) float64) Series {
	if j.Len() == 0 {
		return nil
	}
	out := make(Series, j.Len())
	for i := range j.Dates {
		out[i] = Point{Date: j.Dates[i], Value: f(j.Left[i], j.Right[i])}
	}
	return out
}
