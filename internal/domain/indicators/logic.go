package indicators

import (
	"math"
	"time"
)

const (
	TrendUp      = "up"
	TrendDown    = "down"
	TrendNeutral = "neutral"
)

// Rate is the percentage n/d*100 with the empty-population policy applied:
// a zero denominator yields 0, never NaN and never a panic. Every indicator
// goes through it.
func Rate(n, d float64) float64 {
	if d == 0 {
		return 0
	}
	return Round1(n / d * 100)
}

func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// TrendFunc maps a time series to a direction for the dashboard sparkline.
type TrendFunc func(series []Point) string

// Trend compares only the last two points: strictly greater is up, strictly
// less is down, anything else (ties, short series) is neutral.
func Trend(series []Point) string {
	if len(series) < 2 {
		return TrendNeutral
	}
	last := series[len(series)-1].Value
	previous := series[len(series)-2].Value
	switch {
	case last > previous:
		return TrendUp
	case last < previous:
		return TrendDown
	default:
		return TrendNeutral
	}
}

// InvertTrend flips a comparator for cost-like indicators where falling
// values are the good direction.
func InvertTrend(fn TrendFunc) TrendFunc {
	return func(series []Point) string {
		switch fn(series) {
		case TrendUp:
			return TrendDown
		case TrendDown:
			return TrendUp
		default:
			return TrendNeutral
		}
	}
}

// SlopeTrend is the stricter alternative comparator: a least-squares slope
// over the last n points, neutral inside a small dead zone.
func SlopeTrend(n int) TrendFunc {
	return func(series []Point) string {
		if n < 2 || len(series) < 2 {
			return TrendNeutral
		}
		window := series
		if len(window) > n {
			window = window[len(window)-n:]
		}

		var sumX, sumY, sumXY, sumXX float64
		for i, point := range window {
			x := float64(i)
			sumX += x
			sumY += point.Value
			sumXY += x * point.Value
			sumXX += x * x
		}
		count := float64(len(window))
		denominator := count*sumXX - sumX*sumX
		if denominator == 0 {
			return TrendNeutral
		}
		slope := (count*sumXY - sumX*sumY) / denominator

		const deadZone = 1e-9
		switch {
		case slope > deadZone:
			return TrendUp
		case slope < -deadZone:
			return TrendDown
		default:
			return TrendNeutral
		}
	}
}

var monthLabels = [12]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// MonthLabel is the Portuguese short label for a month.
func MonthLabel(m time.Month) string {
	return monthLabels[int(m)-1]
}

// MonthBucket is one calendar month of a series window.
type MonthBucket struct {
	Label string
	Start time.Time
	End   time.Time
}

// MonthBuckets builds n consecutive calendar-month buckets ending at the
// month containing now. Buckets are [Start, End) in UTC.
func MonthBuckets(now time.Time, n int) []MonthBucket {
	if n <= 0 {
		return nil
	}
	now = now.UTC()
	currentStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	buckets := make([]MonthBucket, 0, n)
	for i := n - 1; i >= 0; i-- {
		start := currentStart.AddDate(0, -i, 0)
		buckets = append(buckets, MonthBucket{
			Label: MonthLabel(start.Month()),
			Start: start,
			End:   start.AddDate(0, 1, 0),
		})
	}
	return buckets
}

func (b MonthBucket) Contains(t time.Time) bool {
	t = t.UTC()
	return !t.Before(b.Start) && t.Before(b.End)
}

// SeriesOver evaluates one value per bucket, producing a point for every
// bucket even when it is empty.
func SeriesOver(buckets []MonthBucket, value func(b MonthBucket) float64) []Point {
	series := make([]Point, 0, len(buckets))
	for _, bucket := range buckets {
		series = append(series, Point{Label: bucket.Label, Value: value(bucket)})
	}
	return series
}
