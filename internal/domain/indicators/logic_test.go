package indicators

import (
	"testing"
	"time"
)

func TestRateZeroDenominator(t *testing.T) {
	if got := Rate(5, 0); got != 0 {
		t.Fatalf("expected 0 for empty population, got %v", got)
	}
	if got := Rate(0, 0); got != 0 {
		t.Fatalf("expected 0 for 0/0, got %v", got)
	}
	if got := Rate(2, 10); got != 20 {
		t.Fatalf("expected 20, got %v", got)
	}
	if got := Rate(1, 3); got != 33.3 {
		t.Fatalf("expected one-decimal rounding, got %v", got)
	}
}

func TestTrendLastTwoPoints(t *testing.T) {
	cases := []struct {
		name   string
		series []Point
		want   string
	}{
		{"rising", []Point{{Value: 1}, {Value: 2}}, TrendUp},
		{"falling", []Point{{Value: 2}, {Value: 1}}, TrendDown},
		{"flat", []Point{{Value: 2}, {Value: 2}}, TrendNeutral},
		{"single point", []Point{{Value: 5}}, TrendNeutral},
		{"empty", nil, TrendNeutral},
		{"only last two matter", []Point{{Value: 9}, {Value: 1}, {Value: 2}}, TrendUp},
	}
	for _, tc := range cases {
		if got := Trend(tc.series); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestSlopeTrend(t *testing.T) {
	rising := []Point{{Value: 1}, {Value: 2}, {Value: 3}, {Value: 4}}
	if got := SlopeTrend(4)(rising); got != TrendUp {
		t.Fatalf("expected up slope, got %q", got)
	}
	falling := []Point{{Value: 4}, {Value: 3}, {Value: 2}, {Value: 1}}
	if got := SlopeTrend(4)(falling); got != TrendDown {
		t.Fatalf("expected down slope, got %q", got)
	}
	flat := []Point{{Value: 2}, {Value: 2}, {Value: 2}}
	if got := SlopeTrend(3)(flat); got != TrendNeutral {
		t.Fatalf("expected neutral slope, got %q", got)
	}
	// A last-point dip that the two-point comparator overreacts to.
	noisy := []Point{{Value: 1}, {Value: 2}, {Value: 3}, {Value: 4}, {Value: 3.9}}
	if got := Trend(noisy); got != TrendDown {
		t.Fatalf("two-point comparator should report down, got %q", got)
	}
	if got := SlopeTrend(5)(noisy); got != TrendUp {
		t.Fatalf("slope comparator should smooth the dip, got %q", got)
	}
}

func TestInvertTrend(t *testing.T) {
	rising := []Point{{Value: 1}, {Value: 2}}
	if got := InvertTrend(Trend)(rising); got != TrendDown {
		t.Fatalf("expected inverted rising to be down, got %q", got)
	}
	flat := []Point{{Value: 2}, {Value: 2}}
	if got := InvertTrend(Trend)(flat); got != TrendNeutral {
		t.Fatalf("expected neutral to stay neutral, got %q", got)
	}
}

func TestMonthBuckets(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	buckets := MonthBuckets(now, 6)
	if len(buckets) != 6 {
		t.Fatalf("expected 6 buckets, got %d", len(buckets))
	}

	wantLabels := []string{"Out", "Nov", "Dez", "Jan", "Fev", "Mar"}
	for i, bucket := range buckets {
		if bucket.Label != wantLabels[i] {
			t.Fatalf("bucket %d: expected label %q, got %q", i, wantLabels[i], bucket.Label)
		}
	}

	last := buckets[5]
	if !last.Contains(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("bucket must include its first instant")
	}
	if !last.Contains(time.Date(2026, time.March, 31, 23, 59, 59, 0, time.UTC)) {
		t.Fatal("bucket must include its last day")
	}
	if last.Contains(time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("bucket end is exclusive")
	}

	first := buckets[0]
	if first.Start.Year() != 2025 || first.Start.Month() != time.October {
		t.Fatalf("expected first bucket to be Oct 2025, got %v", first.Start)
	}
}

func TestMonthBucketsYearBoundary(t *testing.T) {
	now := time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)
	buckets := MonthBuckets(now, 3)
	wantLabels := []string{"Nov", "Dez", "Jan"}
	for i, bucket := range buckets {
		if bucket.Label != wantLabels[i] {
			t.Fatalf("bucket %d: expected label %q, got %q", i, wantLabels[i], bucket.Label)
		}
	}
}

func TestSeriesOverEmitsEmptyBuckets(t *testing.T) {
	buckets := MonthBuckets(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC), 3)
	series := SeriesOver(buckets, func(MonthBucket) float64 { return 0 })
	if len(series) != 3 {
		t.Fatalf("expected a point per bucket, got %d", len(series))
	}
	for _, point := range series {
		if point.Value != 0 {
			t.Fatalf("expected zero value, got %v", point.Value)
		}
	}
}
