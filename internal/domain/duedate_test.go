package domain

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextDueDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		dueDay int
		ref    time.Time
		want   time.Time
	}{
		{
			name:   "leap year february clamp",
			dueDay: 31,
			ref:    date(2024, time.February, 15),
			want:   date(2024, time.February, 29),
		},
		{
			name:   "non leap february clamp",
			dueDay: 30,
			ref:    date(2023, time.February, 1),
			want:   date(2023, time.February, 28),
		},
		{
			name:   "already passed rolls to next month",
			dueDay: 15,
			ref:    date(2024, time.March, 20),
			want:   date(2024, time.April, 15),
		},
		{
			name:   "due today counts as not passed",
			dueDay: 1,
			ref:    date(2024, time.March, 1),
			want:   date(2024, time.March, 1),
		},
		{
			name:   "thirty day month clamp",
			dueDay: 31,
			ref:    date(2024, time.April, 10),
			want:   date(2024, time.April, 30),
		},
		{
			name:   "on clamped day counts as due",
			dueDay: 31,
			ref:    date(2024, time.April, 30),
			want:   date(2024, time.April, 30),
		},
		{
			name:   "roll from december crosses year",
			dueDay: 5,
			ref:    date(2024, time.December, 20),
			want:   date(2025, time.January, 5),
		},
		{
			name:   "roll into shorter month clamps",
			dueDay: 31,
			ref:    date(2024, time.January, 31),
			want:   date(2024, time.January, 31),
		},
		{
			name:   "passed january 31 rolls to february clamp",
			dueDay: 31,
			ref:    date(2023, time.February, 1),
			want:   date(2023, time.February, 28),
		},
		{
			name:   "mid month ahead of due day",
			dueDay: 20,
			ref:    date(2024, time.June, 3),
			want:   date(2024, time.June, 20),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := NextDueDate(tt.dueDay, tt.ref)
			if !got.Equal(tt.want) {
				t.Errorf("NextDueDate(%d, %s) = %s, want %s",
					tt.dueDay, tt.ref.Format(time.DateOnly),
					got.Format(time.DateOnly), tt.want.Format(time.DateOnly))
			}
		})
	}
}

func TestNextDueDate_NonMidnightReference(t *testing.T) {
	t.Parallel()

	// Time-of-day on the reference must not push the due date forward.
	ref := time.Date(2024, time.March, 1, 23, 59, 59, 0, time.UTC)
	got := NextDueDate(1, ref)
	if want := date(2024, time.March, 1); !got.Equal(want) {
		t.Errorf("got %s, want %s", got, want)
	}
}
