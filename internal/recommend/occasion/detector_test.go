// Libreria - Bookstore Recommendation Service
// Copyright 2026 gnouvdev
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gnouvdev/libreria

package occasion

import (
	"strings"
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func TestDetect_ExactDay(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		wantName string
		wantTag  string
	}{
		{
			name:     "new year's day",
			date:     date(2026, time.January, 1),
			wantName: "Tết Dương Lịch",
			wantTag:  "năm mới",
		},
		{
			name:     "valentine",
			date:     date(2026, time.February, 14),
			wantName: "Lễ Tình Nhân",
			wantTag:  "tình yêu",
		},
		{
			name:     "inside tet day range",
			date:     date(2026, time.February, 10),
			wantName: "Tết Nguyên Đán",
			wantTag:  "tết",
		},
		{
			name:     "christmas range start",
			date:     date(2026, time.December, 24),
			wantName: "Giáng Sinh",
			wantTag:  "giáng sinh",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := Detect(tt.date)
			if !ctx.IsExactDay {
				t.Fatalf("IsExactDay = false, want true for %s", tt.date)
			}
			if ctx.IsUpcoming {
				t.Error("IsUpcoming should be false on an exact day")
			}
			if !strings.Contains(ctx.Name, tt.wantName) {
				t.Errorf("Name = %q, want it to contain %q", ctx.Name, tt.wantName)
			}
			if !containsTag(ctx.Tags, tt.wantTag) {
				t.Errorf("Tags = %v, want to contain %q", ctx.Tags, tt.wantTag)
			}
		})
	}
}

func TestDetect_MergesSimultaneousOccasions(t *testing.T) {
	// June 1 is both International Children's Day and inside the exam
	// season range.
	ctx := Detect(date(2026, time.June, 1))

	if !ctx.IsExactDay {
		t.Fatal("IsExactDay = false, want true")
	}
	if !strings.Contains(ctx.Name, " & ") {
		t.Errorf("Name = %q, want joined names", ctx.Name)
	}
	if !containsTag(ctx.Tags, "thiếu nhi") || !containsTag(ctx.Tags, "ôn thi") {
		t.Errorf("Tags = %v, want tags from both occasions", ctx.Tags)
	}
}

func TestDetect_Upcoming(t *testing.T) {
	// Feb 10 2026 falls inside the Tet range, so use a quieter probe:
	// Mar 3 is five days before International Women's Day.
	ctx := Detect(date(2026, time.March, 3))

	if ctx.IsExactDay {
		t.Fatal("IsExactDay = true, want false")
	}
	if !ctx.IsUpcoming {
		t.Fatal("IsUpcoming = false, want true")
	}
	if ctx.DaysUntil != 5 {
		t.Errorf("DaysUntil = %d, want 5", ctx.DaysUntil)
	}
	if !strings.Contains(ctx.Name, "Quốc Tế Phụ Nữ") {
		t.Errorf("Name = %q, want Quốc Tế Phụ Nữ", ctx.Name)
	}
}

func TestDetect_UpcomingSortsByProximity(t *testing.T) {
	// Dec 18 2026: Christmas starts in 6 days; nothing closer.
	ctx := Detect(date(2026, time.December, 18))

	if !ctx.IsUpcoming {
		t.Fatal("IsUpcoming = false, want true")
	}
	if ctx.DaysUntil != 6 {
		t.Errorf("DaysUntil = %d, want 6", ctx.DaysUntil)
	}
}

func TestDetect_YearRollover(t *testing.T) {
	// Dec 28 2026: New Year's Day is 4 days away in the next year.
	ctx := Detect(date(2026, time.December, 28))

	if !ctx.IsUpcoming {
		t.Fatal("IsUpcoming = false, want true")
	}
	if ctx.DaysUntil != 4 {
		t.Errorf("DaysUntil = %d, want 4", ctx.DaysUntil)
	}
	if !strings.Contains(ctx.Name, "Tết Dương Lịch") {
		t.Errorf("Name = %q, want Tết Dương Lịch", ctx.Name)
	}
}

func TestDetect_NoOccasion(t *testing.T) {
	// Mid-July has no occasion and nothing within seven days.
	ctx := Detect(date(2026, time.July, 15))

	if ctx.IsExactDay || ctx.IsUpcoming {
		t.Errorf("context = %+v, want empty", ctx)
	}
	if ctx.HasTags() {
		t.Errorf("Tags = %v, want none", ctx.Tags)
	}
}

func TestCalendar_TableSanity(t *testing.T) {
	for _, o := range Calendar() {
		if o.Name == "" {
			t.Error("occasion with empty name")
		}
		if len(o.Tags) == 0 {
			t.Errorf("occasion %q has no tags", o.Name)
		}
		if o.Day < 1 || o.Day > 31 {
			t.Errorf("occasion %q has invalid day %d", o.Name, o.Day)
		}
		if o.DayEnd != 0 && o.DayEnd < o.Day {
			t.Errorf("occasion %q has DayEnd %d before Day %d", o.Name, o.DayEnd, o.Day)
		}
	}
}

func containsTag(tags []string, want string) bool {
	for _, tag := range tags {
		if tag == want {
			return true
		}
	}
	return false
}
