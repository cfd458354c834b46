// Libreria - Bookstore Recommendation Service
// Copyright 2026 gnouvdev
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gnouvdev/libreria

package occasion

import (
	"sort"
	"strings"
	"time"
)

// upcomingWindowDays is how far ahead an occasion is considered upcoming.
const upcomingWindowDays = 7

// Context is the calendar-derived signal for a single date.
// It is recomputed on every call and never persisted.
type Context struct {
	// IsExactDay is true when the date falls on (or inside the day range of)
	// at least one occasion.
	IsExactDay bool `json:"is_exact_day"`

	// IsUpcoming is true when no occasion matches today but at least one
	// starts within the upcoming window.
	IsUpcoming bool `json:"is_upcoming"`

	// Name is the occasion name; multiple simultaneous occasions are joined
	// with " & ".
	Name string `json:"name,omitempty"`

	// Tags is the merged, deduplicated tag set of all matched occasions.
	Tags []string `json:"tags,omitempty"`

	// DaysUntil is the day count to the nearest upcoming occasion.
	// Only meaningful when IsUpcoming is true.
	DaysUntil int `json:"days_until,omitempty"`
}

// HasTags reports whether the context carries any topical tags.
func (c Context) HasTags() bool {
	return len(c.Tags) > 0
}

// Detect evaluates the occasion calendar against the given date.
//
// Exact-day matches win: their tag sets are merged and their names joined.
// Otherwise every occasion starting within the next seven days is collected,
// sorted ascending by days-until; the nearest occasion's day count becomes
// the context's DaysUntil. With no match in either pass the zero context is
// returned.
func Detect(date time.Time) Context {
	month, day := date.Month(), date.Day()

	var exact []Occasion
	for _, o := range calendar {
		if o.matchesExact(month, day) {
			exact = append(exact, o)
		}
	}
	if len(exact) > 0 {
		name, tags := merge(exact)
		return Context{IsExactDay: true, Name: name, Tags: tags}
	}

	today := time.Date(date.Year(), month, day, 0, 0, 0, 0, date.Location())

	type upcoming struct {
		occasion  Occasion
		daysUntil int
	}
	var soon []upcoming
	for _, o := range calendar {
		next := o.nextOccurrence(today)
		days := int(next.Sub(today).Hours() / 24)
		if days >= 1 && days <= upcomingWindowDays {
			soon = append(soon, upcoming{occasion: o, daysUntil: days})
		}
	}
	if len(soon) == 0 {
		return Context{}
	}

	sort.SliceStable(soon, func(i, j int) bool {
		return soon[i].daysUntil < soon[j].daysUntil
	})

	occasions := make([]Occasion, len(soon))
	for i, u := range soon {
		occasions[i] = u.occasion
	}
	name, tags := merge(occasions)

	return Context{
		IsUpcoming: true,
		Name:       name,
		Tags:       tags,
		DaysUntil:  soon[0].daysUntil,
	}
}

// merge combines the names and tag sets of several occasions, deduplicating
// both while preserving first-seen order.
func merge(occasions []Occasion) (string, []string) {
	var names []string
	seenName := make(map[string]struct{})
	var tags []string
	seenTag := make(map[string]struct{})

	for _, o := range occasions {
		if _, ok := seenName[o.Name]; !ok {
			seenName[o.Name] = struct{}{}
			names = append(names, o.Name)
		}
		for _, tag := range o.Tags {
			if _, ok := seenTag[tag]; !ok {
				seenTag[tag] = struct{}{}
				tags = append(tags, tag)
			}
		}
	}

	return strings.Join(names, " & "), tags
}
