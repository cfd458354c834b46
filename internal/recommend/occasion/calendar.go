// Libreria - Bookstore Recommendation Service
// Copyright 2026 gnouvdev
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gnouvdev/libreria

package occasion

import "time"

// Occasion is a single calendar rule with the topical tags it activates.
// DayEnd extends Day to an inclusive range for holidays whose civil date
// moves year to year (lunar calendar, Nth weekday of a month). For
// exact-date occasions DayEnd equals Day.
type Occasion struct {
	Name   string
	Month  time.Month
	Day    int
	DayEnd int
	Tags   []string
}

// matchesExact reports whether the given month/day falls inside the
// occasion's date rule.
func (o Occasion) matchesExact(month time.Month, day int) bool {
	if o.Month != month {
		return false
	}
	end := o.DayEnd
	if end == 0 {
		end = o.Day
	}
	return day >= o.Day && day <= end
}

// nextOccurrence returns the next start of the occasion at or after the
// given midnight, rolling to the following year when this year's window has
// fully passed.
func (o Occasion) nextOccurrence(today time.Time) time.Time {
	year := today.Year()
	end := o.DayEnd
	if end == 0 {
		end = o.Day
	}

	if time.Date(year, o.Month, end, 0, 0, 0, 0, today.Location()).Before(today) {
		return time.Date(year+1, o.Month, o.Day, 0, 0, 0, 0, today.Location())
	}
	return time.Date(year, o.Month, o.Day, 0, 0, 0, 0, today.Location())
}

// calendar is the fixed occasion table. Day ranges approximate lunar and
// Nth-weekday holidays (Tet, Mid-Autumn, Mother's/Father's Day); exact civil
// holidays use a single day.
var calendar = []Occasion{
	{Name: "Tết Dương Lịch", Month: time.January, Day: 1,
		Tags: []string{"năm mới", "khởi đầu", "lịch", "kế hoạch", "mục tiêu"}},
	{Name: "Tết Nguyên Đán", Month: time.January, Day: 25, DayEnd: 31,
		Tags: []string{"tết", "năm mới", "gia đình", "truyền thống", "lì xì", "phong tục"}},
	{Name: "Tết Nguyên Đán", Month: time.February, Day: 1, DayEnd: 20,
		Tags: []string{"tết", "năm mới", "gia đình", "truyền thống", "lì xì", "phong tục"}},
	{Name: "Lễ Tình Nhân", Month: time.February, Day: 14,
		Tags: []string{"tình yêu", "lãng mạn", "quà tặng", "cặp đôi"}},
	{Name: "Quốc Tế Phụ Nữ", Month: time.March, Day: 8,
		Tags: []string{"phụ nữ", "quà tặng", "tôn vinh", "mẹ", "vợ"}},
	{Name: "Ngày Sách Việt Nam", Month: time.April, Day: 21,
		Tags: []string{"sách", "đọc sách", "văn hóa đọc", "tri thức"}},
	{Name: "Giỗ Tổ Hùng Vương", Month: time.April, Day: 18, DayEnd: 29,
		Tags: []string{"lịch sử", "nguồn cội", "truyền thống", "dân tộc"}},
	{Name: "Ngày Giải Phóng", Month: time.April, Day: 30,
		Tags: []string{"lịch sử", "chiến tranh", "hòa bình", "thống nhất"}},
	{Name: "Quốc Tế Lao Động", Month: time.May, Day: 1,
		Tags: []string{"nghỉ lễ", "du lịch", "thư giãn"}},
	{Name: "Ngày của Mẹ", Month: time.May, Day: 8, DayEnd: 14,
		Tags: []string{"mẹ", "gia đình", "quà tặng", "yêu thương"}},
	{Name: "Quốc Tế Thiếu Nhi", Month: time.June, Day: 1,
		Tags: []string{"thiếu nhi", "trẻ em", "truyện tranh", "quà tặng"}},
	{Name: "Ngày của Cha", Month: time.June, Day: 15, DayEnd: 21,
		Tags: []string{"cha", "bố", "gia đình", "quà tặng"}},
	{Name: "Ngày Gia Đình Việt Nam", Month: time.June, Day: 28,
		Tags: []string{"gia đình", "hạnh phúc", "yêu thương"}},
	{Name: "Tết Trung Thu", Month: time.September, Day: 10, DayEnd: 30,
		Tags: []string{"trung thu", "thiếu nhi", "trăng rằm", "truyện tranh", "gia đình"}},
	{Name: "Quốc Khánh", Month: time.September, Day: 2,
		Tags: []string{"lịch sử", "độc lập", "dân tộc"}},
	{Name: "Ngày Phụ Nữ Việt Nam", Month: time.October, Day: 20,
		Tags: []string{"phụ nữ", "quà tặng", "tôn vinh"}},
	{Name: "Halloween", Month: time.October, Day: 31,
		Tags: []string{"kinh dị", "ma quái", "bí ẩn", "hóa trang"}},
	{Name: "Ngày Nhà Giáo Việt Nam", Month: time.November, Day: 20,
		Tags: []string{"thầy cô", "giáo dục", "học tập", "tri ân", "quà tặng"}},
	{Name: "Giáng Sinh", Month: time.December, Day: 24, DayEnd: 25,
		Tags: []string{"giáng sinh", "noel", "quà tặng", "mùa đông", "gia đình"}},
	{Name: "Mùa Thi", Month: time.June, Day: 1, DayEnd: 30,
		Tags: []string{"ôn thi", "học tập", "luyện đề", "kỳ thi"}},
	{Name: "Tựu Trường", Month: time.August, Day: 20, DayEnd: 31,
		Tags: []string{"tựu trường", "sách giáo khoa", "học tập", "dụng cụ học tập"}},
}

// Calendar returns the occasion table. The returned slice must be treated
// as read-only.
func Calendar() []Occasion {
	return calendar
}
