// Package format holds display helpers for dates and labels.
package format

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MonthYear formats a date as "Jan 2022". The zero time formats as "".
func MonthYear(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2006")
}

// Period formats an employment period, e.g. "Jan 2022 - Present".
func Period(start, end time.Time, current bool) string {
	head := MonthYear(start)
	tail := "Present"
	if !current {
		tail = MonthYear(end)
	}
	switch {
	case head == "" && tail == "":
		return ""
	case head == "":
		return tail
	case tail == "":
		return head
	}
	return head + " - " + tail
}

// Label turns identifiers such as "full_time" or "data-science" into "Full Time" / "Data Science".
func Label(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	// Casers are stateful; one per call.
	return cases.Title(language.English).String(strings.Join(strings.Fields(s), " "))
}

// Year formats a project year; zero means unknown.
func Year(y int) string {
	if y <= 0 {
		return ""
	}
	return strconv.Itoa(y)
}
