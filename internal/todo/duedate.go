package todo

import "time"

// DueDateLayout is the canonical due date format.
const DueDateLayout = "2006-01-02"

// DueDatePlaceholder is shown in empty due date fields.
const DueDatePlaceholder = "YYYY-MM-DD"

// dueDateInput also accepts single-digit months and days ("2024-5-1").
const dueDateInput = "2006-1-2"

// ParseDueDate normalizes a user-entered due date. Anything that is not a
// real calendar date, including the "YYYY-MM-DD" placeholder and dates with
// surrounding whitespace, becomes NoDueDate.
func ParseDueDate(s string) string {
	if s == "" {
		return NoDueDate
	}
	d, err := time.Parse(dueDateInput, s)
	if err != nil {
		return NoDueDate
	}
	return d.Format(DueDateLayout)
}
