package task

import (
	"strings"
	"time"

	"github.com/goto/screener/core/query"
	"github.com/goto/screener/core/validator"
)

type Filter struct {
	Statuses      []string `json:"statuses"`
	Assignees     []string `json:"assignees"`
	MinPriority   *int     `json:"min_priority" validate:"omitempty,gte=1,lte=5"`
	MaxPriority   *int     `json:"max_priority" validate:"omitempty,gte=1,lte=5"`
	DueBefore     *time.Time
	Blocked       bool   `json:"blocked"`
	Query         string `json:"q"`
	SortBy        string `json:"sort"`
	SortDirection string `json:"direction"`
	Page          query.Page
}

func FilterFromParams(params query.Params) (Filter, error) {
	var (
		flt Filter
		err error
	)

	if flt.MinPriority, err = query.Int(params, "min_priority"); err != nil {
		return Filter{}, err
	}
	if flt.MaxPriority, err = query.Int(params, "max_priority"); err != nil {
		return Filter{}, err
	}
	if flt.DueBefore, err = parseCutoff(query.Text(params, "due_before")); err != nil {
		return Filter{}, err
	}

	flt.Statuses = query.List(params, "statuses", "status")
	flt.Assignees = query.List(params, "assignees", "assignee")
	flt.Blocked = query.Bool(params, "blocked")
	flt.Query = query.Text(params, query.ParamQuery)
	flt.SortBy = query.Text(params, query.ParamSort)
	flt.SortDirection = query.Text(params, query.ParamDirection)

	if flt.Page, err = query.PageFrom(params); err != nil {
		return Filter{}, err
	}
	return flt, nil
}

func parseCutoff(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}

	t, err := ParseTime(raw)
	if err != nil {
		return nil, query.InvalidParameterError{Field: "due_before", Value: raw, Reason: "must be a date or timestamp"}
	}
	return &t, nil
}

func (f Filter) Validate() error {
	return query.Validate(validator.Default(), f)
}

func (f Filter) Criteria() (query.Criteria[Task], error) {
	if err := f.Validate(); err != nil {
		return query.Criteria[Task]{}, err
	}

	statuses, err := query.NewEnumSet("statuses", f.Statuses, Statuses, func(t Task) (string, bool) {
		return string(t.Status), t.Status != ""
	})
	if err != nil {
		return query.Criteria[Task]{}, err
	}
	assignees, err := query.NewSet("assignees", f.Assignees, true, func(t Task) (string, bool) {
		return t.Assignee, t.Assignee != ""
	})
	if err != nil {
		return query.Criteria[Task]{}, err
	}
	priorities, err := query.NewRange("priority", toFloat(f.MinPriority), toFloat(f.MaxPriority), priority)
	if err != nil {
		return query.Criteria[Task]{}, err
	}
	blocked, err := query.NewBool("blocked", f.Blocked, true, Task.Blocked)
	if err != nil {
		return query.Criteria[Task]{}, err
	}
	text, err := query.NewText(query.ParamQuery, f.Query, func(t Task) []string {
		return []string{t.ID, t.Title, t.Description, t.Assignee}
	})
	if err != nil {
		return query.Criteria[Task]{}, err
	}

	c := query.Criteria[Task]{
		Filters: []query.Filter[Task]{statuses, assignees, priorities, blocked, text, dueBefore{cutoff: f.DueBefore}},
		Page:    f.Page,
	}
	if f.SortBy != "" {
		if c.Sort, err = query.NewSort(SortKeys, f.SortBy, f.SortDirection); err != nil {
			return query.Criteria[Task]{}, err
		}
	}
	return c, nil
}

// dueBefore keeps tasks due strictly before the cutoff. Tasks without a due
// date never match.
type dueBefore struct {
	cutoff *time.Time
}

func (dueBefore) Field() string { return "due_before" }

func (f dueBefore) Active() bool { return f.cutoff != nil }

func (f dueBefore) Match(t Task) bool {
	if f.cutoff == nil {
		return true
	}
	return t.DueDate != nil && t.DueDate.Before(*f.cutoff)
}

var statusOrder = map[Status]int{
	StatusTodo:       0,
	StatusInProgress: 1,
	StatusBlocked:    2,
	StatusDone:       3,
}

// SortKeys orders status by workflow position rather than alphabetically.
var SortKeys = query.SortKeys[Task]{
	query.TextKey("id", func(t Task) (string, bool) { return t.ID, true }),
	query.TextKey("title", func(t Task) (string, bool) { return t.Title, true }),
	query.NumberKey("priority", priority),
	query.NumberKey("due_date", func(t Task) (float64, bool) {
		if t.DueDate == nil {
			return 0, false
		}
		return float64(t.DueDate.Unix()), true
	}),
	query.NumberKey("status", func(t Task) (float64, bool) {
		n, ok := statusOrder[Status(strings.ToLower(string(t.Status)))]
		return float64(n), ok
	}),
}

func priority(t Task) (float64, bool) { return float64(t.Priority), true }

func toFloat(n *int) *float64 {
	if n == nil {
		return nil
	}
	f := float64(*n)
	return &f
}
