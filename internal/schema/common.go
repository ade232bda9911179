package schema

import (
	"github.com/chainfolio/chainfolio/internal/types"
	"github.com/chainfolio/chainfolio/internal/validation"
)

// AsyncQueryArgs is the payload for getters whose only argument is the
// async toggle.
type AsyncQueryArgs struct {
	AsyncQuery bool `json:"async_query" query:"async_query"`
}

func (r *AsyncQueryArgs) Validate(validation.Deps) error {
	return nil
}

// Empty is the payload for endpoints that take no input at all.
type Empty struct{}

func (r *Empty) Validate(validation.Deps) error {
	return nil
}

// TimeRange is the shared from/to timestamp pair. An omitted lower bound
// defaults to zero and an omitted upper bound defaults to the validation
// time.
type TimeRange struct {
	FromTimestamp Str `json:"from_timestamp" query:"from_timestamp"`
	ToTimestamp   Str `json:"to_timestamp" query:"to_timestamp"`

	from types.Timestamp
	to   types.Timestamp
}

func (r *TimeRange) parse(verrs *validation.Errors) {
	r.from = parseTimestamp(verrs, "from_timestamp", r.FromTimestamp, false, 0)
	r.to = parseTimestamp(verrs, "to_timestamp", r.ToTimestamp, false, types.Now())
}

// From returns the validated lower bound.
func (r *TimeRange) From() types.Timestamp { return r.from }

// To returns the validated upper bound.
func (r *TimeRange) To() types.Timestamp { return r.to }

// HistoryQuery is the payload of history processing getters: a time range
// plus the async toggle.
type HistoryQuery struct {
	TimeRange
	AsyncQuery bool `json:"async_query" query:"async_query"`
}

func (r *HistoryQuery) Validate(validation.Deps) error {
	var verrs validation.Errors
	r.parse(&verrs)
	return verrs.OrNil()
}

// HistoricalQuery additionally carries the flag that forces re-querying
// everything instead of using stored data.
type HistoricalQuery struct {
	HistoryQuery
	ResetDBData bool `json:"reset_db_data" query:"reset_db_data"`
}

// TimerangeLocationQuery filters a time range by an optional location.
type TimerangeLocationQuery struct {
	TimeRange
	Location   string `json:"location" query:"location"`
	AsyncQuery bool   `json:"async_query" query:"async_query"`
	OnlyCache  bool   `json:"only_cache" query:"only_cache"`

	location types.Location
}

func (r *TimerangeLocationQuery) Validate(validation.Deps) error {
	var verrs validation.Errors
	r.parse(&verrs)
	r.location = parseLocation(&verrs, "location", r.Location, false)
	return verrs.OrNil()
}

// LocationFilter returns the validated location, empty when unfiltered.
func (r *TimerangeLocationQuery) LocationFilter() types.Location { return r.location }

// TaskQuery is the payload of the per-task status endpoint. The task id is
// a typed integer path parameter, validated by the binder before the
// handler body runs.
type TaskQuery struct {
	TaskID int64 `param:"task_id"`
}

func (r *TaskQuery) Validate(validation.Deps) error {
	return nil
}
