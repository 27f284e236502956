package dixa

import (
	"context"
	"time"
)

// PeriodFilter bounds an analytics request in time. Type is either
// "PresetInterval" (Value holds a preset such as "PreviousWeek") or
// "Interval" (Start/End hold explicit bounds).
type PeriodFilter struct {
	Type  string     `json:"_type"           yaml:"_type"`
	Value string     `json:"value,omitempty" yaml:"value,omitempty"`
	Start *time.Time `json:"start,omitempty" yaml:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"   yaml:"end,omitempty"`
}

// PresetInterval returns a PeriodFilter for a named preset window.
func PresetInterval(value string) *PeriodFilter {
	return &PeriodFilter{Type: "PresetInterval", Value: value}
}

// Interval returns a PeriodFilter with explicit bounds.
func Interval(start, end time.Time) *PeriodFilter {
	return &PeriodFilter{Type: "Interval", Start: &start, End: &end}
}

// MetricFilter restricts an analytics request to entities matching the
// attribute values.
type MetricFilter struct {
	Attribute string   `json:"filterAttribute" yaml:"filterAttribute"`
	Values    []string `json:"values"          yaml:"values"`
}

// MetricDescription documents a metric: its aggregations and the filter
// attributes it accepts.
type MetricDescription struct {
	ID               string   `json:"id"                         yaml:"id"`
	Description      string   `json:"description,omitempty"      yaml:"description,omitempty"`
	Aggregations     []string `json:"aggregations,omitempty"     yaml:"aggregations,omitempty"`
	FilterAttributes []string `json:"filterAttributes,omitempty" yaml:"filterAttributes,omitempty"`
}

// RecordDescription documents a metric record set.
type RecordDescription struct {
	ID               string   `json:"id"                         yaml:"id"`
	Description      string   `json:"description,omitempty"      yaml:"description,omitempty"`
	FilterAttributes []string `json:"filterAttributes,omitempty" yaml:"filterAttributes,omitempty"`
}

// MetricDataRequest is the body for fetching aggregated metric data.
type MetricDataRequest struct {
	ID           string         `json:"id"                     yaml:"id"`
	PeriodFilter *PeriodFilter  `json:"periodFilter"           yaml:"periodFilter"`
	Aggregations []string       `json:"aggregations,omitempty" yaml:"aggregations,omitempty"`
	Filters      []MetricFilter `json:"filters,omitempty"      yaml:"filters,omitempty"`
}

// Measurement is one aggregated value of a metric.
type Measurement struct {
	Aggregation string  `json:"aggregation" yaml:"aggregation"`
	Value       float64 `json:"value"       yaml:"value"`
}

// MetricData is the aggregated result of a metric query.
type MetricData struct {
	ID           string        `json:"id"                     yaml:"id"`
	Measurements []Measurement `json:"measurements,omitempty" yaml:"measurements,omitempty"`
}

// RecordsDataRequest is the body for fetching raw metric records.
type RecordsDataRequest struct {
	ID           string         `json:"id"                yaml:"id"`
	PeriodFilter *PeriodFilter  `json:"periodFilter"      yaml:"periodFilter"`
	Filters      []MetricFilter `json:"filters,omitempty" yaml:"filters,omitempty"`
}

// MetricRecord is one raw record of a metric record set.
type MetricRecord struct {
	ID        string      `json:"id"                  yaml:"id"`
	Value     interface{} `json:"value"               yaml:"value"`
	Timestamp *time.Time  `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

// FilterValue is one admissible value for a filter attribute.
type FilterValue struct {
	Value string  `json:"value"           yaml:"value"`
	Label *string `json:"label,omitempty" yaml:"label,omitempty"`
}

// AnalyticsClient provides access to the Analytics endpoints.
type AnalyticsClient interface {
	ListMetrics(ctx context.Context) (*ListResponse[string], error)
	GetMetricDescription(ctx context.Context, metricID string) (*MetricDescription, error)
	GetMetricData(ctx context.Context, request *MetricDataRequest) (*MetricData, error)
	ListRecords(ctx context.Context) (*ListResponse[string], error)
	GetRecordDescription(ctx context.Context, recordID string) (*RecordDescription, error)
	GetRecordsData(ctx context.Context, request *RecordsDataRequest) (*ListResponse[MetricRecord], error)
	ListFilterValues(ctx context.Context, filterAttribute string) (*ListResponse[FilterValue], error)
}
