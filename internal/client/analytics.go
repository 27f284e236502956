package client

import (
	"context"
	"fmt"

	"github.com/helplane-io/dixa-client/internal/http"
	"github.com/helplane-io/dixa-client/pkg/dixa"
)

// AnalyticsClient implements dixa.AnalyticsClient.
type AnalyticsClient struct {
	httpClient *http.Client
}

// NewAnalyticsClient creates a new analytics client.
func NewAnalyticsClient(httpClient *http.Client) *AnalyticsClient {
	return &AnalyticsClient{
		httpClient: httpClient,
	}
}

// ListMetrics implements dixa.AnalyticsClient.ListMetrics.
func (c *AnalyticsClient) ListMetrics(ctx context.Context) (*dixa.ListResponse[string], error) {
	resp, err := c.httpClient.Get(ctx, "/v1/analytics/metrics", nil)
	if err != nil {
		return nil, fmt.Errorf("listing metrics: %w", err)
	}

	return decodeList[string](resp.Body)
}

// GetMetricDescription implements dixa.AnalyticsClient.GetMetricDescription.
func (c *AnalyticsClient) GetMetricDescription(ctx context.Context, metricID string) (*dixa.MetricDescription, error) {
	path := "/v1/analytics/metrics/" + metricID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting metric description: %w", err)
	}

	return decodeData[dixa.MetricDescription](resp.Body)
}

// GetMetricData implements dixa.AnalyticsClient.GetMetricData.
func (c *AnalyticsClient) GetMetricData(ctx context.Context, request *dixa.MetricDataRequest) (*dixa.MetricData, error) {
	resp, err := c.httpClient.Post(ctx, "/v1/analytics/metrics", request)
	if err != nil {
		return nil, fmt.Errorf("getting metric data: %w", err)
	}

	return decodeData[dixa.MetricData](resp.Body)
}

// ListRecords implements dixa.AnalyticsClient.ListRecords.
func (c *AnalyticsClient) ListRecords(ctx context.Context) (*dixa.ListResponse[string], error) {
	resp, err := c.httpClient.Get(ctx, "/v1/analytics/records", nil)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}

	return decodeList[string](resp.Body)
}

// GetRecordDescription implements dixa.AnalyticsClient.GetRecordDescription.
func (c *AnalyticsClient) GetRecordDescription(ctx context.Context, recordID string) (*dixa.RecordDescription, error) {
	path := "/v1/analytics/records/" + recordID

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting record description: %w", err)
	}

	return decodeData[dixa.RecordDescription](resp.Body)
}

// GetRecordsData implements dixa.AnalyticsClient.GetRecordsData.
func (c *AnalyticsClient) GetRecordsData(ctx context.Context, request *dixa.RecordsDataRequest) (*dixa.ListResponse[dixa.MetricRecord], error) {
	resp, err := c.httpClient.Post(ctx, "/v1/analytics/records", request)
	if err != nil {
		return nil, fmt.Errorf("getting records data: %w", err)
	}

	return decodeList[dixa.MetricRecord](resp.Body)
}

// ListFilterValues implements dixa.AnalyticsClient.ListFilterValues.
func (c *AnalyticsClient) ListFilterValues(ctx context.Context, filterAttribute string) (*dixa.ListResponse[dixa.FilterValue], error) {
	path := "/v1/analytics/filter/" + filterAttribute

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing filter values: %w", err)
	}

	return decodeList[dixa.FilterValue](resp.Body)
}
