package dto_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"autocare/shared/constant"
	"autocare/shared/dto"
	"autocare/shared/model"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC)

	modelMetadata := model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "creator",
		ModifiedBy: "modifier",
	}

	metadata := &dto.Metadata{}
	metadata.FromModel(modelMetadata)

	expectedCreatedAt := createdAt.Format(constant.DateFormat)
	expectedModifiedAt := modifiedAt.Format(constant.DateFormat)

	if metadata.CreatedAt != expectedCreatedAt {
		t.Errorf("expected CreatedAt to be %s, got %s", expectedCreatedAt, metadata.CreatedAt)
	}

	if metadata.ModifiedAt != expectedModifiedAt {
		t.Errorf("expected ModifiedAt to be %s, got %s", expectedModifiedAt, metadata.ModifiedAt)
	}

	if metadata.CreatedBy != "creator" {
		t.Errorf("expected CreatedBy to be 'creator', got %s", metadata.CreatedBy)
	}

	if metadata.ModifiedBy != "modifier" {
		t.Errorf("expected ModifiedBy to be 'modifier', got %s", metadata.ModifiedBy)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"pageNumber": "2",
				"pageSize":   "20",
				"sortBy":     "booking_date",
				"sortOrder":  "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:      2,
				Limit:     20,
				SortBy:    "booking_date",
				SortOrder: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name: "with invalid page parameter",
			queryParams: map[string]string{
				"pageNumber": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "with negative page parameter",
			queryParams: map[string]string{
				"pageNumber": "-1",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "with page size above the maximum",
			queryParams: map[string]string{
				"pageSize": "500",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.MaxValueLimit,
			},
		},
		{
			name: "with lowercase sort order",
			queryParams: map[string]string{
				"sortOrder": "desc",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				SortOrder: dto.SortOrderDesc,
			},
		},
		{
			name: "with unknown sort order",
			queryParams: map[string]string{
				"sortOrder": "sideways",
			},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.queryParams {
				values.Set(key, value)
			}

			request := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			queryParams := dto.QueryParams{}
			queryParams.FromRequest(request, tt.defaultRequest)

			if queryParams != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, queryParams)
			}
		})
	}
}

func TestSortOrderConstants(t *testing.T) {
	if dto.SortOrderAsc != "ASC" {
		t.Errorf("expected SortOrderAsc to be 'ASC', got %s", dto.SortOrderAsc)
	}
	if dto.SortOrderDesc != "DESC" {
		t.Errorf("expected SortOrderDesc to be 'DESC', got %s", dto.SortOrderDesc)
	}
}
