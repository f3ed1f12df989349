package dto

import (
	"net/http"
	"strconv"
	"strings"

	"autocare/shared/constant"
)

const (
	SortOrderAsc  = "ASC"
	SortOrderDesc = "DESC"
)

type QueryParams struct {
	Page      int    `json:"pageNumber" validate:"omitempty"`
	Limit     int    `json:"pageSize"   validate:"omitempty"`
	SortBy    string `json:"sortBy"     validate:"omitempty"`
	SortOrder string `json:"sortOrder"  validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates QueryParams from the HTTP request.
// With `defaultRequest` set, missing values fall back to the defaults and
// the page size is clamped to the maximum.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if sortOrder := queryParams.Get(constant.RequestParamSortOrder); strings.EqualFold(sortOrder, SortOrderAsc) || strings.EqualFold(sortOrder, SortOrderDesc) {
		q.SortOrder = strings.ToUpper(sortOrder)
	}

	if q.Limit > constant.MaxValueLimit {
		q.Limit = constant.MaxValueLimit
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}
