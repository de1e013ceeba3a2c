package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationParams_Validate(t *testing.T) {
	testCases := []struct {
		name string
		in   PaginationParams
		want PaginationParams
	}{
		{"Zero Values", PaginationParams{}, PaginationParams{Page: 1, PageSize: DefaultPageSize}},
		{"Too Large", PaginationParams{Page: 3, PageSize: 500}, PaginationParams{Page: 3, PageSize: MaxPageSize}},
		{"Negative", PaginationParams{Page: -2, PageSize: -1}, PaginationParams{Page: 1, PageSize: DefaultPageSize}},
		{"In Range", PaginationParams{Page: 2, PageSize: 10}, PaginationParams{Page: 2, PageSize: 10}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.in
			p.Validate()
			assert.Equal(t, tc.want, p)
		})
	}

	p := PaginationParams{Page: 3, PageSize: 10}
	assert.Equal(t, 20, p.Offset())
}

func TestNewPaginatedResponse(t *testing.T) {
	resp := NewPaginatedResponse([]int{1, 2}, 2, 2, 5)
	assert.Equal(t, 3, resp.TotalPages)
	assert.True(t, resp.HasNext)
	assert.True(t, resp.HasPrev)

	empty := NewPaginatedResponse[int](nil, 1, 0, 4)
	assert.NotNil(t, empty.Data)
	assert.Zero(t, empty.TotalPages)
	assert.False(t, empty.HasNext)
}
