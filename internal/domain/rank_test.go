package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankEmployeesDefaultFirst(t *testing.T) {
	priority := map[int64]EmployeePriority{
		7: {IsDefault: true},
	}

	got := RankEmployees([]int64{9, 7, 3}, priority)

	assert.Equal(t, []RankedEmployee{
		{EmployeeID: 7, IsDefault: true},
		{EmployeeID: 3},
		{EmployeeID: 9},
	}, got)
}

func TestRankEmployeesAscendingWithoutDefault(t *testing.T) {
	got := RankEmployees([]int64{42, 5, 19}, nil)

	assert.Equal(t, []RankedEmployee{
		{EmployeeID: 5},
		{EmployeeID: 19},
		{EmployeeID: 42},
	}, got)
}

func TestRankEmployeesEmpty(t *testing.T) {
	assert.Empty(t, RankEmployees(nil, nil))
}
