package domain

import "sort"

// RankEmployees orders eligible employees for assignment: the default
// employee (per priority) first, everyone else by ascending id. The input
// slice is not modified.
func RankEmployees(eligible []int64, priority map[int64]EmployeePriority) []RankedEmployee {
	ranked := make([]RankedEmployee, 0, len(eligible))
	for _, id := range eligible {
		ranked = append(ranked, RankedEmployee{
			EmployeeID: id,
			IsDefault:  priority[id].IsDefault,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].IsDefault != ranked[j].IsDefault {
			return ranked[i].IsDefault
		}
		return ranked[i].EmployeeID < ranked[j].EmployeeID
	})

	return ranked
}
