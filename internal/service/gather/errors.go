package gather

import "errors"

var (
	// ErrBusyIntervals возвращается, когда не удалось получить занятые
	// интервалы за период. В отличие от профилей отдельных сотрудников
	// здесь нет осмысленного частичного ответа: без занятых интервалов
	// движок показал бы уже занятые слоты как свободные.
	ErrBusyIntervals = errors.New("gather service: failed to fetch busy intervals")
)
