package response

import (
	"bookstay/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CalendarDayResponse struct {
	Date           string `json:"date"`
	Price          int64  `json:"price"`
	Available      bool   `json:"available"`
	Source         string `json:"source"`
	TotalCapacity  *int32 `json:"totalCapacity,omitempty"`
	AvailableCount *int32 `json:"availableCount,omitempty"`
	RemainingCount *int32 `json:"remainingCount,omitempty"`
}

func FromCalendarDayViews(views []*queries.CalendarDayView) []*CalendarDayResponse {
	res := make([]*CalendarDayResponse, len(views))
	for i, v := range views {
		day := &CalendarDayResponse{}
		// field names match one-to-one
		_ = copier.Copy(day, v)
		res[i] = day
	}
	return res
}
