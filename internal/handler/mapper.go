package handler

import (
	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/dates"
	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/domain"
)

func toReportResponse(report *domain.Report) ReportResponse {
	resp := ReportResponse{
		Filter: string(report.Scope.Kind),
		Rows:   make([]ReportRowResponse, 0, len(report.Rows)),
	}

	switch report.Scope.Kind {
	case domain.ScopeWeek:
		resp.Year = report.Scope.Year
		resp.Week = report.Scope.Week
		prevYear, prevWeek := dates.PreviousWeek(report.Scope.Year, report.Scope.Week)
		nextYear, nextWeek := dates.NextWeek(report.Scope.Year, report.Scope.Week)
		resp.Navigation = &WeekNavigationResponse{
			PrevYear: prevYear,
			PrevWeek: prevWeek,
			NextYear: nextYear,
			NextWeek: nextWeek,
		}
	case domain.ScopeMonth:
		resp.Year = report.Scope.Year
		resp.Month = int(report.Scope.Month)
		if name, err := dates.MonthName(int(report.Scope.Month)); err == nil {
			resp.MonthName = name
		}
	}

	for _, row := range report.Rows {
		resp.Rows = append(resp.Rows, toReportRowResponse(row))
	}
	return resp
}

func toReportRowResponse(row *domain.ReportRow) ReportRowResponse {
	out := ReportRowResponse{
		UserID: row.UserID,
		Name:   row.Name,
		Total:  row.Total,
	}
	if row.Days != nil {
		out.Days = &WeekdayHoursResponse{
			Ma: row.Days.Ma,
			Di: row.Days.Di,
			Wo: row.Days.Wo,
			Do: row.Days.Do,
			Vr: row.Days.Vr,
		}
	}
	return out
}

func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID: user.ID,
		Name:   user.Name,
		Role:   string(user.Role),
	}
}
