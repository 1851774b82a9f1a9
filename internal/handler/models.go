package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type SubmitHoursRequest struct {
	UserID int     `json:"user_id" validate:"required,gt=0"`
	Filter string  `json:"filter" validate:"required"`
	Hours  float64 `json:"hours" validate:"gte=0,lte=24"`
	Day    string  `json:"day,omitempty"`
	Year   int     `json:"year,omitempty" validate:"gte=0"`
	Week   int     `json:"week,omitempty" validate:"gte=0,lte=53"`
}

type SubmitHoursResponse struct {
	Status string `json:"status"`
}

type ApproveRequest struct {
	UserID int    `json:"user_id" validate:"required,gt=0"`
	Filter string `json:"filter" validate:"required"`
	Year   int    `json:"year,omitempty" validate:"gte=0"`
	Month  int    `json:"month,omitempty" validate:"gte=0,lte=12"`
	Week   int    `json:"week,omitempty" validate:"gte=0,lte=53"`
}

type ApproveResponse struct {
	Approved int64  `json:"approved"`
	Message  string `json:"message"`
}

type WeekdayHoursResponse struct {
	Ma float64 `json:"ma"`
	Di float64 `json:"di"`
	Wo float64 `json:"wo"`
	Do float64 `json:"do"`
	Vr float64 `json:"vr"`
}

type ReportRowResponse struct {
	UserID int                   `json:"user_id"`
	Name   string                `json:"name"`
	Days   *WeekdayHoursResponse `json:"days,omitempty"`
	Total  float64               `json:"total"`
}

// WeekNavigationResponse carries the previous/next week pair so the
// dashboard arrows need no date math of their own.
type WeekNavigationResponse struct {
	PrevYear int `json:"prev_year"`
	PrevWeek int `json:"prev_week"`
	NextYear int `json:"next_year"`
	NextWeek int `json:"next_week"`
}

type ReportResponse struct {
	Filter     string                  `json:"filter"`
	Year       int                     `json:"year,omitempty"`
	Week       int                     `json:"week,omitempty"`
	Month      int                     `json:"month,omitempty"`
	MonthName  string                  `json:"month_name,omitempty"`
	Navigation *WeekNavigationResponse `json:"navigation,omitempty"`
	Rows       []ReportRowResponse     `json:"rows"`
}

type UserResponse struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}
