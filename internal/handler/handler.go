package handler

import "github.com/ChristianDeWinter/verbeterdeportofolio/internal/service"

type Handler struct {
	reportService   service.ReportService
	hoursService    service.HoursService
	approvalService service.ApprovalService
	userService     service.UserService
	validate        *requestValidator
}

func NewHandler(
	reportService service.ReportService,
	hoursService service.HoursService,
	approvalService service.ApprovalService,
	userService service.UserService,
) *Handler {
	return &Handler{
		reportService:   reportService,
		hoursService:    hoursService,
		approvalService: approvalService,
		userService:     userService,
		validate:        newRequestValidator(),
	}
}
