package middleware

import (
	"net/http"
	"strings"

	"aisle/infras/otel"
	permissionService "aisle/internal/domains/permission/service"
	"aisle/shared/constant"
	"aisle/shared/failure"
	"aisle/transport/http/response"
)

// sectionByPrefix maps route prefixes to couple-portal section names.
// Routes without an entry (events, budget, vendors, checklist,
// messages) are not section-gated.
var sectionByPrefix = map[string]string{
	"/v1/guests":         constant.SectionGuestList,
	"/v1/floor-plans":    constant.SectionSeating,
	"/v1/tables":         constant.SectionSeating,
	"/v1/seats":          constant.SectionSeating,
	"/v1/seating":        constant.SectionSeating,
	"/v1/timeline-items": constant.SectionTimeline,
	"/v1/menu-items":     constant.SectionMenu,
	"/v1/drinks":         constant.SectionMenu,
	"/v1/notes":          constant.SectionNotes,
	"/v1/accommodations": constant.SectionHotel,
	"/v1/websites":       constant.SectionWebsite,
}

type Section interface {
	SectionGate(http.Handler) http.Handler
}

type sectionImpl struct {
	permissionSvc permissionService.Permission
	otel          otel.Otel
}

func NewSectionMiddleware(permissionSvc permissionService.Permission, otel otel.Otel) Section {
	return &sectionImpl{
		permissionSvc: permissionSvc,
		otel:          otel,
	}
}

// SectionGate blocks couple-role requests to sections the planner has
// disabled for their event. A disabled section is unreachable, not
// merely hidden in the UI. Employees are never gated.
func (m *sectionImpl) SectionGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()

		role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
		if role != constant.RoleCouple {
			next.ServeHTTP(writer, request)

			return
		}

		section := sectionForPath(request.URL.Path)
		if section == constant.Empty {
			next.ServeHTTP(writer, request)

			return
		}

		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "section.middleware")

		eventID, _ := ctx.Value(constant.ContextKeyEventID).(string)

		enabled, err := m.permissionSvc.SectionEnabled(ctx, eventID, section)
		if err != nil {
			scope.TraceError(err)
			scope.End()
			response.WithError(writer, err)

			return
		}

		if !enabled {
			err := failure.SectionDisabledError
			scope.TraceError(err)
			scope.SetAttributes(map[string]any{
				"event_id": eventID,
				"section":  section,
			})
			scope.End()
			response.WithError(writer, err)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}

func sectionForPath(path string) string {
	for prefix, section := range sectionByPrefix {
		if strings.HasPrefix(path, prefix) {
			return section
		}
	}

	return constant.Empty
}
