package employee

import (
	"net/http"

	"aisle/infras/otel"
	"aisle/internal/domains/employee/model/dto"
	"aisle/internal/domains/employee/service"
	"aisle/shared/constant"
	gDto "aisle/shared/dto"
	"aisle/shared/validator"
	"aisle/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Employee
	otel    otel.Otel
}

func New(service service.Employee, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/employees", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateEmployee)
		routerGroup.Get("/", handler.GetEmployees)
		routerGroup.Get("/{id}", handler.GetEmployeeByID)
		routerGroup.Patch("/{id}", handler.UpdateEmployee)
		routerGroup.Delete("/{id}", handler.DeleteEmployee)
	})
}

func (handler *Handler) CreateEmployee(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEmployee")
	defer scope.End()

	req := dto.CreateEmployeeRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create employee")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Employee created successfully")
}

func (handler *Handler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployees")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	employees, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employees")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, employees)
}

func (handler *Handler) GetEmployeeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployeeByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	employee, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employee by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, employee)
}

func (handler *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEmployee")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateEmployeeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update employee")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Employee updated successfully")
}

func (handler *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEmployee")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete employee")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Employee deleted successfully")
}
