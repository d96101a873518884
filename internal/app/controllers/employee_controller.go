package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolregistry/internal/app/models/dto"
	"github.com/yigit/schoolregistry/internal/app/services"
	"github.com/yigit/schoolregistry/internal/middleware"
)

// EmployeeController handles employee-related operations
type EmployeeController struct {
	employeeService services.EmployeeService
}

// NewEmployeeController creates a new EmployeeController
func NewEmployeeController(employeeService services.EmployeeService) *EmployeeController {
	return &EmployeeController{
		employeeService: employeeService,
	}
}

// GetEmployees lists employees, or returns the one matching ?cedula=
// @Summary List employees
// @Tags employees
// @Produce json,xml
// @Param cedula query string false "National ID"
// @Success 200 {object} dto.APIResponse{data=dto.EmployeeList}
// @Router /employees [get]
func (c *EmployeeController) GetEmployees(ctx *gin.Context) {
	if cedula := strings.TrimSpace(ctx.Query("cedula")); cedula != "" {
		employee, err := c.employeeService.GetByCedula(ctx, cedula)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		middleware.Respond(ctx, http.StatusOK, dto.NewAPIResponse(dto.NewEmployeeResponse(employee)))
		return
	}

	employees, err := c.employeeService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.Respond(ctx, http.StatusOK, dto.NewAPIResponse(dto.NewEmployeeList(employees)))
}

// GetEmployee retrieves an employee by uuid
// @Summary Get employee
// @Tags employees
// @Produce json,xml
// @Param uuid path string true "Employee UUID"
// @Success 200 {object} dto.APIResponse{data=dto.EmployeeResponse}
// @Router /employees/{uuid} [get]
func (c *EmployeeController) GetEmployee(ctx *gin.Context) {
	employee, err := c.employeeService.Get(ctx, ctx.Param("uuid"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.Respond(ctx, http.StatusOK, dto.NewAPIResponse(dto.NewEmployeeResponse(employee)))
}

// CreateEmployee handles employee creation
// @Summary Create an employee
// @Tags employees
// @Accept json,xml
// @Produce json,xml
// @Param request body dto.EmployeeRequest true "Employee"
// @Success 201 {object} dto.APIResponse{data=dto.EmployeeResponse}
// @Router /employees [post]
func (c *EmployeeController) CreateEmployee(ctx *gin.Context) {
	var req dto.EmployeeRequest
	if !middleware.BindRequest(ctx, &req) {
		return
	}

	employee, err := c.employeeService.Create(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", strings.TrimSuffix(ctx.Request.URL.Path, "/")+"/"+employee.UUID)
	ctx.Header("ETag", fmt.Sprintf("%q", employee.UUID))
	middleware.Respond(ctx, http.StatusCreated, dto.NewAPIResponse(dto.NewEmployeeResponse(employee)))
}

// UpdateEmployee replaces an employee
// @Summary Replace an employee
// @Tags employees
// @Accept json,xml
// @Produce json,xml
// @Param uuid path string true "Employee UUID"
// @Param request body dto.EmployeeRequest true "Employee"
// @Success 200 {object} dto.APIResponse{data=dto.EmployeeResponse}
// @Router /employees/{uuid} [put]
func (c *EmployeeController) UpdateEmployee(ctx *gin.Context) {
	var req dto.EmployeeRequest
	if !middleware.BindRequest(ctx, &req) {
		return
	}

	employee, err := c.employeeService.Update(ctx, ctx.Param("uuid"), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.Respond(ctx, http.StatusOK, dto.NewAPIResponse(dto.NewEmployeeResponse(employee)))
}

// DeleteEmployee soft-deletes an employee
// @Summary Delete an employee
// @Tags employees
// @Param uuid path string true "Employee UUID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Router /employees/{uuid} [delete]
func (c *EmployeeController) DeleteEmployee(ctx *gin.Context) {
	if err := c.employeeService.Delete(ctx, ctx.Param("uuid")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.Respond(ctx, http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Employee deleted"}))
}
