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

// StudentController handles student-related operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// GetStudents lists students, or looks one up by alternate key
// @Summary List students
// @Description Returns every student. The cedula query parameter takes precedence over student-id; either returns a single student.
// @Tags students
// @Produce json,xml
// @Param cedula query string false "National ID"
// @Param student-id query string false "Student number"
// @Success 200 {object} dto.APIResponse{data=dto.StudentList}
// @Failure 404 {object} dto.APIResponse
// @Failure 503 {object} dto.APIResponse
// @Router /students [get]
func (c *StudentController) GetStudents(ctx *gin.Context) {
	if cedula := strings.TrimSpace(ctx.Query("cedula")); cedula != "" {
		student, err := c.studentService.GetByCedula(ctx, cedula)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		middleware.Respond(ctx, http.StatusOK, dto.NewAPIResponse(dto.NewStudentResponse(student)))
		return
	}

	if studentID := strings.TrimSpace(ctx.Query("student-id")); studentID != "" {
		student, err := c.studentService.GetByStudentID(ctx, studentID)
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		middleware.Respond(ctx, http.StatusOK, dto.NewAPIResponse(dto.NewStudentResponse(student)))
		return
	}

	students, err := c.studentService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.Respond(ctx, http.StatusOK, dto.NewAPIResponse(dto.NewStudentList(students)))
}

// GetStudent retrieves a student by uuid
// @Summary Get student
// @Tags students
// @Produce json,xml
// @Param uuid path string true "Student UUID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /students/{uuid} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.Get(ctx, ctx.Param("uuid"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.Respond(ctx, http.StatusOK, dto.NewAPIResponse(dto.NewStudentResponse(student)))
}

// CreateStudent handles student creation
// @Summary Create a student
// @Tags students
// @Accept json,xml
// @Produce json,xml
// @Param request body dto.StudentRequest true "Student"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if !middleware.BindRequest(ctx, &req) {
		return
	}

	student, err := c.studentService.Create(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Location", strings.TrimSuffix(ctx.Request.URL.Path, "/")+"/"+student.UUID)
	ctx.Header("ETag", fmt.Sprintf("%q", student.UUID))
	middleware.Respond(ctx, http.StatusCreated, dto.NewAPIResponse(dto.NewStudentResponse(student)))
}

// UpdateStudent replaces a student
// @Summary Replace a student
// @Description Overwrites every field and the whole phone-number set
// @Tags students
// @Accept json,xml
// @Produce json,xml
// @Param uuid path string true "Student UUID"
// @Param request body dto.StudentRequest true "Student"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /students/{uuid} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.StudentRequest
	if !middleware.BindRequest(ctx, &req) {
		return
	}

	student, err := c.studentService.Update(ctx, ctx.Param("uuid"), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.Respond(ctx, http.StatusOK, dto.NewAPIResponse(dto.NewStudentResponse(student)))
}

// DeleteStudent soft-deletes a student
// @Summary Delete a student
// @Tags students
// @Produce json,xml
// @Param uuid path string true "Student UUID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.APIResponse
// @Router /students/{uuid} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.Delete(ctx, ctx.Param("uuid")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.Respond(ctx, http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Student deleted"}))
}
