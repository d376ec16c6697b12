package employee

import (
	"net/http"
	"strconv"
	"strings"

	employeeerrors "go-emprec/internal/employee/errors"
	"go-emprec/internal/shared/apperror"
	"go-emprec/internal/shared/contextutil"
	"go-emprec/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	apperror.Init()

	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	log := contextutil.GetLogger(c.Request.Context(), h.logger)
	log.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Message)
}

func (h *Handler) bind(c *gin.Context, req *EmployeeRequest) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return false
	}
	return true
}

func (h *Handler) pathID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.writeServiceError(c, employeeerrors.ErrInvalidEmployeeID.WithMessagef("Invalid employee ID: %s", raw))
		return 0, false
	}
	return id, true
}

func (h *Handler) Create(c *gin.Context) {
	var req EmployeeRequest
	if !h.bind(c, &req) {
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	location := strings.TrimSuffix(c.Request.URL.Path, "/") + "/" + strconv.FormatInt(resp.ID, 10)
	response.Created(c, location, resp)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) GetByEmployeeNo(c *gin.Context) {
	resp, err := h.service.GetByEmployeeNo(c.Request.Context(), c.Param("employeeNo"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req EmployeeRequest
	if !h.bind(c, &req) {
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.NoContent(c)
}
