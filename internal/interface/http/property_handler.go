package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/devsenior/property-service/internal/application"
	"github.com/devsenior/property-service/pkg/response"
	"github.com/devsenior/property-service/pkg/validation"
)

type PropertyHandler struct {
	Svc    *application.PropertyService
	Logger *logrus.Logger
}

func NewPropertyHandler(svc *application.PropertyService, logger *logrus.Logger) *PropertyHandler {
	return &PropertyHandler{Svc: svc, Logger: logger}
}

func (h *PropertyHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, application.ErrPropertyNotFound) {
		response.Error(c, http.StatusNotFound, err.Error(), nil)
		return
	}
	if h.Logger != nil {
		h.Logger.WithError(err).WithField("path", c.FullPath()).Error("property operation failed")
	}
	response.Error(c, http.StatusInternalServerError, "internal server error", nil)
}

func propertyID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid property id", nil)
		return 0, false
	}
	return id, true
}

// List GET /api/properties
func (h *PropertyHandler) List(c *gin.Context) {
	list, err := h.Svc.FindAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, list, "properties")
}

// GetByID GET /api/properties/:id
func (h *PropertyHandler) GetByID(c *gin.Context) {
	id, ok := propertyID(c)
	if !ok {
		return
	}
	p, err := h.Svc.FindByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "property")
}

// ListByCity GET /api/properties/city/:city
func (h *PropertyHandler) ListByCity(c *gin.Context) {
	list, err := h.Svc.FindByCity(c.Request.Context(), c.Param("city"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, list, "properties by city")
}

// Search GET /api/properties/search?q=&size=
func (h *PropertyHandler) Search(c *gin.Context) {
	size, _ := strconv.Atoi(c.Query("size"))
	hits, err := h.Svc.Search(c.Request.Context(), c.Query("q"), size)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results")
}

// Create POST /api/properties
func (h *PropertyHandler) Create(c *gin.Context) {
	var in application.CreatePropertyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Save(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p, "property created")
}

// Update PUT /api/properties/:id
func (h *PropertyHandler) Update(c *gin.Context) {
	id, ok := propertyID(c)
	if !ok {
		return
	}
	var in application.UpdatePropertyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Update(c.Request.Context(), id, in)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "property updated")
}

// Delete DELETE /api/properties/:id
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, ok := propertyID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteByID(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Exists GET /api/properties/exists/:id
func (h *PropertyHandler) Exists(c *gin.Context) {
	id, ok := propertyID(c)
	if !ok {
		return
	}
	exists, err := h.Svc.ExistsByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, exists, "property existence")
}

// UploadImage POST /api/properties/:id/image (multipart field "image")
func (h *PropertyHandler) UploadImage(c *gin.Context) {
	id, ok := propertyID(c)
	if !ok {
		return
	}
	file, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "image file is required", nil)
		return
	}
	f, err := file.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "cannot read image file", nil)
		return
	}
	defer func() { _ = f.Close() }()

	p, err := h.Svc.UploadImage(c.Request.Context(), id, f, file.Filename, file.Header.Get("Content-Type"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, p, "image uploaded")
}
