package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/apierror"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/dto"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/middleware"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/model"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/service"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/upstream"
)

type MenuHandler struct {
	menus service.MenuService
	api   *upstream.Client
}

func NewMenuHandler(menus service.MenuService, api *upstream.Client) *MenuHandler {
	return &MenuHandler{menus: menus, api: api}
}

// Browse serves the filtered, sorted, grouped, paginated catalog view.
func (h *MenuHandler) Browse(c *gin.Context) {
	var q dto.MenuQuery
	if !bindQueryAndValidate(c, &q) {
		return
	}

	page, err := h.menus.Browse(c.Request.Context(), q)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *MenuHandler) Item(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid menu item id"))
		return
	}

	item, err := h.menus.Item(c.Request.Context(), id)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *MenuHandler) Categories(c *gin.Context) {
	categories, err := h.menus.Categories(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// AdminList returns the unfiltered catalog for the management screens,
// optionally narrowed by item type.
func (h *MenuHandler) AdminList(c *gin.Context) {
	items, err := h.api.AdminListMenu(c.Request.Context(), middleware.GetToken(c), c.Query("type"))
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Create adds a menu item and invalidates the cached catalog.
func (h *MenuHandler) Create(c *gin.Context) {
	var item model.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return
	}

	created, err := h.api.CreateMenuItem(c.Request.Context(), middleware.GetToken(c), item)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	h.menus.InvalidateCatalog(c.Request.Context(), "")
	c.JSON(http.StatusCreated, created)
}

func (h *MenuHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid menu item id"))
		return
	}

	var item model.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return
	}
	item.ID = id

	updated, err := h.api.UpdateMenuItem(c.Request.Context(), middleware.GetToken(c), item)
	if err != nil {
		respondUpstreamError(c, err)
		return
	}
	h.menus.InvalidateCatalog(c.Request.Context(), "")
	c.JSON(http.StatusOK, updated)
}

func (h *MenuHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid menu item id"))
		return
	}

	if err := h.api.DeleteMenuItem(c.Request.Context(), middleware.GetToken(c), id); err != nil {
		respondUpstreamError(c, err)
		return
	}
	h.menus.InvalidateCatalog(c.Request.Context(), "")
	c.Status(http.StatusNoContent)
}
