package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	docflowapp "github.com/documentflow/backend/internal/application/docflow"
)

// DocsHandler serves incoming and outgoing documents plus the state and
// document type lookups.
type DocsHandler struct {
	BaseHandler
	docInService  *docflowapp.DocInService
	docOutService *docflowapp.DocOutService
	lookupService *docflowapp.LookupService
}

// NewDocsHandler creates a new DocsHandler
func NewDocsHandler(
	docInService *docflowapp.DocInService,
	docOutService *docflowapp.DocOutService,
	lookupService *docflowapp.LookupService,
) *DocsHandler {
	return &DocsHandler{
		docInService:  docInService,
		docOutService: docOutService,
		lookupService: lookupService,
	}
}

// RegisterRoutes registers the document routes
func (h *DocsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/docs")

	g.GET("/in", h.ListDocIn)
	g.POST("/in", h.CreateDocIn)
	g.GET("/in/:id", h.GetDocIn)
	g.DELETE("/in/:id", h.DeleteDocIn)

	g.GET("/out", h.ListDocOut)
	g.POST("/out", h.CreateDocOut)
	g.GET("/out/:id", h.GetDocOut)
	g.PUT("/out/:id", h.UpdateDocOut)
	g.POST("/out/:id/delete", h.DeleteDocOut)

	g.GET("/states", h.ListStates)
	g.GET("/types", h.ListDocTypes)
	g.POST("/types", h.CreateDocType)
}

// ListDocIn lists incoming documents, oldest registration first
func (h *DocsHandler) ListDocIn(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.docInService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, filter.Page, filter.PageSize)
}

// CreateDocIn registers an incoming document
func (h *DocsHandler) CreateDocIn(c *gin.Context) {
	var req docflowapp.CreateDocInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.docInService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetDocIn returns one incoming document card
func (h *DocsHandler) GetDocIn(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid id")
		return
	}

	resp, err := h.docInService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteDocIn removes an incoming document permanently
func (h *DocsHandler) DeleteDocIn(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid id")
		return
	}

	if err := h.docInService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListDocOut lists outgoing documents, newest first, with optional
// filters on state, type, creator and signer
func (h *DocsHandler) ListDocOut(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var listReq docflowapp.ListDocOutRequest
	if err := c.ShouldBindQuery(&listReq); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.docOutService.List(c.Request.Context(), filter, listReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, filter.Page, filter.PageSize)
}

// CreateDocOut drafts an outgoing document for the authenticated user
func (h *DocsHandler) CreateDocOut(c *gin.Context) {
	creatorID, err := getUserID(c)
	if err != nil || creatorID == uuid.Nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req docflowapp.CreateDocOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.docOutService.Create(c.Request.Context(), creatorID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// GetDocOut returns one outgoing document card
func (h *DocsHandler) GetDocOut(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid id")
		return
	}

	resp, err := h.docOutService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateDocOut changes the card fields of an outgoing document
func (h *DocsHandler) UpdateDocOut(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid id")
		return
	}

	var req docflowapp.UpdateDocOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.docOutService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteDocOut transitions an outgoing document to the DELETED state
func (h *DocsHandler) DeleteDocOut(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid id")
		return
	}

	if err := h.docOutService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListStates returns the workflow state lookup table
func (h *DocsHandler) ListStates(c *gin.Context) {
	responses, err := h.lookupService.ListStates(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, responses)
}

// ListDocTypes returns the document type lookup table
func (h *DocsHandler) ListDocTypes(c *gin.Context) {
	responses, err := h.lookupService.ListDocTypes(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, responses)
}

// CreateDocType adds a document type
func (h *DocsHandler) CreateDocType(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required,max=200"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.lookupService.CreateDocType(c.Request.Context(), req.Name)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}
