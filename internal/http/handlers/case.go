package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	casesform "github.com/yungbote/casebook/internal/http/forms/cases"
	"github.com/yungbote/casebook/internal/http/notice"
	"github.com/yungbote/casebook/internal/http/response"
	"github.com/yungbote/casebook/internal/platform/apierr"
	"github.com/yungbote/casebook/internal/platform/logger"
	"github.com/yungbote/casebook/internal/services"
)

const (
	MsgMissingFields         = "Please fill in all required fields."
	MsgMissingFieldsWithFile = "Please fill in all required fields and upload a file."
	MsgInvalidExtension      = "The file must have the .excalidraw extension."
	MsgInvalidContent        = "The file must be valid JSON (.excalidraw format)."
	MsgCaseAdded             = "Case added successfully!"
	MsgNoMatchingCase        = "No case found for the given criteria."
)

const (
	routeCases      = "/cases"
	routeAddCase    = "/cases/add"
	routeRandomCase = "/cases/random"
	queryDifficulty = "difficulty"
	paramCaseID     = "id"
)

type CaseHandler struct {
	log                *logger.Logger
	caseService        services.CaseService
	notices            notice.Store
	renderer           *response.Renderer
	attachmentRequired bool
}

type CaseHandlerDeps struct {
	Log                *logger.Logger
	CaseService        services.CaseService
	Notices            notice.Store
	Renderer           *response.Renderer
	AttachmentRequired bool
}

func NewCaseHandler(deps CaseHandlerDeps) *CaseHandler {
	return &CaseHandler{
		log:                deps.Log.With("handler", "CaseHandler"),
		caseService:        deps.CaseService,
		notices:            deps.Notices,
		renderer:           deps.Renderer,
		attachmentRequired: deps.AttachmentRequired,
	}
}

// GET /cases?difficulty=
func (h *CaseHandler) ListCases(c *gin.Context) {
	difficulty := c.Query(queryDifficulty)
	rows, err := h.caseService.List(c.Request.Context(), difficulty)
	if err != nil {
		h.log.Error("ListCases failed", withRequest(c, "error", err, "difficulty", difficulty)...)
		h.renderer.Error(c, err)
		return
	}
	h.renderer.View(c, http.StatusOK, "list_cases", gin.H{
		"cases":               rows,
		"selected_difficulty": difficulty,
		"notices":             popNotices(c, h.notices, h.log),
	})
}

// GET /cases/add
func (h *CaseHandler) AddCaseForm(c *gin.Context) {
	h.renderer.View(c, http.StatusOK, "add_case", gin.H{
		"attachment_required": h.attachmentRequired,
		"notices":             popNotices(c, h.notices, h.log),
	})
}

// POST /cases/add (multipart/form-data)
// fields: title, description, difficulty, excalidraw_file
func (h *CaseHandler) SubmitCase(c *gin.Context) {
	form, err := casesform.NewAddCaseForm().ParseAndValidate(c)
	if err != nil {
		h.log.Warn("SubmitCase: unreadable form", withRequest(c, "error", err)...)
		h.rejectSubmission(c, err)
		return
	}

	created, err := h.caseService.Submit(c.Request.Context(), form.(*casesform.AddCaseForm).Submission())
	if err != nil {
		h.log.Debug("SubmitCase: rejected", withRequest(c, "error", err, "form", form.ConvertToMap())...)
		h.rejectSubmission(c, err)
		return
	}

	h.log.Info("SubmitCase: created", withRequest(c, "case_id", created.ID)...)
	addNotice(c, h.notices, h.log, notice.CategorySuccess, MsgCaseAdded)
	c.Redirect(http.StatusSeeOther, routeCases)
}

// rejectSubmission sends validation failures back to the form with a
// notice; anything else fails the request.
func (h *CaseHandler) rejectSubmission(c *gin.Context, err error) {
	ae := apierr.As(err)
	if ae.Status >= http.StatusInternalServerError {
		h.log.Error("SubmitCase failed", withRequest(c, "error", err)...)
		h.renderer.Error(c, err)
		return
	}
	addNotice(c, h.notices, h.log, notice.CategoryDanger, h.validationMessage(err))
	c.Redirect(http.StatusSeeOther, routeAddCase)
}

func (h *CaseHandler) validationMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrInvalidExtension):
		return MsgInvalidExtension
	case errors.Is(err, services.ErrInvalidContent):
		return MsgInvalidContent
	case h.attachmentRequired:
		return MsgMissingFieldsWithFile
	default:
		return MsgMissingFields
	}
}

// GET /cases/:id
func (h *CaseHandler) ViewCase(c *gin.Context) {
	id, ok := h.caseID(c)
	if !ok {
		return
	}
	row, err := h.caseService.Get(c.Request.Context(), id)
	if err != nil {
		h.renderLookupError(c, err, id)
		return
	}
	h.renderer.View(c, http.StatusOK, "case_detail", gin.H{
		"case":          row,
		"display_title": row.DisplayTitle(),
		"has_diagram":   row.HasDiagram(),
		"notices":       popNotices(c, h.notices, h.log),
	})
}

// GET /cases/:id/download
func (h *CaseHandler) DownloadCase(c *gin.Context) {
	id, ok := h.caseID(c)
	if !ok {
		return
	}
	d, err := h.caseService.Diagram(c.Request.Context(), id)
	if err != nil {
		h.renderLookupError(c, err, id)
		return
	}
	headers := map[string]string{
		"Content-Disposition": contentDisposition(d.Filename),
	}
	c.DataFromReader(http.StatusOK, int64(len(d.Content)), d.ContentType, strings.NewReader(d.Content), headers)
}

// GET /cases/random?difficulty=
func (h *CaseHandler) RandomCase(c *gin.Context) {
	difficulty := c.Query(queryDifficulty)
	row, err := h.caseService.Random(c.Request.Context(), difficulty)
	if errors.Is(err, services.ErrNoMatchingCase) {
		addNotice(c, h.notices, h.log, notice.CategoryWarning, MsgNoMatchingCase)
		c.Redirect(http.StatusFound, routeRandomCase)
		return
	}
	if err != nil {
		h.log.Error("RandomCase failed", withRequest(c, "error", err, "difficulty", difficulty)...)
		h.renderer.Error(c, err)
		return
	}
	h.renderer.View(c, http.StatusOK, "random_case", gin.H{
		"case":                row,
		"selected_difficulty": difficulty,
		"notices":             popNotices(c, h.notices, h.log),
	})
}

// caseID parses the :id path segment. Anything that is not an integer
// cannot name a case, so it is a 404 rather than a 400.
func (h *CaseHandler) caseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(paramCaseID), 10, 64)
	if err != nil {
		h.renderer.Error(c, apierr.NotFound(services.CodeCaseNotFound, services.ErrCaseNotFound))
		return 0, false
	}
	return id, true
}

func (h *CaseHandler) renderLookupError(c *gin.Context, err error, id int64) {
	if apierr.As(err).Status >= http.StatusInternalServerError {
		h.log.Error("Case lookup failed", withRequest(c, "error", err, "case_id", id)...)
	}
	h.renderer.Error(c, err)
}
