package http

import (
	"bytes"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"todo-list/internal/todo/render"
	"todo-list/pkg/response"
)

const (
	formText = "text"
	formDate = "date"
	formKey  = "key"
)

// Index renders the full list.
func (h *handler) Index(c *gin.Context) {
	ctx := c.Request.Context()

	var buf bytes.Buffer
	if err := h.renderer.Render(ctx, &buf, h.processNotice(c)); err != nil {
		h.l.Errorf(ctx, "renderer.Render: %v", err)
		response.InternalError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// Submit handles the Add button and key signals from the new-task input.
// Without a key field the submission counts as the Add button.
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()
	text, date := c.PostForm(formText), c.PostForm(formDate)

	var notice render.Notice
	if key, ok := c.GetPostForm(formKey); ok {
		notice = h.renderer.KeyDown(ctx, key, text, date)
	} else {
		notice = h.renderer.SubmitNew(ctx, text, date)
	}
	h.backToList(c, notice)
}

func (h *handler) Edit(c *gin.Context) {
	id, err := h.processID(c)
	if err != nil {
		h.backToList(c, render.NoticeTaskGone)
		return
	}
	h.backToList(c, h.renderer.RequestEdit(c.Request.Context(), id))
}

func (h *handler) Save(c *gin.Context) {
	id, err := h.processID(c)
	if err != nil {
		h.backToList(c, render.NoticeTaskGone)
		return
	}
	notice := h.renderer.SaveEdit(c.Request.Context(), id, c.PostForm(formText), c.PostForm(formDate))
	h.backToList(c, notice)
}

func (h *handler) Cancel(c *gin.Context) {
	if id, err := h.processID(c); err == nil {
		h.renderer.CancelEdit(c.Request.Context(), id)
	}
	h.backToList(c, render.NoticeNone)
}

func (h *handler) Remove(c *gin.Context) {
	id, err := h.processID(c)
	if err != nil {
		h.backToList(c, render.NoticeNone)
		return
	}
	h.backToList(c, h.renderer.RequestDelete(c.Request.Context(), id))
}

// backToList redirects to the list so a reload never repeats the intent.
func (h *handler) backToList(c *gin.Context, notice render.Notice) {
	target := "/"
	if code := notice.Code(); code != "" {
		target += "?" + url.Values{queryNotice: {code}}.Encode()
	}
	c.Redirect(http.StatusSeeOther, target)
}
