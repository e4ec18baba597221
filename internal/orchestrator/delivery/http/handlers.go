package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rag-assistant/pkg/response"
)

// Prompt godoc
// @Summary     Ask the assistant
// @Description Routes the message, runs the selected operation and returns the answer with the routing decision and the snippets used.
// @Tags        Prompt
// @Accept      json
// @Produce     json
// @Param       body body promptReq true "User message"
// @Success     200  {object} promptResp
// @Failure     400  {object} response.DetailResp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.DetailResp "Internal Server Error"
// @Router      /prompt [POST]
func (h *handler) Prompt(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPromptReq(c)
	if err != nil {
		response.Detail(c, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.uc.Handle(ctx, req.Message)
	if err != nil {
		h.l.Errorf(ctx, "uc.Handle: %v", err)
		response.Detail(c, h.mapError(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, h.newPromptResp(res))
}
