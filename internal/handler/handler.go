package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bloomfundr-api/internal/constant"
	"bloomfundr-api/internal/utils"
)

// fail maps a service error onto the response envelope, carrying the
// request trace id and any detail the error was annotated with.
func fail(c *gin.Context, err error) {
	if ce, ok := err.(constant.Error); ok {
		if data := ce.Data(); data != nil {
			c.JSON(http.StatusOK, utils.ErrorWithData(ce.Code(), data))
			return
		}
		c.JSON(http.StatusOK, utils.ErrorWithTrace(ce.Code(), c.GetString("trace_id")))
		return
	}
	c.JSON(http.StatusOK, utils.ErrorWithTrace(constant.CodeSystemError, c.GetString("trace_id")))
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, utils.CustomError(constant.CodeInvalidParams, err.Error()))
}

func ok(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, utils.Success(data))
}
