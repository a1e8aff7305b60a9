package controllers

import (
	"net/http"
	"strconv"

	"github.com/Corner-venturo/Corner-sub004/pkg/utils"
	"github.com/gin-gonic/gin"
)

// indexParam reads a non-negative path index, answering 400 when it is not.
func indexParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v < 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return v, true
}

// bindJSON answers 400 with the binding error when the body does not fit.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

func workspaceID(c *gin.Context) string { return c.GetString(utils.WorkspaceKey) }

func userID(c *gin.Context) string { return c.GetString(utils.UserIDKey) }
