package handlers

import (
  "errors"
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/coachie-backend/internal/services"
)

type APIError struct {
  Message     string	`json:"message"`
  Code	      string	`json:"code,omitempty"`
}

type ErrorEnvelope struct {
  Error	      APIError	`json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
  msg := "unknown error"
  if err != nil {
    msg = err.Error()
  }
  c.JSON(status, ErrorEnvelope{
    Error: APIError{
      Message: msg,
      Code:    code,
    },
  })
}

func RespondOK(c *gin.Context, payload any) {
  c.JSON(http.StatusOK, payload)
}

// RespondServiceError maps service errors onto HTTP statuses. Validation
// problems are the client's fault; a model reply we could not parse ships its
// raw text back for debugging.
func RespondServiceError(c *gin.Context, code string, err error) {
  var vErr *services.ValidationError
  if errors.As(err, &vErr) {
    RespondError(c, http.StatusBadRequest, code, vErr)
    return
  }
  var parseErr *services.LLMParseError
  if errors.As(err, &parseErr) {
    c.JSON(http.StatusInternalServerError, gin.H{
      "error": gin.H{
        "message": parseErr.Error(),
        "code":    "llm_parse_failed",
        "raw":     parseErr.Raw,
      },
    })
    return
  }
  RespondError(c, http.StatusInternalServerError, code, err)
}
