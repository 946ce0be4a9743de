// internal/handlers/checkout.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hautevault/boutique-backend/internal/payments"
	"github.com/hautevault/boutique-backend/internal/utils"
)

type CheckoutHandler struct {
	provider payments.Provider
}

func NewCheckoutHandler(provider payments.Provider) *CheckoutHandler {
	return &CheckoutHandler{provider: provider}
}

type checkoutRequest struct {
	Lines []payments.Line `json:"lines"`
}

// Create opens a hosted payment session for the submitted bag lines.
// Without a payment provider it reports configured=false so the
// storefront can simulate the purchase.
func (h *CheckoutHandler) Create(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, utils.CodeBadRequest, nil)
		return
	}
	if len(req.Lines) == 0 {
		utils.BadRequestResponse(c, utils.CodeNoLines, nil)
		return
	}

	session, err := h.provider.CreateSession(c.Request.Context(), requestOrigin(c), req.Lines)
	if err != nil {
		logrus.WithError(err).Error("Failed to create checkout session")
		utils.ServerErrorResponse(c, utils.CodeBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":         true,
		"configured": session.Configured,
		"url":        session.URL,
		"id":         session.ID,
	})
}

// requestOrigin reconstructs the browser origin for the success and
// cancel redirects, trusting the proxy headers when present.
func requestOrigin(c *gin.Context) string {
	proto := c.GetHeader("X-Forwarded-Proto")
	if proto == "" {
		proto = "https"
	}
	host := c.GetHeader("X-Forwarded-Host")
	if host == "" {
		host = c.Request.Host
	}
	return proto + "://" + host
}
