package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/osa911/inquiry-mailer/internal/api/constants"
	"github.com/osa911/inquiry-mailer/internal/api/dto/v1/inquiry"
	"github.com/osa911/inquiry-mailer/internal/service"
	"github.com/osa911/inquiry-mailer/internal/utils"

	"github.com/gin-gonic/gin"
)

// InquirySubmitter runs the submission workflow
type InquirySubmitter interface {
	Submit(ctx context.Context, sub *service.Submission) error
}

type InquiryHandler struct {
	inquiryService InquirySubmitter
}

func NewInquiryHandler(inquiryService InquirySubmitter) *InquiryHandler {
	return &InquiryHandler{inquiryService: inquiryService}
}

// SendEmail handles POST /send-email
func (h *InquiryHandler) SendEmail(c *gin.Context) {
	// Get inquiry data from context (set by validation middleware)
	data, exists := c.Get(constants.ContextKeyInquiry)
	if !exists {
		utils.HandleAPIError(c, errors.New("inquiry not found in context"), http.StatusInternalServerError, service.MsgServerFault)
		return
	}

	req, ok := data.(*inquiry.SendEmailRequest)
	if !ok {
		utils.HandleAPIError(c, errors.New("invalid inquiry data format"), http.StatusInternalServerError, service.MsgServerFault)
		return
	}

	err := h.inquiryService.Submit(c.Request.Context(), &service.Submission{
		Name:           req.Name,
		Email:          req.Email,
		Subject:        req.Subject,
		Message:        req.Message,
		RecaptchaToken: req.RecaptchaToken,
		RemoteIP:       utils.GetRealIP(c),
		RequestID:      c.GetString(constants.ContextKeyRequestID),
	})
	if err != nil {
		fault := service.AsFault(err)
		status := http.StatusInternalServerError
		if fault.Kind == service.ClientFault {
			status = http.StatusBadRequest
		}
		utils.HandleServiceFault(c, fault.Err, status, fault.Message)
		return
	}

	utils.HandleMessage(c, service.MsgSuccess)
}
