package handlers

import (
	"errors"
	"net/http"

	"pix_checkout/internal/adapter/http/dto/request"
	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase"
	"pix_checkout/pkg"

	"github.com/gin-gonic/gin"
)

func mapPaymentError(err error) *pkg.AppError {
	var (
		validationErr  *entities.ValidationError
		authErr        *entities.AuthError
		upstreamErr    *entities.UpstreamError
		unsupportedErr *entities.UnsupportedOperationError
		signatureErr   *entities.SignatureError
	)
	switch {
	case errors.As(err, &validationErr):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", validationErr.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, request.ErrInvalidWebhookBody):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.As(err, &signatureErr):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", signatureErr.Error(), http.StatusUnauthorized)
	case errors.As(err, &authErr):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider authentication failed", err, http.StatusBadGateway)
	case errors.As(err, &upstreamErr):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider request failed", err, http.StatusBadGateway)
	case errors.As(err, &unsupportedErr):
		return pkg.NewDomainErrorSimple("OPERATION_NOT_SUPPORTED", unsupportedErr.Error(), http.StatusNotImplemented)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWithError(c *gin.Context, err error) {
	appErr := mapPaymentError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
