package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Rakhulsr/cloth-cafe/app/logger"
	"github.com/Rakhulsr/cloth-cafe/app/models"
	"github.com/Rakhulsr/cloth-cafe/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

var ErrMalformedBody = errors.New("request body is not valid JSON")

const maxBodyBytes = 1 << 20

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := toSnake(err.Field())
		switch err.Tag() {
		case "required", "required_if", "required_unless", "notblank":
			errorMessages[field] = fmt.Sprintf("%s is required.", humanize(err.Field()))
		case "email":
			errorMessages[field] = fmt.Sprintf("%s must be a valid email address.", humanize(err.Field()))
		case "url":
			errorMessages[field] = fmt.Sprintf("%s must be a valid URL.", humanize(err.Field()))
		case "garment_size":
			errorMessages[field] = fmt.Sprintf("%s must be one of: %s.", humanize(err.Field()), strings.Join(models.Sizes, " "))
		case "oneof":
			errorMessages[field] = fmt.Sprintf("%s must be one of: %s.", humanize(err.Field()), err.Param())
		case "gte", "min":
			errorMessages[field] = fmt.Sprintf("%s must be at least %s.", humanize(err.Field()), err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("%s must be at most %s characters.", humanize(err.Field()), err.Param())
		default:
			errorMessages[field] = fmt.Sprintf("%s failed %s validation.", humanize(err.Field()), err.Tag())
		}
	}
	return errorMessages
}

// toSnake turns a Go field name into its JSON spelling, e.g. CustomerName ->
// customer_name, ImageURL -> image_url.
func toSnake(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		upper := r >= 'A' && r <= 'Z'
		if upper && i > 0 {
			prevLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if prevLower || nextLower {
				b.WriteByte('_')
			}
		}
		if upper {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func humanize(field string) string {
	words := strings.Split(toSnake(field), "_")
	if len(words) > 0 && words[0] != "" {
		words[0] = strings.ToUpper(words[0][:1]) + words[0][1:]
	}
	return strings.Join(words, " ")
}

// DecodeJSON reads a single JSON document into dst, rejecting unknown fields.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("%w: trailing data", ErrMalformedBody)
	}
	return nil
}

// StatusFor maps domain errors onto HTTP status codes.
func StatusFor(err error) int {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrMalformedBody),
		errors.Is(err, services.ErrEmptyCheckout),
		errors.Is(err, services.ErrInvalidMembershipCode),
		errors.Is(err, services.ErrInvalidOrderStatus):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrMembershipRequestNotFound),
		errors.Is(err, services.ErrMemberNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrOrderFinalized),
		errors.Is(err, services.ErrOrderNotEditable),
		errors.Is(err, services.ErrOrderNotCancellable),
		errors.Is(err, services.ErrInvoiceUnavailable),
		errors.Is(err, services.ErrRequestDecided),
		errors.Is(err, services.ErrOutOfStock):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidPassphrase):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrRelayFailed):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// RespondError writes err as a JSON body. Validation failures carry a field
// map; unexpected errors are logged and hidden from the client.
func RespondError(rnd *render.Render, w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		rnd.JSON(w, status, map[string]interface{}{
			"error":  "validation failed",
			"fields": FormatValidationErrors(verrs),
		})
		return
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error("request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		message = "internal server error"
	}
	rnd.JSON(w, status, map[string]string{"error": message})
}
