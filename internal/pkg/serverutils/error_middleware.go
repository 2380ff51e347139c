package serverutils

import (
	"errors"

	"ai-notebook-be/internal/service"
	"ai-notebook-be/pkg/gemini"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts typed domain errors into HTTP envelopes.
// Gateway failures map onto 502 so the UI can show a transient-failure
// indicator; notebook state was left untouched by the caller.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(validationErr.Error()))
		}

		if errors.Is(err, service.ErrNotebookNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(err.Error()))
		}

		if errors.Is(err, service.ErrChatBusy) {
			return ctx.Status(fiber.StatusConflict).JSON(ErrorResponse(err.Error()))
		}

		if errors.Is(err, service.ErrStaleResponse) {
			return ctx.Status(fiber.StatusConflict).JSON(ErrorResponse(err.Error()))
		}

		var decodeErr *gemini.GuideDecodeError
		if errors.As(err, &decodeErr) {
			return ctx.Status(fiber.StatusBadGateway).JSON(ErrorResponseWithData(
				"guide generation returned malformed content",
				fiber.Map{"raw": decodeErr.Raw},
			))
		}

		var audioErr *gemini.AudioGenerationError
		if errors.As(err, &audioErr) {
			return ctx.Status(fiber.StatusBadGateway).JSON(ErrorResponse(audioErr.Error()))
		}

		var transportErr *gemini.TransportError
		if errors.As(err, &transportErr) {
			return ctx.Status(fiber.StatusBadGateway).JSON(ErrorResponse("assistant backend unavailable"))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("internal server error"))
	}
}
