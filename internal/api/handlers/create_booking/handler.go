package create_booking

import (
	"errors"
	"net/http"

	"github.com/igextreme/agenda-service/internal/api/handlers"
	createBooking "github.com/igextreme/agenda-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidInput       = "dados de agendamento inválidos"
	msgBookingFailed      = "cliente registrado, mas o agendamento não pôde ser criado; tente novamente"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrClientCreatedBookingFailed):
			// The client record exists; only the appointment is missing.
			h.logger.Error("POST /bookings - Partial failure: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgBookingFailed)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: appointment=%s client=%s",
		result.AppointmentID, result.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
