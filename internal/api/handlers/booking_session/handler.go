package booking_session

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/igextreme/agenda-service/internal/api/handlers"
	"github.com/igextreme/agenda-service/internal/booking"
	createBooking "github.com/igextreme/agenda-service/internal/usecase/create_booking"
	"github.com/igextreme/agenda-service/pkg/types"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgSessionNotFound    = "sessão de agendamento não encontrada ou expirada"
	msgUnknownAction      = "ação desconhecida"
	msgInvalidStep        = "ação não permitida na etapa atual"
	msgInvalidID          = "identificador de profissional inválido"
	msgSlotRequired       = "escolha uma data e um horário"
	msgTimeNotOffered     = "o horário escolhido não está disponível nesta data"
	msgContactRequired    = "nome e telefone são obrigatórios"
	msgInvalidTime        = "horário inválido, esperado o formato HH:MM"
	msgBookingFailed      = "não foi possível concluir o agendamento, tente novamente"
)

// Handler exposes the guided booking flow as server-side sessions.
type Handler struct {
	store    SessionStore
	schedule ScheduleService
	booker   CreateBookingUseCase
	logger   Logger
}

func NewHandler(store SessionStore, schedule ScheduleService, booker CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		store:    store,
		schedule: schedule,
		booker:   booker,
		logger:   logger,
	}
}

// HandleCreate POST /api/v1/booking-sessions
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	session := h.store.Create()
	h.logger.Info("POST /booking-sessions - Session created: token=%s", session.Token)

	var resp *SessionResponse
	_ = session.Do(func(f *booking.Flow) error {
		resp = fromFlow(session.Token, f)
		return nil
	})
	handlers.RespondJSON(w, http.StatusCreated, resp)
}

// HandleGet GET /api/v1/booking-sessions/{token}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(mux.Vars(r)["token"])
	if err != nil {
		handlers.RespondNotFound(w, msgSessionNotFound)
		return
	}

	var resp *SessionResponse
	_ = session.Do(func(f *booking.Flow) error {
		resp = fromFlow(session.Token, f)
		return nil
	})
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// HandleAction POST /api/v1/booking-sessions/{token}/actions
func (h *Handler) HandleAction(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	session, err := h.store.Get(token)
	if err != nil {
		handlers.RespondNotFound(w, msgSessionNotFound)
		return
	}

	var req ActionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /booking-sessions/actions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var (
		resp      *SessionResponse
		bookingOK *createBooking.Response
	)

	err = session.Do(func(f *booking.Flow) error {
		var actionErr error
		switch req.Action {
		case ActionSelectProfessional:
			id, parseErr := uuid.Parse(req.ProfessionalID)
			if parseErr != nil {
				return parseErr
			}
			actionErr = f.SelectProfessional(id)

		case ActionSelectDate:
			actionErr = f.SelectDate(req.Date)

		case ActionSelectTime:
			t, parseErr := types.NewTimeStringFromString(req.Time)
			if parseErr != nil {
				return parseErr
			}
			offered, slotsErr := h.schedule.BookableSlots(r.Context(), f.ProfessionalID, f.Date)
			if slotsErr != nil {
				return slotsErr
			}
			actionErr = f.SelectTime(t, offered)

		case ActionProceed:
			actionErr = f.ProceedToContact()

		case ActionEnterContact:
			actionErr = f.EnterContact(req.Name, req.Phone)

		case ActionConfirm:
			result, confirmErr := f.Confirm(r.Context(), h.booker)
			if confirmErr != nil {
				return confirmErr
			}
			bookingOK = result

		case ActionBack:
			actionErr = f.Back()

		case ActionReset:
			f.Reset()

		default:
			return errUnknownAction
		}

		if actionErr != nil {
			return actionErr
		}
		resp = fromFlow(token, f)
		return nil
	})

	if err != nil {
		h.respondActionError(w, req.Action, err)
		return
	}

	if bookingOK != nil {
		// Confirm resets the flow; echo the created booking alongside the
		// fresh state so the client sees the outcome.
		resp.Booking = fromBooking(bookingOK)
		h.logger.Info("POST /booking-sessions/actions - Booking confirmed: token=%s appointment=%s",
			token, bookingOK.AppointmentID)
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

var errUnknownAction = errors.New("unknown action")

func (h *Handler) respondActionError(w http.ResponseWriter, action string, err error) {
	switch {
	case errors.Is(err, errUnknownAction):
		handlers.RespondBadRequest(w, msgUnknownAction)
	case errors.Is(err, booking.ErrInvalidTransition):
		handlers.RespondError(w, http.StatusConflict, msgInvalidStep)
	case errors.Is(err, booking.ErrProfessionalRequired):
		handlers.RespondBadRequest(w, msgInvalidID)
	case errors.Is(err, booking.ErrSlotRequired):
		handlers.RespondBadRequest(w, msgSlotRequired)
	case errors.Is(err, booking.ErrTimeNotOffered):
		handlers.RespondError(w, http.StatusConflict, msgTimeNotOffered)
	case errors.Is(err, booking.ErrContactRequired):
		handlers.RespondBadRequest(w, msgContactRequired)
	case errors.Is(err, types.ErrInvalidTimeString):
		handlers.RespondBadRequest(w, msgInvalidTime)
	case errors.Is(err, createBooking.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgBookingFailed)
	case errors.Is(err, createBooking.ErrClientCreatedBookingFailed):
		h.logger.Error("POST /booking-sessions/actions - Partial booking failure: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, msgBookingFailed)
	default:
		if action == ActionSelectProfessional {
			// uuid parse failures land here.
			handlers.RespondBadRequest(w, msgInvalidID)
			return
		}
		h.logger.Error("POST /booking-sessions/actions - Action %q failed: %v", action, err)
		handlers.RespondInternalError(w)
	}
}
