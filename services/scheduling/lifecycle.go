package scheduling

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"careconnect/models"
	"careconnect/utils"
)

// Status state machine:
//
//	PENDING_CONFIRMATION --CONFIRM--> CONFIRMED
//	CONFIRMED --COMPLETE--> COMPLETED
//	CONFIRMED --NO_SHOW--> NO_SHOW
//	PENDING_CONFIRMATION | CONFIRMED --CANCEL--> CANCELLED
//
// COMPLETED, NO_SHOW, and CANCELLED are terminal. Only CANCEL releases the
// booked interval.
var validTransitions = map[string]map[models.TransitionAction]string{
	models.StatusPendingConfirmation: {
		models.ActionConfirm: models.StatusConfirmed,
		models.ActionCancel:  models.StatusCancelled,
	},
	models.StatusConfirmed: {
		models.ActionComplete: models.StatusCompleted,
		models.ActionNoShow:   models.StatusNoShow,
		models.ActionCancel:   models.StatusCancelled,
	},
}

// nextStatus resolves the target status, failing for terminal states and
// undefined edges.
func nextStatus(current string, action models.TransitionAction) (string, error) {
	edges, ok := validTransitions[current]
	if !ok {
		return "", NewErrorf(CodeInvalidTransition, "appointment status %s is terminal", current)
	}
	next, ok := edges[action]
	if !ok {
		return "", NewErrorf(CodeInvalidTransition, "action %s not allowed from status %s", action, current)
	}
	return next, nil
}

// authorizeTransition enforces the role/ownership contract: cancelling is
// open to the owning patient, the owning provider, and administrators;
// confirm, complete, and no-show belong to the owning provider and
// administrators only.
func authorizeTransition(appt *models.Appointment, action models.TransitionAction, actor models.Identity) error {
	isAdmin := actor.Role == models.RoleAdmin
	isOwningPatient := actor.Role == models.RolePatient && actor.ID == appt.PatientID
	isOwningProvider := actor.Role == models.RoleProvider && actor.ID == appt.ProviderID

	switch action {
	case models.ActionCancel:
		if isOwningPatient || isOwningProvider || isAdmin {
			return nil
		}
	case models.ActionConfirm, models.ActionComplete, models.ActionNoShow:
		if isOwningProvider || isAdmin {
			return nil
		}
	default:
		return NewErrorf(CodeValidation, "unknown action %s", action)
	}
	return NewErrorf(CodeForbidden, "actor %s may not %s this appointment", actor.ID, action)
}

// Transition applies a lifecycle action after checking existence,
// authorization, and the state machine, in that order. Nothing is persisted
// unless every check passes.
func (se *DefaultSchedulingEngine) Transition(ctx context.Context, appointmentID string, action models.TransitionAction, actor models.Identity) (*models.Appointment, error) {
	logger := utils.GetLogger()

	appt, err := se.Appointments.GetByID(ctx, appointmentID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, NewErrorf(CodeNotFound, "appointment %s not found", appointmentID)
		}
		return nil, NewErrorf(CodeStore, "reading appointment: %v", err)
	}

	if err := authorizeTransition(appt, action, actor); err != nil {
		return nil, err
	}

	next, err := nextStatus(appt.Status, action)
	if err != nil {
		return nil, err
	}

	updated, err := se.Appointments.UpdateStatus(ctx, appointmentID, next)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, NewErrorf(CodeNotFound, "appointment %s not found", appointmentID)
		}
		return nil, NewErrorf(CodeStore, "updating appointment status: %v", err)
	}

	logger.Info("appointment transitioned",
		zap.String("appointmentId", appointmentID),
		zap.String("action", string(action)),
		zap.String("from", appt.Status),
		zap.String("to", next),
		zap.String("actorRole", actor.Role),
	)
	return updated, nil
}
