package handler

import (
	"errors"

	"lexibook/internal/domain"
	"lexibook/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleLoginButton starts the login conversation
func (h *Handler) handleLoginButton(c tele.Context) error {
	if user, ok := h.auth.CurrentUser(); ok {
		return c.Respond(&tele.CallbackResponse{
			Text:      "Already logged in as " + user.Email,
			ShowAlert: true,
		})
	}

	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateWaitingLoginEmail})

	if err := c.Edit("🔑 What's your email?", cancelMarkup()); err != nil {
		if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
			return nil
		}
		return c.Send("🔑 What's your email?", cancelMarkup())
	}
	return c.Respond()
}

// handleRegisterButton starts the registration conversation
func (h *Handler) handleRegisterButton(c tele.Context) error {
	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateWaitingRegEmail})

	if err := c.Edit("📝 What email do you want to register with?", cancelMarkup()); err != nil {
		if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
			return nil
		}
		return c.Send("📝 What email do you want to register with?", cancelMarkup())
	}
	return c.Respond()
}

// finishLogin completes the login conversation with the collected credentials.
// Directory errors map to field-level feedback; anything unrecognized is
// logged and the flow simply does not proceed.
func (h *Handler) finishLogin(c tele.Context, email, password string) error {
	err := h.auth.Login(email, password)
	switch {
	case err == nil:
		h.logger.Info("Login succeeded", zap.Int64("chat_id", c.Sender().ID))
		return c.Send("✅ Logged in as "+email+".", h.mainMenuMarkup())

	case errors.Is(err, service.ErrEmailNotFound):
		return c.Send("No account exists with that email. Try again or register first.", h.mainMenuMarkup())

	case errors.Is(err, service.ErrPasswordMismatch):
		return c.Send("That password does not match. Try logging in again.", h.mainMenuMarkup())

	default:
		h.logger.Error("Unrecognized login error", zap.Error(err))
		return c.Send("Could not log you in right now. Please try again.", h.mainMenuMarkup())
	}
}

// finishRegister completes the registration conversation. Registration does
// not log the new account in.
func (h *Handler) finishRegister(c tele.Context, email, password string) error {
	err := h.auth.Register(email, password)
	switch {
	case err == nil:
		h.logger.Info("Registration succeeded", zap.Int64("chat_id", c.Sender().ID))
		return c.Send("✅ Account created for "+email+". Log in to start bookmarking.", h.mainMenuMarkup())

	case errors.Is(err, service.ErrDuplicateEmail):
		return c.Send("That email is already registered. Log in instead.", h.mainMenuMarkup())

	default:
		h.logger.Error("Unrecognized registration error", zap.Error(err))
		return c.Send("Could not create the account right now. Please try again.", h.mainMenuMarkup())
	}
}

// handleLogout clears the session
func (h *Handler) handleLogout(c tele.Context) error {
	h.auth.Logout()
	h.ResetState(c.Sender().ID)

	h.logger.Info("User logged out", zap.Int64("chat_id", c.Sender().ID))

	text := "👋 Logged out.\n\n🏠 Main menu"
	if err := c.Edit(text, h.mainMenuMarkup()); err != nil {
		if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
			return nil
		}
		return c.Send(text, h.mainMenuMarkup())
	}
	return c.Respond()
}
