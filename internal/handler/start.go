package handler

import (
	"fmt"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start and the main menu button
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User opened main menu",
		zap.Int64("chat_id", userID),
		zap.String("username", c.Sender().Username),
	)

	h.ResetState(userID)

	text := "🏠 Main menu\n\nSend me any word to look it up, or pick an action:"
	if user, ok := h.auth.CurrentUser(); ok {
		text = fmt.Sprintf("🏠 Main menu\n\nLogged in as %s.\nSend me any word to look it up, or pick an action:", user.Email)
	}

	if c.Callback() != nil {
		if err := c.Edit(text, h.mainMenuMarkup()); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil
			}
			return c.Send(text, h.mainMenuMarkup())
		}
		return c.Respond()
	}
	return c.Send(text, h.mainMenuMarkup())
}

// handleCancel cancels current operation and resets state
func (h *Handler) handleCancel(c tele.Context) error {
	userID := c.Sender().ID

	h.ResetState(userID)

	text := "🏠 Main menu\n\nSend me any word to look it up, or pick an action:"
	if err := c.Edit(text, h.mainMenuMarkup()); err != nil {
		if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
			return nil
		}
		return c.Send(text, h.mainMenuMarkup())
	}
	return c.Respond()
}
