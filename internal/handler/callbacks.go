package handler

import (
	"strings"
	"unicode"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Dynamic buttons carrying "word|partOfSpeech" payloads
var (
	btnSave = tele.Btn{Unique: "save"}
	btnDel  = tele.Btn{Unique: "del"}
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleEditError handles errors from c.Edit() - if message is not modified, just acknowledge callback
// Otherwise, acknowledge callback and return error so caller can send new message
func (h *Handler) handleEditError(err error, c tele.Context, userID int64) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()
	// If message is not modified, it means it was already edited by another callback
	// Just acknowledge and return nil - don't send new message
	if strings.Contains(errStr, "message is not modified") {
		h.logger.Debug("Message already modified by another callback, acknowledging",
			zap.Int64("chat_id", userID),
			zap.String("callback_id", c.Callback().ID),
		)
		c.Respond()
		return nil
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("chat_id", userID),
		zap.String("callback_id", c.Callback().ID),
	)
	// Always acknowledge callback before sending new message
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return err
}

// handleSaveCallback routes a save button press
func (h *Handler) handleSaveCallback(c tele.Context) error {
	return h.handleSaveBookmark(c, cleanCallbackData(c.Callback().Data))
}

// handleDeleteCallback routes a remove button press
func (h *Handler) handleDeleteCallback(c tele.Context) error {
	return h.handleRemoveBookmark(c, cleanCallbackData(c.Callback().Data))
}

// handleCallback handles callback queries that did not match a registered button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	data := cleanCallbackData(callback.Data)
	h.logger.Info("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("chat_id", c.Sender().ID),
	)

	// Handle specific button callbacks by Unique first
	switch callback.Unique {
	case "search":
		return h.handleSearchButton(c)
	case "synonyms":
		return h.handleSynonymsButton(c)
	case "bookmarks":
		return h.handleBookmarks(c)
	case "login":
		return h.handleLoginButton(c)
	case "register":
		return h.handleRegisterButton(c)
	case "logout":
		return h.handleLogout(c)
	case "cancel":
		return h.handleCancel(c)
	case "main_menu":
		return h.handleStart(c)
	case "save":
		return h.handleSaveBookmark(c, data)
	case "del":
		return h.handleRemoveBookmark(c, data)
	}

	// Handle by data prefix when Unique didn't come through
	switch {
	case strings.HasPrefix(data, "save|"):
		return h.handleSaveBookmark(c, strings.TrimPrefix(data, "save|"))
	case strings.HasPrefix(data, "del|"):
		return h.handleRemoveBookmark(c, strings.TrimPrefix(data, "del|"))
	}

	// If it's not handled, acknowledge it anyway
	h.logger.Warn("Unhandled callback in handleCallback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}
