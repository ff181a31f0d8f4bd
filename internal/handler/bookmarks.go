package handler

import (
	"errors"
	"fmt"
	"strings"

	"lexibook/internal/domain"
	"lexibook/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleBookmarks shows the current user's saved definitions
func (h *Handler) handleBookmarks(c tele.Context) error {
	if _, ok := h.auth.CurrentUser(); !ok {
		return c.Respond(&tele.CallbackResponse{
			Text:      "Log in to see your bookmarks",
			ShowAlert: true,
		})
	}

	list := h.bookmarks.List()
	if len(list) == 0 {
		return c.Respond(&tele.CallbackResponse{
			Text:      "You haven't saved any words yet",
			ShowAlert: true,
		})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🔖 Your bookmarks (%d):\n\n", len(list))
	for i, bm := range list {
		fmt.Fprintf(&b, "%d. %s (%s): %s\n   saved %s\n\n",
			i+1, bm.Word, bm.PartOfSpeech, bm.Definition, bm.DateCreated.Format("2 Jan 2006"))
	}

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for _, bm := range list {
		btn := markup.Data(fmt.Sprintf("🗑 Remove %s (%s)", bm.Word, bm.PartOfSpeech), "del", bm.Word, bm.PartOfSpeech)
		rows = append(rows, markup.Row(btn))
	}
	rows = append(rows, markup.Row(btnMainMenu))
	markup.Inline(rows...)

	userID := c.Sender().ID
	if c.Callback() != nil {
		if err := c.Edit(b.String(), markup); err != nil {
			if handleErr := h.handleEditError(err, c, userID); handleErr == nil {
				return nil
			}
			return c.Send(b.String(), markup)
		}
		return c.Respond()
	}
	return c.Send(b.String(), markup)
}

// handleSaveBookmark saves the meaning named by the callback data
// ("word|partOfSpeech") out of the current result set
func (h *Handler) handleSaveBookmark(c tele.Context, data string) error {
	word, partOfSpeech, ok := splitBookmarkData(data)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Malformed bookmark data"})
	}

	definition, found := findDefinition(h.search.Results(), word, partOfSpeech)
	if !found {
		return c.Respond(&tele.CallbackResponse{
			Text:      "This result is no longer current, search again first",
			ShowAlert: true,
		})
	}

	err := h.bookmarks.Add(service.BookmarkInput{
		Word:         word,
		PartOfSpeech: partOfSpeech,
		Definition:   definition,
	})
	switch {
	case err == nil:
		h.logger.Info("Bookmark saved",
			zap.Int64("chat_id", c.Sender().ID),
			zap.String("word", word),
			zap.String("part_of_speech", partOfSpeech),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Saved " + word})

	case errors.Is(err, service.ErrDuplicateBookmark):
		return c.Respond(&tele.CallbackResponse{Text: word + " is already bookmarked"})

	case errors.Is(err, service.ErrNoActiveSession):
		return c.Respond(&tele.CallbackResponse{
			Text:      "Log in to save bookmarks",
			ShowAlert: true,
		})

	default:
		h.logger.Error("Failed to save bookmark", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Could not save, try again"})
	}
}

// handleRemoveBookmark deletes the bookmark named by the callback data and
// re-renders the list
func (h *Handler) handleRemoveBookmark(c tele.Context, data string) error {
	word, partOfSpeech, ok := splitBookmarkData(data)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Malformed bookmark data"})
	}

	err := h.bookmarks.Remove(domain.BookmarkKey{Word: word, PartOfSpeech: partOfSpeech})
	if err != nil {
		if errors.Is(err, service.ErrNoActiveSession) {
			return c.Respond(&tele.CallbackResponse{
				Text:      "Log in to manage bookmarks",
				ShowAlert: true,
			})
		}
		h.logger.Error("Failed to remove bookmark", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Could not remove, try again"})
	}

	h.logger.Info("Bookmark removed",
		zap.Int64("chat_id", c.Sender().ID),
		zap.String("word", word),
		zap.String("part_of_speech", partOfSpeech),
	)

	if len(h.bookmarks.List()) == 0 {
		text := "🔖 No bookmarks left.\n\n🏠 Main menu"
		if err := c.Edit(text, h.mainMenuMarkup()); err != nil {
			if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
				return nil
			}
			return c.Send(text, h.mainMenuMarkup())
		}
		return c.Respond()
	}

	return h.handleBookmarks(c)
}

// splitBookmarkData parses "word|partOfSpeech" callback payloads
func splitBookmarkData(data string) (word, partOfSpeech string, ok bool) {
	parts := strings.SplitN(data, "|", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// findDefinition returns the first definition for (word, partOfSpeech) in
// the given entries
func findDefinition(words []domain.Word, word, partOfSpeech string) (string, bool) {
	for _, w := range words {
		if w.Word != word {
			continue
		}
		for _, m := range w.Meanings {
			if m.PartOfSpeech != partOfSpeech || len(m.Definitions) == 0 {
				continue
			}
			return m.Definitions[0].Definition, true
		}
	}
	return "", false
}
