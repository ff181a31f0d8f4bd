package handler

import (
	"context"
	"fmt"
	"strings"

	"lexibook/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const (
	maxRenderedEntries     = 4
	maxRenderedDefinitions = 3
	maxSaveButtons         = 6
)

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	state := h.GetState(userID)

	switch state.State {
	case domain.StateWaitingSearchWord:
		h.ResetState(userID)
		return h.runSearch(c, text)

	case domain.StateWaitingSynonymWord:
		h.ResetState(userID)
		return h.runSynonymSearch(c, text)

	case domain.StateWaitingLoginEmail:
		h.SetState(userID, &domain.StateData{State: domain.StateWaitingLoginPassword, Email: text})
		return c.Send("And your password:", cancelMarkup())

	case domain.StateWaitingLoginPassword:
		h.ResetState(userID)
		return h.finishLogin(c, state.Email, text)

	case domain.StateWaitingRegEmail:
		h.SetState(userID, &domain.StateData{State: domain.StateWaitingRegPassword, Email: text})
		return c.Send("Pick a password:", cancelMarkup())

	case domain.StateWaitingRegPassword:
		h.ResetState(userID)
		return h.finishRegister(c, state.Email, text)

	default:
		// Idle: any plain word is a direct search
		return h.runSearch(c, text)
	}
}

// handleSearchButton starts the direct search flow
func (h *Handler) handleSearchButton(c tele.Context) error {
	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateWaitingSearchWord})

	if err := c.Edit("🔍 Which word should I look up?", cancelMarkup()); err != nil {
		if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
			return nil
		}
		return c.Send("🔍 Which word should I look up?", cancelMarkup())
	}
	return c.Respond()
}

// handleSynonymsButton starts the synonym search flow
func (h *Handler) handleSynonymsButton(c tele.Context) error {
	h.SetState(c.Sender().ID, &domain.StateData{State: domain.StateWaitingSynonymWord})

	if err := c.Edit("🔗 Which word should I find synonyms for?", cancelMarkup()); err != nil {
		if handleErr := h.handleEditError(err, c, c.Sender().ID); handleErr == nil {
			return nil
		}
		return c.Send("🔗 Which word should I find synonyms for?", cancelMarkup())
	}
	return c.Respond()
}

// runSearch performs a direct lookup and renders the outcome
func (h *Handler) runSearch(c tele.Context, word string) error {
	h.rememberChat(c)

	words, err := h.search.Search(context.Background(), word)
	if err != nil {
		return h.sendLookupError(c)
	}

	h.logger.Info("Search completed",
		zap.Int64("chat_id", c.Sender().ID),
		zap.String("word", word),
		zap.Int("entries", len(words)),
	)

	return h.sendResults(c, words)
}

// runSynonymSearch performs the synonym fan-out and renders the outcome
func (h *Handler) runSynonymSearch(c tele.Context, word string) error {
	h.rememberChat(c)

	words, err := h.search.FindSynonyms(context.Background(), word)
	if err != nil {
		return h.sendLookupError(c)
	}

	h.logger.Info("Synonym search completed",
		zap.Int64("chat_id", c.Sender().ID),
		zap.String("word", word),
		zap.Int("entries", len(words)),
	)

	return h.sendResults(c, words)
}

// sendLookupError renders the orchestrator's current error state inline
func (h *Handler) sendLookupError(c tele.Context) error {
	lookupErr := h.search.Err()
	if lookupErr == nil {
		return c.Send("Something went wrong. Please try again.", h.mainMenuMarkup())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "⚠️ %s\n\n%s", lookupErr.Title, lookupErr.Message)
	if lookupErr.Resolution != "" {
		fmt.Fprintf(&b, "\n\n%s", lookupErr.Resolution)
	}
	return c.Send(b.String(), h.mainMenuMarkup())
}

// sendResults renders dictionary entries with save buttons for each meaning
func (h *Handler) sendResults(c tele.Context, words []domain.Word) error {
	if len(words) == 0 {
		return c.Send("No entries found.", h.mainMenuMarkup())
	}

	var b strings.Builder
	for i, word := range words {
		if i == maxRenderedEntries {
			fmt.Fprintf(&b, "…and %d more entries.\n", len(words)-i)
			break
		}

		fmt.Fprintf(&b, "📖 %s", word.Word)
		if phonetic := word.PhoneticText(); phonetic != "" {
			fmt.Fprintf(&b, "  %s", phonetic)
		}
		b.WriteString("\n")

		for _, meaning := range word.Meanings {
			fmt.Fprintf(&b, "\n▫️ %s\n", meaning.PartOfSpeech)
			for j, def := range meaning.Definitions {
				if j == maxRenderedDefinitions {
					break
				}
				fmt.Fprintf(&b, "  %d. %s\n", j+1, def.Definition)
				if def.Example != "" {
					fmt.Fprintf(&b, "     “%s”\n", def.Example)
				}
			}
			if len(meaning.Synonyms) > 0 {
				fmt.Fprintf(&b, "  Synonyms: %s\n", strings.Join(meaning.Synonyms, ", "))
			}
		}
		b.WriteString("\n")
	}

	markup := &tele.ReplyMarkup{}
	rows := h.saveButtonRows(markup, words)
	rows = append(rows, markup.Row(btnMainMenu))
	markup.Inline(rows...)

	return c.Send(b.String(), markup)
}

// saveButtonRows builds one save button per rendered meaning, capped, and
// only when someone is logged in
func (h *Handler) saveButtonRows(markup *tele.ReplyMarkup, words []domain.Word) []tele.Row {
	if _, ok := h.auth.CurrentUser(); !ok {
		return nil
	}

	var rows []tele.Row
	count := 0
	for i, word := range words {
		if i == maxRenderedEntries {
			break
		}
		for _, meaning := range word.Meanings {
			if count == maxSaveButtons {
				return rows
			}
			saved := h.bookmarks.Contains(domain.BookmarkKey{Word: word.Word, PartOfSpeech: meaning.PartOfSpeech})
			label := fmt.Sprintf("🔖 Save %s (%s)", word.Word, meaning.PartOfSpeech)
			if saved {
				label = fmt.Sprintf("✅ Saved %s (%s)", word.Word, meaning.PartOfSpeech)
			}
			btn := markup.Data(label, "save", word.Word, meaning.PartOfSpeech)
			rows = append(rows, markup.Row(btn))
			count++
		}
	}
	return rows
}
