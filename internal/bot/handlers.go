package bot

import (
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"strings"

	"multijack/internal/config"
	"multijack/internal/game"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender is the part of *tgbotapi.BotAPI the handler talks to.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Handler struct {
	bot   Sender
	cfg   *config.Config
	games *game.Manager
	rng   *rand.Rand
}

func NewHandler(bot Sender, cfg *config.Config) *Handler {
	return &Handler{
		bot:   bot,
		cfg:   cfg,
		games: game.NewManager(),
		rng:   cfg.Rand(),
	}
}

// ============== HELPERS ==============

func (h *Handler) sendWithKeyboard(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

func (h *Handler) send(chatID int64, text string) {
	if _, err := h.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}

// show replaces the callback's message in place, or sends a new one when
// there is nothing to edit.
func (h *Handler) show(chatID int64, msg *tgbotapi.Message, text string, kb tgbotapi.InlineKeyboardMarkup) {
	if msg == nil {
		h.sendWithKeyboard(chatID, text, kb)
		return
	}

	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, msg.MessageID, text, kb)
	if _, err := h.bot.Send(edit); err != nil {
		log.Printf("Failed to edit message: %v", err)
	}
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}
}

// lastPlayers is the chat's current player count, or the configured default.
func (h *Handler) lastPlayers(chatID int64) int {
	players := h.cfg.DefaultPlayers
	h.games.Do(chatID, func(s *game.Session) {
		players = s.PlayerCount()
	})
	return players
}

// ============== FORMATTING ==============

func formatHand(cards []game.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}

func formatSetup(players int) string {
	return fmt.Sprintf("🎴 Multi Blackjack 🎴\n\nPlayers: %d\n\nPick the number of players and start.",
		game.ClampPlayers(players))
}

func formatTable(s *game.Session) string {
	var sb strings.Builder
	sb.WriteString("🃏 Blackjack in progress 🃏\n\n")

	for i, p := range s.Players {
		marker := "  "
		if i == s.Current && !s.Ended {
			marker = "▶ "
		}
		sb.WriteString(fmt.Sprintf("%sPlayer %d: %s (%d)", marker, i+1, formatHand(p.Hand), p.Score()))
		if p.Stopped {
			sb.WriteString(" ✔ stopped")
		}
		sb.WriteString("\n")
	}

	if !s.Ended {
		sb.WriteString(fmt.Sprintf("\nPlayer %d, your move.", s.Current+1))
	}
	return sb.String()
}

func outcomeLabel(o game.Outcome) string {
	switch o {
	case game.OutcomeBlackjack:
		return "🂡 Blackjack!"
	case game.OutcomeWinner:
		return "🏆 Winner!"
	case game.OutcomeBust:
		return "💀 Bust!"
	default:
		return ""
	}
}

func formatResults(s *game.Session) string {
	var sb strings.Builder
	sb.WriteString("🎉 Results 🎉\n\n")

	for _, r := range s.Results() {
		p := s.Players[r.Index]
		line := fmt.Sprintf("Player %d: %s — %d pts", r.Index+1, formatHand(p.Hand), r.Score)
		if label := outcomeLabel(r.Outcome); label != "" {
			line += " " + label
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}

// screen renders whichever view matches the session's phase.
func screen(s *game.Session) (string, tgbotapi.InlineKeyboardMarkup) {
	if s.Ended {
		return formatResults(s), ResultKeyboard(s.ID)
	}
	return formatTable(s), TurnKeyboard(s.Current, s.ID)
}

// ============== COMMAND HANDLERS ==============

func (h *Handler) HandleStart(chatID int64) {
	players := h.lastPlayers(chatID)
	h.sendWithKeyboard(chatID, formatSetup(players), SetupKeyboard(players))
}

func (h *Handler) HandleHelp(chatID int64) {
	h.send(chatID,
		"📖 Multi Blackjack rules:\n\n"+
			"🎯 Get as close to 21 as you can without going over.\n\n"+
			"📊 Points:\n"+
			"• 2-10 — face value\n"+
			"• J, Q, K — 10\n"+
			"• A — 11 or 1\n"+
			"• Joker — 0\n\n"+
			"🎮 Players take turns on this chat:\n"+
			"• Draw — take a card\n"+
			"• Stop — keep your hand\n"+
			"Going over 21 stops you automatically.\n\n"+
			"/start — pick players\n"+
			"/play <players> — deal right away")
}

func (h *Handler) HandlePlay(chatID int64, args []string) {
	players := h.cfg.DefaultPlayers
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			h.send(chatID, fmt.Sprintf("❌ Invalid player count. Example: /play %d", h.cfg.DefaultPlayers))
			return
		}
		players = game.ClampPlayers(n)
	}

	h.deal(chatID, nil, players)
}

// deal starts a fresh round for the chat and shows its table.
func (h *Handler) deal(chatID int64, msg *tgbotapi.Message, players int) {
	var text string
	var kb tgbotapi.InlineKeyboardMarkup

	h.games.Start(chatID, players, h.rng, func(s *game.Session) {
		log.Printf("chat %d: round %s dealt for %d players", chatID, s.ID, s.PlayerCount())
		text, kb = screen(s)
	})
	h.show(chatID, msg, text, kb)
}

// ============== CALLBACK HANDLERS ==============

func (h *Handler) HandleCallback(callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil || callback.Message.Chat == nil {
		h.answerCallback(callback.ID, "")
		return
	}
	chatID := callback.Message.Chat.ID

	args, err := parseCallback(callback.Data)
	if err != nil {
		log.Printf("chat %d: %v", chatID, err)
		h.answerCallback(callback.ID, "Unknown action")
		return
	}

	notice := ""
	switch args.Action {
	case CallbackNoop:
	case CallbackPlayers:
		players := game.ClampPlayers(args.N)
		h.show(chatID, callback.Message, formatSetup(players), SetupKeyboard(players))
	case CallbackStart:
		h.deal(chatID, callback.Message, args.N)
	case CallbackDraw, CallbackStop:
		notice = h.handleTurn(chatID, callback.Message, args)
	case CallbackAgain:
		notice = h.handleAgain(chatID, callback.Message, args.Round)
	case CallbackHome:
		h.handleHome(chatID, callback.Message)
	default:
		notice = "Unknown action"
	}

	h.answerCallback(callback.ID, notice)
}

// staleRound is the notice for buttons left on an earlier round's message.
const staleRound = "This round is over"

func (h *Handler) handleTurn(chatID int64, msg *tgbotapi.Message, args callbackArgs) string {
	index := args.N
	var (
		notice  string
		text    string
		kb      tgbotapi.InlineKeyboardMarkup
		changed bool
	)

	found := h.games.Do(chatID, func(s *game.Session) {
		if args.Round != s.ID || s.Ended {
			notice = staleRound
			return
		}
		if index != s.Current {
			notice = "Not your turn"
			return
		}

		var applied bool
		if args.Action == CallbackDraw {
			applied = s.Draw(index)
		} else {
			applied = s.Stop(index)
		}
		if !applied {
			notice = "No cards left, please stop"
			return
		}

		if s.Ended {
			log.Printf("chat %d: round %s ended, winners %v", chatID, s.ID, game.Winners(s.Results()))
		}
		text, kb = screen(s)
		changed = true
	})
	if !found {
		return "No game in progress. Use /start"
	}

	if changed {
		h.show(chatID, msg, text, kb)
	}
	return notice
}

func (h *Handler) handleAgain(chatID int64, msg *tgbotapi.Message, round string) string {
	var (
		notice  string
		text    string
		kb      tgbotapi.InlineKeyboardMarkup
		changed bool
	)

	found := h.games.Do(chatID, func(s *game.Session) {
		if round != s.ID {
			notice = staleRound
			return
		}
		if !s.Ended {
			notice = "Round still in progress"
			return
		}
		s.Reset(s.PlayerCount())
		log.Printf("chat %d: round %s dealt for %d players", chatID, s.ID, s.PlayerCount())

		text, kb = screen(s)
		changed = true
	})
	if !found {
		return "No game in progress. Use /start"
	}

	if changed {
		h.show(chatID, msg, text, kb)
	}
	return notice
}

func (h *Handler) handleHome(chatID int64, msg *tgbotapi.Message) {
	players := h.lastPlayers(chatID)
	h.games.Delete(chatID)
	h.show(chatID, msg, formatSetup(players), SetupKeyboard(players))
}

// ============== MESSAGE HANDLER ==============

func (h *Handler) HandleMessage(msg *tgbotapi.Message) {
	if msg.Chat == nil {
		return
	}
	chatID := msg.Chat.ID
	parts := strings.Fields(msg.Text)

	if len(parts) == 0 {
		return
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "/start":
		h.HandleStart(chatID)
	case "/help":
		h.HandleHelp(chatID)
	case "/play":
		h.HandlePlay(chatID, args)
	}
}
