package bot

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"multijack/internal/game"
)

const (
	CallbackPlayers = "players"
	CallbackStart   = "start"
	CallbackDraw    = "draw"
	CallbackStop    = "stop"
	CallbackAgain   = "again"
	CallbackHome    = "home"
	// CallbackNoop backs buttons that only display a value.
	CallbackNoop = "noop"
)

func callbackData(action string, n int) string {
	return action + ":" + strconv.Itoa(n)
}

// roundData ties a seat action to a round: "action:n:round".
func roundData(action string, n int, round string) string {
	return callbackData(action, n) + ":" + round
}

func againData(round string) string {
	return CallbackAgain + ":" + round
}

// callbackArgs is decoded callback data. N is -1 when the action carries
// no number and Round is empty when it names no round.
type callbackArgs struct {
	Action string
	N      int
	Round  string
}

// parseCallback reads "action", "action:n", "action:n:round" or
// "again:round".
func parseCallback(data string) (callbackArgs, error) {
	parts := strings.SplitN(data, ":", 3)
	args := callbackArgs{Action: parts[0], N: -1}

	if args.Action == CallbackAgain {
		if len(parts) > 1 {
			args.Round = parts[1]
		}
		return args, nil
	}

	if len(parts) > 1 {
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			return callbackArgs{}, fmt.Errorf("bad callback argument %q: %w", data, err)
		}
		args.N = n
	}
	if len(parts) > 2 {
		args.Round = parts[2]
	}
	return args, nil
}

// SetupKeyboard lets the chat pick the player count before dealing.
func SetupKeyboard(players int) tgbotapi.InlineKeyboardMarkup {
	players = game.ClampPlayers(players)

	row := []tgbotapi.InlineKeyboardButton{}
	if players > game.MinPlayers {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("◀", callbackData(CallbackPlayers, players-1)))
	}
	row = append(row, tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%d players", players), CallbackNoop))
	if players < game.MaxPlayers {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("▶", callbackData(CallbackPlayers, players+1)))
	}

	return tgbotapi.NewInlineKeyboardMarkup(
		row,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎮 Start game", callbackData(CallbackStart, players)),
		),
	)
}

// TurnKeyboard offers Draw and Stop to the player whose turn it is in the
// given round.
func TurnKeyboard(current int, round string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👊 Draw", roundData(CallbackDraw, current, round)),
			tgbotapi.NewInlineKeyboardButtonData("✋ Stop", roundData(CallbackStop, current, round)),
		),
	)
}

func ResultKeyboard(round string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔁 Play again", againData(round)),
			tgbotapi.NewInlineKeyboardButtonData("🏠 Home", CallbackHome),
		),
	)
}
