package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"multijack/internal/config"
	"multijack/internal/game"
)

const (
	actionDraw = "Draw"
	actionStop = "Stop"

	menuAgain = "Play again"
	menuHome  = "Home"
	menuQuit  = "Quit"
)

func main() {
	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Multi", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("Jack", pterm.FgDarkGray.ToStyle()),
	).Render()

	if err := run(logger, cfg.DefaultPlayers, cfg.Rand()); err != nil {
		logger.Error("game aborted", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, players int, r *rand.Rand) error {
	for {
		n, quit, err := choosePlayers(players)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		players = n

		s := game.NewSession(players, r)
		for {
			logger.Info("round dealt", "round", s.ID, "players", players)
			if err := playRound(s); err != nil {
				return err
			}
			logger.Info("round ended", "round", s.ID, "winners", fmt.Sprint(game.Winners(s.Results())))

			next, err := pterm.DefaultInteractiveSelect.
				WithDefaultText("What next?").
				WithOptions([]string{menuAgain, menuHome, menuQuit}).
				Show()
			if err != nil {
				return fmt.Errorf("failed to read menu choice: %w", err)
			}

			switch next {
			case menuAgain:
				s.Reset(players)
				continue
			case menuQuit:
				return nil
			}
			break
		}
	}
}

// choosePlayers is the setup screen. It reports quit when the user leaves.
func choosePlayers(current int) (int, bool, error) {
	options := make([]string, 0, game.MaxPlayers-game.MinPlayers+2)
	for n := game.MinPlayers; n <= game.MaxPlayers; n++ {
		options = append(options, strconv.Itoa(n))
	}
	options = append(options, menuQuit)

	choice, err := pterm.DefaultInteractiveSelect.
		WithDefaultText("Number of players").
		WithOptions(options).
		WithDefaultOption(strconv.Itoa(game.ClampPlayers(current))).
		Show()
	if err != nil {
		return 0, false, fmt.Errorf("failed to read player count: %w", err)
	}
	if choice == menuQuit {
		return 0, true, nil
	}

	n, err := strconv.Atoi(choice)
	if err != nil {
		return 0, false, fmt.Errorf("unexpected player count %q: %w", choice, err)
	}
	return game.ClampPlayers(n), false, nil
}

func playRound(s *game.Session) error {
	for !s.Ended {
		if err := printTable(s); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		prompt := pterm.Sprintf("Player %d, your move", s.Current+1)
		action, err := pterm.DefaultInteractiveSelect.
			WithDefaultText(prompt).
			WithOptions([]string{actionDraw, actionStop}).
			Show()
		if err != nil {
			return fmt.Errorf("failed to read action: %w", err)
		}

		applyAction(s, action)
	}

	if err := printTable(s); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	if err := printResults(s); err != nil {
		return fmt.Errorf("failed to render results: %w", err)
	}
	return nil
}

// applyAction plays the chosen action for the current player and reports
// whether the session changed.
func applyAction(s *game.Session, action string) bool {
	idx := s.Current
	switch action {
	case actionDraw:
		if !s.Draw(idx) {
			pterm.Warning.Println("No cards left, you have to stop.")
			return false
		}
		if p := s.Players[idx]; p.IsBust() {
			pterm.Error.Printfln("Player %d busts with %d!", idx+1, p.Score())
		}
		return true
	case actionStop:
		s.Stop(idx)
		pterm.Info.Printfln("Player %d stops at %d.", idx+1, s.Players[idx].Score())
		return true
	}
	return false
}
