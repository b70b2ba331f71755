package main

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"multijack/internal/game"
)

func handLine(cards []game.Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}

func playerStatus(p *game.Player) string {
	switch {
	case p.IsBust():
		return pterm.LightRed("Bust")
	case p.Stopped:
		return pterm.LightYellow("Stopped")
	default:
		return pterm.LightGreen("Active")
	}
}

func playerInfo(i int, p *game.Player, current bool) string {
	hpadding := 2
	title := "Player " + strconv.Itoa(i+1)
	if current {
		hpadding = 4
		title = pterm.LightCyan("▶ " + title)
	}
	pbox := pterm.DefaultBox.WithHorizontalPadding(hpadding).WithTopPadding(1).WithBottomPadding(1)
	hand := pterm.BgGreen.Sprint(handLine(p.Hand))
	return pbox.WithTitle(title).WithTitleTopLeft().Sprintf("%s\nScore: %d\n%s", hand, p.Score(), playerStatus(p))
}

// tablePanels lays the players out three to a row.
func tablePanels(s *game.Session) [][]pterm.Panel {
	var rows [][]pterm.Panel
	var row []pterm.Panel
	for i, p := range s.Players {
		row = append(row, pterm.Panel{Data: playerInfo(i, p, i == s.Current && !s.Ended)})
		if len(row) == 3 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}

func printTable(s *game.Session) error {
	pterm.DefaultSection.Printfln("Deck: %d cards left", s.Deck.Remaining())
	return pterm.DefaultPanel.WithPanels(tablePanels(s)).Render()
}

func outcomeText(o game.Outcome) string {
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

func resultsTable(s *game.Session) pterm.TableData {
	data := pterm.TableData{{"Player", "Hand", "Score", "Result"}}
	for _, r := range s.Results() {
		data = append(data, []string{
			strconv.Itoa(r.Index + 1),
			handLine(s.Players[r.Index].Hand),
			strconv.Itoa(r.Score),
			outcomeText(r.Outcome),
		})
	}
	return data
}

func printResults(s *game.Session) error {
	pterm.DefaultHeader.WithBackgroundStyle(pterm.BgGreen.ToStyle()).Println("🎉 Results 🎉")
	return pterm.DefaultTable.WithHasHeader().WithData(resultsTable(s)).Render()
}
