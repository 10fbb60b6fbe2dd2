// chess-cli is a console front end for the chess engine: it reads
// move text line by line, applies it to a game session, and prints
// the SAN transcript and board after each move.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lgbarn/chess-engine-go/internal/chess"
	"github.com/lgbarn/chess-engine-go/internal/config"
	"github.com/lgbarn/chess-engine-go/internal/game"
)

func main() {
	cfg, err := config.FromFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "chess-cli: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	session, err := newSession(cfg.StartFEN)
	if err != nil {
		return err
	}

	for _, text := range cfg.MoveScript {
		if err := playMove(session, text); err != nil {
			return fmt.Errorf("scripted move %q: %w", text, err)
		}
	}

	showBoard(session, cfg)
	if reportResult(session) {
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("Move (%s): ", prompt(session))
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "fen":
			fmt.Println(session.FEN())
			continue
		case "moves":
			fmt.Println(strings.Join(session.Moves(), " "))
			continue
		case "undo":
			if err := session.Undo(); err != nil {
				fmt.Println(err)
				continue
			}
			showBoard(session, cfg)
			continue
		case "new":
			session.Reset()
			showBoard(session, cfg)
			continue
		}

		if err := playMove(session, line); err != nil {
			fmt.Printf("Invalid move: %v\n", err)
			continue
		}
		showBoard(session, cfg)
		if reportResult(session) {
			return nil
		}
	}
}

func newSession(fen string) (*game.Session, error) {
	if fen == "" {
		return game.NewSession(), nil
	}
	return game.NewSessionFromFEN(fen)
}

func playMove(session *game.Session, text string) error {
	san, err := session.ApplyMove(text)
	if err != nil {
		return err
	}
	fmt.Println(san)
	return nil
}

func showBoard(session *game.Session, cfg *config.Config) {
	if cfg.ShowDiagram {
		fmt.Print(session.Position().Diagram())
	}
}

func prompt(session *game.Session) string {
	pos := session.Position()
	colour := "w"
	if pos.Turn == chess.Black {
		colour = "b"
	}
	return fmt.Sprintf("%d%s", pos.FullmoveNumber, colour)
}

// reportResult prints the terminal classification, if any, and
// reports whether the game is over.
func reportResult(session *game.Session) bool {
	if session.Status() == game.InProgress {
		return false
	}
	fmt.Printf("%s (%s)\n", session.Status(), session.Method())
	return true
}
