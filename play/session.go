// Package play runs a game between a human at a terminal and a bot.
package play

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/notnil/chess"
	"github.com/sirupsen/logrus"

	"chessbot/bots"
	"chessbot/rules"
)

var ErrInputClosed = errors.New("play: input closed before the game ended")

type Session struct {
	Game  *chess.Game
	Bot   bots.ChessBot
	Human chess.Color

	In  io.Reader
	Out io.Writer

	// Spinner shows an animation on Out while the bot is thinking.
	Spinner bool

	scanner *bufio.Scanner
}

// Run alternates human and bot moves until the game is over, then announces
// the result.
func (s *Session) Run() error {
	if s.Game == nil {
		s.Game = chess.NewGame()
	}
	s.scanner = bufio.NewScanner(s.In)

	fmt.Fprintln(s.Out, "Welcome to Chess!")
	s.printBoard()

	for !rules.NewBoard(s.Game).IsGameOver() {
		var err error
		if s.Game.Position().Turn() == s.Human {
			err = s.humanMove()
		} else {
			err = s.computerMove()
		}
		if err != nil {
			return err
		}
		s.printBoard()
	}

	s.announce()
	return nil
}

func (s *Session) humanMove() error {
	for {
		fmt.Fprint(s.Out, "Your move: ")
		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return fmt.Errorf("play: read move: %w", err)
			}
			return ErrInputClosed
		}

		move, err := rules.ParseMove(s.Game, s.scanner.Text())
		switch {
		case errors.Is(err, rules.ErrIllegalMove):
			fmt.Fprintln(s.Out, "Invalid move. Please try again.")
			continue
		case err != nil:
			fmt.Fprintln(s.Out, "Invalid input. Please try again.")
			continue
		}

		if err := s.Game.Move(move); err != nil {
			return fmt.Errorf("play: apply %s: %w", move, err)
		}
		fmt.Fprintln(s.Out, "You played:", move)
		return nil
	}
}

func (s *Session) computerMove() error {
	if s.Spinner {
		sp := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(s.Out))
		sp.Suffix = " " + s.Bot.Name() + " is thinking..."
		sp.Start()
		defer sp.Stop()
	}

	move, err := s.Bot.BestMove(s.Game)
	if err != nil {
		return fmt.Errorf("play: %w", err)
	}
	if move == nil {
		return fmt.Errorf("play: %s found no move in %s", s.Bot.Name(), s.Game.FEN())
	}
	if err := s.Game.Move(move); err != nil {
		return fmt.Errorf("play: %s played %s: %w", s.Bot.Name(), move, err)
	}

	logrus.WithField("bot", s.Bot.Name()).Debugf("bot played %s", move)
	fmt.Fprintln(s.Out, "Computer played:", move)
	return nil
}

func (s *Session) printBoard() {
	fmt.Fprintln(s.Out, s.Game.Position().Board().Draw())
}

func (s *Session) announce() {
	board := rules.NewBoard(s.Game)
	switch {
	case board.IsCheckmate() && board.Turn() != s.Human:
		fmt.Fprintln(s.Out, "Checkmate! You win!")
	case board.IsCheckmate():
		fmt.Fprintln(s.Out, "Checkmate! Computer wins!")
	default:
		fmt.Fprintln(s.Out, "Draw!")
	}
}
