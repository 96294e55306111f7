// Package game is the graphical front end: a window where a human drags
// pieces against one of the bots.
package game

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/notnil/chess"
	"github.com/sirupsen/logrus"

	"chessbot/bots"
	"chessbot/rules"
)

const (
	squareSize   = 80
	boardOffsetX = 20
	boardOffsetY = 60
	screenWidth  = boardOffsetX*2 + squareSize*8
	screenHeight = boardOffsetY + squareSize*8 + 60

	buttonWidth  = 200
	buttonHeight = 60
)

var (
	lightSquare = color.RGBA{240, 217, 181, 255}
	darkSquare  = color.RGBA{181, 136, 99, 255}
	whitePiece  = color.RGBA{250, 250, 250, 255}
	blackPiece  = color.RGBA{30, 30, 30, 255}
)

type Game struct {
	mu sync.Mutex

	chessGame    *chess.Game
	selected     chess.Square
	dragging     *chess.Piece
	dragX, dragY int
	playerColor  chess.Color
	gameStarted  bool
	botThinking  bool

	bots       []bots.ChessBot
	currentBot int
}

// NewGame shows the colour picker. players must not be empty; the first one
// is selected.
func NewGame(players []bots.ChessBot) *Game {
	return &Game{bots: players}
}

// Run opens the window and blocks until it is closed.
func Run(players []bots.ChessBot) error {
	if len(players) == 0 {
		return fmt.Errorf("game: no bots to play against")
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("chessgo")
	return ebiten.RunGame(NewGame(players))
}

func (g *Game) Update() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.currentBot = (g.currentBot + 1) % len(g.bots)
	}

	if !g.gameStarted {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			if c := colorButtonAt(ebiten.CursorPosition()); c != chess.NoColor {
				g.startGame(c)
			}
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyN) && !g.botThinking {
		g.gameStarted = false
		return nil
	}

	if g.chessGame.Outcome() != chess.NoOutcome || g.botThinking {
		return nil
	}

	if g.chessGame.Position().Turn() != g.playerColor {
		g.startBotMove()
		return nil
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if sq, ok := squareAt(x, y); ok {
			piece := g.chessGame.Position().Board().Piece(sq)
			if piece != chess.NoPiece && piece.Color() == g.playerColor {
				g.selected = sq
				g.dragging = &piece
			}
		}
	}

	if g.dragging != nil {
		g.dragX, g.dragY = ebiten.CursorPosition()
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && g.dragging != nil {
		if target, ok := squareAt(ebiten.CursorPosition()); ok {
			if move := rules.MoveBetween(g.chessGame, g.selected, target); move != nil {
				if err := g.chessGame.Move(move); err != nil {
					logrus.WithError(err).Warn("rejected player move")
				}
			}
		}
		g.dragging = nil
	}

	return nil
}

func (g *Game) startGame(c chess.Color) {
	g.chessGame = chess.NewGame()
	g.playerColor = c
	g.gameStarted = true
	g.dragging = nil
}

// startBotMove searches on a snapshot in the background. Callers hold mu.
func (g *Game) startBotMove() {
	g.botThinking = true
	bot := g.bots[g.currentBot]
	live := g.chessGame
	snapshot := live.Clone()

	go func() {
		move, err := bot.BestMove(snapshot)

		g.mu.Lock()
		defer g.mu.Unlock()
		g.botThinking = false

		switch {
		case err != nil:
			logrus.WithError(err).WithField("bot", bot.Name()).Error("bot failed to move")
		case move == nil:
			logrus.WithField("bot", bot.Name()).Warn("bot found no move")
		case live != g.chessGame:
			// A new game was started while the bot was thinking.
		default:
			if err := g.chessGame.Move(move); err != nil {
				logrus.WithError(err).WithField("bot", bot.Name()).Error("bot played an illegal move")
			}
		}
	}()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ebitenutil.DebugPrintAt(screen, "Bot: "+g.bots[g.currentBot].Name()+"  (B to switch)", boardOffsetX, screenHeight-40)

	if !g.gameStarted {
		g.drawColorPicker(screen)
		return
	}

	g.drawBoard(screen)

	status := "Your move"
	switch {
	case g.chessGame.Outcome() != chess.NoOutcome:
		status = fmt.Sprintf("Result: %s (%s)  N for a new game", g.chessGame.Outcome(), g.chessGame.Method())
	case g.botThinking:
		status = "Bot is thinking..."
	case g.chessGame.Position().Turn() != g.playerColor:
		status = "Bot to move"
	}
	ebitenutil.DebugPrintAt(screen, status, boardOffsetX, 20)
}

func (g *Game) drawColorPicker(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, "Chess in Go", screenWidth/2-35, screenHeight/2-50)
	ebitenutil.DebugPrintAt(screen, "Choose your colour:", screenWidth/2-55, screenHeight/2)

	x, y := whiteButtonPos()
	vector.DrawFilledRect(screen, float32(x), float32(y), buttonWidth, buttonHeight, color.RGBA{200, 200, 200, 255}, false)
	ebitenutil.DebugPrintAt(screen, "Play white", x+65, y+22)

	x, y = blackButtonPos()
	vector.DrawFilledRect(screen, float32(x), float32(y), buttonWidth, buttonHeight, color.RGBA{50, 50, 50, 255}, false)
	ebitenutil.DebugPrintAt(screen, "Play black", x+65, y+22)
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	board := g.chessGame.Position().Board()

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			clr := lightSquare
			if (row+col)%2 == 1 {
				clr = darkSquare
			}
			x, y := squareOrigin(col, row)
			vector.DrawFilledRect(screen, float32(x), float32(y), squareSize, squareSize, clr, false)

			sq := chess.NewSquare(chess.File(col), chess.Rank(7-row))
			piece := board.Piece(sq)
			if piece != chess.NoPiece && (g.dragging == nil || sq != g.selected) {
				drawPiece(screen, piece, x+squareSize/2, y+squareSize/2)
			}
		}
	}

	if g.dragging != nil {
		drawPiece(screen, *g.dragging, g.dragX, g.dragY)
	}
}

func drawPiece(screen *ebiten.Image, piece chess.Piece, cx, cy int) {
	fill, rim := whitePiece, blackPiece
	if piece.Color() == chess.Black {
		fill, rim = blackPiece, whitePiece
	}
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), squareSize*0.38, rim, true)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), squareSize*0.34, fill, true)
	ebitenutil.DebugPrintAt(screen, pieceLetter(piece), cx-3, cy-8)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
