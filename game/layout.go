package game

import (
	"strings"

	"github.com/notnil/chess"
)

// squareAt maps a cursor position to a board square. White is always at the
// bottom.
func squareAt(x, y int) (chess.Square, bool) {
	x -= boardOffsetX
	y -= boardOffsetY
	if x < 0 || x >= squareSize*8 || y < 0 || y >= squareSize*8 {
		return chess.NoSquare, false
	}
	file := x / squareSize
	rank := 7 - y/squareSize
	return chess.NewSquare(chess.File(file), chess.Rank(rank)), true
}

// squareOrigin is the top-left pixel of the square drawn at col, row.
func squareOrigin(col, row int) (int, int) {
	return boardOffsetX + col*squareSize, boardOffsetY + row*squareSize
}

func whiteButtonPos() (int, int) {
	return screenWidth/2 - buttonWidth - 20, screenHeight/2 + 100
}

func blackButtonPos() (int, int) {
	return screenWidth/2 + 20, screenHeight/2 + 100
}

// colorButtonAt returns the colour whose button contains x, y.
func colorButtonAt(x, y int) chess.Color {
	inside := func(bx, by int) bool {
		return x > bx && x < bx+buttonWidth && y > by && y < by+buttonHeight
	}
	if inside(whiteButtonPos()) {
		return chess.White
	}
	if inside(blackButtonPos()) {
		return chess.Black
	}
	return chess.NoColor
}

// pieceLetter is the FEN letter of piece: upper case for white.
func pieceLetter(piece chess.Piece) string {
	letter := map[chess.PieceType]string{
		chess.King:   "k",
		chess.Queen:  "q",
		chess.Rook:   "r",
		chess.Bishop: "b",
		chess.Knight: "n",
		chess.Pawn:   "p",
	}[piece.Type()]

	if piece.Color() == chess.White {
		return strings.ToUpper(letter)
	}
	return letter
}
