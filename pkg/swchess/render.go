package swchess

import (
	"fmt"
	"io"
	"strings"
)

const (
	frameRule  = "*-------------------------*\n"
	frameSolid = "***************************\n"
)

const bannerArt = `***************************
* *************************
*   ***********************
*     *********************
*       *******************
*         *****************
*           ***************
*             *************
*               ***********
*                 *********
*                   *******
*                     *****
*                       ***
*                         *
***************************
* SWTube CHESS ENGINE     *
* Minha Ju                *
* 2021 / 07 / 05          *
***************************
`

// frameLine pads text into one bordered report line.
func frameLine(text string) string {
	return fmt.Sprintf("* %-24s*\n", text)
}

// InitialBoard is the standard opening setup in placement letters. Row 7 is
// set directly; it cannot be produced by Load.
func InitialBoard() Board {
	var b Board
	back := []Kind{Rook, Knight, Bishop, King, Queen, Bishop, Knight, Rook}
	for x, k := range back {
		b.put(x, 0, Piece{Color: Black, Kind: k})
		b.put(x, 1, Piece{Color: Black, Kind: Pawn})
		b.put(x, 6, Piece{Color: White, Kind: Pawn})
		b.put(x, 7, Piece{Color: White, Kind: k})
	}
	return b
}

// RenderBoard writes the framed grid: a file header, then rows 0 to 7.
func RenderBoard(w io.Writer, b Board) error {
	var sb strings.Builder
	sb.WriteString(frameRule)
	sb.WriteString(frameLine("  abcdefgh"))
	sb.WriteString(frameLine(" +--------+"))
	for y := 0; y < Size; y++ {
		sb.WriteString(frameLine(fmt.Sprintf("%d|%s|", y, b.Row(y))))
	}
	sb.WriteString(frameLine(" +--------+"))
	_, err := io.WriteString(w, sb.String())
	return err
}

var reportOrder = []struct {
	kind  Kind
	label string
}{
	{Pawn, "pawns"},
	{Rook, "rooks"},
	{Knight, "knights"},
	{Bishop, "bishops"},
	{Queen, "queen"},
	{King, "king"},
}

// RenderReport writes the per-color tally followed by the status line, when
// the king counts have one, and the material standing.
func RenderReport(w io.Writer, c Counts) error {
	var sb strings.Builder
	sb.WriteString(frameRule)
	for _, color := range []Color{Black, White} {
		for _, row := range reportOrder {
			label := fmt.Sprintf("%s %s:", color, row.label)
			sb.WriteString(frameLine(fmt.Sprintf("%-15s%d", label, c.Get(color, row.kind))))
		}
	}
	if status := c.Status(); status != StatusNone {
		sb.WriteString(frameLine("Result: " + status.String()))
	}
	sb.WriteString(frameLine("Who is winning?: " + c.Standing().String()))
	_, err := io.WriteString(w, sb.String())
	return err
}

func renderMenu(sb *strings.Builder, first bool) {
	if first {
		sb.WriteString(frameSolid)
	} else {
		sb.WriteString(frameRule)
	}
	sb.WriteString(frameLine("1. PrintBoard"))
	sb.WriteString(frameLine("2. LoadBoard"))
	sb.WriteString(frameLine("3. PrintGameInformation"))
	sb.WriteString(frameLine("4. Exit"))
	sb.WriteString(frameRule)
	sb.WriteString("  Command: ")
}

func renderInvalidInput(sb *strings.Builder) {
	sb.WriteString(frameRule)
	sb.WriteString(frameLine("INVALID INPUT!"))
	sb.WriteString(frameLine("PLEASE TRY AGAIN!"))
}

func renderFarewell(sb *strings.Builder) {
	sb.WriteString(frameRule)
	sb.WriteString(frameLine("THANK YOU FOR PLAYING!"))
	sb.WriteString(frameSolid)
}
