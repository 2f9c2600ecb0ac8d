package swchess

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// BoardRecord is one loaded placement file as a flat row.
type BoardRecord struct {
	BoardID          string `parquet:"name=board_id, type=BYTE_ARRAY, convertedtype=UTF8"`
	FEN              string `parquet:"name=fen, type=BYTE_ARRAY, convertedtype=UTF8"`
	Placed           int32  `parquet:"name=placed, type=INT32"`
	WhiteKing        int32  `parquet:"name=white_king, type=INT32"`
	WhiteQueen       int32  `parquet:"name=white_queen, type=INT32"`
	WhiteRook        int32  `parquet:"name=white_rook, type=INT32"`
	WhiteBishop      int32  `parquet:"name=white_bishop, type=INT32"`
	WhiteKnight      int32  `parquet:"name=white_knight, type=INT32"`
	WhitePawn        int32  `parquet:"name=white_pawn, type=INT32"`
	BlackKing        int32  `parquet:"name=black_king, type=INT32"`
	BlackQueen       int32  `parquet:"name=black_queen, type=INT32"`
	BlackRook        int32  `parquet:"name=black_rook, type=INT32"`
	BlackBishop      int32  `parquet:"name=black_bishop, type=INT32"`
	BlackKnight      int32  `parquet:"name=black_knight, type=INT32"`
	BlackPawn        int32  `parquet:"name=black_pawn, type=INT32"`
	WhiteMaterial    int32  `parquet:"name=white_material, type=INT32"`
	BlackMaterial    int32  `parquet:"name=black_material, type=INT32"`
	Standing         string `parquet:"name=standing, type=BYTE_ARRAY, convertedtype=UTF8"`
	Status           string `parquet:"name=status, type=BYTE_ARRAY, convertedtype=UTF8"`
	Malformed        int32  `parquet:"name=malformed, type=INT32"`
	InvalidPlacement int32  `parquet:"name=invalid_placement, type=INT32"`
	OccupiedCell     int32  `parquet:"name=occupied_cell, type=INT32"`
	CapacityExceeded int32  `parquet:"name=capacity_exceeded, type=INT32"`
}

func NewBoardRecord(id string, res Result) BoardRecord {
	c := res.Counts
	count := func(color Color, kind Kind) int32 {
		return int32(c.Get(color, kind))
	}
	return BoardRecord{
		BoardID:          id,
		FEN:              res.Board.FEN(),
		Placed:           int32(res.Board.Occupied()),
		WhiteKing:        count(White, King),
		WhiteQueen:       count(White, Queen),
		WhiteRook:        count(White, Rook),
		WhiteBishop:      count(White, Bishop),
		WhiteKnight:      count(White, Knight),
		WhitePawn:        count(White, Pawn),
		BlackKing:        count(Black, King),
		BlackQueen:       count(Black, Queen),
		BlackRook:        count(Black, Rook),
		BlackBishop:      count(Black, Bishop),
		BlackKnight:      count(Black, Knight),
		BlackPawn:        count(Black, Pawn),
		WhiteMaterial:    int32(c.Material(White)),
		BlackMaterial:    int32(c.Material(Black)),
		Standing:         standingLabel(c.Standing()),
		Status:           statusLabel(c.Status()),
		Malformed:        int32(res.Rejected.Malformed),
		InvalidPlacement: int32(res.Rejected.InvalidPlacement),
		OccupiedCell:     int32(res.Rejected.OccupiedCell),
		CapacityExceeded: int32(res.Rejected.CapacityExceeded),
	}
}

// Counts rebuilds the tally stored in the record.
func (r BoardRecord) Counts() Counts {
	var c Counts
	c.n[White] = [numKinds]int{
		King: int(r.WhiteKing), Queen: int(r.WhiteQueen), Rook: int(r.WhiteRook),
		Bishop: int(r.WhiteBishop), Knight: int(r.WhiteKnight), Pawn: int(r.WhitePawn),
	}
	c.n[Black] = [numKinds]int{
		King: int(r.BlackKing), Queen: int(r.BlackQueen), Rook: int(r.BlackRook),
		Bishop: int(r.BlackBishop), Knight: int(r.BlackKnight), Pawn: int(r.BlackPawn),
	}
	return c
}

func standingLabel(s Standing) string {
	switch s {
	case StandingWhite:
		return "white"
	case StandingBlack:
		return "black"
	default:
		return "even"
	}
}

func statusLabel(s Status) string {
	switch s {
	case StatusOngoing:
		return "ongoing"
	case StatusWhiteWin:
		return "white_win"
	case StatusBlackWin:
		return "black_win"
	default:
		return "none"
	}
}

// BuildBoardRecord loads the file at path. The record ID is path relative to
// root, or its base name when path is outside root.
func BuildBoardRecord(root, path string) (BoardRecord, error) {
	res, err := LoadFile(path)
	if err != nil {
		return BoardRecord{}, err
	}
	id := filepath.Base(path)
	if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
		id = filepath.ToSlash(rel)
	}
	return NewBoardRecord(id, res), nil
}

// CollectBoards lists files under root whose extension matches ext, case
// insensitively, in sorted order.
func CollectBoards(root, ext string) ([]string, error) {
	if ext == "" {
		ext = defaultExtension
	}
	var files []string
	if err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ext) {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
