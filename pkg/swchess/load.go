package swchess

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode"
	"unicode/utf8"
)

var (
	ErrMalformedToken   = errors.New("malformed token")
	ErrInvalidPlacement = errors.New("invalid placement")
	ErrOccupiedCell     = errors.New("cell already occupied")
	ErrCapacityExceeded = errors.New("piece capacity exceeded")
)

// rankLimit bounds accepted rank digits to 0 <= rank < rankLimit.
//
// Known boundary quirk: row 7 exists and is rendered as the eighth row, but
// no placement can reach it. Placement files written for the menu program
// depend on this, so it is not widened to Size.
const rankLimit = 7

// Words longer than this are skipped up to the next space and read as a
// single overlongToken.
const maxTokenSize = 1 << 20

// overlongToken stands in for a skipped word. It is malformed in every field
// position.
const overlongToken = "\ufffd\ufffd"

type rawToken struct {
	piece rune
	file  rune
	rank  int
}

// Load reads placement triples from r until it is exhausted and returns the
// resulting board and tally. It never fails: malformed or rule-breaking input
// is dropped and reading continues.
func Load(r io.Reader) (Board, Counts) {
	res := LoadResult(r)
	return res.Board, res.Counts
}

// LoadResult is Load plus a tally of what was dropped.
func LoadResult(r io.Reader) Result {
	var l loader
	w := newTokenWindow(r)
	for {
		fields := w.fill(3)
		raw, err := parseRawToken(fields)
		if err != nil {
			if len(fields) < 3 {
				l.res.Rejected.Malformed += len(fields)
				break
			}
			// Drop one token so a single bad field cannot shift every
			// triple after it.
			l.reject(err)
			w.drop(1)
			continue
		}
		w.drop(3)
		l.reject(l.place(raw))
	}
	return l.res
}

// LoadFile loads a placement file after normalizing its encoding. Only
// reading the file can fail.
func LoadFile(path string) (Result, error) {
	data, err := readBoardFile(path)
	if err != nil {
		return Result{}, err
	}
	return LoadResult(bytes.NewReader(data)), nil
}

// loadSource is LoadFile for an open stream. A failed read keeps what was
// read before it.
func loadSource(r io.Reader) Result {
	data, _ := io.ReadAll(r)
	if decoded, err := decodeBoardText(data); err == nil {
		data = decoded
	}
	return LoadResult(bytes.NewReader(data))
}

type loader struct {
	res Result
}

func (l *loader) place(raw rawToken) error {
	p, ok := PieceFromLetter(raw.piece)
	if !ok {
		return fmt.Errorf("%w: unknown piece %q", ErrInvalidPlacement, raw.piece)
	}
	x, ok := fileIndex(raw.file)
	if !ok || raw.rank < 0 || raw.rank >= rankLimit {
		return fmt.Errorf("%w: square %q %d", ErrInvalidPlacement, raw.file, raw.rank)
	}
	y := raw.rank
	if _, taken := l.res.Board.At(x, y); taken {
		return fmt.Errorf("%w: %c%d", ErrOccupiedCell, raw.file, y)
	}
	if l.res.Counts.full(p) {
		return fmt.Errorf("%w: %s", ErrCapacityExceeded, p)
	}
	l.res.Board.put(x, y, p)
	l.res.Counts.add(p)
	return nil
}

func (l *loader) reject(err error) {
	switch {
	case err == nil:
	case errors.Is(err, ErrMalformedToken):
		l.res.Rejected.Malformed++
	case errors.Is(err, ErrInvalidPlacement):
		l.res.Rejected.InvalidPlacement++
	case errors.Is(err, ErrOccupiedCell):
		l.res.Rejected.OccupiedCell++
	case errors.Is(err, ErrCapacityExceeded):
		l.res.Rejected.CapacityExceeded++
	}
}

func parseRawToken(fields []string) (rawToken, error) {
	if len(fields) < 3 {
		return rawToken{}, fmt.Errorf("%w: truncated triple", ErrMalformedToken)
	}
	piece, ok := singleRune(fields[0])
	if !ok {
		return rawToken{}, fmt.Errorf("%w: piece field %q", ErrMalformedToken, fields[0])
	}
	file, ok := singleRune(fields[1])
	if !ok {
		return rawToken{}, fmt.Errorf("%w: file field %q", ErrMalformedToken, fields[1])
	}
	rank, err := strconv.Atoi(fields[2])
	if err != nil {
		return rawToken{}, fmt.Errorf("%w: rank field %q", ErrMalformedToken, fields[2])
	}
	return rawToken{piece: piece, file: file, rank: rank}, nil
}

func singleRune(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return 0, false
	}
	return r, true
}

// fileIndex maps a file letter, in either case, to its column.
func fileIndex(r rune) (int, bool) {
	switch {
	case r >= 'a' && r <= 'h':
		return int(r - 'a'), true
	case r >= 'A' && r <= 'H':
		return int(r - 'A'), true
	default:
		return 0, false
	}
}

// tokenWindow is a look-ahead buffer of whitespace-delimited tokens.
type tokenWindow struct {
	sc      *bufio.Scanner
	pending []string
	done    bool
}

func newTokenWindow(r io.Reader) *tokenWindow {
	return &tokenWindow{sc: newWordScanner(newTextReader(r))}
}

// newWordScanner splits r into whitespace-delimited words of any length.
func newWordScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxTokenSize)
	var split wordSplitter
	sc.Split(split.scan)
	return sc
}

// wordSplitter is bufio.ScanWords that never fails with bufio.ErrTooLong.
type wordSplitter struct {
	skipping bool
}

func (s *wordSplitter) scan(data []byte, atEOF bool) (int, []byte, error) {
	if s.skipping {
		return s.skip(data, atEOF)
	}
	advance, token, err := bufio.ScanWords(data, atEOF)
	if err != nil || token != nil || advance > 0 || atEOF {
		return advance, token, err
	}
	if len(data) >= maxTokenSize {
		s.skipping = true
		return s.skip(data, atEOF)
	}
	return 0, nil, nil
}

// skip discards the rest of an over-long word and emits overlongToken once
// the word ends.
func (s *wordSplitter) skip(data []byte, atEOF bool) (int, []byte, error) {
	for i := 0; i < len(data); {
		if !atEOF && !utf8.FullRune(data[i:]) {
			return i, nil, nil
		}
		r, width := utf8.DecodeRune(data[i:])
		if unicode.IsSpace(r) {
			s.skipping = false
			return i, []byte(overlongToken), nil
		}
		i += width
	}
	if atEOF {
		s.skipping = false
		return len(data), []byte(overlongToken), nil
	}
	return len(data), nil, nil
}

// fill reads ahead until n tokens are pending or input ends, and returns at
// most n of them. Read errors count as end of input.
func (w *tokenWindow) fill(n int) []string {
	for len(w.pending) < n && !w.done {
		if !w.sc.Scan() {
			w.done = true
			break
		}
		w.pending = append(w.pending, w.sc.Text())
	}
	if len(w.pending) > n {
		return w.pending[:n]
	}
	return w.pending
}

func (w *tokenWindow) drop(n int) {
	if n > len(w.pending) {
		n = len(w.pending)
	}
	w.pending = w.pending[n:]
}
