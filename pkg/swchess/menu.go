package swchess

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	cmdPrintBoard = 1
	cmdLoadBoard  = 2
	cmdGameInfo   = 3
	cmdExit       = 4
)

// Opener opens the placement file named after a load command.
type Opener func(name string) (io.ReadCloser, error)

// OpenFile is the Opener backed by the local file system.
func OpenFile(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// MainMenu runs the interactive menu until the exit command or the end of
// in. Commands 2 and 3 take a file name as the next word. Only write
// errors on out are returned.
func MainMenu(in io.Reader, out io.Writer, open Opener) error {
	if open == nil {
		open = OpenFile
	}
	m := &menu{words: newWordScanner(in), out: out, open: open, first: true}

	if err := m.write(bannerArt + "\n"); err != nil {
		return err
	}
	for {
		cmd, src, err := m.request()
		if err != nil {
			return err
		}
		if err := m.write("\n"); err != nil {
			closeSource(src)
			return err
		}
		switch cmd {
		case cmdPrintBoard:
			err = RenderBoard(out, InitialBoard())
		case cmdLoadBoard:
			err = RenderBoard(out, loadSource(src).Board)
		case cmdGameInfo:
			err = RenderReport(out, loadSource(src).Counts)
		case cmdExit:
			var sb strings.Builder
			renderFarewell(&sb)
			return m.write(sb.String())
		}
		closeSource(src)
		if err != nil {
			return err
		}
	}
}

type menu struct {
	words *bufio.Scanner
	out   io.Writer
	open  Opener
	first bool
}

// request prompts until it reads a usable command. The source is non-nil
// for commands that load a file. End of input reads as the exit command.
func (m *menu) request() (int, io.ReadCloser, error) {
	for {
		var sb strings.Builder
		renderMenu(&sb, m.first)
		m.first = false
		if err := m.write(sb.String()); err != nil {
			return 0, nil, err
		}

		word, ok := m.next()
		if !ok {
			return cmdExit, nil, nil
		}
		cmd, err := strconv.Atoi(word)
		if err == nil && cmd >= cmdPrintBoard && cmd <= cmdExit {
			if cmd != cmdLoadBoard && cmd != cmdGameInfo {
				return cmd, nil, nil
			}
			if name, ok := m.next(); ok {
				if src, err := m.open(name); err == nil {
					return cmd, src, nil
				}
			}
		}

		sb.Reset()
		sb.WriteString("\n")
		renderInvalidInput(&sb)
		if err := m.write(sb.String()); err != nil {
			return 0, nil, err
		}
	}
}

func (m *menu) next() (string, bool) {
	if !m.words.Scan() {
		return "", false
	}
	return m.words.Text(), true
}

func (m *menu) write(s string) error {
	_, err := io.WriteString(m.out, s)
	return err
}

func closeSource(src io.ReadCloser) {
	if src != nil {
		_ = src.Close()
	}
}
