package tictactoe

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/rocketscienceinc/streaktactoe/internal/apperror"
)

type InputMode string

const (
	// InputModeKey reads one character per attempt, so only single digit indexes can be entered.
	InputModeKey InputMode = "key"
	// InputModeLine reads one whitespace-delimited token per attempt.
	InputModeLine InputMode = "line"

	maxKeyInputCells = 10
)

func ParseInputMode(raw string) (InputMode, error) {
	switch mode := InputMode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case InputModeKey, InputModeLine:
		return mode, nil
	case "":
		return InputModeLine, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownInputMode, raw)
	}
}

// MoveReader splits the shared input stream into raw move attempts.
type MoveReader struct {
	mode    InputMode
	scanner *bufio.Scanner
}

func NewMoveReader(r io.Reader, mode InputMode) *MoveReader {
	scanner := bufio.NewScanner(r)

	if mode == InputModeKey {
		scanner.Split(bufio.ScanRunes)
	} else {
		scanner.Split(bufio.ScanWords)
	}

	return &MoveReader{
		mode:    mode,
		scanner: scanner,
	}
}

// Next blocks until the next attempt is available.
func (that *MoveReader) Next() (string, error) {
	for that.scanner.Scan() {
		token := that.scanner.Text()

		// line terminators after a key press are not attempts
		if that.mode == InputModeKey && strings.TrimFunc(token, unicode.IsSpace) == "" {
			continue
		}

		return token, nil
	}

	if err := that.scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read move: %w", err)
	}

	return "", apperror.ErrInputClosed
}
