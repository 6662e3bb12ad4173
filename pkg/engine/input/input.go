package input

import (
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrInterrupted is returned when the user presses Ctrl+C in raw mode.
var ErrInterrupted = errors.New("interrupted")

// ReadKey reads one key press from r and returns its code. Arrow keys
// arrive as CSI (ESC [) or SS3 (ESC O) sequences; a lone ESC followed by
// anything else reads as "escape".
func ReadKey(r io.Reader) (string, error) {
	b1, err := readByte(r)
	if err != nil {
		return "", err
	}

	switch b1 {
	case 3:
		return "", ErrInterrupted
	case '\r', '\n':
		return "enter", nil
	case ' ':
		return "space", nil
	case 0x1b:
		return readEscape(r)
	}
	if b1 >= 32 && b1 < 127 {
		return string(rune(b1)), nil
	}
	return "", nil
}

func readByte(r io.Reader) (byte, error) {
	buf := make([]byte, 1)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// readEscape decodes the bytes after ESC.
func readEscape(r io.Reader) (string, error) {
	b2, err := readByte(r)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "escape", nil
		}
		return "", err
	}
	if b2 != '[' && b2 != 'O' {
		return "escape", nil
	}

	b3, err := readByte(r)
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	case '1', '2':
		// ESC [ 1 9 ~ is F8, ESC [ 2 0 ~ is F9
		rest := make([]byte, 2)
		if _, err := io.ReadFull(r, rest); err != nil {
			return "", err
		}
		switch string([]byte{b3, rest[0], rest[1]}) {
		case "19~":
			return "f8", nil
		case "20~":
			return "f9", nil
		}
	}
	// Unknown sequence, discard it
	return "", nil
}

// ReadTerminalKey puts stdin into raw mode, reads one key and restores the
// terminal.
func ReadTerminalKey() (RawInput, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return RawInput{}, err
	}
	defer term.Restore(fd, oldState)

	code, err := ReadKey(os.Stdin)
	if err != nil {
		return RawInput{}, err
	}
	return RawInput{Device: DeviceTerminal, Code: code}, nil
}
