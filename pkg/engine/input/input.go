package input

import (
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

// ReadKey blocks until a key is pressed and returns it as a raw terminal
// event. The terminal is in raw mode only while reading.
func ReadKey() RawInput {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		log.Fatalf("Cannot set terminal to raw mode: %v", err)
	}
	defer term.Restore(fd, oldState)

	// An escape sequence arrives in a single read, so a lone ESC can be told
	// apart from an arrow key without waiting for more bytes.
	buf := make([]byte, 8)
	n, err := os.Stdin.Read(buf)
	if err != nil {
		term.Restore(fd, oldState)
		log.Fatalf("Cannot read stdin: %v", err)
	}

	return RawInput{
		Device:    DeviceTerminal,
		Code:      DecodeKey(buf[:n]),
		Timestamp: time.Now(),
	}
}

// DecodeKey turns the bytes of one terminal key press into a binding code
func DecodeKey(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	if b[0] == 0x1b {
		if len(b) == 1 {
			return "escape"
		}
		return decodeArrowKey(b[1:])
	}

	switch b[0] {
	case 3: // Ctrl+C
		return "escape"
	case '\r', '\n':
		return "enter"
	case ' ':
		return "space"
	}

	if b[0] >= 32 && b[0] < 127 {
		return strings.ToLower(string(b[0]))
	}
	return ""
}

// decodeArrowKey reads the tail of an escape sequence. Both CSI (ESC [) and
// SS3 (ESC O) forms are accepted.
func decodeArrowKey(seq []byte) string {
	if len(seq) < 2 || (seq[0] != '[' && seq[0] != 'O') {
		return ""
	}

	switch seq[1] {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	// Unknown escape sequence - discard it
	return ""
}
