package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword reads without echo; tests swap it out.
var readPassword = term.ReadPassword

// GetSimpleText asks one question of the REPL user (a name, an email, a
// questionnaire option) and returns the trimmed reply. It reads from the
// same reader as the REPL, so it consumes exactly one line; a last line
// without a newline still counts.
//
//	Enter email
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword reads the login or registration password from the terminal
// with echo off. Callers wipe the returned slice once the services have it.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

var errChoiceRange = errors.New("choice out of range")

// ParseChoice reads a 1-based menu choice and returns it 0-based.
// Blank input yields ok=false without error.
func ParseChoice(s string, n int) (int, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, fmt.Errorf("not a number: %q", s)
	}
	if v < 1 || v > n {
		return 0, false, fmt.Errorf("%w: %d (1-%d)", errChoiceRange, v, n)
	}
	return v - 1, true, nil
}
