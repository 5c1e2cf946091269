package qrcode

import (
	"fmt"
	"strings"

	qr "github.com/skip2/go-qrcode"
)

// Level is the error correction level of a QR code.
type Level int

const (
	Low Level = iota
	Medium
	High
	Highest
)

// ParseLevel parses the conventional level letters L, M, Q and H, case-insensitively.
// The names low, medium, high and highest are accepted as well.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "low":
		return Low, nil
	case "m", "medium":
		return Medium, nil
	case "q", "high":
		return High, nil
	case "h", "highest":
		return Highest, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// String returns the level letter.
func (l Level) String() string {
	switch l {
	case Low:
		return "L"
	case Medium:
		return "M"
	case High:
		return "Q"
	case Highest:
		return "H"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// UnmarshalText lets Level be used directly in env-tagged config structs.
func (l *Level) UnmarshalText(text []byte) error {
	v, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// MaxBytes is how many bytes of arbitrary content fit in the largest symbol
// (version 40) at level l. Digits and upper-case text pack denser and may
// exceed it. It returns 0 for an unknown level.
func MaxBytes(l Level) int {
	switch l {
	case Low:
		return 2953
	case Medium:
		return 2331
	case High:
		return 1663
	case Highest:
		return 1273
	}
	return 0
}

func (l Level) recovery() (qr.RecoveryLevel, error) {
	switch l {
	case Low:
		return qr.Low, nil
	case Medium:
		return qr.Medium, nil
	case High:
		return qr.High, nil
	case Highest:
		return qr.Highest, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrInvalidLevel, int(l))
}
