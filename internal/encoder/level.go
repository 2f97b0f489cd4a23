package encoder

import (
	"fmt"
	"strings"

	"github.com/boombuler/barcode/qr"
	qrcode "github.com/skip2/go-qrcode"
)

// Level is the error-correction level of a symbol.
type Level int

const (
	LevelL Level = iota
	LevelM
	LevelQ
	LevelH
)

// DefaultLevel matches what most QR generators pick when not told otherwise.
const DefaultLevel = LevelM

func (l Level) String() string {
	switch l {
	case LevelL:
		return "L"
	case LevelM:
		return "M"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// ParseLevel accepts L, M, Q or H in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return LevelL, nil
	case "M", "":
		return LevelM, nil
	case "Q":
		return LevelQ, nil
	case "H":
		return LevelH, nil
	}
	return 0, fmt.Errorf("unknown error correction level %q (want L, M, Q or H)", s)
}

func (l Level) skip2() qrcode.RecoveryLevel {
	switch l {
	case LevelL:
		return qrcode.Low
	case LevelQ:
		return qrcode.High
	case LevelH:
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

func (l Level) boombuler() qr.ErrorCorrectionLevel {
	switch l {
	case LevelL:
		return qr.L
	case LevelQ:
		return qr.Q
	case LevelH:
		return qr.H
	default:
		return qr.M
	}
}
