package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/san"
)

// Record is a game as seen by the writers.
type Record interface {
	// PGNTags returns the game metadata.
	PGNTags() *chess.Tags

	// PGNMoves returns every recorded move with its SAN text.
	PGNMoves() []MoveText

	// PGNResult returns the result written after the movetext and in the
	// Result tag.
	PGNResult() chess.Result
}

// MoveText pairs a recorded move with its SAN rendering, which carries
// the check suffix and any !/? glyph.
type MoveText struct {
	SAN  string
	Move chess.Move
}

// WritePGN writes one game: tag pairs, a blank line, then wrapped
// movetext ending in the result token.
func WritePGN(w io.Writer, rec Record, cfg *config.OutputConfig) error {
	if cfg == nil {
		cfg = config.NewOutputConfig()
	}
	ow := NewOutputWriter(w, cfg.MaxLineLength)
	result := rec.PGNResult()

	writeTags(ow, rec.PGNTags(), result)
	ow.NewLine()
	writeMoves(ow, rec.PGNMoves(), result, cfg.Notation)

	return ow.Err()
}

// ExportPGN returns a game as PGN text with the default settings.
func ExportPGN(rec Record) string {
	var sb strings.Builder
	_ = WritePGN(&sb, rec, nil) // strings.Builder never fails
	return sb.String()
}

// writeTags writes the seven tag roster, missing values as "?", then the
// free-form tags in the order they were added.
func writeTags(ow *OutputWriter, tags *chess.Tags, result chess.Result) {
	for _, name := range chess.SevenTagRoster {
		value := tags.Get(name)
		switch {
		case name == "Result":
			value = result.String()
		case value == "":
			value = "?"
		}
		ow.WriteLine(formatTag(name, value))
	}
	for _, tag := range tags.Extra() {
		ow.WriteLine(formatTag(tag.Name, tag.Value))
	}
}

func formatTag(name, value string) string {
	return fmt.Sprintf("[%s %s]", name, FormatTagValue(value))
}

// FormatTagValue quotes a tag value. Backslash and double quote are
// escaped with a backslash; bytes below 0x20 are dropped.
func FormatTagValue(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c < 0x20:
			continue
		case c == '\\' || c == '"':
			sb.WriteByte('\\')
		}
		sb.WriteByte(c)
	}
	sb.WriteByte('"')
	return sb.String()
}

func writeMoves(ow *OutputWriter, moves []MoveText, result chess.Result, notation config.Notation) {
	for i, mt := range moves {
		if i%2 == 0 {
			ow.Write(fmt.Sprintf("%d.", i/2+1))
		}
		ow.Write(formatMove(mt, notation))

		// Glyphs 1 to 6 are already part of the SAN text.
		if nag := mt.Move.NAG; nag > 0 && (notation != config.SAN || san.GlyphFromNAG(nag) == "") {
			ow.Write(fmt.Sprintf("$%d", nag))
		}
	}
	ow.Write(result.String())
	ow.NewLine()
}
