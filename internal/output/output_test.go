package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/san"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// record is a minimal Record built from coordinate moves.
type record struct {
	tags   *chess.Tags
	moves  []MoveText
	result chess.Result
}

func (r *record) PGNTags() *chess.Tags    { return r.tags }
func (r *record) PGNMoves() []MoveText    { return r.moves }
func (r *record) PGNResult() chess.Result { return r.result }

func newRecord(t *testing.T, start chess.Board, moves ...string) *record {
	t.Helper()
	_, history := testutil.Play(t, start, moves...)
	rec := &record{tags: chess.NewTags()}
	before := start
	for i, m := range history {
		rec.moves = append(rec.moves, MoveText{SAN: san.Encode(before, history[:i], m), Move: m})
		before = m.Board
	}
	return rec
}

// sanRecord holds SAN text only, for layout tests.
func sanRecord(moves ...string) *record {
	rec := &record{tags: chess.NewTags()}
	for _, s := range moves {
		rec.moves = append(rec.moves, MoveText{SAN: s})
	}
	return rec
}

func TestFormatTagValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ABCDEF", `"ABCDEF"`},
		{`"ABCDEF"`, `"\"ABCDEF\""`},
		{`ABC\DEF`, `"ABC\\DEF"`},
		{"\x01ABC\tDEF\x02", `"ABCDEF"`},
		{"", `""`},
	}
	for _, tt := range tests {
		testutil.AssertEqual(t, FormatTagValue(tt.in), tt.want, tt.in)
	}
}

func TestExportPGN_Empty(t *testing.T) {
	want := `[Event "?"]
[Site "?"]
[Date "?"]
[Round "?"]
[White "?"]
[Black "?"]
[Result "*"]

*
`
	testutil.AssertEqual(t, ExportPGN(sanRecord()), want)
}

func TestExportPGN_TagsAndAnnotations(t *testing.T) {
	rec := newRecord(t, chess.NewInitialBoard(), "e2e4", "e7e5", "g1f3")
	rec.moves[0].Move.NAG = 1
	rec.moves[0].SAN = "e4!"
	rec.moves[2].Move.NAG = 10
	rec.tags.Set("Event", "Club \"Open\"")
	rec.tags.Set("ECO", "C40")
	rec.tags.Set("Result", "1-0")
	rec.tags.Set("Annotator", "Anon")
	rec.result = chess.Draw

	want := `[Event "Club \"Open\""]
[Site "?"]
[Date "?"]
[Round "?"]
[White "?"]
[Black "?"]
[Result "1/2-1/2"]
[ECO "C40"]
[Annotator "Anon"]

1. e4! e5 2. Nf3 $10 1/2-1/2
`
	testutil.AssertEqual(t, ExportPGN(rec), want)
}

func TestWritePGN_Wrapping(t *testing.T) {
	rec := sanRecord("e4", "e5", "Nf3", "Nc6")
	var buf bytes.Buffer
	err := WritePGN(&buf, rec, &config.OutputConfig{MaxLineLength: 10})
	testutil.AssertNoError(t, err)

	text := buf.String()
	movetext := text[strings.Index(text, "\n\n")+2:]
	testutil.AssertEqual(t, movetext, "1. e4 e5\n2. Nf3 Nc6\n*\n")
}

func TestWritePGN_LineLimit(t *testing.T) {
	var moves []string
	for i := 0; i < 120; i++ {
		moves = append(moves, "Nf3", "Nf6", "Ng1", "Ng8")
	}
	text := ExportPGN(sanRecord(moves...))
	movetext := text[strings.Index(text, "\n\n")+2:]

	lines := strings.Split(strings.TrimSuffix(movetext, "\n"), "\n")
	testutil.AssertTrue(t, len(lines) > 1, "movetext should wrap")
	for _, line := range lines {
		if len(line) > 79 {
			t.Errorf("line of %d columns: %q", len(line), line)
		}
		if strings.HasPrefix(line, " ") || strings.HasSuffix(line, " ") {
			t.Errorf("line has stray space: %q", line)
		}
	}
	testutil.AssertEqual(t, strings.Fields(strings.Join(lines, " ")), strings.Fields(movetext))
}

func TestFormatMove_Notations(t *testing.T) {
	rec := newRecord(t, chess.NewInitialBoard(), "e2e4", "d7d5", "e4d5")
	tests := []struct {
		notation config.Notation
		want     []string
	}{
		{config.SAN, []string{"e4", "d5", "exd5"}},
		{config.LALG, []string{"e2e4", "d7d5", "e4d5"}},
		{config.HALG, []string{"e2-e4", "d7-d5", "e4xd5"}},
		{config.UCI, []string{"e2e4", "d7d5", "e4d5"}},
	}
	for _, tt := range tests {
		t.Run(tt.notation.String(), func(t *testing.T) {
			var got []string
			for _, mt := range rec.moves {
				got = append(got, formatMove(mt, tt.notation))
			}
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestFormatMove_CastleAndPromotion(t *testing.T) {
	castle := newRecord(t, engine.MustParsePlacement("r3k2r/8/8/8/8/8/8/R3K2R"), "e1g1", "e8c8")
	testutil.AssertEqual(t, formatMove(castle.moves[0], config.LALG), "O-O")
	testutil.AssertEqual(t, formatMove(castle.moves[1], config.HALG), "O-O-O")
	testutil.AssertEqual(t, formatMove(castle.moves[0], config.UCI), "e1g1")
	testutil.AssertEqual(t, formatMove(castle.moves[1], config.UCI), "e8c8")

	promo := newRecord(t, engine.MustParsePlacement("8/4P3/8/8/8/8/8/k3K3"), "e7e8n")
	testutil.AssertEqual(t, formatMove(promo.moves[0], config.SAN), "e8=N")
	testutil.AssertEqual(t, formatMove(promo.moves[0], config.LALG), "e7e8=N")
	testutil.AssertEqual(t, formatMove(promo.moves[0], config.UCI), "e7e8n")
}

func TestWritePGN_LongNotationKeepsNAGs(t *testing.T) {
	rec := newRecord(t, chess.NewInitialBoard(), "e2e4")
	rec.moves[0].Move.NAG = 2
	var buf bytes.Buffer
	err := WritePGN(&buf, rec, &config.OutputConfig{MaxLineLength: 79, Notation: config.LALG})
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, buf.String(), "1. e2e4 $2 *\n")
}

func TestPGNWriter_WriteGame(t *testing.T) {
	var buf bytes.Buffer
	w := NewGameWriter(&buf, config.NewOutputConfig())

	testutil.AssertNoError(t, w.WriteGame(sanRecord("e4")))
	testutil.AssertNoError(t, w.WriteGame(sanRecord("d4")))
	testutil.AssertNoError(t, w.Close())

	out := buf.String()
	testutil.AssertEqual(t, strings.Count(out, "[Event "), 2)
	testutil.AssertContains(t, out, "1. e4 *\n\n[Event")
	testutil.AssertTrue(t, strings.HasSuffix(out, "1. d4 *\n"))
}

func TestJSONWriter_WriteGame(t *testing.T) {
	rec := newRecord(t, chess.NewInitialBoard(), "e2e4", "d7d5", "e4d5")
	rec.tags.Set("White", "Fischer")
	rec.result = chess.WhiteWins

	cfg := config.NewConfigBuilder().WithJSONOutput(true).Build()
	var buf bytes.Buffer
	w := NewGameWriter(&buf, &cfg.Output)
	testutil.AssertNoError(t, w.WriteGame(rec))
	testutil.AssertEqual(t, buf.Len(), 0, "batch writer should buffer until Close")
	testutil.AssertNoError(t, w.Close())

	var out JSONOutput
	testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &out))
	testutil.AssertEqual(t, len(out.Games), 1)

	g := out.Games[0]
	testutil.AssertEqual(t, g.Result, "1-0")
	testutil.AssertEqual(t, g.PlyCount, 3)
	testutil.AssertEqual(t, g.Tags, map[string]string{"White": "Fischer", "Result": "1-0"})
	testutil.AssertEqual(t, g.FinalPlacement, "rnbqkbnr/ppp1pppp/8/3P4/8/8/PPPP1PPP/RNBQKBNR")
	testutil.AssertEqual(t, g.Moves[2], JSONMove{
		MoveNumber: 2,
		Color:      "white",
		SAN:        "exd5",
		UCI:        "e4d5",
		From:       "e4",
		To:         "d5",
		Piece:      "pawn",
		Captured:   "pawn",
		Placement:  g.FinalPlacement,
	})
}

func TestJSONWriter_Stream(t *testing.T) {
	cfg := config.NewConfigBuilder().WithJSONOutput(true).WithJSONStream(true).Build()
	var buf bytes.Buffer
	w := NewGameWriter(&buf, &cfg.Output)
	_, ok := w.(*JSONWriter)
	testutil.AssertTrue(t, ok, "writer = %T", w)

	testutil.AssertNoError(t, w.WriteGame(sanRecord()))
	first := buf.Len()
	testutil.AssertTrue(t, first > 0, "stream writer should not buffer")
	testutil.AssertNoError(t, w.WriteGame(sanRecord()))
	testutil.AssertNoError(t, w.Close())

	dec := json.NewDecoder(&buf)
	for i := 0; i < 2; i++ {
		var g JSONGame
		testutil.AssertNoError(t, dec.Decode(&g), "game %d", i)
		testutil.AssertEqual(t, g.Result, "*")
		testutil.AssertEqual(t, g.FinalPlacement, engine.InitialPlacement)
	}
	testutil.AssertFalse(t, dec.More())
}
