package ndjson

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

type person struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// outcome flattens a scanner item for comparison in table tests.
type outcome struct {
	rec      person
	decode   bool // item is a *DecodeError
	inputErr string
}

func collectOutcomes[S interface {
	Next() (person, bool, error)
}](t *testing.T, sc S) []outcome {
	t.Helper()

	var out []outcome
	for {
		rec, ok, err := sc.Next()
		if !ok {
			return out
		}
		switch {
		case err == nil:
			out = append(out, outcome{rec: rec})
		default:
			var decodeErr *DecodeError
			var inputErr *InputError
			switch {
			case errors.As(err, &decodeErr):
				out = append(out, outcome{decode: true})
			case errors.As(err, &inputErr):
				out = append(out, outcome{inputErr: inputErr.Err.Error()})
			default:
				t.Fatalf("unexpected error type %T: %v", err, err)
			}
		}
	}
}

func TestScannerRecordsSplitAcrossChunks(t *testing.T) {
	// Scenario: one record intact, one invalid, one split across chunks
	// with a CRLF terminator.
	sc := FromStrings[person]([]string{
		"{\"name\":\"Alice\",\"age\":25}\n",
		"{\"this\":\"is\",\"not\":\"valid\"}\n",
		"{\"name\":\"Bob\",",
		"\"age\":35}\r\n",
	}, Config{})

	got := collectOutcomes(t, sc)
	want := []outcome{
		{rec: person{Name: "Alice", Age: 25}},
		{decode: true},
		{rec: person{Name: "Bob", Age: 35}},
	}
	assertOutcomes(t, want, got)

	// The sequence stays exhausted.
	if _, ok, _ := sc.Next(); ok {
		t.Error("expected ok=false after exhaustion")
	}
}

func TestScannerIgnoreBlankSkipsWhitespaceLines(t *testing.T) {
	cfg := Config{}.WithEmptyLineHandling(IgnoreBlank)
	sc := FromStrings[person]([]string{
		"{\"name\":\"Charlie\",\"age\":32}\n",
		"   \n",
		"{\"name\":\"Dolores\",\"age\":41}\n",
	}, cfg)

	got := collectOutcomes(t, sc)
	want := []outcome{
		{rec: person{Name: "Charlie", Age: 32}},
		{rec: person{Name: "Dolores", Age: 41}},
	}
	assertOutcomes(t, want, got)
}

func TestFallibleScannerForwardsInputErrors(t *testing.T) {
	steps := []struct {
		chunk string
		err   error
	}{
		{chunk: "{\"name\":\"Eve\",\"age\":22}\n"},
		{err: errors.New("error")},
		{chunk: "{\"invalid\":json}\n"},
	}
	i := 0
	src := FallibleSourceFunc(func() ([]byte, error) {
		if i >= len(steps) {
			return nil, io.EOF
		}
		step := steps[i]
		i++
		if step.err != nil {
			return nil, step.err
		}
		return []byte(step.chunk), nil
	})

	sc := NewFallibleScanner[person](src, Config{})
	got := collectOutcomes(t, sc)
	want := []outcome{
		{rec: person{Name: "Eve", Age: 22}},
		{inputErr: "error"},
		{decode: true},
	}
	assertOutcomes(t, want, got)
}

func TestFallibleScannerDrainsBufferedLinesBeforeFetchError(t *testing.T) {
	// Two complete lines arrive in one chunk, then a fetch fails. Both
	// buffered lines must come out before the input error is reported.
	steps := []struct {
		chunk string
		err   error
	}{
		{chunk: "{\"name\":\"A\",\"age\":1}\n{\"name\":\"B\",\"age\":2}\n"},
		{err: errors.New("disk on fire")},
		{chunk: "{\"name\":\"C\",\"age\":3}\n"},
	}
	i := 0
	src := FallibleSourceFunc(func() ([]byte, error) {
		if i >= len(steps) {
			return nil, io.EOF
		}
		step := steps[i]
		i++
		if step.err != nil {
			return nil, step.err
		}
		return []byte(step.chunk), nil
	})

	sc := NewFallibleScanner[person](src, Config{})
	got := collectOutcomes(t, sc)
	want := []outcome{
		{rec: person{Name: "A", Age: 1}},
		{rec: person{Name: "B", Age: 2}},
		{inputErr: "disk on fire"},
		{rec: person{Name: "C", Age: 3}},
	}
	assertOutcomes(t, want, got)
}

func TestFallibleScannerFetchErrorKeepsPartialLine(t *testing.T) {
	// A fetch error between the two halves of a record must not disturb
	// the buffered partial line.
	steps := []struct {
		chunk string
		err   error
	}{
		{chunk: "{\"name\":\"Split\","},
		{err: errors.New("transient")},
		{chunk: "\"age\":7}\n"},
	}
	i := 0
	src := FallibleSourceFunc(func() ([]byte, error) {
		if i >= len(steps) {
			return nil, io.EOF
		}
		step := steps[i]
		i++
		if step.err != nil {
			return nil, step.err
		}
		return []byte(step.chunk), nil
	})

	sc := NewFallibleScanner[person](src, Config{})
	got := collectOutcomes(t, sc)
	want := []outcome{
		{inputErr: "transient"},
		{rec: person{Name: "Split", Age: 7}},
	}
	assertOutcomes(t, want, got)
}

func TestScannerSinglePullConsumesManyChunks(t *testing.T) {
	// One record delivered one byte at a time: a single Next call must
	// keep pulling chunks until the line is complete.
	record := "{\"name\":\"Tiny\",\"age\":9}\n"
	var chunks []string
	for i := 0; i < len(record); i++ {
		chunks = append(chunks, record[i:i+1])
	}

	sc := FromStrings[person](chunks, Config{})
	rec, ok, err := sc.Next()
	if !ok || err != nil {
		t.Fatalf("expected one clean record, got ok=%v err=%v", ok, err)
	}
	if rec != (person{Name: "Tiny", Age: 9}) {
		t.Errorf("expected Tiny/9, got %+v", rec)
	}
	if _, ok, _ := sc.Next(); ok {
		t.Error("expected exhaustion after the single record")
	}
}

func TestScannerDoesNotOverPullSource(t *testing.T) {
	// Two complete lines arrive in the first chunk; delivering them must
	// not query the source again.
	pulls := 0
	src := SourceFunc(func() ([]byte, bool) {
		pulls++
		if pulls == 1 {
			return []byte("{\"name\":\"A\",\"age\":1}\n{\"name\":\"B\",\"age\":2}\n"), true
		}
		return nil, false
	})

	sc := NewScanner[person](src, Config{})
	for i := 0; i < 2; i++ {
		if _, ok, err := sc.Next(); !ok || err != nil {
			t.Fatalf("pull %d: expected clean record, ok=%v err=%v", i, ok, err)
		}
	}
	if pulls != 1 {
		t.Errorf("expected 1 source pull for 2 buffered records, got %d", pulls)
	}
}

func TestScannerEmitsUnterminatedFinalLine(t *testing.T) {
	sc := FromStrings[person]([]string{
		"{\"name\":\"A\",\"age\":1}\n{\"name\":\"Z\",\"age\":99}",
	}, Config{})

	got := collectOutcomes(t, sc)
	want := []outcome{
		{rec: person{Name: "A", Age: 1}},
		{rec: person{Name: "Z", Age: 99}},
	}
	assertOutcomes(t, want, got)
}

func TestScannerDropsRestWhenDisabled(t *testing.T) {
	sc := FromStrings[person]([]string{
		"{\"name\":\"A\",\"age\":1}\n{\"name\":\"Z\",\"age\":99}",
	}, Config{}.WithParseRest(false))

	got := collectOutcomes(t, sc)
	want := []outcome{{rec: person{Name: "A", Age: 1}}}
	assertOutcomes(t, want, got)
}

func TestScannerRechunkingEquivalence(t *testing.T) {
	// Splitting the same document at any byte boundary, including
	// mid-terminator and mid-rune, must not change the results.
	doc := "{\"name\":\"Renée\",\"age\":30}\r\n" +
		"not json\n" +
		"{\"name\":\"東\",\"age\":40}\n" +
		"{\"name\":\"Rest\",\"age\":50}"

	reference := collectOutcomes(t, FromStrings[person]([]string{doc}, Config{}))

	for split := 0; split <= len(doc); split++ {
		got := collectOutcomes(t,
			FromStrings[person]([]string{doc[:split], doc[split:]}, Config{}))
		if fmt.Sprint(got) != fmt.Sprint(reference) {
			t.Fatalf("split at %d: expected %v, got %v", split, reference, got)
		}
	}
}

func TestScannerAll(t *testing.T) {
	sc := FromStrings[person]([]string{
		"{\"name\":\"A\",\"age\":1}\nbad\n{\"name\":\"B\",\"age\":2}\n",
	}, Config{})

	var names []string
	var errCount int
	for rec, err := range sc.All() {
		if err != nil {
			errCount++
			continue
		}
		names = append(names, rec.Name)
	}

	if strings.Join(names, ",") != "A,B" {
		t.Errorf("expected records A,B, got %v", names)
	}
	if errCount != 1 {
		t.Errorf("expected 1 errored item, got %d", errCount)
	}
}

func TestScannerAllEarlyBreak(t *testing.T) {
	sc := FromStrings[person]([]string{
		"{\"name\":\"A\",\"age\":1}\n{\"name\":\"B\",\"age\":2}\n",
	}, Config{})

	for range sc.All() {
		break
	}

	// The scanner remains usable after an abandoned range.
	rec, ok, err := sc.Next()
	if !ok || err != nil || rec.Name != "B" {
		t.Errorf("expected record B after early break, got %+v ok=%v err=%v", rec, ok, err)
	}
}

func TestFromReader(t *testing.T) {
	input := "{\"name\":\"A\",\"age\":1}\n{\"name\":\"B\",\"age\":2}\n"
	sc := FromReader[person](strings.NewReader(input), Config{})

	got := collectOutcomes(t, sc)
	want := []outcome{
		{rec: person{Name: "A", Age: 1}},
		{rec: person{Name: "B", Age: 2}},
	}
	assertOutcomes(t, want, got)
}

func assertOutcomes(t *testing.T, want, got []outcome) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if want[i] != got[i] {
			t.Errorf("item %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}
