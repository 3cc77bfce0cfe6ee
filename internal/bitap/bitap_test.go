package bitap

import "testing"

func TestSearch_ExactMatch(t *testing.T) {
	p := Prepare([]byte("hello"))
	m, ok := Search([]byte("hello"), p, 2)
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Errors != 0 || m.EndPos != 5 {
		t.Errorf("got Match{%d,%d}, want {0,5}", m.Errors, m.EndPos)
	}
}

func TestSearch_ExactMatch_ZeroBudget(t *testing.T) {
	p := Prepare([]byte("hello"))
	m, ok := Search([]byte("hello"), p, 0)
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Errors != 0 || m.EndPos != 5 {
		t.Errorf("got Match{%d,%d}, want {0,5}", m.Errors, m.EndPos)
	}
}

func TestSearch_CaseFolded(t *testing.T) {
	p := Prepare([]byte("WORLD"))
	m, ok := Search([]byte("Hello World"), p, 2)
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Errors != 0 || m.EndPos != 11 {
		t.Errorf("got Match{%d,%d}, want {0,11}", m.Errors, m.EndPos)
	}
}

func TestSearch_OneSubstitution(t *testing.T) {
	p := Prepare([]byte("banaba"))
	m, ok := Search([]byte("banana"), p, 1)
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Errors != 1 || m.EndPos != 6 {
		t.Errorf("got Match{%d,%d}, want {1,6}", m.Errors, m.EndPos)
	}
}

func TestSearch_OneSubstitution_ExceedsBudget(t *testing.T) {
	p := Prepare([]byte("banaba"))
	if _, ok := Search([]byte("banana"), p, 0); ok {
		t.Error("expected no match with a zero error budget")
	}
}

func TestSearch_NoMatchWithinBudget(t *testing.T) {
	p := Prepare([]byte("xyz"))
	if _, ok := Search([]byte("hello world"), p, 1); ok {
		t.Error("expected no match: pattern shares no characters with text")
	}
}

func TestSearch_EmptyPatternOrText(t *testing.T) {
	p := Prepare([]byte("hello"))
	if _, ok := Search(nil, p, 2); ok {
		t.Error("empty text should never match")
	}
	empty := Prepare(nil)
	if _, ok := Search([]byte("hello"), empty, 2); ok {
		t.Error("empty pattern should never match")
	}
}

func TestSearch_PrefersFewerErrorsOverEarlierPosition(t *testing.T) {
	// "car" and "bat" are each edit-distance 1 from "cat", but a short
	// prefix ("c" alone is edit-distance 2 from "cat") would trigger
	// earlier chronologically; Search must not report that.
	p := Prepare([]byte("cat"))

	m, ok := Search([]byte("car"), p, 2)
	if !ok || m.Errors != 1 {
		t.Fatalf("car: got (%+v, %v), want errors=1", m, ok)
	}

	m, ok = Search([]byte("bat"), p, 2)
	if !ok || m.Errors != 1 {
		t.Fatalf("bat: got (%+v, %v), want errors=1", m, ok)
	}
}

func TestSearch_TruncatesLongPattern(t *testing.T) {
	long := make([]byte, MaxPatternLen+10)
	for i := range long {
		long[i] = 'a'
	}
	p := Prepare(long)
	if p.Len != MaxPatternLen {
		t.Fatalf("Len = %d, want %d", p.Len, MaxPatternLen)
	}
}

func TestSearch_ClampsErrorBudget(t *testing.T) {
	p := Prepare([]byte("hello"))
	// maxErrors above MaxErrors and below 0 should both be clamped, not
	// panic or misbehave.
	if _, ok := Search([]byte("hello"), p, MaxErrors+50); !ok {
		t.Error("expected exact match regardless of an oversized budget")
	}
	if _, ok := Search([]byte("hello"), p, -5); !ok {
		t.Error("expected exact match regardless of a negative budget")
	}
}

func TestPattern_CharMask(t *testing.T) {
	p := Prepare([]byte("aba"))
	mask := p.CharMask('A')
	want := uint32(1<<0 | 1<<2)
	if mask != want {
		t.Errorf("CharMask('A') = %b, want %b", mask, want)
	}
	if p.CharMask('z') != 0 {
		t.Error("CharMask for an absent character should be 0")
	}
}
