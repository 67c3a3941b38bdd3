package jsonedit

import "testing"

func TestNormalizeEmpty(t *testing.T) {
	got, err := Normalize(nil)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got != "{}" {
		t.Fatalf("got %q, want {}", got)
	}
}

func TestNormalizeBareScalar(t *testing.T) {
	got, err := Normalize([]Row{BareRow(NumberLit("30"))})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got != "30" {
		t.Fatalf("got %q, want 30", got)
	}
}

func TestNormalizeBareContainer(t *testing.T) {
	got, err := Normalize([]Row{BareRow(mustDecode(t, `[1,2]`))})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	want := "[\n  1,\n  2\n]"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNormalizeKeyedRows(t *testing.T) {
	rows := []Row{
		KeyedRow("name", String("Ann")),
		KeyedRow("age", NumberLit("30")),
	}
	got, err := Normalize(rows)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	want := "{\n  \"name\": \"Ann\",\n  \"age\": 30\n}"
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestNormalizeSkipsContainerRows(t *testing.T) {
	rows := []Row{
		KeyedRow("name", String("Ann")),
		KeyedRow("pets", mustDecode(t, `["Rex"]`)),
		KeyedRow("address", mustDecode(t, `{"city":"Oslo"}`)),
		KeyedRow("age", NumberLit("30")),
	}
	got, err := Normalize(rows)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	want := "{\n  \"name\": \"Ann\",\n  \"age\": 30\n}"
	if got != want {
		t.Fatalf("container rows should be excluded, got:\n%s", got)
	}
}

func TestNormalizeRoundTripsAgainstRows(t *testing.T) {
	rows := []Row{
		KeyedRow("a", NumberLit("1")),
		KeyedRow("nested", mustDecode(t, `{"x":1}`)),
		KeyedRow("b", Bool(false)),
	}
	text, err := Normalize(rows)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	parsed := mustDecode(t, text)
	want := mustDecode(t, `{"a":1,"b":false}`)
	if !parsed.Equal(want) {
		t.Fatalf("re-parsed normalize output %s, want %s", text, `{"a":1,"b":false}`)
	}
}
