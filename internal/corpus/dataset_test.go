package corpus

import (
	"errors"
	"strings"
	"testing"
)

func TestReadDataset(t *testing.T) {
	input := strings.Join([]string{
		"# id\ttext",
		"org.a.Foo\tjane doe",
		"",
		"org.a.Bar\t",
		"org.b.Baz",
		"org.b.Qux\tsome comment words\r",
	}, "\n")

	docs, err := ReadDataset(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadDataset returned error: %v", err)
	}
	want := []Document{
		{ID: "org.a.Foo", Text: "jane doe"},
		{ID: "org.a.Bar", Text: ""},
		{ID: "org.b.Baz", Text: ""},
		{ID: "org.b.Qux", Text: "some comment words"},
	}
	if len(docs) != len(want) {
		t.Fatalf("got %d docs, want %d: %#v", len(docs), len(want), docs)
	}
	for i := range want {
		if docs[i] != want[i] {
			t.Errorf("doc[%d] = %#v, want %#v", i, docs[i], want[i])
		}
	}
}

func TestReadDatasetRejectsMissingID(t *testing.T) {
	_, err := ReadDataset(strings.NewReader("\torphan text\n"))
	if !errors.Is(err, ErrEmptyID) {
		t.Fatalf("expected ErrEmptyID, got %v", err)
	}
}

func TestReadDatasetDuplicatesRejectedByNew(t *testing.T) {
	docs, err := ReadDataset(strings.NewReader("a.A\tx\na.A\ty\n"))
	if err != nil {
		t.Fatalf("ReadDataset returned error: %v", err)
	}
	if _, err := New(docs); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}
