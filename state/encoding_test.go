package state

import (
	"encoding/json"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

type snapshot struct {
	Title *Value[string]  `json:"title" yaml:"title"`
	Tags  *List[string]   `json:"tags" yaml:"tags"`
	Event ListChange[int] `json:"event" yaml:"event"`
}

func TestValue_JSONRoundTripIsSilent(t *testing.T) {
	calls := 0
	v := NewValue(WithValue("hello"), WithOnSet(func(string) { calls++ }))

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `"hello"` {
		t.Fatalf("expected stored value only, got %s", data)
	}

	if err := json.Unmarshal([]byte(`"bye"`), v); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if v.Get() != "bye" || calls != 0 {
		t.Fatalf("expected silent restore, got value=%q calls=%d", v.Get(), calls)
	}
	if !v.IsSet() {
		t.Fatalf("expected restored value to be set")
	}
}

func TestList_JSONRestoreIsSilent(t *testing.T) {
	rec := &changeRecorder[int]{}
	l := NewList(WithOnListChange(rec.record))
	if err := json.Unmarshal([]byte(`[1,2,3]`), l); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual(l.Items(), []int{1, 2, 3}) || len(rec.changes) != 0 {
		t.Fatalf("expected silent restore, got %v with %d events", l.Items(), len(rec.changes))
	}

	data, err := json.Marshal(NewList[int]())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `[]` {
		t.Fatalf("expected empty array, got %s", data)
	}
}

func TestListChange_JSON(t *testing.T) {
	data, err := json.Marshal(ListChange[string]{OldSize: 1, NewSize: 2, Added: []string{"x"}})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{"oldSize":1,"newSize":2,"added":["x"]}`
	if string(data) != want {
		t.Fatalf("expected %s, got %s", want, data)
	}
}

func TestSnapshot_YAML(t *testing.T) {
	in := snapshot{
		Title: NewValue(WithValue("inbox")),
		Tags:  NewList(WithItems("a", "b")),
		Event: ListChange[int]{OldSize: 2, NewSize: 1, Removed: []int{7}},
	}
	data, err := yaml.Marshal(in)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var out snapshot
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if out.Title.Get() != "inbox" {
		t.Fatalf("expected title inbox, got %q", out.Title.Get())
	}
	if !reflect.DeepEqual(out.Tags.Items(), []string{"a", "b"}) {
		t.Fatalf("unexpected tags %v", out.Tags.Items())
	}
	if !reflect.DeepEqual(out.Event, in.Event) {
		t.Fatalf("expected event %+v, got %+v", in.Event, out.Event)
	}
	if out.Event.Kind() != ChangeRemoved {
		t.Fatalf("expected removed kind, got %s", out.Event.Kind())
	}
}
