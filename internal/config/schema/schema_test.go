package schema

import "testing"

func TestEditorSchemaLoads(t *testing.T) {
	s, err := Editor()
	if err != nil {
		t.Fatalf("Editor(): %v", err)
	}
	if s.Type != TypeObject {
		t.Errorf("root type = %q, want object", s.Type)
	}
	if s.AdditionalProperties == nil || *s.AdditionalProperties {
		t.Error("root schema must reject unknown fields")
	}
	for _, prop := range []string{"scrolloff", "mouse", "line-number", "search", "file-picker", "indent"} {
		if s.Properties[prop] == nil {
			t.Errorf("missing property %q", prop)
		}
	}

	// Decoded once: both calls return the same cached schema.
	again, err := Editor()
	if err != nil {
		t.Fatalf("Editor() second call: %v", err)
	}
	if s != again {
		t.Error("Editor() is not cached")
	}
}

func TestGetProperty(t *testing.T) {
	s, err := Editor()
	if err != nil {
		t.Fatal(err)
	}

	if got := s.GetProperty("search.smart-case"); got == nil || got.Type != TypeBoolean {
		t.Errorf("GetProperty(search.smart-case) = %+v", got)
	}
	if got := s.GetProperty("indent.tab-width"); got == nil || got.Type != TypeInteger {
		t.Errorf("GetProperty(indent.tab-width) = %+v", got)
	}
	if got := s.GetProperty("no.such.path"); got != nil {
		t.Errorf("GetProperty(no.such.path) = %+v, want nil", got)
	}
}
