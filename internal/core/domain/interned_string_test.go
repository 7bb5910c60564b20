package domain_test

import (
	"encoding/json"
	"testing"

	"go.trai.ch/pinset/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	s1 := "hello"
	s2 := "hello"

	is1 := domain.NewInternedString(s1)
	is2 := domain.NewInternedString(s2)

	// Interned values compare equal by handle
	if is1 != is2 {
		t.Errorf("Expected interned strings to be equal for identical input, got %v and %v", is1, is2)
	}

	if is1.String() != s1 {
		t.Errorf("Expected String() to return %q, got %q", s1, is1.String())
	}
}

func TestInternedString_Zero(t *testing.T) {
	var is domain.InternedString
	if is.String() != "" {
		t.Errorf("Expected zero value to render empty, got %q", is.String())
	}
}

func TestNormalizeID(t *testing.T) {
	a := domain.NormalizeID("Newtonsoft.Json")
	b := domain.NormalizeID("  newtonsoft.json ")

	if a != b {
		t.Errorf("Expected identifiers differing by case and whitespace to share a key")
	}
	if a.String() != "newtonsoft.json" {
		t.Errorf("Expected lowercase key, got %q", a.String())
	}
	if domain.NormalizeID("Serilog") == a {
		t.Errorf("Expected different identifiers to have different keys")
	}
}

func TestInternedStringJSON(t *testing.T) {
	t.Run("Marshal and Unmarshal preserve string value", func(t *testing.T) {
		original := domain.NewInternedString("newtonsoft.json")

		data, err := json.Marshal(original)
		if err != nil {
			t.Fatalf("Failed to marshal InternedString: %v", err)
		}

		expectedJSON := `"newtonsoft.json"`
		if string(data) != expectedJSON {
			t.Errorf("Expected JSON %q, got %q", expectedJSON, string(data))
		}

		var unmarshaled domain.InternedString
		if err := json.Unmarshal(data, &unmarshaled); err != nil {
			t.Fatalf("Failed to unmarshal InternedString: %v", err)
		}

		if unmarshaled != original {
			t.Errorf("Expected unmarshaled value %q, got %q", original.String(), unmarshaled.String())
		}
	})

	t.Run("Marshal and Unmarshal in struct", func(t *testing.T) {
		type TestStruct struct {
			ID domain.InternedString `json:"id"`
		}

		original := TestStruct{ID: domain.NewInternedString("serilog")}

		data, err := json.Marshal(original)
		if err != nil {
			t.Fatalf("Failed to marshal struct: %v", err)
		}

		expectedJSON := `{"id":"serilog"}`
		if string(data) != expectedJSON {
			t.Errorf("Expected JSON %q, got %q", expectedJSON, string(data))
		}

		var unmarshaled TestStruct
		if err := json.Unmarshal(data, &unmarshaled); err != nil {
			t.Fatalf("Failed to unmarshal struct: %v", err)
		}

		if unmarshaled.ID.String() != original.ID.String() {
			t.Errorf("Expected unmarshaled id %q, got %q", original.ID.String(), unmarshaled.ID.String())
		}
	})
}
