package envdiff

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestParseSensitiveKeys(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		present []string
		absent  []string
	}{
		{"empty", "", 0, nil, []string{"A"}},
		{"only commas", " , ,", 0, nil, []string{""}},
		{"single", "API_KEY", 1, []string{"API_KEY"}, []string{"api_key", "API"}},
		{"trims whitespace", " A , B ,C", 3, []string{"A", "B", "C"}, []string{" A"}},
		{"glob pattern", "*_SECRET", 1, []string{"DB_SECRET", "*_SECRET"}, []string{"SECRET_DB"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := ParseSensitiveKeys(tt.raw)
			if keys.Len() != tt.want {
				t.Errorf("Len() = %d, want %d", keys.Len(), tt.want)
			}
			for _, key := range tt.present {
				if !keys.Contains(key) {
					t.Errorf("Contains(%q) = false, want true", key)
				}
			}
			for _, key := range tt.absent {
				if keys.Contains(key) {
					t.Errorf("Contains(%q) = true, want false", key)
				}
			}
		})
	}
}

func TestRedact(t *testing.T) {
	result := Compute(
		mappingOf("A", "1", "B", "2", "C", "3"),
		mappingOf("A", "1", "B", "9", "D", "4"),
	)

	redacted := Redact(result, ParseSensitiveKeys("B"))

	want := []Category{
		{Name: CategoryAdded, Keys: []string{"D"}},
		{Name: CategoryRemoved, Keys: []string{"C"}},
		{Name: CategorySensitive, Keys: []string{"1 key(s)"}},
	}
	if got := redacted.Categories(); !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %+v, want %+v", got, want)
	}
	if redacted.Hidden() != 1 {
		t.Errorf("Hidden() = %d, want 1", redacted.Hidden())
	}
}

func TestRedactCountsEveryCategory(t *testing.T) {
	result := Result{
		Added:    []string{"A1", "SECRET_A"},
		Removed:  []string{"SECRET_R", "R1"},
		Modified: []string{"SECRET_M"},
	}

	redacted := Redact(result, ParseSensitiveKeys("SECRET_A,SECRET_R,SECRET_M,UNUSED"))

	want := []Category{
		{Name: CategoryAdded, Keys: []string{"A1"}},
		{Name: CategoryRemoved, Keys: []string{"R1"}},
		{Name: CategorySensitive, Keys: []string{"3 key(s)"}},
	}
	if got := redacted.Categories(); !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %+v, want %+v", got, want)
	}
}

func TestRedactWithoutMatchesDropsEmptyCategories(t *testing.T) {
	result := Result{Added: []string{"A"}, Removed: []string{}, Modified: []string{}}

	redacted := Redact(result, ParseSensitiveKeys("OTHER"))

	want := []Category{{Name: CategoryAdded, Keys: []string{"A"}}}
	if got := redacted.Categories(); !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %+v, want %+v", got, want)
	}
	if redacted.Hidden() != 0 {
		t.Errorf("Hidden() = %d, want 0", redacted.Hidden())
	}
}

func TestRedactIsIdempotent(t *testing.T) {
	result := Result{
		Added:    []string{"A", "TOKEN"},
		Removed:  []string{"PASSWORD"},
		Modified: []string{"M"},
	}
	keys := ParseSensitiveKeys("TOKEN,PASSWORD")

	once := Redact(result, keys)
	twice := Redact(once, keys)

	if !reflect.DeepEqual(once.Categories(), twice.Categories()) {
		t.Errorf("second redaction changed the result:\nonce:  %+v\ntwice: %+v", once.Categories(), twice.Categories())
	}

	thrice := Redact(&twice, keys)
	if !reflect.DeepEqual(once.Categories(), thrice.Categories()) {
		t.Errorf("redacting a pointer changed the result: %+v", thrice.Categories())
	}
}

func TestRedactCarriesHiddenCount(t *testing.T) {
	result := Result{Added: []string{"A", "B", "C"}}

	first := Redact(result, ParseSensitiveKeys("A"))
	second := Redact(first, ParseSensitiveKeys("B"))

	if second.Hidden() != 2 {
		t.Errorf("Hidden() = %d, want 2", second.Hidden())
	}
	want := []Category{
		{Name: CategoryAdded, Keys: []string{"C"}},
		{Name: CategorySensitive, Keys: []string{"2 key(s)"}},
	}
	if got := second.Categories(); !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %+v, want %+v", got, want)
	}
}

func TestRedactDoesNotMutateInput(t *testing.T) {
	result := Result{
		Added:    []string{"A", "S"},
		Removed:  []string{"S2"},
		Modified: []string{},
	}

	redacted := Redact(result, ParseSensitiveKeys("S,S2"))

	if !reflect.DeepEqual(result.Added, []string{"A", "S"}) || !reflect.DeepEqual(result.Removed, []string{"S2"}) {
		t.Errorf("input was modified: %+v", result)
	}

	categories := redacted.Categories()
	categories[0].Keys[0] = "CHANGED"
	if got := redacted.Categories()[0].Keys[0]; got != "A" {
		t.Errorf("Categories() exposed internal state: got %q", got)
	}
}

func TestRedactNil(t *testing.T) {
	redacted := Redact(nil, ParseSensitiveKeys("A"))
	if len(redacted.Categories()) != 0 {
		t.Errorf("Categories() = %+v, want none", redacted.Categories())
	}
}

func TestRedactedResultMarshalJSON(t *testing.T) {
	result := Result{Added: []string{"D"}, Removed: []string{"C"}, Modified: []string{"B"}}

	data, err := json.Marshal(Redact(result, ParseSensitiveKeys("B")))
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	want := `{"Added":["D"],"Removed":["C"],"Other sensitive keys changed":["1 key(s)"]}`
	if string(data) != want {
		t.Errorf("json.Marshal = %s, want %s", data, want)
	}
}
