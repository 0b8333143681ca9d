package todo

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	tasks, reason := Load(filepath.Join(t.TempDir(), "nope.json"))
	if reason != nil {
		t.Errorf("expected no reason for missing file, got %v", reason)
	}
	if tasks == nil || len(tasks) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", tasks)
	}
}

func TestLoadDiscardsBadContent(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantReason bool
	}{
		{"empty file", "", false},
		{"whitespace only", "  \n\t", false},
		{"invalid json", "{not json", true},
		{"truncated array", `[{"task": "a", "completed": fa`, true},
		{"object instead of array", `{"task": "a", "completed": false}`, true},
		{"null document", "null", true},
		{"missing completed", `[{"task": "a"}]`, true},
		{"completed not boolean", `[{"task": "a", "completed": "yes"}]`, true},
		{"task not string", `[{"task": 3, "completed": false}]`, true},
		{"due_date not string", `[{"task": "a", "completed": false, "due_date": 20240101}]`, true},
		{"array of strings", `["a", "b"]`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, reason := Load(writeFile(t, tt.content))
			if len(tasks) != 0 {
				t.Errorf("expected empty list, got %v", tasks)
			}
			if (reason != nil) != tt.wantReason {
				t.Errorf("reason = %v, wantReason %v", reason, tt.wantReason)
			}
		})
	}
}

func TestLoadValidFile(t *testing.T) {
	path := writeFile(t, `[
  {"task": "Buy milk", "completed": false},
  {"task": "Pay bills", "completed": true, "due_date": "2024-05-01"},
  {"task": "Extra keys are fine", "completed": false, "priority": 1}
]`)

	tasks, reason := Load(path)
	if reason != nil {
		t.Fatalf("unexpected reason: %v", reason)
	}
	want := []Task{
		{Description: "Buy milk"},
		{Description: "Pay bills", Completed: true, DueDate: "2024-05-01"},
		{Description: "Extra keys are fine"},
	}
	if !reflect.DeepEqual(tasks, want) {
		t.Errorf("got %#v, want %#v", tasks, want)
	}
}

func TestDecodeSchemaErrorPath(t *testing.T) {
	_, err := Decode([]byte(`[{"task": "a", "completed": false}, {"task": "b", "completed": 1}]`))
	if err == nil {
		t.Fatal("expected error")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	if !strings.HasPrefix(ve.Path, "[1]") {
		t.Errorf("expected path to point at second task, got %q", ve.Path)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	descriptions := []string{
		"Buy milk",
		"",
		"  padded  ",
		`quotes " and \ backslashes`,
		"unicode ✓ – 日本語",
		"line\nbreak",
	}

	for _, completed := range []bool{false, true} {
		var tasks []Task
		for _, d := range descriptions {
			tasks = append(tasks, Task{Description: d, Completed: completed})
		}
		path := filepath.Join(t.TempDir(), "tasks.json")
		if err := Save(path, tasks); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		loaded, reason := Load(path)
		if reason != nil {
			t.Fatalf("Load reason: %v", reason)
		}
		if !reflect.DeepEqual(loaded, tasks) {
			t.Errorf("completed=%v: got %#v, want %#v", completed, loaded, tasks)
		}
	}
}

func TestSaveFormat(t *testing.T) {
	t.Run("empty list is an empty array", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.json")
		if err := Save(path, nil); err != nil {
			t.Fatal(err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "[]\n" {
			t.Errorf("got %q, want %q", data, "[]\n")
		}
	})

	t.Run("undated tasks omit due_date", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.json")
		if err := Save(path, []Task{{Description: "a"}}); err != nil {
			t.Fatal(err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		want := "[\n  {\n    \"task\": \"a\",\n    \"completed\": false\n  }\n]\n"
		if string(data) != want {
			t.Errorf("got %q, want %q", data, want)
		}
	})

	t.Run("overwrites previous content", func(t *testing.T) {
		path := writeFile(t, strings.Repeat("x", 4096))
		if err := Save(path, []Task{{Description: "a", DueDate: NoDueDate}}); err != nil {
			t.Fatal(err)
		}
		tasks, reason := Load(path)
		if reason != nil || len(tasks) != 1 || tasks[0].DueDate != NoDueDate {
			t.Errorf("got %v (reason %v)", tasks, reason)
		}
	})
}

func TestSaveToMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "tasks.json")
	if err := Save(path, []Task{{Description: "a"}}); err == nil {
		t.Fatal("expected error writing into missing directory")
	}
}

func TestFormat(t *testing.T) {
	open := Task{Description: "Buy milk", DueDate: "2024-05-01"}
	done := Task{Description: "Pay bills", Completed: true}

	if got := FormatLine(1, open); got != "1. [ ] Buy milk" {
		t.Errorf("FormatLine open: %q", got)
	}
	if got := FormatLine(2, done); got != "2. [X] Pay bills" {
		t.Errorf("FormatLine done: %q", got)
	}
	if got := FormatDated(open); got != "[ ] Buy milk (Due: 2024-05-01)" {
		t.Errorf("FormatDated open: %q", got)
	}
	if got := FormatDated(done); got != "[X] Pay bills (Due: N/A)" {
		t.Errorf("FormatDated missing date: %q", got)
	}
}

func TestParseDueDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-05-01", "2024-05-01"},
		{" 2024-05-01 ", NoDueDate},
		{"2024-05-01\n", NoDueDate},
		{"2024-5-1", "2024-05-01"},
		{"2024-02-29", "2024-02-29"},
		{"2023-02-29", NoDueDate},
		{"2024-13-40", NoDueDate},
		{"2024-04-31", NoDueDate},
		{"YYYY-MM-DD", NoDueDate},
		{"", NoDueDate},
		{"tomorrow", NoDueDate},
		{"01/05/2024", NoDueDate},
		{"2024-05-01T10:00:00Z", NoDueDate},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseDueDate(tt.in); got != tt.want {
				t.Errorf("ParseDueDate(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
