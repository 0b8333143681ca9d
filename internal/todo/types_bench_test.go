package todo

import (
	"fmt"
	"path/filepath"
	"testing"
)

func benchTasks(n int) []Task {
	tasks := make([]Task, 0, n)
	for i := 1; i <= n; i++ {
		tasks = append(tasks, Task{
			Description: fmt.Sprintf("Task %d", i),
			Completed:   i%3 == 0,
			DueDate:     fmt.Sprintf("2024-01-%02d", i%28+1),
		})
	}
	return tasks
}

// BenchmarkLoad benchmarks reading and schema-validating a 100 task file.
func BenchmarkLoad(b *testing.B) {
	path := filepath.Join(b.TempDir(), "tasks.json")
	if err := Save(path, benchTasks(100)); err != nil {
		b.Fatalf("Failed to create test file: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, reason := Load(path); reason != nil {
			b.Fatalf("Load failed: %v", reason)
		}
	}
}

// BenchmarkSave benchmarks writing a 100 task file.
func BenchmarkSave(b *testing.B) {
	path := filepath.Join(b.TempDir(), "tasks.json")
	tasks := benchTasks(100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Save(path, tasks); err != nil {
			b.Fatalf("Save failed: %v", err)
		}
	}
}

// BenchmarkMove benchmarks a full-length drag from the top to the bottom.
func BenchmarkMove(b *testing.B) {
	s := New(filepath.Join(b.TempDir(), "tasks.json"), benchTasks(100))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for row := 0; row < s.Len()-1; row++ {
			if err := s.Move(row, row+1); err != nil {
				b.Fatal(err)
			}
		}
	}
}
