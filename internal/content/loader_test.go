package content

import (
	"os"
	"path/filepath"
	"testing"
)

const validManifest = `{
  "module": "m1",
  "title": "Algoritmi",
  "lessons": [
    {
      "id": "l1",
      "title": "Variabile",
      "checkpoint": {
        "fields": [
          {"name": "whatLearned", "type": "textarea", "required": true, "minChars": 30}
        ]
      },
      "questions": [
        {"id": "q1", "text": "2+2?", "options": ["3", "4"], "answer": "4"},
        {"id": "q2", "text": "Explica bucla for.", "kind": "practice"}
      ]
    },
    {"id": "l2", "title": "Operatori"}
  ]
}`

func writeManifest(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadModule(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "m1.json", validManifest)

	mod, err := LoadModule(filepath.Join(dir, "m1.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if mod.Module != "m1" || len(mod.Lessons) != 2 {
		t.Errorf("got %+v", mod)
	}

	chain := mod.Chain()
	if len(chain) != 2 || chain[0] != "l1" || chain[1] != "l2" {
		t.Errorf("chain = %v", chain)
	}

	lesson, ok := mod.Lesson("l1")
	if !ok {
		t.Fatal("l1 missing")
	}
	if len(lesson.Checkpoint.Fields) != 1 || lesson.Checkpoint.Fields[0].MinChars != 30 {
		t.Errorf("checkpoint = %+v", lesson.Checkpoint)
	}

	q1, _ := lesson.Question("q1")
	if q1.Written() || q1.ScoreKind() != KindAtomic {
		t.Errorf("q1 = %+v", q1)
	}
	q2, _ := lesson.Question("q2")
	if !q2.Written() || q2.ScoreKind() != KindPractice {
		t.Errorf("q2 = %+v", q2)
	}
}

func TestLoadModuleRejectsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
	}{
		{"not json", `{`},
		{"missing lessons", `{"module": "m1", "title": "T"}`},
		{"empty lessons", `{"module": "m1", "title": "T", "lessons": []}`},
		{"lesson without id", `{"module": "m1", "title": "T", "lessons": [{"title": "X"}]}`},
		{"bad field type", `{"module": "m1", "title": "T", "lessons": [
			{"id": "l1", "title": "X", "checkpoint": {"fields": [{"name": "f", "type": "checkbox"}]}}
		]}`},
		{"bad question kind", `{"module": "m1", "title": "T", "lessons": [
			{"id": "l1", "title": "X", "questions": [{"id": "q", "text": "?", "kind": "bonus"}]}
		]}`},
		{"duplicate lesson id", `{"module": "m1", "title": "T", "lessons": [
			{"id": "l1", "title": "X"}, {"id": "l1", "title": "Y"}
		]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeManifest(t, dir, "bad.json", tt.manifest)
			if _, err := LoadModule(filepath.Join(dir, "bad.json")); err == nil {
				t.Error("want error")
			}
		})
	}
}

func TestNewLoader(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "b.json", `{"module": "m2", "title": "B", "lessons": [{"id": "x", "title": "X"}]}`)
	writeManifest(t, dir, "a.json", validManifest)
	writeManifest(t, dir, "notes.txt", "ignored")

	l, err := NewLoader(dir)
	if err != nil {
		t.Fatalf("loader: %v", err)
	}

	mods := l.Modules()
	if len(mods) != 2 {
		t.Fatalf("modules = %d", len(mods))
	}
	if mods[0].Module != "m1" || mods[1].Module != "m2" {
		t.Errorf("order = %s, %s", mods[0].Module, mods[1].Module)
	}

	if _, ok := l.Module("m2"); !ok {
		t.Error("m2 not loaded")
	}
	if _, ok := l.Module("ghost"); ok {
		t.Error("phantom module")
	}
}

func TestNewLoaderRejectsDuplicateModules(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "a.json", `{"module": "m1", "title": "A", "lessons": [{"id": "x", "title": "X"}]}`)
	writeManifest(t, dir, "b.json", `{"module": "m1", "title": "B", "lessons": [{"id": "y", "title": "Y"}]}`)

	if _, err := NewLoader(dir); err == nil {
		t.Error("duplicate module ids must fail")
	}
}
