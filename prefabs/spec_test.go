package prefabs

import (
	"strings"
	"testing"
)

func TestLoadEnemySpecWalker(t *testing.T) {
	spec, err := LoadEnemySpec("enemy_walker")
	if err != nil {
		t.Fatalf("LoadEnemySpec: %v", err)
	}
	if spec.Name != "enemy_walker" {
		t.Errorf("Name = %q", spec.Name)
	}
	if spec.PatrolSpeed != 2 || spec.ChaseSpeed != 3.5 {
		t.Errorf("speeds = %v/%v", spec.PatrolSpeed, spec.ChaseSpeed)
	}
	if spec.VisionLength != 6 || spec.AttackDistance != 0.9 {
		t.Errorf("vision = %v, reach = %v", spec.VisionLength, spec.AttackDistance)
	}
	if spec.IdleTime.Min != 1 || spec.IdleTime.Max != 3 {
		t.Errorf("idle range = %+v", spec.IdleTime)
	}
	if spec.VisionOffset.Y != -0.25 {
		t.Errorf("vision offset = %+v", spec.VisionOffset)
	}
	if spec.Script != "growl.tengo" {
		t.Errorf("Script = %q", spec.Script)
	}
	if len(spec.Animation.Defs) != 3 {
		t.Errorf("animation defs = %d, want 3", len(spec.Animation.Defs))
	}
	if err := spec.Params().Validate(); err != nil {
		t.Errorf("params should validate: %v", err)
	}
}

func TestLoadEnemySpecSuffixOptional(t *testing.T) {
	a, err := LoadEnemySpec("enemy_brute")
	if err != nil {
		t.Fatalf("without suffix: %v", err)
	}
	b, err := LoadEnemySpec("enemy_brute.yaml")
	if err != nil {
		t.Fatalf("with suffix: %v", err)
	}
	if a.Name != b.Name || a.PatrolSpeed != b.PatrolSpeed {
		t.Fatalf("suffix variants differ: %+v vs %+v", a, b)
	}
}

func TestLoadEnemySpecMissing(t *testing.T) {
	if _, err := LoadEnemySpec("enemy_nonexistent"); err == nil {
		t.Fatal("expected an error for a missing prefab")
	}
}

func TestLoadPlayerSpec(t *testing.T) {
	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}
	if spec.MoveSpeed <= 0 || spec.JumpSpeed <= 0 || spec.Health <= 0 {
		t.Fatalf("implausible player spec: %+v", spec)
	}
}

func TestLoadLetterSpec(t *testing.T) {
	spec, err := LoadLetterSpec()
	if err != nil {
		t.Fatalf("LoadLetterSpec: %v", err)
	}
	if spec.BobAmplitude <= 0 || spec.BobSpeed <= 0 {
		t.Fatalf("letter bob not configured: %+v", spec)
	}
	if spec.Collider.Width <= 0 || spec.Collider.Height <= 0 {
		t.Fatalf("letter collider not configured: %+v", spec)
	}
}

func TestLoadScript(t *testing.T) {
	src, err := LoadScript("growl.tengo")
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	if !strings.Contains(string(src), "onState") {
		t.Fatal("script should define an onState hook")
	}
}

func TestCleanScriptPath(t *testing.T) {
	cases := map[string]string{
		"growl.tengo":                 "scripts/growl.tengo",
		"scripts/growl.tengo":         "scripts/growl.tengo",
		"prefabs/scripts/growl.tengo": "scripts/growl.tengo",
	}
	for in, want := range cases {
		if got := cleanScriptPath(in); got != want {
			t.Errorf("cleanScriptPath(%q) = %q, want %q", in, got, want)
		}
	}
}
