package levels

import "testing"

func TestLoadEmbeddedLevels(t *testing.T) {
	for _, name := range []string{"level_1", "level_2"} {
		t.Run(name, func(t *testing.T) {
			lvl, err := Load(name)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if lvl.Name != name {
				t.Errorf("Name = %q, want %q", lvl.Name, name)
			}
			if len(lvl.Grounds) == 0 {
				t.Error("level has no ground")
			}
			if len(lvl.Letters) == 0 {
				t.Error("level has no letters to collect")
			}
			for _, e := range lvl.Enemies {
				if e.Spec == "" {
					t.Errorf("enemy placement at (%v, %v) has no spec", e.X, e.Y)
				}
			}
		})
	}
}

func TestLevelChainTerminates(t *testing.T) {
	seen := map[string]bool{}
	name := "level_1"
	for name != "" {
		if seen[name] {
			t.Fatalf("level chain loops at %s", name)
		}
		seen[name] = true
		lvl, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%s): %v", name, err)
		}
		name = lvl.Next
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatal("empty name should fail")
	}
	if _, err := Load("level_99"); err == nil {
		t.Fatal("missing level should fail")
	}
}
