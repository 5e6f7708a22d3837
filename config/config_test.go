package config

import "testing"

func TestExpandEnvVar(t *testing.T) {
	t.Run("Plain Value Passes Through", func(t *testing.T) {
		if got := expandEnvVar("plain"); got != "plain" {
			t.Errorf("expected plain, got %q", got)
		}
	})

	t.Run("Empty Value", func(t *testing.T) {
		if got := expandEnvVar(""); got != "" {
			t.Errorf("expected empty, got %q", got)
		}
	})

	t.Run("Expands From Environment", func(t *testing.T) {
		t.Setenv("CWS_TEST_SECRET", "shh")
		if got := expandEnvVar("${CWS_TEST_SECRET}"); got != "shh" {
			t.Errorf("expected shh, got %q", got)
		}
	})

	t.Run("Unset Variable Kept Verbatim", func(t *testing.T) {
		if got := expandEnvVar("${CWS_TEST_NEVER_SET}"); got != "${CWS_TEST_NEVER_SET}" {
			t.Errorf("expected verbatim, got %q", got)
		}
	})
}

func TestMapHelpers(t *testing.T) {
	m := map[string]interface{}{
		"name":     "bedrock",
		"enabled":  true,
		"priority": 1,
		"weight":   float64(2),
	}

	if got := getStringFromMap(m, "name"); got != "bedrock" {
		t.Errorf("expected bedrock, got %q", got)
	}
	if got := getStringFromMap(m, "missing"); got != "" {
		t.Errorf("expected empty, got %q", got)
	}
	if !getBoolFromMap(m, "enabled") {
		t.Error("expected true")
	}
	if getBoolFromMap(m, "name") {
		t.Error("expected false for non-bool value")
	}
	if got := getIntFromMap(m, "priority"); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
	if got := getIntFromMap(m, "weight"); got != 2 {
		t.Errorf("expected float64 coerced to 2, got %d", got)
	}
}
