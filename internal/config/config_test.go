package config

import (
	"testing"
)

func TestEnvHelpers(t *testing.T) {
	t.Setenv("X_INT", "42")
	t.Setenv("X_INT_BAD", "not-a-number")
	t.Setenv("X_BOOL_T", "true")
	t.Setenv("X_BOOL_F", "false")
	t.Setenv("X_STR", "hello")

	if v := getInt("X_INT", 1); v != 42 {
		t.Fatalf("getInt: want 42, got %d", v)
	}
	if v := getInt("X_INT_BAD", 7); v != 7 {
		t.Fatalf("getInt invalid: want fallback 7, got %d", v)
	}
	if v := getInt("X_INT_MISSING", 7); v != 7 {
		t.Fatalf("getInt missing: want fallback 7, got %d", v)
	}

	if !getBool("X_BOOL_T", false) {
		t.Fatal("getBool: want true")
	}
	if getBool("X_BOOL_F", true) {
		t.Fatal("getBool: want false")
	}
	if !getBool("X_BOOL_MISSING", true) {
		t.Fatal("getBool missing: want fallback true")
	}

	if v := getEnv("X_STR", "d"); v != "hello" {
		t.Fatalf("getEnv: want hello, got %q", v)
	}
	if v := getEnv("X_STR_MISSING", "d"); v != "d" {
		t.Fatalf("getEnv missing: want fallback, got %q", v)
	}
}
