// file: internals/configs/config_test.go
package configs

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("SRS_TEST_KEY", "live")

	if got := GetEnv("SRS_TEST_KEY", "fallback"); got != "live" {
		t.Errorf("GetEnv(set key) = %q, want %q", got, "live")
	}
	if got := GetEnv("SRS_TEST_MISSING_KEY", "fallback"); got != "fallback" {
		t.Errorf("GetEnv(missing key, default) = %q, want %q", got, "fallback")
	}
	if got := GetEnv("SRS_TEST_MISSING_KEY"); got != "" {
		t.Errorf("GetEnv(missing key) = %q, want empty", got)
	}
}
