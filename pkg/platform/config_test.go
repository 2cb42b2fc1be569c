package platform

import (
	"testing"
)

func TestResolvePort(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		set     bool
		want    int
		wantErr bool
	}{
		{name: "unset uses default", want: DefaultPort},
		{name: "empty uses default", set: true, want: DefaultPort},
		{name: "valid port", value: "9000", set: true, want: 9000},
		{name: "minimum port", value: "1", set: true, want: 1},
		{name: "maximum port", value: "65535", set: true, want: 65535},
		{name: "zero falls back", value: "0", set: true, want: DefaultPort, wantErr: true},
		{name: "out of range falls back", value: "70000", set: true, want: DefaultPort, wantErr: true},
		{name: "negative falls back", value: "-1", set: true, want: DefaultPort, wantErr: true},
		{name: "non-numeric falls back", value: "abc", set: true, want: DefaultPort, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv("PORT", tt.value)
			}
			got, err := ResolvePort()
			if got != tt.want {
				t.Errorf("port = %d, want %d", got, tt.want)
			}
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetEnv(t *testing.T) {
	t.Run("set variable wins", func(t *testing.T) {
		t.Setenv("LCA_TEST_KEY", "value")
		if got := GetEnv("LCA_TEST_KEY", "default"); got != "value" {
			t.Errorf("GetEnv = %s", got)
		}
	})

	t.Run("unset variable uses default", func(t *testing.T) {
		if got := GetEnv("LCA_TEST_MISSING", "default"); got != "default" {
			t.Errorf("GetEnv = %s", got)
		}
	})
}

func TestGetEnvInt(t *testing.T) {
	t.Run("parses integer", func(t *testing.T) {
		t.Setenv("LCA_TEST_INT", "42")
		if got := GetEnvInt("LCA_TEST_INT", 7); got != 42 {
			t.Errorf("GetEnvInt = %d", got)
		}
	})

	t.Run("non-numeric uses default", func(t *testing.T) {
		t.Setenv("LCA_TEST_INT", "forty-two")
		if got := GetEnvInt("LCA_TEST_INT", 7); got != 7 {
			t.Errorf("GetEnvInt = %d", got)
		}
	})
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"false", false},
		{"0", false},
		{"yes", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("LCA_TEST_BOOL", tt.value)
			if got := GetEnvBool("LCA_TEST_BOOL", false); got != tt.want {
				t.Errorf("GetEnvBool(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
