package main

import "testing"

func TestParseLogLevel(t *testing.T) {
	cases := []struct {
		input    string
		expected logLevel
	}{
		{"DEBUG", levelDebug},
		{"debug", levelDebug},
		{"INFO", levelInfo},
		{"WARN", levelWarn},
		{"warning", levelWarn},
		{"ERROR", levelError},
		{" info ", levelInfo},
		{"", levelInfo},
		{"bogus", levelInfo},
	}
	for _, c := range cases {
		if got := parseLogLevel(c.input); got != c.expected {
			t.Errorf("parseLogLevel(%q) = %d, want %d", c.input, got, c.expected)
		}
	}
}
