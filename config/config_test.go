package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func newViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	if yaml != "" {
		v.SetConfigType("yaml")
		if err := v.ReadConfig(strings.NewReader(yaml)); err != nil {
			t.Fatal(err)
		}
	}
	return v
}

func TestNew(t *testing.T) {
	c, err := New(newViper(t, ""))
	if err != nil {
		t.Fatal(err)
	}

	if c.LogLevel != "info" || c.OutDir != "temp" {
		t.Errorf("New() = %+v, want the default log level and out dir", c)
	}
	if c.Fib.Litter != 1 || c.Fib.MaxLitter != 10 || c.Fib.Window != 10 {
		t.Errorf("New().Fib = %+v", c.Fib)
	}
	if c.Overlap.Length != 3 || c.Graph.Name != "overlaps" || c.Table.Style != "rounded" {
		t.Errorf("New() = %+v", c)
	}
}

func TestNew_settingsFile(t *testing.T) {
	c, err := New(newViper(t, `
log-level: debug
fib:
  litter: 3
  max-litter: 5
translate:
  stop: true
  shift: 2
table:
  style: ascii
`))
	if err != nil {
		t.Fatal(err)
	}

	if c.LogLevel != "debug" {
		t.Errorf("LogLevel = %s", c.LogLevel)
	}
	if c.Fib.Litter != 3 || c.Fib.MaxLitter != 5 || c.Fib.MaxGeneration != 10000 {
		t.Errorf("Fib = %+v", c.Fib)
	}
	if !c.Translate.Stop || c.Translate.Shift != 2 {
		t.Errorf("Translate = %+v", c.Translate)
	}
	if c.Table.Style != "ascii" {
		t.Errorf("Table = %+v", c.Table)
	}
}

func TestNew_invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown table style", "table:\n  style: fancy\n"},
		{"no litter allowed", "fib:\n  max-litter: 0\n"},
		{"no generations allowed", "fib:\n  max-generation: 0\n"},
		{"empty window", "fib:\n  window: 0\n"},
		{"no lifespan allowed", "fib:\n  max-months: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(newViper(t, tt.yaml)); err == nil {
				t.Errorf("New() accepted %q", tt.yaml)
			}
		})
	}
}

func TestConfig_CheckFib(t *testing.T) {
	c, err := New(newViper(t, ""))
	if err != nil {
		t.Fatal(err)
	}

	type args struct {
		generation int
		litter     int
		months     int
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{"in bounds", args{5, 3, 0}, false},
		{"largest litter", args{5, 10, 3}, false},
		{"litter too large", args{5, 11, 0}, true},
		{"litter of zero", args{5, 0, 0}, true},
		{"negative generation", args{-1, 1, 0}, true},
		{"too many generations", args{10001, 1, 0}, true},
		{"negative months", args{5, 1, -2}, true},
		{"longest lifespan", args{5, 1, 10000}, false},
		{"lifespan too long", args{10000, 1, 2000000000}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := c.CheckFib(tt.args.generation, tt.args.litter, tt.args.months); (err != nil) != tt.wantErr {
				t.Errorf("CheckFib() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
