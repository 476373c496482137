package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_MissingConfigArgument(t *testing.T) {
	err := newApp().Run([]string{"simple-http-server"})
	if err == nil || !strings.Contains(err.Error(), "missing config argument") {
		t.Errorf("error = %v, want missing config argument", err)
	}
}

func TestRun_TooManyArguments(t *testing.T) {
	err := newApp().Run([]string{"simple-http-server", "a.toml", "b.toml"})
	if err == nil || !strings.Contains(err.Error(), "too many arguments") {
		t.Errorf("error = %v, want too many arguments", err)
	}
}

func TestRun_ConfigErrorsAreFatal(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			"missing addr",
			`404 = "404.html"`,
			"SH-CONF-0001",
		},
		{
			"reserved key as route",
			"addr = \"127.0.0.1:0\"\n[get_routes]\ndirect = \"a.html\"\n",
			"SH-ROUTE-0002",
		},
		{
			"escaping direct entry",
			"addr = \"127.0.0.1:0\"\n[get_routes]\ndirect = [\"/etc/passwd\"]\n",
			"SH-ROUTE-0004",
		},
		{
			"duplicate route key",
			"addr = \"127.0.0.1:0\"\n[get_routes]\n\"x.txt\" = \"x.txt\"\ndirect = [\"x.txt\"]\n",
			"SH-ROUTE-0003",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".toml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			err := newApp().Run([]string{"simple-http-server", path})
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want code %s", err, tt.want)
			}
		})
	}
}
