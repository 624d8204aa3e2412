package lib

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestFormatText_headerAndEntries(t *testing.T) {
	result := mustFind(t, FindPosix, []string{"/projects/myapp/src/util/one.js", "/projects/myapp/test/two.js"})
	var output bytes.Buffer
	FormatText(result, &output)
	want := "root: \"/\"\ndir:  \"/projects/myapp\"\nsrc/util/one.js\ntest/two.js\n"
	if output.String() != want {
		t.Errorf("FormatText = %q, want %q", output.String(), want)
	}
}

func TestFormatText_noCommonDir(t *testing.T) {
	result := mustFind(t, FindWindows, []string{`C:\a.js`, `D:\a.js`})
	var output bytes.Buffer
	FormatText(result, &output)
	if !strings.HasPrefix(output.String(), "root: <none>\ndir:  <none>\n") {
		t.Errorf("FormatText = %q", output.String())
	}
	if !strings.Contains(output.String(), `D:\a.js`) {
		t.Errorf("FormatText should list full paths: %q", output.String())
	}
}

func TestFormatTree_naturalOrder(t *testing.T) {
	result := mustFind(t, FindPosix, []string{"/p/src/file10.js", "/p/src/file2.js", "/p/a.js", "/p/src/lib/x.js"})
	var output bytes.Buffer
	FormatTree(result, "/", &output)
	got := strings.Split(strings.TrimSuffix(output.String(), "\n"), "\n")[2:]
	want := []string{"a.js", "src/", "  file2.js", "  file10.js", "  lib/", "    x.js"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("FormatTree lines = %q, want %q", got, want)
	}
}

func TestFormatTable_columnsAndRows(t *testing.T) {
	result := mustFind(t, FindPosix, []string{"/a/b/x.js", "/a/y.tar.gz"})
	var output bytes.Buffer
	FormatTable(result, &output)
	lines := strings.Split(strings.TrimSuffix(output.String(), "\n"), "\n")
	if len(lines) != 3 || lines[0] != "path\tcommon\tsub\tbase\tname\text" {
		t.Fatalf("FormatTable = %q", output.String())
	}
	if lines[2] != "/a/y.tar.gz\t/a/\t\ty.tar.gz\ty.tar\t.gz" {
		t.Errorf("row = %q", lines[2])
	}
}

func TestFormatJSON_nullsWithoutCommonDir(t *testing.T) {
	result := mustFind(t, FindWindows, []string{`C:\a.js`, `D:\a.js`})
	var output bytes.Buffer
	if err := FormatJSON(result, &output); err != nil {
		t.Fatalf("FormatJSON err = %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(output.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded["commonRoot"] != nil || decoded["commonDir"] != nil {
		t.Errorf("commonRoot/commonDir = %v/%v, want null", decoded["commonRoot"], decoded["commonDir"])
	}
	entries := decoded["parsedPaths"].([]any)
	first := entries[0].(map[string]any)
	if first["subdir"] != nil || first["subPart"] != `C:\` || first["basePart"] != "a.js" {
		t.Errorf("first entry = %v", first)
	}
}

func TestFormatYAML_keys(t *testing.T) {
	result := mustFind(t, FindPosix, []string{"/a/b/x.js", "/a/y.js"})
	var output bytes.Buffer
	if err := FormatYAML(result, &output); err != nil {
		t.Fatalf("FormatYAML err = %v", err)
	}
	var decoded map[string]any
	if err := yaml.Unmarshal(output.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not YAML: %v", err)
	}
	if decoded["commonDir"] != "/a" {
		t.Errorf("commonDir = %v, want /a", decoded["commonDir"])
	}
}

func TestFormatResult_unknownFormat(t *testing.T) {
	result := mustFind(t, FindPosix, []string{"a.js"})
	var output bytes.Buffer
	if err := FormatResult("xml", result, "/", &output); err == nil {
		t.Error("FormatResult(xml) want error")
	}
	for _, format := range []string{"", "text", "tree", "table", "json", "yaml"} {
		output.Reset()
		if err := FormatResult(format, result, "/", &output); err != nil || output.Len() == 0 {
			t.Errorf("FormatResult(%q) err = %v, %d bytes", format, err, output.Len())
		}
	}
}
