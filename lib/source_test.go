package lib

import (
	"errors"
	"testing"
)

type relPath string

type taggedRef struct {
	Location string `yaml:"location"`
	hidden   string
}

func TestFindPosix_rejectsNonCollections(t *testing.T) {
	for _, paths := range []any{nil, "a", 5, map[string]any{"paths": []string{"a"}}} {
		if _, err := FindPosix(paths); !errors.Is(err, ErrInvalidInputShape) {
			t.Errorf("FindPosix(%v) err = %v, want ErrInvalidInputShape", paths, err)
		}
	}
}

func TestFindPosix_rejectsInvalidElements(t *testing.T) {
	var nilRef *fileRef
	cases := []any{
		[]any{5},
		[]any{"", 5},
		[]any{nil},
		[]any{"", nil},
		[]any{"", nilRef},
		[]any{true},
		[]any{[]string{"a"}},
		[]int{1},
	}
	for _, paths := range cases {
		if _, err := FindPosix(paths, "filePath"); !errors.Is(err, ErrInvalidElement) {
			t.Errorf("FindPosix(%v) err = %v, want ErrInvalidElement", paths, err)
		}
	}
}

func TestFindPosix_rejectsMultipleKeys(t *testing.T) {
	if _, err := FindPosix([]string{"a"}, "a", "b"); !errors.Is(err, ErrInvalidFieldName) {
		t.Errorf("FindPosix(strings, 2 keys) err = %v, want ErrInvalidFieldName", err)
	}
	if _, err := FindPosix([]any{"a"}, "a", "b"); !errors.Is(err, ErrInvalidFieldName) {
		t.Errorf("FindPosix(any, 2 keys) err = %v, want ErrInvalidFieldName", err)
	}
}

func TestFindPosix_structuredWithoutKey(t *testing.T) {
	cases := []any{
		[]any{map[string]any{}},
		[]any{"", map[string]any{}},
		[]any{map[string]any{}, ""},
		[]fileRef{{FilePath: "a"}},
	}
	for _, paths := range cases {
		if _, err := FindPosix(paths); !errors.Is(err, ErrMissingFieldName) {
			t.Errorf("FindPosix(%v) err = %v, want ErrMissingFieldName", paths, err)
		}
	}
}

func TestFindPosix_invalidFieldValues(t *testing.T) {
	cases := []any{
		[]any{map[string]any{}},
		[]any{map[string]any{"filePath": 5}},
		[]any{map[string]any{"filePath": nil}},
		[]any{map[string]any{"filePath": map[string]any{}}},
		[]any{map[string]int{"filePath": 5}},
		[]fileRef{{FilePath: "a"}},
	}
	for i, paths := range cases {
		key := "filePath"
		if i == len(cases)-1 {
			key = "Size"
		}
		if _, err := FindPosix(paths, key); !errors.Is(err, ErrInvalidFieldValue) {
			t.Errorf("FindPosix(%v, %q) err = %v, want ErrInvalidFieldValue", paths, key, err)
		}
	}
}

func TestFindPosix_structFieldLookup(t *testing.T) {
	// Field names, json tags and yaml tags all resolve.
	byName := mustFind(t, FindPosix, []fileRef{{FilePath: "/a/x.js"}}, "FilePath")
	byJSONTag := mustFind(t, FindPosix, []fileRef{{FilePath: "/a/x.js"}}, "filePath")
	byYAMLTag := mustFind(t, FindPosix, []taggedRef{{Location: "/a/x.js"}}, "location")
	for _, result := range []*CommonPath{byName, byJSONTag, byYAMLTag} {
		if result.ParsedPaths[0].Path != "/a/x.js" || *result.CommonDir != "/a" {
			t.Errorf("result = %+v", result)
		}
	}
	if _, err := FindPosix([]taggedRef{{hidden: "/a/x.js"}}, "hidden"); !errors.Is(err, ErrInvalidFieldValue) {
		t.Errorf("unexported field err = %v, want ErrInvalidFieldValue", err)
	}
	if _, err := FindPosix([]taggedRef{{Location: "/a/x.js"}}, ""); !errors.Is(err, ErrInvalidFieldValue) {
		t.Errorf("empty key err = %v, want ErrInvalidFieldValue", err)
	}
}

func TestFindPosix_mapsKeepIdentity(t *testing.T) {
	entry := map[string]any{"filePath": "/a/x.js"}
	result := mustFind(t, FindPosix, []any{entry}, "filePath")
	entry["seen"] = true
	if result.ParsedPaths[0].Original.(map[string]any)["seen"] != true {
		t.Error("original map should be the caller's map")
	}
}

func TestFindPosix_namedStringsAndArrays(t *testing.T) {
	result := mustFind(t, FindPosix, [2]relPath{"/a/b/x.js", "/a/c/y.js"})
	if *result.CommonDir != "/a" {
		t.Errorf("commonDir = %q, want /a", *result.CommonDir)
	}
	if result.ParsedPaths[0].Original != relPath("/a/b/x.js") {
		t.Errorf("original = %#v", result.ParsedPaths[0].Original)
	}
}

func TestFindPosix_errorsNameTheElement(t *testing.T) {
	_, err := FindPosix([]any{"a", "b", 7})
	if err == nil || err.Error() != "element 2: paths elements must be strings or structured values: got int" {
		t.Errorf("err = %v", err)
	}
}

func TestKeyArg(t *testing.T) {
	if key, err := KeyArg(nil); err != nil || key != nil {
		t.Errorf("KeyArg(nil) = %v, %v", key, err)
	}
	if key, err := KeyArg("filePath"); err != nil || len(key) != 1 || key[0] != "filePath" {
		t.Errorf("KeyArg(filePath) = %v, %v", key, err)
	}
	for _, bad := range []any{5, true, []string{"a"}} {
		if _, err := KeyArg(bad); !errors.Is(err, ErrInvalidFieldName) {
			t.Errorf("KeyArg(%v) err = %v, want ErrInvalidFieldName", bad, err)
		}
	}
}

func TestFindCustom_dialectCheckedFirst(t *testing.T) {
	if _, err := FindCustom(nil, "not a slice"); !errors.Is(err, ErrInvalidDialect) {
		t.Errorf("err = %v, want ErrInvalidDialect", err)
	}
	if _, err := FindCustom(DialectFuncs{Sep: "/"}, []string{}); !errors.Is(err, ErrInvalidDialect) {
		t.Errorf("empty input with invalid dialect err = %v, want ErrInvalidDialect", err)
	}
}
