package lib

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// Request is a decoded input document. Both fields stay untyped so the Find
// functions validate document content the same way they validate Go values.
type Request struct {
	Paths any
	Key   any
}

// OpenInput opens name for reading; "-" is stdin and a leading ~ is the home directory.
func OpenInput(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	expanded, err := homedir.Expand(name)
	if err != nil {
		return nil, err
	}
	return os.Open(expanded)
}

// ReadPathList reads one path per line. Blank lines are skipped and a trailing \r is dropped.
func ReadPathList(reader io.Reader) ([]string, error) {
	var paths []string
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return paths, nil
}

// ReadRequest decodes a YAML or JSON document that is either a sequence of
// paths or a mapping with "paths" and an optional "key".
func ReadRequest(reader io.Reader) (*Request, error) {
	var document any
	if err := yaml.NewDecoder(reader).Decode(&document); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("input document is empty")
		}
		return nil, fmt.Errorf("parsing input document: %w", err)
	}
	switch doc := document.(type) {
	case []any:
		return &Request{Paths: doc}, nil
	case map[string]any:
		paths, ok := doc["paths"]
		if !ok {
			return nil, errors.New(`input document has no "paths" entry`)
		}
		return &Request{Paths: paths, Key: doc["key"]}, nil
	}
	return nil, fmt.Errorf("input document must be a sequence or a mapping, got %T", document)
}
