package lib

import "strings"

// CommonPath is the longest common directory of a set of paths plus every path
// re-sliced around it. CommonRoot and CommonDir are nil together when the paths
// share no root, such as different drives or shares.
type CommonPath struct {
	CommonRoot  *string     `json:"commonRoot" yaml:"commonRoot"`
	CommonDir   *string     `json:"commonDir" yaml:"commonDir"`
	ParsedPaths []PathParts `json:"parsedPaths" yaml:"parsedPaths"`
}

// PathParts is one input path split around the common directory.
// CommonPart + SubPart + BasePart is the path string and NamePart + ExtPart is BasePart.
type PathParts struct {
	// Original is the element as passed in; pointers and maps keep their identity.
	Original any `json:"original" yaml:"original"`
	// Path is the path string read from Original.
	Path string `json:"path" yaml:"path"`
	// Subdir is the directory below the common directory, nil without one.
	Subdir     *string `json:"subdir" yaml:"subdir"`
	CommonPart string  `json:"commonPart" yaml:"commonPart"`
	SubPart    string  `json:"subPart" yaml:"subPart"`
	BasePart   string  `json:"basePart" yaml:"basePart"`
	NamePart   string  `json:"namePart" yaml:"namePart"`
	ExtPart    string  `json:"extPart" yaml:"extPart"`
}

// Common returns the common root and directory; ok is false when there is none.
func (c *CommonPath) Common() (root, dir string, ok bool) {
	if c == nil || c.CommonDir == nil || c.CommonRoot == nil {
		return "", "", false
	}
	return *c.CommonRoot, *c.CommonDir, true
}

// workingPath is a source after one pass through the dialect.
type workingPath struct {
	source
	ParsedPath
}

// Find resolves the common directory with the dialect of the build platform.
// key names the field holding the path string when paths contains maps or structs.
func Find(paths any, key ...string) (*CommonPath, error) {
	return FindCustom(Native, paths, key...)
}

// FindPosix resolves the common directory of POSIX paths.
func FindPosix(paths any, key ...string) (*CommonPath, error) {
	return FindCustom(Posix, paths, key...)
}

// FindWindows resolves the common directory of Windows paths.
func FindWindows(paths any, key ...string) (*CommonPath, error) {
	return FindCustom(Windows, paths, key...)
}

// FindCustom resolves the common directory of paths split by dialect.
//
// paths must be a slice or array of strings, maps with string keys, structs or
// pointers to structs. Structured elements need key, which is matched against
// map keys, struct field names and json/yaml tag names.
func FindCustom(dialect Dialect, paths any, key ...string) (*CommonPath, error) {
	if err := checkDialect(dialect); err != nil {
		return nil, err
	}
	sources, err := collectSources(paths, key)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return &CommonPath{ParsedPaths: []PathParts{}}, nil
	}
	working := decompose(dialect, sources)
	sep := dialect.Separator()
	root, dir, ok := commonDirectory(working, sep)
	result := &CommonPath{ParsedPaths: reslice(working, dir, ok, sep)}
	if ok {
		result.CommonRoot = &root
		result.CommonDir = &dir
	}
	return result, nil
}

func decompose(dialect Dialect, sources []source) []workingPath {
	working := make([]workingPath, len(sources))
	for i, src := range sources {
		working[i] = workingPath{source: src, ParsedPath: dialect.Parse(src.path)}
	}
	return working
}

// commonDirectory narrows the first path's directory until it is an ancestor or
// equal of every other directory. working must not be empty.
func commonDirectory(working []workingPath, sep string) (root, dir string, ok bool) {
	root, dir = working[0].Root, working[0].Dir
	for _, wp := range working[1:] {
		// The root encodes drive, share and absoluteness, so any mismatch is final.
		if wp.Root != root {
			return "", "", false
		}
	}
	if len(dir) > len(root) {
		for i := 1; i < len(working); {
			candidate := working[i].Dir
			if candidate == dir || strings.HasPrefix(candidate, dir+sep) {
				i++
				continue
			}
			cut := strings.LastIndex(dir, sep)
			if cut <= len(root) {
				// Nothing left to cut above the root; covers drive-relative C: too.
				dir = root
				break
			}
			// Retry the same path against the shorter candidate.
			dir = dir[:cut]
		}
	}
	// \\?\UNC\ paths keep server and share in dir, which must survive the narrowing.
	uncRoot := sep + sep + "?" + sep + "UNC" + sep
	if root == uncRoot && strings.LastIndex(dir, sep) < len(uncRoot) {
		return "", "", false
	}
	return root, dir, true
}

func reslice(working []workingPath, dir string, ok bool, sep string) []PathParts {
	endsWithSep := ok && strings.HasSuffix(dir, sep)
	parsed := make([]PathParts, len(working))
	for i, wp := range working {
		boundary := 0
		if ok {
			boundary = min(len(dir), len(wp.path))
			// The joining separator belongs to the common part, all of it when sep is longer than a byte.
			if !endsWithSep && strings.HasPrefix(wp.path[boundary:], sep) {
				boundary += len(sep)
			}
		}
		end := max(len(wp.path)-len(wp.Base), boundary)
		parts := PathParts{
			Original:   wp.original,
			Path:       wp.path,
			CommonPart: wp.path[:boundary],
			SubPart:    wp.path[boundary:end],
			BasePart:   wp.Base,
			NamePart:   wp.Name,
			ExtPart:    wp.Ext,
		}
		if ok {
			subdir := ""
			if boundary < len(wp.Dir) {
				subdir = wp.Dir[boundary:]
			}
			parts.Subdir = &subdir
		}
		parsed[i] = parts
	}
	return parsed
}
