package lib

type windowsDialect struct{}

func (windowsDialect) Separator() string { return `\` }

func isWindowsSep(c byte) bool { return c == '\\' || c == '/' }

func isDriveLetter(c byte) bool { return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' }

// windowsRootLen returns the length of the root at the start of path. A path
// that is nothing but a drive or a separator reports whole=true.
func windowsRootLen(path string) (rootEnd int, whole bool) {
	n := len(path)
	if n == 1 {
		return n, isWindowsSep(path[0])
	}
	switch {
	case isWindowsSep(path[0]):
		rootEnd = 1
		if !isWindowsSep(path[1]) {
			return rootEnd, false
		}
		// \\server\share\ or \\?\C:\ style prefix.
		j := 2
		last := j
		for j < n && !isWindowsSep(path[j]) {
			j++
		}
		if j >= n || j == last {
			return rootEnd, false
		}
		last = j
		for j < n && isWindowsSep(path[j]) {
			j++
		}
		if j >= n || j == last {
			return rootEnd, false
		}
		last = j
		for j < n && !isWindowsSep(path[j]) {
			j++
		}
		if j == n {
			return j, false
		}
		if j != last {
			return j + 1, false
		}
		return rootEnd, false
	case isDriveLetter(path[0]) && path[1] == ':':
		if n == 2 {
			return n, true
		}
		if isWindowsSep(path[2]) {
			return 3, n == 3
		}
		return 2, false
	}
	return 0, false
}

func (windowsDialect) Parse(path string) ParsedPath {
	var ret ParsedPath
	if path == "" {
		return ret
	}
	rootEnd, whole := windowsRootLen(path)
	if whole {
		ret.Root = path
		ret.Dir = path
		return ret
	}
	if len(path) == 1 {
		ret.Base = path
		ret.Name = path
		return ret
	}
	ret.Root = path[:rootEnd]
	startPart, end, extDot := splitBase(path, rootEnd, isWindowsSep)
	fillBase(&ret, path, startPart, end, extDot)
	if startPart > 0 && startPart != rootEnd {
		ret.Dir = path[:startPart-1]
	} else {
		ret.Dir = ret.Root
	}
	return ret
}
