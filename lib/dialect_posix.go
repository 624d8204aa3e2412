package lib

type posixDialect struct{}

func (posixDialect) Separator() string { return "/" }

func isPosixSep(c byte) bool { return c == '/' }

func (posixDialect) Parse(path string) ParsedPath {
	var ret ParsedPath
	if path == "" {
		return ret
	}
	stop := 0
	absolute := path[0] == '/'
	if absolute {
		ret.Root = "/"
		stop = 1
	}
	startPart, end, extDot := splitBase(path, stop, isPosixSep)
	fillBase(&ret, path, startPart, end, extDot)
	if startPart > stop {
		ret.Dir = path[:startPart-1]
	} else if absolute {
		ret.Dir = "/"
	}
	return ret
}
