package lib

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Digest returns a 16-digit hex xxhash of the resolved layout: common root and
// directory, then every path with its parts, in input order. Originals are not hashed.
// A nil result hashes like an empty one.
func (c *CommonPath) Digest() string {
	hashDigest := xxhash.New()
	writeField := func(s string) {
		hashDigest.WriteString(s)
		hashDigest.Write([]byte{0})
	}
	writeOptional := func(s *string) {
		if s == nil {
			hashDigest.Write([]byte{1})
			return
		}
		hashDigest.Write([]byte{2})
		writeField(*s)
	}
	if c == nil {
		c = &CommonPath{}
	}
	writeOptional(c.CommonRoot)
	writeOptional(c.CommonDir)
	for _, parts := range c.ParsedPaths {
		writeField(parts.Path)
		writeOptional(parts.Subdir)
		writeField(parts.CommonPart)
		writeField(parts.SubPart)
		writeField(parts.BasePart)
		writeField(parts.ExtPart)
	}
	return fmt.Sprintf("%016x", hashDigest.Sum64())
}
