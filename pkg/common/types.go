package common

import (
	"cmp"
	"fmt"
)

// Record is the unit stored by every index: a candidate name, a free-form
// category tag and a score.
type Record struct {
	Name  string `yaml:"name"`
	Tag   string `yaml:"tag"`
	Score int    `yaml:"score"`
}

// Compare orders records by score, then by name. Tag is not part of the key.
func Compare(a, b Record) int {
	if c := cmp.Compare(a.Score, b.Score); c != 0 {
		return c
	}
	return cmp.Compare(a.Name, b.Name)
}

// Less reports whether a orders strictly before b.
func Less(a, b Record) bool {
	return Compare(a, b) < 0
}

// ByRank orders records score-descending, then name-ascending. It is the
// order of tag search results.
func ByRank(a, b Record) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	return cmp.Compare(a.Name, b.Name)
}

// String 方便调试打印
func (r Record) String() string {
	return fmt.Sprintf("%s/%s/%d", r.Name, r.Tag, r.Score)
}
