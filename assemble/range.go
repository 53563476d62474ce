package assemble

import (
	"regexp"
	"strconv"

	"github.com/ykawada/webnovel"
)

var rangePattern = regexp.MustCompile(`^([0-9]+)-([0-9]+)$`)

// ChapterRange is a 1-indexed inclusive chapter interval.
type ChapterRange struct {
	Start int
	End   int
}

// ParseChapterRange parses an "N-M" range argument. Start must be at
// least 1 and no greater than End.
func ParseChapterRange(s string) (*ChapterRange, error) {
	m := rangePattern.FindStringSubmatch(s)
	if m == nil {
		return nil, webnovel.Errorf(webnovel.EINVALID, "invalid chapter range %q: must be in N-M format, for example 3-10", s)
	}

	start, _ := strconv.Atoi(m[1])
	end, _ := strconv.Atoi(m[2])
	if start < 1 || start > end {
		return nil, webnovel.Errorf(webnovel.EINVALID, "invalid chapter range %q: start must be greater than zero and no greater than end", s)
	}

	return &ChapterRange{Start: start, End: end}, nil
}

// apply restricts refs to the range, or errors when the range reaches
// past the end of the list.
func (r *ChapterRange) apply(refs []webnovel.ChapterRef) ([]webnovel.ChapterRef, error) {
	if r.End > len(refs) {
		return nil, webnovel.Errorf(webnovel.EINVALID, "not enough chapters for range %d-%d: volume has %d", r.Start, r.End, len(refs))
	}
	return refs[r.Start-1 : r.End], nil
}
