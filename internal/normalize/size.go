package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/outreach-agent/internal/types"
)

var (
	employeeCountRe = regexp.MustCompile(`(?i)\b([\d,]+)\+?\s*(employees|team members|people|staff)\b`)
	officeCountRe   = regexp.MustCompile(`(?i)\b(\d+)\s*(locations|offices|branches|facilities)\b`)
)

// inferSizeSignal derives a coarse size signal from employee-count mentions,
// falling back to office-count heuristics, defaulting to unknown. The second
// return value is the explicit employee estimate when one was found.
func inferSizeSignal(text string) (types.SizeSignal, int) {
	if m := employeeCountRe.FindStringSubmatch(text); m != nil {
		count, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
		if err == nil && count > 0 {
			return sizeFromEmployees(count), count
		}
	}
	if m := officeCountRe.FindStringSubmatch(text); m != nil {
		offices, err := strconv.Atoi(m[1])
		if err == nil && offices > 0 {
			switch {
			case offices >= 10:
				return types.SizeLarge, 0
			case offices >= 3:
				return types.SizeMid, 0
			default:
				return types.SizeSmall, 0
			}
		}
	}
	return types.SizeUnknown, 0
}

func sizeFromEmployees(count int) types.SizeSignal {
	switch {
	case count >= 250:
		return types.SizeLarge
	case count >= 50:
		return types.SizeMid
	default:
		return types.SizeSmall
	}
}
