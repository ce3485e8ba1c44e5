package output

import "strconv"

func uintText(v uint64) string {
	return strconv.FormatUint(v, 10)
}
