package services

import "strconv"

// FormatRupiah renders an integer amount with dot-grouped thousands and an
// "Rp " prefix, e.g. 1234567 -> "Rp 1.234.567".
func FormatRupiah(price int64) string {
	return "Rp " + groupThousands(strconv.FormatInt(price, 10))
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}
	return groupThousands(s[:len(s)-3]) + "." + s[len(s)-3:]
}
