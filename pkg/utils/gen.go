package utils

import (
	"github.com/speps/go-hashids/v2"
)

// GenHashID encodes id into a short stable token; the same salt and id always give the same output.
func GenHashID(salt string, id int64) string {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 12
	h, err := hashids.NewWithData(hd)
	if err != nil {
		return ""
	}
	e, _ := h.EncodeInt64([]int64{id})
	return e
}
