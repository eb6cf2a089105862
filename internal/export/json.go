package export

import "encoding/json"

// JSON renders records pretty-printed with 4-space indent, preserving
// column order.
func JSON(rows []Record) (string, error) {
	b, err := json.MarshalIndent(rows, "", "    ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
