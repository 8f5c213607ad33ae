package utils

import "encoding/json"

// MapToJSON renders any value as a JSON string, ignoring marshal errors.
func MapToJSON(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func JSONToMap(s string, out any) error {
	return json.Unmarshal([]byte(s), out)
}
