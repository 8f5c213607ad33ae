package utils

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strings"
)

// GenerateSign builds the MD5 signature over sorted non-empty params,
// used to verify payment provider webhooks.
func GenerateSign(params map[string]string, secretKey string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if k == "sign" || strings.TrimSpace(v) == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		sb.WriteString(k)
		sb.WriteString("=")
		sb.WriteString(params[k])
		if i < len(keys)-1 {
			sb.WriteString("&")
		}
	}
	sb.WriteString("&key=")
	sb.WriteString(secretKey)

	hash := md5.Sum([]byte(sb.String()))
	return strings.ToUpper(hex.EncodeToString(hash[:]))
}

// VerifySign checks the sign field of params against the expected signature.
func VerifySign(params map[string]string, secretKey string) bool {
	receivedSign := params["sign"]
	if receivedSign == "" {
		return false
	}
	expectedSign := GenerateSign(params, secretKey)
	return strings.EqualFold(receivedSign, expectedSign)
}
