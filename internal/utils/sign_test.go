package utils

import "testing"

func TestGenerateSignDeterministic(t *testing.T) {
	params := map[string]string{
		"order_number":  "BF123",
		"status":        "paid",
		"amount":        "32.26",
		"tran_datetime": "1756600000000",
	}
	a := GenerateSign(params, "secret")
	b := GenerateSign(params, "secret")
	if a != b {
		t.Errorf("sign not deterministic: %s vs %s", a, b)
	}
	if GenerateSign(params, "other") == a {
		t.Error("sign must depend on the secret")
	}
}

func TestVerifySign(t *testing.T) {
	params := map[string]string{
		"order_number": "BF123",
		"status":       "paid",
		"amount":       "32.26",
	}
	params["sign"] = GenerateSign(params, "secret")
	if !VerifySign(params, "secret") {
		t.Error("valid sign rejected")
	}
	params["amount"] = "99.99"
	if VerifySign(params, "secret") {
		t.Error("tampered params accepted")
	}
}

func TestVerifySignSkipsEmptyValues(t *testing.T) {
	full := map[string]string{"a": "1", "b": "2"}
	withEmpty := map[string]string{"a": "1", "b": "2", "c": ""}
	if GenerateSign(full, "k") != GenerateSign(withEmpty, "k") {
		t.Error("empty values must not change the signature")
	}
}
