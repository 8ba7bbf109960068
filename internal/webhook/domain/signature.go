package domain

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
)

// VerifySignature valida la autenticidad de un webhook de Fourthwall.
//
// La firma esperada es base64(HMAC-SHA256(secret, rawBody)) y se compara en
// tiempo constante. Si no hay secret configurado la verificación queda
// deshabilitada y siempre pasa (⚠️ modo desarrollo: el endpoint acepta
// cualquier petición; main lo avisa en el arranque).
func VerifySignature(rawBody []byte, signature, secret string) bool {
	if secret == "" {
		return true
	}
	if signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(rawBody)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}
