package places

import (
	"crypto/hmac"
	"crypto/sha1" //nolint
	"encoding/base64"
	"strings"
)

// Signature signs the path and query of a request URL with a premier
// account's private key. The key is base64url encoded and the returned
// signature is base64url as well, ready to be appended to the URL.
//
// A malformed signature is not diagnosed locally: the API answers such
// requests with a bare 403.
func Signature(pathAndQuery, privateKey string) (string, error) {
	k := strings.ReplaceAll(privateKey, "-", "+")
	k = strings.ReplaceAll(k, "_", "/")
	if m := len(k) % 4; m != 0 {
		k += strings.Repeat("=", 4-m)
	}

	key, err := base64.StdEncoding.DecodeString(k)
	if err != nil {
		return "", err
	}

	h := hmac.New(sha1.New, key)
	if _, err := h.Write([]byte(pathAndQuery)); err != nil {
		return "", err
	}

	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	sig = strings.ReplaceAll(sig, "+", "-")
	sig = strings.ReplaceAll(sig, "/", "_")

	return sig, nil
}
