package entities

import (
	"encoding/base64"
	"errors"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var ErrInvalidSignature = errors.New("invalid signature payload")

const dataURIPrefix = "data:"

// SignatureDataURI renders a stored signature so it can be embedded as an
// image. Payloads that already are data URIs are returned unchanged; raw
// base64 is decoded to sniff its MIME type.
func SignatureDataURI(payload string) (string, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return "", ErrInvalidSignature
	}
	if strings.HasPrefix(payload, dataURIPrefix) {
		return payload, nil
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", errors.Join(ErrInvalidSignature, err)
	}

	mime := mimetype.Detect(raw)
	if !strings.HasPrefix(mime.String(), "image/") {
		// Canvas exports are PNG; keep the historical default for odd payloads.
		return dataURIPrefix + "image/png;base64," + payload, nil
	}
	return dataURIPrefix + mime.String() + ";base64," + payload, nil
}
