package reports

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
)

// PhotoStore guarda blobs de fotos y devuelve una referencia opaca.
type PhotoStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}

// StorePhoto sube la foto si viene como data URL y hay store.
// Sin store, o si no es data URL, la referencia se guarda tal cual.
func StorePhoto(ctx context.Context, store PhotoStore, key, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	if store == nil || !strings.HasPrefix(raw, "data:") {
		return raw, nil
	}

	contentType, data, err := DecodeDataURL(raw)
	if err != nil {
		return "", err
	}
	return store.Put(ctx, key, contentType, data)
}

// DecodeDataURL parsea "data:image/png;base64,....".
func DecodeDataURL(s string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, fmt.Errorf("%w: photo is not a data URL", ErrInvalidInput)
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("%w: malformed data URL", ErrInvalidInput)
	}

	contentType := "application/octet-stream"
	isBase64 := false
	for i, part := range strings.Split(meta, ";") {
		switch {
		case i == 0 && part != "":
			contentType = part
		case part == "base64":
			isBase64 = true
		}
	}

	if isBase64 {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return "", nil, fmt.Errorf("%w: photo base64: %v", ErrInvalidInput, err)
		}
		return contentType, data, nil
	}

	unescaped, err := url.PathUnescape(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: photo payload: %v", ErrInvalidInput, err)
	}
	return contentType, []byte(unescaped), nil
}
