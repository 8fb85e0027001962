package client

import (
	"fmt"
	"net/http"
)

// ErrorKind membagi kegagalan gateway sesuai asalnya.
type ErrorKind string

const (
	// KindTransport -> request tidak pernah sampai (DNS, koneksi, timeout)
	KindTransport ErrorKind = "transport"
	// KindHTTP -> non-2xx tanpa pesan bisnis yang bisa dibaca
	KindHTTP ErrorKind = "http"
	// KindDecode -> body 2xx tidak lolos skema
	KindDecode ErrorKind = "decode"
	// KindBusiness -> backend menolak dengan pesan aturan bisnis
	KindBusiness ErrorKind = "business"
)

// APIError adalah bentuk seragam semua kegagalan BackendGateway.
// Caller memutuskan sendiri mau menampilkan Message mentah atau hasil
// TranslateError.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (%s): %s", e.Kind, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("api error (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("api error (%s): status %d", e.Kind, e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NotFound -> resource sudah tidak dikenal backend; dipakai rekonsiliasi
// cache unpaid untuk membuang ID mati.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Temporary -> layak dicoba ulang (gangguan transport atau 5xx).
func (e *APIError) Temporary() bool {
	return e.Kind == KindTransport || e.StatusCode >= http.StatusInternalServerError
}
