package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry membaca klaim "exp" dari access token yang diterbitkan backend.
// Client tidak memegang signing secret, jadi token TIDAK diverifikasi di sini;
// hasilnya hanya dipakai untuk membatasi umur identity di storage lokal.
// Verifikasi tetap urusan backend pada setiap request ber-Authorization.
func TokenExpiry(tokenString string) (time.Time, error) {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return time.Time{}, err
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, errors.New("token has no exp claim")
	}

	return exp.Time, nil
}
