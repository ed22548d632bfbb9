package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// TokenExpired reports whether the access token issued by the accommodation
// service has already expired. The token is signed with the upstream's secret,
// so the signature is not verified here; only the exp claim is read. Opaque or
// unparseable tokens carry no readable expiry; rejecting those is left to the
// upstream.
func TokenExpired(tokenString string, now time.Time) bool {
	parser := jwt.Parser{}
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		// No exp claim; expiry is implicit and left to the upstream.
		return false
	}
	return now.After(time.Unix(int64(exp), 0))
}

// ExtractSubject returns the sub claim from a token without verifying it.
func ExtractSubject(tokenString string) (string, error) {
	parser := jwt.Parser{}
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token does not contain a valid 'sub' claim")
	}
	return sub, nil
}
