package middleware

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"sskcargo/models"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const identityKey contextKey = "identity"

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		// Signing with a known constant would make every token forgeable.
		log.Fatal("JWT_SECRET not set in environment")
	}
	return []byte(secret)
}

// Identity is the authenticated operator attached to a request. OwnerID
// scopes every repository call.
type Identity struct {
	OwnerID int64
	Name    string
	Role    string
}

// GenerateToken signs a 24h HS256 access token for an operator.
func GenerateToken(user *models.AppUser) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(user.ID, 10),
		"name": user.Name,
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(24 * time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
}

// RequireAuth validates the Bearer token and puts the operator identity on
// the request context.
func RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "authorization is missing", http.StatusUnauthorized)
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			http.Error(w, "invalid authorization format, expected 'Bearer <token>'", http.StatusUnauthorized)
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return jwtSecret(), nil
		})
		if err != nil || !token.Valid {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			http.Error(w, "invalid token claims", http.StatusUnauthorized)
			return
		}
		sub, _ := claims["sub"].(string)
		ownerID, err := strconv.ParseInt(sub, 10, 64)
		if err != nil || ownerID == 0 {
			http.Error(w, "invalid token subject", http.StatusUnauthorized)
			return
		}

		ident := Identity{OwnerID: ownerID}
		ident.Name, _ = claims["name"].(string)
		ident.Role, _ = claims["role"].(string)

		next(w, r.WithContext(context.WithValue(r.Context(), identityKey, ident)))
	}
}

// IdentityFrom returns the authenticated operator, zero when the request
// never went through RequireAuth.
func IdentityFrom(r *http.Request) Identity {
	ident, _ := r.Context().Value(identityKey).(Identity)
	return ident
}

// WithIdentity is for tests: it attaches an identity without a token.
func WithIdentity(r *http.Request, ident Identity) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), identityKey, ident))
}
