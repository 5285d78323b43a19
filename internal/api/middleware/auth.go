package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
)

type contextKey string

const artistIDKey contextKey = "artistID"

// HeaderArtistID заголовок с ID аутентифицированного мастера.
// Проверка подписи токена выполняется на API-шлюзе, сюда приходит уже
// проверенный идентификатор.
const HeaderArtistID = "X-Artist-ID"

// Auth проверяет наличие заголовка X-Artist-ID и кладет ID мастера в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderArtistID)
		if raw == "" {
			respondUnauthorized(w, "отсутствует заголовок X-Artist-ID")
			return
		}

		artistID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || artistID <= 0 {
			respondUnauthorized(w, "некорректный ID мастера")
			return
		}

		ctx := context.WithValue(r.Context(), artistIDKey, artistID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetArtistID извлекает ID мастера из контекста запроса
func GetArtistID(ctx context.Context) (int64, bool) {
	artistID, ok := ctx.Value(artistIDKey).(int64)
	return artistID, ok
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
