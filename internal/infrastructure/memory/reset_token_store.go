package memory

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/nmoreno/alquiler-api/internal/application/auth"
	"github.com/nmoreno/alquiler-api/internal/domain"
)

var _ auth.ResetTokenStore = (*ResetTokenStore)(nil)

type resetEntry struct {
	tokenHash [sha256.Size]byte
	expiresAt time.Time
}

// ResetTokenStore guarda en memoria los tokens de recuperación de contraseña,
// a lo sumo uno vigente por usuario. No sobrevive reinicios ni se comparte
// entre instancias; para eso se reemplaza por otra implementación del puerto.
type ResetTokenStore struct {
	mu      sync.Mutex
	entries map[int]resetEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewResetTokenStore construye el registro con la vigencia indicada por token.
func NewResetTokenStore(ttl time.Duration) *ResetTokenStore {
	return &ResetTokenStore{
		entries: make(map[int]resetEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Issue genera un secreto aleatorio de 32 bytes, guarda su hash con vencimiento
// now + ttl y devuelve el secreto en claro para enviarlo por mail.
// Una emisión nueva pisa cualquier token anterior del mismo usuario.
func (s *ResetTokenStore) Issue(userID int) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generar token de reset: %w", err)
	}
	rawToken := hex.EncodeToString(raw)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[userID] = resetEntry{
		tokenHash: sha256.Sum256([]byte(rawToken)),
		expiresAt: s.now().Add(s.ttl),
	}
	return rawToken, nil
}

// Consume valida y elimina el token del usuario. El token se consume una sola
// vez: un reintento con el mismo secreto falla con ErrResetTokenInvalid.
// Los vencidos se eliminan acá mismo, no hay barrido en background.
func (s *ResetTokenStore) Consume(userID int, rawToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[userID]
	if !ok {
		return domain.ErrResetTokenInvalid
	}
	if !s.now().Before(entry.expiresAt) {
		delete(s.entries, userID)
		return domain.ErrResetTokenExpired
	}
	hash := sha256.Sum256([]byte(rawToken))
	if subtle.ConstantTimeCompare(hash[:], entry.tokenHash[:]) != 1 {
		return domain.ErrResetTokenInvalid
	}
	delete(s.entries, userID)
	return nil
}
