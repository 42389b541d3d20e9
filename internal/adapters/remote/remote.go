// internal/adapters/remote/remote.go
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mahabubulhasibshawon/medico-pharmacy.git/internal/domain"
	"github.com/mahabubulhasibshawon/medico-pharmacy.git/internal/ports"
)

// ErrDocumentNotFound is the sentinel for a lookup miss in the document
// API. Callers branch on it; it is an expected outcome, not a fault.
var ErrDocumentNotFound = errors.New("document does not exist")

// CurrentUserKey is the key holding the single signed-in user record.
const CurrentUserKey = "user"

const (
	adminEmail    = "admin@medico.com"
	adminPassword = "admin123"
	demoEmail     = "user@example.com"
	demoPassword  = "password123"
)

// Service simulates a remote backend: a permissive authentication provider
// and a document CRUD API over named collections, both persisted through
// the shared key/value store. Each call pauses for the configured latency
// before completing, mimicking network timing. There is no cancellation:
// once an operation is issued, it runs to completion even if the caller's
// context is gone, so the delay deliberately does not watch ctx.
type Service struct {
	kv      ports.KeyValuePort
	latency time.Duration
	logger  zerolog.Logger
	now     func() time.Time
}

func NewService(kv ports.KeyValuePort, latency time.Duration, logger zerolog.Logger) *Service {
	return &Service{
		kv:      kv,
		latency: latency,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *Service) wait() {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
}

// SignUp always succeeds: it synthesizes a user with a timestamp-derived
// uid and a display name taken from the email's local part.
func (s *Service) SignUp(ctx context.Context, email, password string) (*domain.User, error) {
	s.wait()
	return s.synthesizeUser(email), nil
}

// SignIn resolves the two hard-coded accounts and otherwise synthesizes a
// user for whatever credentials it is given. The permissive fall-through is
// deliberate demo behavior, not missing validation; do not harden it here.
func (s *Service) SignIn(ctx context.Context, email, password string) (*domain.User, error) {
	s.wait()
	switch {
	case email == adminEmail && password == adminPassword:
		return &domain.User{
			UID:         "admin-uid",
			Email:       email,
			DisplayName: "Admin",
			IsAdmin:     true,
		}, nil
	case email == demoEmail && password == demoPassword:
		return &domain.User{
			UID:         "user-uid",
			Email:       email,
			DisplayName: "Test User",
		}, nil
	default:
		return s.synthesizeUser(email), nil
	}
}

// SignOut deletes the persisted current-user record.
func (s *Service) SignOut(ctx context.Context) error {
	s.wait()
	return s.kv.Remove(ctx, CurrentUserKey)
}

func (s *Service) synthesizeUser(email string) *domain.User {
	name, _, _ := strings.Cut(email, "@")
	return &domain.User{
		UID:         fmt.Sprintf("user-%d", s.now().UnixMilli()),
		Email:       email,
		DisplayName: name,
	}
}

// AddDocument stamps a generated id and createdAt onto data, appends it to
// the collection and persists the whole list. The returned id is the
// document's key for later lookups.
func (s *Service) AddDocument(ctx context.Context, collection string, data map[string]any) (string, error) {
	s.wait()
	docs := s.readCollection(ctx, collection)

	doc := make(map[string]any, len(data)+2)
	for k, v := range data {
		doc[k] = v
	}
	docID := "doc-" + randomBase36(9)
	doc["id"] = docID
	doc["createdAt"] = s.now().UTC().Format(time.RFC3339)

	docs = append(docs, doc)
	if err := s.writeCollection(ctx, collection, docs); err != nil {
		return "", err
	}
	s.logger.Debug().Str("collection", collection).Str("id", docID).Msg("document added")
	return docID, nil
}

func (s *Service) GetCollection(ctx context.Context, collection string) ([]map[string]any, error) {
	s.wait()
	return s.readCollection(ctx, collection), nil
}

func (s *Service) GetDocument(ctx context.Context, collection, id string) (map[string]any, error) {
	s.wait()
	docs := s.readCollection(ctx, collection)
	for _, doc := range docs {
		if doc["id"] == id {
			return doc, nil
		}
	}
	return nil, ErrDocumentNotFound
}

// UpdateDocument shallow-merges partial into the stored document and stamps
// updatedAt.
func (s *Service) UpdateDocument(ctx context.Context, collection, id string, partial map[string]any) error {
	s.wait()
	docs := s.readCollection(ctx, collection)
	for i, doc := range docs {
		if doc["id"] != id {
			continue
		}
		for k, v := range partial {
			doc[k] = v
		}
		doc["updatedAt"] = s.now().UTC().Format(time.RFC3339)
		docs[i] = doc
		return s.writeCollection(ctx, collection, docs)
	}
	return ErrDocumentNotFound
}

func (s *Service) DeleteDocument(ctx context.Context, collection, id string) error {
	s.wait()
	docs := s.readCollection(ctx, collection)
	for i, doc := range docs {
		if doc["id"] == id {
			docs = append(docs[:i], docs[i+1:]...)
			return s.writeCollection(ctx, collection, docs)
		}
	}
	return ErrDocumentNotFound
}

// readCollection applies the parse-with-default policy: a missing key or
// malformed stored JSON reads as an empty collection.
func (s *Service) readCollection(ctx context.Context, collection string) []map[string]any {
	raw, err := s.kv.Get(ctx, collection)
	if err != nil || raw == "" {
		return nil
	}
	var docs []map[string]any
	if err := json.Unmarshal([]byte(raw), &docs); err != nil {
		s.logger.Warn().Str("collection", collection).Err(err).Msg("corrupt collection, treating as empty")
		return nil
	}
	return docs
}

func (s *Service) writeCollection(ctx context.Context, collection string, docs []map[string]any) error {
	raw, err := json.Marshal(docs)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, collection, string(raw))
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

func randomBase36(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = base36[rand.Intn(len(base36))]
	}
	return string(b)
}
