package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osscccar/webdash-admin/internal/mail"
	"github.com/osscccar/webdash-admin/internal/security"
)

const DefaultCodeTTL = 10 * time.Minute

var (
	ErrCodeNotFound = errors.New("verification code not found")
	ErrCodeExpired  = errors.New("verification code expired")
	ErrCodeMismatch = errors.New("verification code mismatch")
	ErrCodeDelivery = errors.New("verification code delivery failed")
)

// CodeGenerator produces one 6-digit verification code.
type CodeGenerator func() (string, error)

type verificationEntry struct {
	code      string
	expiresAt time.Time
}

// CodeStore holds outstanding verification codes, one per identity. It lives
// for the process lifetime and is never persisted; outstanding codes are lost
// on restart and callers resend.
type CodeStore struct {
	mu      sync.Mutex
	entries map[string]verificationEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewCodeStore(ttl time.Duration, now func() time.Time) *CodeStore {
	if ttl <= 0 {
		ttl = DefaultCodeTTL
	}
	if now == nil {
		now = time.Now
	}
	return &CodeStore{
		entries: make(map[string]verificationEntry),
		ttl:     ttl,
		now:     now,
	}
}

// Put records a code for the identity, replacing any prior entry. Requesting
// a new code invalidates the old one even if it has not expired.
func (store *CodeStore) Put(identity string, code string) time.Time {
	store.mu.Lock()
	defer store.mu.Unlock()

	expiresAt := store.now().Add(store.ttl)
	store.entries[identity] = verificationEntry{code: code, expiresAt: expiresAt}
	return expiresAt
}

// Consume checks a submitted code. Success and expiry both delete the entry;
// a mismatch leaves it in place so the correct code still works within the
// validity window.
func (store *CodeStore) Consume(identity string, submitted string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	entry, exists := store.entries[identity]
	if !exists {
		return ErrCodeNotFound
	}
	if store.now().After(entry.expiresAt) {
		delete(store.entries, identity)
		return ErrCodeExpired
	}
	if submitted != entry.code {
		return ErrCodeMismatch
	}

	delete(store.entries, identity)
	return nil
}

// VerificationService issues and checks single-use login codes for the admin
// identity.
type VerificationService struct {
	store    *CodeStore
	mailer   mail.Mailer
	generate CodeGenerator
}

func NewVerificationService(store *CodeStore, mailer mail.Mailer, generate CodeGenerator) *VerificationService {
	if generate == nil {
		generate = security.VerificationCode
	}
	return &VerificationService{
		store:    store,
		mailer:   mailer,
		generate: generate,
	}
}

// IssueCode stores a fresh code for the identity and emails it. The stored
// code is authoritative: on delivery failure it remains valid, and the
// returned error wraps ErrCodeDelivery so the caller can report it without
// discarding the issued code.
func (service *VerificationService) IssueCode(ctx context.Context, identity string) (string, error) {
	code, err := service.generate()
	if err != nil {
		return "", fmt.Errorf("generate verification code: %w", err)
	}

	service.store.Put(identity, code)

	if err := service.mailer.Send(ctx, mail.BuildVerificationMessage(identity, code)); err != nil {
		return code, fmt.Errorf("%w: %v", ErrCodeDelivery, err)
	}
	return code, nil
}

// VerifyCode consumes the outstanding code for the identity. Errors are
// ErrCodeNotFound, ErrCodeExpired or ErrCodeMismatch.
func (service *VerificationService) VerifyCode(identity string, submitted string) error {
	return service.store.Consume(identity, submitted)
}
