// Package ingest turns raw user input into catalog entries: normalize,
// reject duplicates before any network traffic, detect the provider through
// an external endpoint, then append.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloudboard/internal/catalog"
	"cloudboard/internal/detect"
	"cloudboard/pkg/logging"
)

var (
	// ErrEmptyInput rejects blank submissions. Callers surface no message
	// for it.
	ErrEmptyInput = errors.New("input is empty")
	// ErrDetectionFailed wraps any detection endpoint failure. The cause
	// stays in the error chain for logs but is never shown to the user.
	ErrDetectionFailed = errors.New("cloud provider detection failed")
)

// Ingestor runs the submission sequence against one store and one detector.
type Ingestor struct {
	store    *catalog.Store
	detector detect.Detector
}

// New wires an ingestor.
func New(store *catalog.Store, detector detect.Detector) *Ingestor {
	return &Ingestor{store: store, detector: detector}
}

// Validate is the synchronous pre-flight: trim, normalize, duplicate check.
// It issues no network call, so a duplicate or empty submission is rejected
// without ever entering the detecting state. Returns the normalized domain
// on success.
func (i *Ingestor) Validate(rawInput string) (string, error) {
	if strings.TrimSpace(rawInput) == "" {
		return "", ErrEmptyInput
	}
	domain := catalog.NormalizeDomain(rawInput)
	if domain == "" {
		return "", ErrEmptyInput
	}
	if i.store.Contains(domain) {
		return "", catalog.ErrDuplicate
	}
	return domain, nil
}

// Resolve performs the detecting half: exactly one detection call with the
// user's original input, then an append under the store's uniqueness check.
// Concurrent submissions of the same domain are not prevented here; the
// slower one loses at the append and gets catalog.ErrDuplicate.
func (i *Ingestor) Resolve(ctx context.Context, rawInput, domain string) (catalog.Company, error) {
	provider, err := i.detector.Detect(ctx, rawInput)
	if err != nil {
		logging.Warn("Ingest", "detection for %s failed: %v", domain, err)
		return catalog.Company{}, fmt.Errorf("%w: %v", ErrDetectionFailed, err)
	}
	company := catalog.Company{
		Name:     catalog.DisplayName(domain),
		Symbol:   catalog.CustomSymbol,
		Domain:   domain,
		Provider: provider,
	}
	if err := i.store.Add(company); err != nil {
		return catalog.Company{}, err
	}
	logging.Info("Ingest", "added %s (%s) on %s", company.Name, company.Domain, company.Provider)
	return company, nil
}

// Submit runs the whole sequence in one blocking call. The TUI drives
// Validate and Resolve separately so its loading flag brackets only the
// network call; CLI and server paths use Submit.
func (i *Ingestor) Submit(ctx context.Context, rawInput string) (catalog.Company, error) {
	domain, err := i.Validate(rawInput)
	if err != nil {
		return catalog.Company{}, err
	}
	return i.Resolve(ctx, rawInput, domain)
}

// UserMessage maps an ingestion error onto the status line text. Empty
// input is ignored silently and detection causes are never surfaced.
func UserMessage(err error) string {
	switch {
	case err == nil, errors.Is(err, ErrEmptyInput):
		return ""
	case errors.Is(err, catalog.ErrDuplicate):
		return "Company already exists"
	default:
		return "Failed to detect cloud provider. Please try again."
	}
}
