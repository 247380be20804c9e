package editor

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"archarad-app/internal/domain/postcards"
	"archarad-app/internal/i18n"
)

// Store is the persistence contract for record mutation. UpdateByID writes
// only the given columns, so an omitted image_url carries the stored value
// forward unchanged.
type Store interface {
	Insert(ctx context.Context, p postcards.Postcard) (postcards.Postcard, error)
	UpdateByID(ctx context.Context, id string, changes map[string]any) error
	DeleteByID(ctx context.Context, id string) error
}

// BlobStore is the object-storage contract for postcard scans.
type BlobStore interface {
	Upload(ctx context.Context, name string, data []byte) (string, error)
	PublicURL(ref string) string
}

// Reloader refreshes the read view after a successful write. Satisfied by
// *catalog.Catalog.
type Reloader interface {
	Load(ctx context.Context) error
}

// Confirmer guards irreversible actions. Remove proceeds only when the
// collaborator answers yes.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to the Confirmer contract.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// ImageFile is a chosen image awaiting upload.
type ImageFile struct {
	Name string
	Data []byte
}

// Phase is the edit-session state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseSucceeded
	PhaseFailed
)

// Orchestrator sequences validation, image upload, persistence and catalog
// reconciliation for the privileged mutation path. Collaborator failures
// abort the whole operation; nothing partial is persisted or reflected
// locally, and nothing is retried.
type Orchestrator struct {
	store   Store
	blobs   BlobStore
	catalog Reloader
	confirm Confirmer

	mu    sync.Mutex
	phase Phase
}

func NewOrchestrator(store Store, blobs BlobStore, cat Reloader, confirm Confirmer) *Orchestrator {
	return &Orchestrator{store: store, blobs: blobs, catalog: cat, confirm: confirm}
}

func (o *Orchestrator) Phase() Phase {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.phase
}

func (o *Orchestrator) setPhase(p Phase) {
	o.mu.Lock()
	o.phase = p
	o.mu.Unlock()
}

// Create validates, uploads the required image, persists the record and
// reloads the catalog.
func (o *Orchestrator) Create(ctx context.Context, in Input, image *ImageFile) (postcards.Postcard, error) {
	o.setPhase(PhaseSubmitting)

	if errs := Validate(in); len(errs) > 0 {
		o.setPhase(PhaseFailed)
		return postcards.Postcard{}, &ValidationError{Fields: errs}
	}
	if image == nil || len(image.Data) == 0 {
		o.setPhase(PhaseFailed)
		return postcards.Postcard{}, ErrMissingImage
	}

	url, err := o.uploadImage(ctx, image)
	if err != nil {
		o.setPhase(PhaseFailed)
		return postcards.Postcard{}, err
	}

	record := normalize(in)
	record.ImageURL = url

	created, err := o.store.Insert(ctx, record)
	if err != nil {
		o.setPhase(PhaseFailed)
		return postcards.Postcard{}, &CollaboratorError{Op: "insert", Err: err}
	}

	return created, o.finish(ctx)
}

// Update validates and persists changed fields. The image is optional; when
// omitted the stored image reference stays untouched.
func (o *Orchestrator) Update(ctx context.Context, id string, in Input, image *ImageFile) error {
	o.setPhase(PhaseSubmitting)

	if errs := Validate(in); len(errs) > 0 {
		o.setPhase(PhaseFailed)
		return &ValidationError{Fields: errs}
	}

	changes := normalizeChanges(in)
	if image != nil && len(image.Data) > 0 {
		url, err := o.uploadImage(ctx, image)
		if err != nil {
			o.setPhase(PhaseFailed)
			return err
		}
		changes["image_url"] = url
	}

	if err := o.store.UpdateByID(ctx, id, changes); err != nil {
		o.setPhase(PhaseFailed)
		return &CollaboratorError{Op: "update", Err: err}
	}

	return o.finish(ctx)
}

// Remove deletes a record after explicit confirmation and reloads the
// catalog. The stored image asset is left in place; see DESIGN.md.
func (o *Orchestrator) Remove(ctx context.Context, id string) error {
	if !o.confirm.Confirm("Are you sure you want to delete this postcard?") {
		return ErrNotConfirmed
	}

	o.setPhase(PhaseSubmitting)
	if err := o.store.DeleteByID(ctx, id); err != nil {
		o.setPhase(PhaseFailed)
		return &CollaboratorError{Op: "delete", Err: err}
	}

	return o.finish(ctx)
}

// finish reconciles the read view and resets the session.
func (o *Orchestrator) finish(ctx context.Context) error {
	o.setPhase(PhaseSucceeded)
	if err := o.catalog.Load(ctx); err != nil {
		return &CollaboratorError{Op: "reload", Err: err}
	}
	o.setPhase(PhaseIdle)
	return nil
}

func (o *Orchestrator) uploadImage(ctx context.Context, image *ImageFile) (string, error) {
	ref, err := o.blobs.Upload(ctx, uniqueName(image.Name), image.Data)
	if err != nil {
		return "", &CollaboratorError{Op: "upload", Err: err}
	}
	return o.blobs.PublicURL(ref), nil
}

// uniqueName combines a millisecond timestamp with a random suffix and
// keeps the original extension.
func uniqueName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}

// normalize trims every string and converts the optional fields: empty
// district becomes unset, empty descriptions stay empty, the year string
// parses to an integer or stays unset.
func normalize(in Input) postcards.Postcard {
	p := postcards.Postcard{
		Title:       trimText(in.Title),
		Description: trimText(in.Description),
	}
	if year, ok := parseYear(in.Year); ok {
		p.Year = &year
	}
	if d := strings.TrimSpace(in.District); d != "" {
		p.District = &d
	}
	return p
}

// normalizeChanges builds the column map for a partial update. Optional
// fields that came back empty are written as NULL, matching the original
// edit form which always submits the full field set.
func normalizeChanges(in Input) map[string]any {
	changes := map[string]any{}
	trimText(in.Title).Each(func(lang i18n.Lang, v string) {
		changes["title_"+string(lang)] = v
	})
	trimText(in.Description).Each(func(lang i18n.Lang, v string) {
		changes["description_"+string(lang)] = v
	})
	if year, ok := parseYear(in.Year); ok {
		changes["year"] = year
	} else {
		changes["year"] = nil
	}
	if d := strings.TrimSpace(in.District); d != "" {
		changes["district"] = d
	} else {
		changes["district"] = nil
	}
	return changes
}

func parseYear(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return year, true
}

func trimText(t i18n.Text) i18n.Text {
	return i18n.Text{
		HU: strings.TrimSpace(t.HU),
		RO: strings.TrimSpace(t.RO),
		EN: strings.TrimSpace(t.EN),
		DE: strings.TrimSpace(t.DE),
	}
}
