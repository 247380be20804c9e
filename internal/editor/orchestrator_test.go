package editor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"archarad-app/internal/domain/postcards"
)

type fakeStore struct {
	inserts []postcards.Postcard
	updates []map[string]any
	deletes []string

	insertErr error
	updateErr error
	deleteErr error
}

func (f *fakeStore) Insert(ctx context.Context, p postcards.Postcard) (postcards.Postcard, error) {
	if f.insertErr != nil {
		return postcards.Postcard{}, f.insertErr
	}
	p.ID = "generated-id"
	f.inserts = append(f.inserts, p)
	return p, nil
}

func (f *fakeStore) UpdateByID(ctx context.Context, id string, changes map[string]any) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates = append(f.updates, changes)
	return nil
}

func (f *fakeStore) DeleteByID(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletes = append(f.deletes, id)
	return nil
}

type fakeBlobs struct {
	uploads   []string
	uploadErr error
}

func (f *fakeBlobs) Upload(ctx context.Context, name string, data []byte) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploads = append(f.uploads, name)
	return name, nil
}

func (f *fakeBlobs) PublicURL(ref string) string {
	return "https://archive.example/uploads/" + ref
}

type fakeReloader struct {
	loads int
	err   error
}

func (f *fakeReloader) Load(ctx context.Context) error {
	f.loads++
	return f.err
}

type fakeConfirmer struct {
	answer  bool
	prompts []string
}

func (f *fakeConfirmer) Confirm(prompt string) bool {
	f.prompts = append(f.prompts, prompt)
	return f.answer
}

func newTestOrchestrator(answer bool) (*Orchestrator, *fakeStore, *fakeBlobs, *fakeReloader, *fakeConfirmer) {
	store := &fakeStore{}
	blobs := &fakeBlobs{}
	reload := &fakeReloader{}
	confirm := &fakeConfirmer{answer: answer}
	return NewOrchestrator(store, blobs, reload, confirm), store, blobs, reload, confirm
}

func testImage() *ImageFile {
	return &ImageFile{Name: "scan of main square.JPG", Data: []byte{0xff, 0xd8, 0xff}}
}

func TestCreateHappyPath(t *testing.T) {
	o, store, blobs, reload, _ := newTestOrchestrator(true)

	in := validInput()
	in.District = "  Belváros  "
	created, err := o.Create(context.Background(), in, testImage())
	require.NoError(t, err)

	assert.Equal(t, "generated-id", created.ID)
	require.Len(t, store.inserts, 1)
	saved := store.inserts[0]
	require.NotNil(t, saved.Year)
	assert.Equal(t, 1920, *saved.Year)
	require.NotNil(t, saved.District)
	assert.Equal(t, "Belváros", *saved.District, "strings are trimmed")

	require.Len(t, blobs.uploads, 1)
	name := blobs.uploads[0]
	assert.True(t, strings.HasSuffix(name, ".jpg"), "original extension kept, lowercased: %s", name)
	assert.Contains(t, saved.ImageURL, "https://archive.example/uploads/")

	assert.Equal(t, 1, reload.loads, "catalog reloaded after a successful write")
	assert.Equal(t, PhaseIdle, o.Phase())
}

func TestCreateValidationFailureIsLocal(t *testing.T) {
	o, store, blobs, reload, _ := newTestOrchestrator(true)

	in := validInput()
	in.Title.EN = ""
	_, err := o.Create(context.Background(), in, testImage())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "title_en")

	assert.Empty(t, store.inserts)
	assert.Empty(t, blobs.uploads, "validation failure never reaches a collaborator")
	assert.Zero(t, reload.loads)
	assert.Equal(t, PhaseFailed, o.Phase())
}

func TestCreateWithoutImage(t *testing.T) {
	o, store, blobs, _, _ := newTestOrchestrator(true)

	_, err := o.Create(context.Background(), validInput(), nil)
	require.ErrorIs(t, err, ErrMissingImage)
	assert.Empty(t, blobs.uploads)
	assert.Empty(t, store.inserts, "no persistence call without an image")

	_, err = o.Create(context.Background(), validInput(), &ImageFile{Name: "x.jpg"})
	assert.ErrorIs(t, err, ErrMissingImage, "empty file counts as missing")
}

func TestCreateUploadFailureAbortsEverything(t *testing.T) {
	o, store, blobs, reload, _ := newTestOrchestrator(true)
	blobs.uploadErr = errors.New("bucket unavailable")

	_, err := o.Create(context.Background(), validInput(), testImage())

	var cerr *CollaboratorError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "upload", cerr.Op)
	assert.Equal(t, "Failed to upload image", cerr.Notice())

	assert.Empty(t, store.inserts, "no partial record after a failed upload")
	assert.Zero(t, reload.loads)
}

func TestCreateInsertFailure(t *testing.T) {
	o, store, _, reload, _ := newTestOrchestrator(true)
	store.insertErr = errors.New("duplicate key")

	_, err := o.Create(context.Background(), validInput(), testImage())

	var cerr *CollaboratorError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "Failed to save postcard", cerr.Notice())
	assert.Zero(t, reload.loads, "no reload after a failed write")
	assert.Equal(t, PhaseFailed, o.Phase())
}

func TestUpdateWithoutImageKeepsImageRef(t *testing.T) {
	o, store, blobs, reload, _ := newTestOrchestrator(true)

	require.NoError(t, o.Update(context.Background(), "id-1", validInput(), nil))

	assert.Empty(t, blobs.uploads)
	require.Len(t, store.updates, 1)
	changes := store.updates[0]
	_, touched := changes["image_url"]
	assert.False(t, touched, "omitted image must not touch the stored reference")
	assert.Equal(t, "A régi vár", changes["title_hu"])
	assert.Equal(t, 1920, changes["year"])
	assert.Equal(t, 1, reload.loads)
}

func TestUpdateWithReplacementImage(t *testing.T) {
	o, store, blobs, _, _ := newTestOrchestrator(true)

	require.NoError(t, o.Update(context.Background(), "id-1", validInput(), testImage()))

	require.Len(t, blobs.uploads, 1)
	require.Len(t, store.updates, 1)
	assert.Contains(t, store.updates[0]["image_url"], "https://archive.example/uploads/")
}

func TestUpdateClearsOptionalFields(t *testing.T) {
	o, store, _, _, _ := newTestOrchestrator(true)

	in := validInput()
	in.Year = ""
	in.District = "   "
	require.NoError(t, o.Update(context.Background(), "id-1", in, nil))

	changes := store.updates[0]
	assert.Nil(t, changes["year"])
	assert.Nil(t, changes["district"])
}

func TestRemoveRequiresConfirmation(t *testing.T) {
	o, store, _, reload, confirm := newTestOrchestrator(false)

	err := o.Remove(context.Background(), "id-1")
	require.ErrorIs(t, err, ErrNotConfirmed)
	assert.Len(t, confirm.prompts, 1)
	assert.Empty(t, store.deletes)
	assert.Zero(t, reload.loads)
}

func TestRemoveHappyPath(t *testing.T) {
	o, store, _, reload, _ := newTestOrchestrator(true)

	require.NoError(t, o.Remove(context.Background(), "id-1"))
	assert.Equal(t, []string{"id-1"}, store.deletes)
	assert.Equal(t, 1, reload.loads)
	assert.Equal(t, PhaseIdle, o.Phase())
}

func TestRemoveDeleteFailure(t *testing.T) {
	o, _, _, reload, _ := newTestOrchestrator(true)
	o.store.(*fakeStore).deleteErr = errors.New("gone already")

	err := o.Remove(context.Background(), "id-1")
	var cerr *CollaboratorError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "Failed to delete postcard", cerr.Notice())
	assert.Zero(t, reload.loads)
}

func TestReloadFailureSurfacesAfterWrite(t *testing.T) {
	o, store, _, reload, _ := newTestOrchestrator(true)
	reload.err = errors.New("connection reset")

	_, err := o.Create(context.Background(), validInput(), testImage())
	var cerr *CollaboratorError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "reload", cerr.Op)
	assert.Len(t, store.inserts, 1, "the write itself succeeded")
}
